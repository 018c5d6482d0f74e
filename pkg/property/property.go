// Package property provides the typed property model shared by widgets.
//
// A property is a plain Go value identified by its type: a widget container
// holds at most one value per property type. Properties come in two forms.
// Owned properties belong to a single container. Shared properties live in a
// [Shared] cell created by the widget that owns the data; any number of
// widgets in the same tree may hold a handle to the cell, and a write through
// any handle is immediately visible to every holder.
//
// Exclusive mutation is scoped to the callback passed to [Update] (or the
// package-level [Bag] variants), so overlapping borrows cannot be expressed
// through the API. The model is single-threaded; cells carry no locks.
package property

import (
	"reflect"

	"github.com/go-loom/loom/pkg/errors"
)

// Handle is the type-erased view of a [Shared] cell. Templates accept a
// Handle when a shared property is threaded into a widget during
// construction. Only Shared values implement it.
type Handle interface {
	// ValueType returns the property type stored in the cell.
	ValueType() reflect.Type

	load() any
	store(any)
}

// cell is the single storage location behind every handle cloned from one
// Shared value.
type cell[T any] struct {
	value T
}

// Shared is an aliasable, reference-counted property cell holding one value
// of type T. The zero value is not usable; create cells with [NewShared].
// Copying a Shared copies the handle, not the value: all copies read and
// write the same storage. The storage lives as long as the longest-lived
// holder.
type Shared[T any] struct {
	cell *cell[T]
}

// NewShared creates a cell owning the given initial value.
func NewShared[T any](value T) Shared[T] {
	return Shared[T]{cell: &cell[T]{value: value}}
}

// Get returns a copy of the current value.
func (s Shared[T]) Get() T {
	return s.cell.value
}

// Set replaces the value. The write is visible to every holder.
func (s Shared[T]) Set(value T) {
	s.cell.value = value
}

// Update mutates the value in place through fn. The pointer passed to fn is
// only valid for the duration of the call.
func (s Shared[T]) Update(fn func(*T)) {
	fn(&s.cell.value)
}

// ValueType returns the property type stored in the cell.
func (s Shared[T]) ValueType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (s Shared[T]) load() any       { return s.cell.value }
func (s Shared[T]) store(value any) { s.cell.value = value.(T) }

// ownedSlot stores a property value belonging to a single container.
type ownedSlot struct {
	typ   reflect.Type
	value any
}

func (o *ownedSlot) ValueType() reflect.Type { return o.typ }
func (o *ownedSlot) load() any               { return o.value }
func (o *ownedSlot) store(value any)         { o.value = value }

// Bag is the property storage of one widget container: a heterogeneous mix
// of owned values and shared cells, keyed by property type. The zero value
// is an empty bag ready for use.
type Bag struct {
	slots map[reflect.Type]Handle
}

// InsertOwned stores value as an owned property, replacing any prior entry
// of the same type (owned or shared).
func (b *Bag) InsertOwned(value any) {
	b.insert(&ownedSlot{typ: reflect.TypeOf(value), value: value})
}

// InsertShared stores a shared cell handle, replacing any prior entry of the
// same type.
func (b *Bag) InsertShared(handle Handle) {
	b.insert(handle)
}

func (b *Bag) insert(slot Handle) {
	if b.slots == nil {
		b.slots = make(map[reflect.Type]Handle)
	}
	b.slots[slot.ValueType()] = slot
}

// Contains reports whether the bag holds a property of the given type.
func (b *Bag) Contains(typ reflect.Type) bool {
	_, ok := b.slots[typ]
	return ok
}

// Len returns the number of property types in the bag.
func (b *Bag) Len() int {
	return len(b.slots)
}

// Get returns a copy of the property of type T.
func Get[T any](b *Bag) (T, error) {
	slot, err := lookup[T](b)
	if err != nil {
		var zero T
		return zero, err
	}
	return slot.load().(T), nil
}

// Set replaces the property of type T. Setting a type the bag never declared
// is an error; it never inserts silently.
func Set[T any](b *Bag, value T) error {
	slot, err := lookup[T](b)
	if err != nil {
		return err
	}
	slot.store(value)
	return nil
}

// Update mutates the property of type T in place through fn. For shared
// properties the mutation is visible to every holder of the cell.
func Update[T any](b *Bag, fn func(*T)) error {
	slot, err := lookup[T](b)
	if err != nil {
		return err
	}
	value := slot.load().(T)
	fn(&value)
	slot.store(value)
	return nil
}

// Has reports whether the bag holds a property of type T.
func Has[T any](b *Bag) bool {
	return b.Contains(reflect.TypeOf((*T)(nil)).Elem())
}

func lookup[T any](b *Bag) (Handle, error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	slot, ok := b.slots[typ]
	if !ok {
		return nil, &errors.PropertyNotFoundError{Property: typ.String()}
	}
	return slot, nil
}
