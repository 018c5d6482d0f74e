package property

import (
	"testing"

	"github.com/go-loom/loom/pkg/errors"
)

// Test property types mirroring the kinds widgets declare.
type label string
type focused bool

func TestShared_AliasingAcrossHandles(t *testing.T) {
	origin := NewShared(label("start"))

	// Handles are copies of the same cell, as they would be after being
	// threaded through several templates.
	a := origin
	b := origin
	c := b

	a.Set("from a")
	for i, h := range []Shared[label]{origin, a, b, c} {
		if got := h.Get(); got != "from a" {
			t.Fatalf("handle %d: got %q, want %q", i, got, "from a")
		}
	}

	c.Update(func(v *label) { *v += " and c" })
	if got := origin.Get(); got != "from a and c" {
		t.Errorf("write through c not visible at origin: %q", got)
	}
}

func TestShared_GetReturnsCopy(t *testing.T) {
	s := NewShared(label("abc"))
	v := s.Get()
	v += "changed"
	if v != "abcchanged" {
		t.Fatalf("unexpected copy value %q", v)
	}
	if got := s.Get(); got != "abc" {
		t.Errorf("mutating a returned copy must not affect the cell, got %q", got)
	}
}

func TestBag_OwnedRoundTrip(t *testing.T) {
	var bag Bag
	bag.InsertOwned(focused(false))

	got, err := Get[focused](&bag)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got {
		t.Error("expected initial focused=false")
	}

	if err := Set(&bag, focused(true)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, _ = Get[focused](&bag)
	if !got {
		t.Error("expected focused=true after Set")
	}
}

func TestBag_Update(t *testing.T) {
	var bag Bag
	bag.InsertOwned(label("ab"))

	if err := Update(&bag, func(v *label) { *v += "c" }); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := Get[label](&bag)
	if got != "abc" {
		t.Errorf("got %q, want %q", got, "abc")
	}
}

func TestBag_MissingTypeIsNotFound(t *testing.T) {
	var bag Bag
	bag.InsertOwned(label(""))

	if _, err := Get[focused](&bag); !errors.IsNotFound(err) {
		t.Errorf("Get: expected not-found, got %v", err)
	}
	if err := Set(&bag, focused(true)); !errors.IsNotFound(err) {
		t.Errorf("Set: expected not-found, got %v", err)
	}
	if err := Update(&bag, func(*focused) {}); !errors.IsNotFound(err) {
		t.Errorf("Update: expected not-found, got %v", err)
	}
}

func TestBag_SetNeverInsertsSilently(t *testing.T) {
	var bag Bag
	if err := Set(&bag, label("sneaky")); err == nil {
		t.Fatal("Set on an undeclared type must fail")
	}
	if Has[label](&bag) {
		t.Error("failed Set must not leave a value behind")
	}
}

func TestBag_InsertOverwritesByType(t *testing.T) {
	var bag Bag
	bag.InsertOwned(label("first"))
	bag.InsertOwned(label("second"))

	if bag.Len() != 1 {
		t.Fatalf("expected one slot, got %d", bag.Len())
	}
	got, _ := Get[label](&bag)
	if got != "second" {
		t.Errorf("got %q, want the later value", got)
	}
}

func TestBag_SharedSlotWritesThroughCell(t *testing.T) {
	cell := NewShared(label("shared"))

	var left, right Bag
	left.InsertShared(cell)
	right.InsertShared(cell)

	if err := Set(&left, label("updated")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := Get[label](&right)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "updated" {
		t.Errorf("write through left bag not visible in right bag: %q", got)
	}
	if cell.Get() != "updated" {
		t.Errorf("cell itself not updated: %q", cell.Get())
	}
}

func TestBag_SharedReplacedByOwned(t *testing.T) {
	cell := NewShared(label("shared"))

	var bag Bag
	bag.InsertShared(cell)
	bag.InsertOwned(label("owned"))

	if err := Set(&bag, label("local")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if cell.Get() != "shared" {
		t.Errorf("owned write leaked into the replaced cell: %q", cell.Get())
	}
}
