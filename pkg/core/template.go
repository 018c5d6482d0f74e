package core

import (
	"fmt"
	"reflect"

	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/layout"
	"github.com/go-loom/loom/pkg/property"
)

// ParentType declares how many children a widget accepts.
type ParentType int

const (
	// ParentSingle routes through a single child slot (zero or one child).
	ParentSingle ParentType = iota
	// ParentMulti accepts an ordered sequence of children.
	ParentMulti
)

func (p ParentType) String() string {
	switch p {
	case ParentSingle:
		return "single"
	case ParentMulti:
		return "multi"
	default:
		return fmt.Sprintf("ParentType(%d)", int(p))
	}
}

// Template is the tree-node descriptor a widget builds in Create. Builder
// calls mutate and return the same template for chaining; once handed to the
// runtime the template is consumed and must not be reused.
type Template struct {
	parentType ParentType
	children   []*Template
	properties map[reflect.Type]any
	shared     map[reflect.Type]property.Handle
	order      []reflect.Type
	layoutObj  layout.Object
	state      State
	handlers   []EventHandler
	debugName  string
}

// NewTemplate creates an empty template with a single child slot.
func NewTemplate() *Template {
	return &Template{}
}

// AsParentType declares the child arity. Narrowing to ParentSingle after a
// second child was added is a construction defect and panics.
func (t *Template) AsParentType(parentType ParentType) *Template {
	if parentType == ParentSingle && len(t.children) > 1 {
		panic(&errors.LoomError{
			Op:     "core.Template.AsParentType",
			Kind:   errors.KindTemplate,
			Widget: t.debugName,
			Err:    fmt.Errorf("already holds %d children; cannot narrow to a single child slot", len(t.children)),
		})
	}
	t.parentType = parentType
	return t
}

// WithChild appends a child template. Adding a second child to a
// ParentSingle template is a construction defect and panics; a malformed
// tree is never silently accepted or silently dropped.
func (t *Template) WithChild(child *Template) *Template {
	if t.parentType == ParentSingle && len(t.children) == 1 {
		panic(&errors.LoomError{
			Op:     "core.Template.WithChild",
			Kind:   errors.KindTemplate,
			Widget: t.debugName,
			Err:    fmt.Errorf("single child slot is full; cannot add child %q", child.debugName),
		})
	}
	t.children = append(t.children, child)
	return t
}

// WithProperty attaches an owned property value, keyed by its type. A later
// call with the same property type overwrites the prior value.
func (t *Template) WithProperty(value any) *Template {
	typ := reflect.TypeOf(value)
	if t.properties == nil {
		t.properties = make(map[reflect.Type]any)
	}
	t.track(typ)
	t.properties[typ] = value
	delete(t.shared, typ)
	return t
}

// WithShared attaches a handle to a shared property cell. The cell must have
// been created before this template is built; the same handle threaded into
// several templates aliases one storage location.
func (t *Template) WithShared(handle property.Handle) *Template {
	typ := handle.ValueType()
	if t.shared == nil {
		t.shared = make(map[reflect.Type]property.Handle)
	}
	t.track(typ)
	t.shared[typ] = handle
	delete(t.properties, typ)
	return t
}

// track records first-insertion order of property types so instantiation is
// deterministic.
func (t *Template) track(typ reflect.Type) {
	if _, owned := t.properties[typ]; owned {
		return
	}
	if _, shared := t.shared[typ]; shared {
		return
	}
	t.order = append(t.order, typ)
}

// WithLayoutObject attaches the layout descriptor for the layout
// collaborator.
func (t *Template) WithLayoutObject(obj layout.Object) *Template {
	t.layoutObj = obj
	return t
}

// WithState attaches the widget's state. A widget has at most one state;
// later calls replace it.
func (t *Template) WithState(state State) *Template {
	t.state = state
	return t
}

// WithEventHandler appends an event handler. Handlers run in registration
// order during dispatch.
func (t *Template) WithEventHandler(handler EventHandler) *Template {
	t.handlers = append(t.handlers, handler)
	return t
}

// WithDebugName sets the name used in error reports and debug output.
func (t *Template) WithDebugName(name string) *Template {
	t.debugName = name
	return t
}

// DebugName returns the debug name.
func (t *Template) DebugName() string { return t.debugName }

// ParentType returns the declared child arity.
func (t *Template) ParentType() ParentType { return t.parentType }

// ChildCount returns the number of child templates.
func (t *Template) ChildCount() int { return len(t.children) }
