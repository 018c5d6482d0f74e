package core

import (
	stderrors "errors"

	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/events"
	"github.com/go-loom/loom/pkg/layout"
	"github.com/go-loom/loom/pkg/property"
)

// WidgetContainer is the runtime view of one tree node: the resolved
// properties of a template plus its children, state, and event handlers.
// Containers are created when a template is instantiated and live until
// their subtree is detached.
type WidgetContainer struct {
	bag       property.Bag
	parent    *WidgetContainer
	children  []*WidgetContainer
	state     State
	handlers  []EventHandler
	layoutObj layout.Object
	debugName string
}

// Instantiate consumes a template tree into a container tree. Shared
// property handles threaded into several templates resolve to the same cell
// across the resulting containers.
func Instantiate(t *Template) *WidgetContainer {
	return instantiate(t, nil)
}

func instantiate(t *Template, parent *WidgetContainer) *WidgetContainer {
	c := &WidgetContainer{
		parent:    parent,
		state:     t.state,
		handlers:  t.handlers,
		layoutObj: t.layoutObj,
		debugName: t.debugName,
	}
	for _, typ := range t.order {
		if handle, ok := t.shared[typ]; ok {
			c.bag.InsertShared(handle)
			continue
		}
		c.bag.InsertOwned(t.properties[typ])
	}
	for _, child := range t.children {
		c.children = append(c.children, instantiate(child, c))
	}
	return c
}

// DebugName returns the template's debug name.
func (c *WidgetContainer) DebugName() string { return c.debugName }

// Parent returns the parent container, or nil at the root.
func (c *WidgetContainer) Parent() *WidgetContainer { return c.parent }

// ChildCount returns the number of child containers.
func (c *WidgetContainer) ChildCount() int { return len(c.children) }

// ChildAt returns the child at index i.
func (c *WidgetContainer) ChildAt(i int) *WidgetContainer { return c.children[i] }

// Child returns the single child of a ParentSingle widget, or nil.
func (c *WidgetContainer) Child() *WidgetContainer {
	if len(c.children) == 0 {
		return nil
	}
	return c.children[0]
}

// VisitChildren calls visitor for each child in declaration order, stopping
// when the visitor returns false.
func (c *WidgetContainer) VisitChildren(visitor func(*WidgetContainer) bool) {
	for _, child := range c.children {
		if !visitor(child) {
			return
		}
	}
}

// State returns the attached state, or nil.
func (c *WidgetContainer) State() State { return c.state }

// LayoutObject returns the attached layout descriptor, or nil.
func (c *WidgetContainer) LayoutObject() layout.Object { return c.layoutObj }

// LayoutChildren implements layout.Node for the layout collaborator.
func (c *WidgetContainer) LayoutChildren() []layout.Node {
	nodes := make([]layout.Node, len(c.children))
	for i, child := range c.children {
		nodes[i] = child
	}
	return nodes
}

// handleEvent runs the container's handlers in registration order and
// reports whether one of them consumed the event. A panicking handler is
// reported as a dispatch error and treated as not having consumed the event.
func (c *WidgetContainer) handleEvent(event events.Event) (consumed bool) {
	defer errors.RecoverKind("core.Dispatch", errors.KindEvent, c.debugName)
	for _, handler := range c.handlers {
		if !handler.Handles(event) {
			continue
		}
		if handler.Handle(event, c) {
			return true
		}
	}
	return false
}

// detachChild removes child from c, severing the subtree.
func (c *WidgetContainer) detachChild(child *WidgetContainer) {
	for i, candidate := range c.children {
		if candidate == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// attachedTo reports whether c is part of the tree rooted at root.
func (c *WidgetContainer) attachedTo(root *WidgetContainer) bool {
	for node := c; node != nil; node = node.parent {
		if node == root {
			return true
		}
	}
	return false
}

// Property returns a copy of the property of type T on the container, or a
// PropertyNotFoundError if the widget never declared that type.
func Property[T any](c *WidgetContainer) (T, error) {
	value, err := property.Get[T](&c.bag)
	return value, c.named(err)
}

// SetProperty replaces the property of type T. For shared properties the
// write is immediately visible to every holder of the cell.
func SetProperty[T any](c *WidgetContainer, value T) error {
	return c.named(property.Set(&c.bag, value))
}

// UpdateProperty mutates the property of type T in place through fn. The
// pointer passed to fn is exclusive for the duration of the call.
func UpdateProperty[T any](c *WidgetContainer, fn func(*T)) error {
	return c.named(property.Update(&c.bag, fn))
}

// HasProperty reports whether the container declares property type T.
func HasProperty[T any](c *WidgetContainer) bool {
	return property.Has[T](&c.bag)
}

// named stamps the container's debug name onto property errors.
func (c *WidgetContainer) named(err error) error {
	var notFound *errors.PropertyNotFoundError
	if stderrors.As(err, &notFound) {
		notFound.Widget = c.debugName
	}
	return err
}
