package core

import (
	"reflect"

	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/events"
)

// targetedEvent pairs an input event with the container chosen by the
// focus or hit-test collaborator.
type targetedEvent struct {
	event  events.Event
	target *WidgetContainer
}

// Tree owns a widget container tree and drives its ticks. One logical
// thread owns the tree; no method is safe for concurrent use.
type Tree struct {
	root    *WidgetContainer
	pending []targetedEvent
}

// NewTree expands the widget into its template tree and instantiates it.
// The templates are consumed during construction.
func NewTree(w Widget) *Tree {
	return &Tree{root: Instantiate(w.Create())}
}

// Root returns the root container.
func (tr *Tree) Root() *WidgetContainer {
	return tr.root
}

// Emit queues an event for the next tick, targeted at the given container.
// A nil target addresses the root. Events are dispatched in emit order.
func (tr *Tree) Emit(event events.Event, target *WidgetContainer) {
	if target == nil {
		target = tr.root
	}
	tr.pending = append(tr.pending, targetedEvent{event: event, target: target})
}

// Tick runs one runtime pass: the event dispatch phase over all pending
// events, then the state update phase over the full tree. When Tick
// returns, properties are settled for the render collaborator.
func (tr *Tree) Tick() {
	pending := tr.pending
	tr.pending = nil
	for _, te := range pending {
		// Targets detached since being enqueued no longer receive events.
		if !te.target.attachedTo(tr.root) {
			continue
		}
		tr.Dispatch(te.event, te.target)
	}
	tr.Update()
}

// Dispatch delivers an event to the target container immediately. The
// target's handlers run in registration order; if none consumes the event
// it bubbles parent-ward until a handler consumes it or the root is passed.
// Dispatch reports whether any handler consumed the event.
func (tr *Tree) Dispatch(event events.Event, target *WidgetContainer) bool {
	if target == nil {
		target = tr.root
	}
	for c := target; c != nil; c = c.parent {
		if c.handleEvent(event) {
			return true
		}
	}
	return false
}

// Update runs the state update phase: every container with a state is
// updated exactly once, in tree order (parent before children, children in
// declaration order). A failing or panicking state is reported through the
// toolkit error handler and never prevents the remaining updates.
func (tr *Tree) Update() {
	updateContainer(tr.root)
}

func updateContainer(c *WidgetContainer) {
	if c.state != nil {
		if err := safeUpdate(c); err != nil {
			errors.ReportStateError(&errors.StateError{
				Widget: c.debugName,
				State:  reflect.TypeOf(c.state).String(),
				Err:    err,
			})
		}
	}
	for _, child := range c.children {
		updateContainer(child)
	}
}

// safeUpdate executes one state update with panic recovery.
func safeUpdate(c *WidgetContainer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportStateError(&errors.StateError{
				Widget:     c.debugName,
				State:      reflect.TypeOf(c.state).String(),
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
			})
			err = nil // already reported
		}
	}()
	return c.state.Update(c)
}

// Detach severs the subtree rooted at c from the tree. The containers, and
// any state or shared cells only they hold, become unreachable once the
// caller drops its references. Detaching the root is a no-op.
func (tr *Tree) Detach(c *WidgetContainer) {
	if c == nil || c == tr.root || c.parent == nil {
		return
	}
	c.parent.detachChild(c)
}
