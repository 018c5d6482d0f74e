package core

import "github.com/go-loom/loom/pkg/events"

// Widget is anything that can describe itself as a template. Create must be
// free of side effects other than allocating the shared property cells and
// state instance the widget itself introduces.
//
// Composite widgets build their subtree by nesting the templates of other
// widgets and threading shared property handles into the descendants that
// read or write the same data.
type Widget interface {
	Create() *Template
}

// State is optional per-widget behavior invoked once per tick against the
// widget's container. It owns the widget's private data and reconciles it
// with the externally visible properties.
//
// Implementations follow a reconcile-by-direction protocol: keep an
// "updated" flag that is set whenever an internal mutation changes the
// private data. On Update, if the external property already equals the
// internal value, do nothing. Otherwise push the internal value outward when
// the flag is set (internal changes win) and clear it, or pull the external
// value inward when it is not. Update must be idempotent within a tick.
//
// A returned error is reported through the toolkit error handler; it never
// prevents sibling states from updating.
type State interface {
	Update(c *WidgetContainer) error
}

// EventHandler is an ordered gate for input events reaching a widget.
// Handle returns true when the event was consumed, which stops further
// propagation of that event instance.
type EventHandler interface {
	// Handles reports whether this handler is interested in the event
	// category at all.
	Handles(event events.Event) bool
	// Handle delivers the event. It runs to completion before dispatch
	// returns; it may mutate the container's properties and state.
	Handle(event events.Event, c *WidgetContainer) bool
}
