// Package core provides the widget template, container, and tick runtime.
//
// This package defines the foundational types of the toolkit: Widget,
// Template, WidgetContainer, State, and EventHandler. It follows a
// retained-mode model where a widget describes its subtree once as a
// Template, the runtime instantiates the description into a container tree,
// and each tick reconciles per-widget state with the externally visible
// properties.
//
// # Core Types
//
// Widget is anything that can describe itself as a Template. It is the sole
// extension point for new widget kinds: implement Create and compose the
// templates of existing widgets.
//
// Template is an immutable tree-node descriptor built once per widget
// expansion. Builder calls return the template for chaining; the runtime
// consumes templates into containers.
//
// WidgetContainer is the runtime view of one tree node. It holds the
// resolved properties and is what State implementations and event handlers
// operate on during a tick.
//
// # Property Access
//
// Typed access goes through package-level generic functions, one value per
// property type per container:
//
//	label, err := core.Property[widgets.Label](c)
//	err = core.SetProperty(c, widgets.Label("abc"))
//	err = core.UpdateProperty(c, func(l *widgets.Label) { *l += "d" })
//
// Shared properties resolve to the same cell regardless of which widget's
// handle is used; a write through any container is immediately visible to
// all holders.
//
// # The Tick
//
// A Tree owns the container tree. Each Tick runs two phases: pending input
// events are dispatched to their target containers (bubbling parent-ward
// until consumed), then every State is updated once, in tree order. After
// Tick returns, properties are settled and safe for the render collaborator
// to read.
package core
