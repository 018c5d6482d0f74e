// Package layout defines the descriptor boundary between widgets and the
// layout collaborator.
//
// The toolkit attaches one [Object] descriptor per widget container; an
// external [Engine] consumes the tree of descriptors and produces geometry
// for rendering. No layout algorithm lives in this module.
package layout

// Object describes how a container wants to be laid out. Concrete
// descriptors are plain data; the engine interprets them.
type Object interface {
	// LayoutName identifies the descriptor kind for the engine.
	LayoutName() string
}

// Node is the view of a widget tree node that an engine consumes.
type Node interface {
	LayoutObject() Object
	LayoutChildren() []Node
}

// Engine is the layout collaborator. Arrange walks the node tree and
// produces geometry consumed by rendering; the toolkit never calls it
// during a tick.
type Engine interface {
	Arrange(root Node, width, height float64)
}

// StretchObject asks the engine to stretch every child over the full
// extent of the container.
type StretchObject struct{}

func (StretchObject) LayoutName() string { return "stretch" }

// PaddingObject insets the single child by the given edge distances.
type PaddingObject struct {
	Left, Top, Right, Bottom float64
}

func (PaddingObject) LayoutName() string { return "padding" }

// ScrollObject lets the single child overflow and exposes the overflow to
// scrolling; the current offset lives on the widget as a property.
type ScrollObject struct{}

func (ScrollObject) LayoutName() string { return "scroll" }

// FixedSizeObject forces an exact size regardless of content.
type FixedSizeObject struct {
	Width, Height float64
}

func (FixedSizeObject) LayoutName() string { return "fixed" }

// TextSizeObject sizes a container to its text content, measured in
// terminal cells.
type TextSizeObject struct{}

func (TextSizeObject) LayoutName() string { return "textsize" }
