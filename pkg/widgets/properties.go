package widgets

// Label is the text content of a widget.
type Label string

// WaterMark is the placeholder text shown while a Label is empty.
type WaterMark string

// Focused marks the widget currently receiving key input. It is toggled by
// the focus collaborator, not by the widget itself.
type Focused bool

// Offset is the scroll offset of a ScrollViewer, in the unit of the layout
// collaborator.
type Offset float64
