package widgets

import (
	"github.com/go-loom/loom/pkg/core"
	"github.com/go-loom/loom/pkg/layout"
	"github.com/go-loom/loom/pkg/theme"
)

// Container wraps a single child with padding and a themable background.
type Container struct {
	// Padding insets the child on all four edges.
	Padding layout.PaddingObject
}

func (c Container) Create() *core.Template {
	return core.NewTemplate().
		AsParentType(core.ParentSingle).
		WithProperty(theme.NewSelector("container")).
		WithLayoutObject(c.Padding).
		WithDebugName("Container")
}

// Stack stacks its children on the z-axis. It is a pure composition node:
// no state, no properties of its own.
type Stack struct{}

func (Stack) Create() *core.Template {
	return core.NewTemplate().
		AsParentType(core.ParentMulti).
		WithLayoutObject(layout.StretchObject{}).
		WithDebugName("Stack")
}

// ScrollViewer lets a single child overflow and tracks the scroll offset as
// a property for the layout collaborator.
type ScrollViewer struct{}

func (ScrollViewer) Create() *core.Template {
	return core.NewTemplate().
		AsParentType(core.ParentSingle).
		WithProperty(Offset(0)).
		WithLayoutObject(layout.ScrollObject{}).
		WithDebugName("ScrollViewer")
}

// Cursor is the caret of a text input widget. Its geometry comes from the
// layout collaborator; the theme collaborator paints it via its selector.
type Cursor struct{}

func (Cursor) Create() *core.Template {
	return core.NewTemplate().
		AsParentType(core.ParentSingle).
		WithProperty(theme.NewSelector("cursor")).
		WithLayoutObject(layout.FixedSizeObject{Width: 1}).
		WithDebugName("Cursor")
}

// TextBlock displays a single line of text.
type TextBlock struct {
	// Text is the initial label.
	Text string
}

func (t TextBlock) Create() *core.Template {
	return core.NewTemplate().
		AsParentType(core.ParentSingle).
		WithProperty(Label(t.Text)).
		WithProperty(theme.NewSelector("textblock")).
		WithLayoutObject(layout.TextSizeObject{}).
		WithDebugName("TextBlock")
}

// WaterMarkTextBlock displays its label, or a placeholder while the label
// is empty. Both values are usually shared in by the composing widget.
type WaterMarkTextBlock struct{}

func (WaterMarkTextBlock) Create() *core.Template {
	return core.NewTemplate().
		AsParentType(core.ParentSingle).
		WithProperty(Label("")).
		WithProperty(WaterMark("")).
		WithProperty(theme.NewSelector("watermarktextblock")).
		WithLayoutObject(layout.TextSizeObject{}).
		WithDebugName("WaterMarkTextBlock")
}

// DisplayText returns what a WaterMarkTextBlock container should render:
// the label, or the watermark while the label is empty.
func DisplayText(c *core.WidgetContainer) string {
	label, err := core.Property[Label](c)
	if err == nil && label != "" {
		return string(label)
	}
	mark, err := core.Property[WaterMark](c)
	if err != nil {
		return ""
	}
	return string(mark)
}
