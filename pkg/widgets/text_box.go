package widgets

import (
	"github.com/go-loom/loom/pkg/core"
	"github.com/go-loom/loom/pkg/events"
	"github.com/go-loom/loom/pkg/property"
	"github.com/go-loom/loom/pkg/theme"
)

// TextBoxState handles the text processing of the TextBox widget. It owns
// the private text buffer and reconciles it with the shared Label property
// once per tick.
type TextBoxState struct {
	text    string
	focused bool
	updated bool
}

// Text returns the internal text buffer.
func (s *TextBoxState) Text() string { return s.text }

// HandleKey processes one key-down event. While unfocused it leaves the
// buffer untouched and reports the event unconsumed. While focused it
// appends printable runes, removes the last rune on backspace, marks the
// state updated, and consumes the event.
func (s *TextBoxState) HandleKey(event events.KeyEvent) bool {
	if !s.focused {
		return false
	}

	switch {
	case event.Printable():
		s.text += string(event.Rune)
	case event.Key == events.KeyBackspace:
		s.text = trimLastRune(s.text)
	}

	s.updated = true
	return true
}

// Update reconciles the internal buffer with the Label property. When both
// changed since the last tick the internal value wins: the updated flag
// records that a handled key is the most recent intent.
func (s *TextBoxState) Update(c *core.WidgetContainer) error {
	if focused, err := core.Property[Focused](c); err == nil {
		s.focused = bool(focused)
	}

	label, err := core.Property[Label](c)
	if err != nil {
		return err
	}
	if string(label) == s.text {
		return nil
	}

	if s.updated {
		if err := core.SetProperty(c, Label(s.text)); err != nil {
			return err
		}
	} else {
		s.text = string(label)
	}
	s.updated = false
	return nil
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}

// TextBox is a single line text input widget.
//
// Shared properties, threaded into the nested composition:
//   - Label: the text of the text box.
//   - WaterMark: placeholder shown while the Label is empty.
//   - Selector: theme selector for the widget.
//
// Properties:
//   - Focused: whether the widget handles the current text input; toggled
//     by the focus collaborator.
//
// A TextBoxState reconciles the key-input buffer with the Label, and a
// key-down handler feeds it while the widget is focused.
type TextBox struct {
	// Text is the initial label.
	Text string
	// WaterMark is the placeholder text.
	WaterMark string
}

func (t TextBox) Create() *core.Template {
	label := property.NewShared(Label(t.Text))
	waterMark := property.NewShared(WaterMark(t.WaterMark))
	selector := property.NewShared(theme.NewSelector("textbox"))
	state := &TextBoxState{text: t.Text}

	return core.NewTemplate().
		AsParentType(core.ParentSingle).
		WithProperty(Focused(false)).
		WithChild(Container{}.Create().
			WithChild(Stack{}.Create().
				WithChild(ScrollViewer{}.Create().
					WithChild(WaterMarkTextBlock{}.Create().
						WithShared(label).
						WithShared(selector).
						WithShared(waterMark))).
				WithChild(Cursor{}.Create())).
			WithShared(selector)).
		WithState(state).
		WithDebugName("TextBox").
		WithShared(label).
		WithShared(selector).
		WithShared(waterMark).
		WithEventHandler(core.NewKeyEventHandler().OnKeyDown(
			func(event events.KeyEvent, _ *core.WidgetContainer) bool {
				return state.HandleKey(event)
			}))
}
