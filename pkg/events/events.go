// Package events defines the input event types routed through a widget tree.
//
// The toolkit does not read input devices itself. An input-loop collaborator
// (a window system binding, a terminal driver, a test) translates raw input
// into these values and hands them to the runtime together with a dispatch
// target chosen by its own focus or hit-test logic.
package events

import "fmt"

// Event is implemented by every input event type.
type Event interface {
	// EventName identifies the event category (e.g. "key", "pointer").
	EventName() string
}

// Key identifies a non-printable key. Printable input is carried as
// KeyRune with the rune set on the event.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEscape
	KeyTab
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyRune:
		return "rune"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyTab:
		return "tab"
	case KeyArrowLeft:
		return "left"
	case KeyArrowRight:
		return "right"
	case KeyArrowUp:
		return "up"
	case KeyArrowDown:
		return "down"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyPageUp:
		return "pageup"
	case KeyPageDown:
		return "pagedown"
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// ModMask is a bit mask of modifier keys held during an event.
type ModMask uint8

const (
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// KeyEvent is a single key press or release.
type KeyEvent struct {
	// Key is the key identity; KeyRune for printable input.
	Key Key
	// Rune is the printable character, set only when Key is KeyRune.
	Rune rune
	// Mods are the modifiers held during the event.
	Mods ModMask
	// Pressed is true for key-down, false for key-up.
	Pressed bool
}

// EventName returns "key".
func (KeyEvent) EventName() string { return "key" }

// Printable reports whether the event carries a printable character.
func (e KeyEvent) Printable() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// KeyDown builds a pressed key event for a non-printable key.
func KeyDown(key Key) KeyEvent {
	return KeyEvent{Key: key, Pressed: true}
}

// RuneDown builds a pressed key event for a printable character.
func RuneDown(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r, Pressed: true}
}

// PointerEvent is a pointer move, press, or release. The position is in the
// coordinate space of the layout collaborator; the toolkit stores and routes
// it without interpreting the geometry.
type PointerEvent struct {
	X, Y float64
	// Pressed is true while the primary button is held.
	Pressed bool
}

// EventName returns "pointer".
func (PointerEvent) EventName() string { return "pointer" }
