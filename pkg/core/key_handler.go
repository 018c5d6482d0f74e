package core

import "github.com/go-loom/loom/pkg/events"

// KeyCallback processes one key event against the widget's container.
// Returning true consumes the event.
type KeyCallback func(event events.KeyEvent, c *WidgetContainer) bool

// KeyEventHandler holds ordered callback chains for key-down and key-up
// events. The first callback returning true consumes the event and stops
// both the chain and further propagation.
type KeyEventHandler struct {
	keyDown []KeyCallback
	keyUp   []KeyCallback
}

// NewKeyEventHandler creates an empty key event handler.
func NewKeyEventHandler() *KeyEventHandler {
	return &KeyEventHandler{}
}

// OnKeyDown appends a callback for key-press events and returns the handler
// for chaining.
func (h *KeyEventHandler) OnKeyDown(callback KeyCallback) *KeyEventHandler {
	h.keyDown = append(h.keyDown, callback)
	return h
}

// OnKeyUp appends a callback for key-release events and returns the handler
// for chaining.
func (h *KeyEventHandler) OnKeyUp(callback KeyCallback) *KeyEventHandler {
	h.keyUp = append(h.keyUp, callback)
	return h
}

// Handles reports true for key events.
func (h *KeyEventHandler) Handles(event events.Event) bool {
	_, ok := event.(events.KeyEvent)
	return ok
}

// Handle runs the matching callback chain in registration order.
func (h *KeyEventHandler) Handle(event events.Event, c *WidgetContainer) bool {
	key, ok := event.(events.KeyEvent)
	if !ok {
		return false
	}
	chain := h.keyUp
	if key.Pressed {
		chain = h.keyDown
	}
	for _, callback := range chain {
		if callback(key, c) {
			return true
		}
	}
	return false
}
