// Package focus provides the focus collaborator for the widget runtime.
//
// The toolkit core never decides which widget receives key input; a Manager
// owned by the host runtime does, by flipping the Focused property of the
// widgets it moves focus between. Widgets opt in by declaring Focused.
package focus

import (
	"fmt"

	"github.com/go-loom/loom/pkg/core"
	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/widgets"
)

// Manager tracks the container holding key focus. The zero value is ready
// for use. Like the tree it points into, a Manager is single-threaded.
type Manager struct {
	focused *core.WidgetContainer
}

// Focused returns the container holding focus, or nil.
func (m *Manager) Focused() *core.WidgetContainer {
	return m.focused
}

// Focus moves focus to c, clearing the Focused property of the previous
// holder and setting it on c. Containers that do not declare Focused cannot
// take focus.
func (m *Manager) Focus(c *core.WidgetContainer) error {
	if c == nil {
		return m.Clear()
	}
	if !core.HasProperty[widgets.Focused](c) {
		return &errors.LoomError{
			Op:     "focus.Focus",
			Kind:   errors.KindProperty,
			Widget: c.DebugName(),
			Err:    fmt.Errorf("widget is not focusable"),
		}
	}
	if err := m.Clear(); err != nil {
		return err
	}
	if err := core.SetProperty(c, widgets.Focused(true)); err != nil {
		return err
	}
	m.focused = c
	return nil
}

// Clear removes focus from the current holder, if any.
func (m *Manager) Clear() error {
	if m.focused == nil {
		return nil
	}
	previous := m.focused
	m.focused = nil
	return core.SetProperty(previous, widgets.Focused(false))
}
