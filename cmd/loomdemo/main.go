// Command loomdemo hosts the widget core in a terminal. It plays the three
// collaborator roles the core leaves external: the input loop (adapting
// tcell key events), a trivial renderer reading settled properties after
// each tick, and the focus manager.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-loom/loom/pkg/core"
	"github.com/go-loom/loom/pkg/events"
	"github.com/go-loom/loom/pkg/focus"
	"github.com/go-loom/loom/pkg/theme"
	"github.com/go-loom/loom/pkg/widgets"
)

func main() {
	themePath := flag.String("theme", "loom-theme.yaml", "theme file; built-in default when absent")
	flag.Parse()

	if err := run(*themePath); err != nil {
		fmt.Fprintln(os.Stderr, "loomdemo:", err)
		os.Exit(1)
	}
}

func run(themePath string) error {
	th, err := theme.LoadOptional(themePath)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	tree := core.NewTree(widgets.TextBox{WaterMark: "type here, esc quits"})

	var manager focus.Manager
	if err := manager.Focus(tree.Root()); err != nil {
		return err
	}
	// Settle the focus property into the state before the first input.
	tree.Tick()

	for {
		draw(screen, tree, th)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			tree.Emit(translateKey(ev), manager.Focused())
			tree.Tick()
		}
	}
}

// translateKey adapts a tcell key event into a toolkit key event.
func translateKey(ev *tcell.EventKey) events.KeyEvent {
	switch ev.Key() {
	case tcell.KeyRune:
		return events.RuneDown(ev.Rune())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return events.KeyDown(events.KeyBackspace)
	case tcell.KeyDelete:
		return events.KeyDown(events.KeyDelete)
	case tcell.KeyEnter:
		return events.KeyDown(events.KeyEnter)
	case tcell.KeyTab:
		return events.KeyDown(events.KeyTab)
	case tcell.KeyLeft:
		return events.KeyDown(events.KeyArrowLeft)
	case tcell.KeyRight:
		return events.KeyDown(events.KeyArrowRight)
	case tcell.KeyUp:
		return events.KeyDown(events.KeyArrowUp)
	case tcell.KeyDown:
		return events.KeyDown(events.KeyArrowDown)
	case tcell.KeyHome:
		return events.KeyDown(events.KeyHome)
	case tcell.KeyEnd:
		return events.KeyDown(events.KeyEnd)
	default:
		return events.KeyDown(events.KeyNone)
	}
}

// draw renders the settled properties of the text box composition.
func draw(screen tcell.Screen, tree *core.Tree, th *theme.Theme) {
	screen.Clear()

	root := tree.Root()
	textBlock := root.Child().Child().ChildAt(0).Child()

	selector, err := core.Property[theme.Selector](root)
	if err == nil {
		if focused, ferr := core.Property[widgets.Focused](root); ferr == nil && bool(focused) {
			selector = selector.Pseudo("focused")
		}
	}
	boxStyle := styleFor(th, selector)

	label, _ := core.Property[widgets.Label](root)
	text := widgets.DisplayText(textBlock)
	if text == "" {
		text = " "
	}

	drawBox(screen, 0, 0, runewidth.StringWidth(text)+3, 2, boxStyle)
	drawText(screen, 1, 1, boxStyle, text)

	screen.ShowCursor(1+runewidth.StringWidth(string(label)), 1)
	screen.Show()
}

func styleFor(th *theme.Theme, selector theme.Selector) tcell.Style {
	style := tcell.StyleDefault
	if fg := th.Attribute(selector, "foreground"); fg != "" {
		style = style.Foreground(tcell.GetColor(fg))
	}
	if bg := th.Attribute(selector, "background"); bg != "" {
		style = style.Background(tcell.GetColor(bg))
	}
	return style
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

func drawBox(screen tcell.Screen, x, y, x2, y2 int, style tcell.Style) {
	for col := x; col <= x2; col++ {
		for row := y; row <= y2; row++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}
