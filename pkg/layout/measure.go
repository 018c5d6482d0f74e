package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// MeasureText returns the extent of text in terminal cells: the width of the
// widest line and the number of lines. East-Asian wide runes count as two
// cells. Empty text measures 0x1.
func MeasureText(text string) (width, height int) {
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	return width, len(lines)
}

// Measure implements text-content sizing for the descriptor.
func (TextSizeObject) Measure(text string) (width, height int) {
	return MeasureText(text)
}
