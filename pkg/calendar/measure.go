package calendar

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// MeasureHeight returns the height an editor needs to show content without
// scrolling: content is word wrapped (long words hard wrapped) to width
// columns and each line costs lineHeight. The result is never below
// minHeight.
func MeasureHeight(content string, width, lineHeight, minHeight int) int {
	if width <= 0 {
		width = 1
	}
	wrapped := wrap.String(wordwrap.String(content, width), width)
	lines := strings.Count(wrapped, "\n") + 1
	if h := lines * lineHeight; h > minHeight {
		return h
	}
	return minHeight
}
