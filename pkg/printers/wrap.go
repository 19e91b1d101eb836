package printers

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Wrap word wraps text at width. Lines only break on spaces so flags such
// as -s stay in one piece.
func Wrap(text string, width int) string {
	w := wordwrap.NewWriter(width)
	w.Breakpoints = nil
	_, _ = w.Write([]byte(strings.TrimSpace(text)))
	_ = w.Close()
	return w.String()
}
