package printers

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

const progressWidth = 20

var (
	progressFrom, _ = colorful.Hex("#d7005f")
	progressTo, _   = colorful.Hex("#5faf00")
)

// ProgressBar draws ratio (0..1) as a bar of width cells.
func ProgressBar(ratio float64, width int) string {
	ratio = math.Max(0, math.Min(1, ratio))
	filled := int(math.Round(ratio * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// ProgressColor blends from red to green as ratio approaches 1.
func ProgressColor(ratio float64) colorful.Color {
	ratio = math.Max(0, math.Min(1, ratio))
	return progressFrom.BlendLab(progressTo, ratio).Clamped()
}

// Progress prints the completion bar of the current version.
func (pp *PrettyPrint) Progress(ratio float64) {
	profile := termenv.Ascii
	if !color.NoColor {
		profile = termenv.ColorProfile()
	}
	bar := profile.String(ProgressBar(ratio, progressWidth)).
		Foreground(profile.Color(ProgressColor(ratio).Hex()))
	_, _ = fmt.Fprintf(pp.out(), "  %s %3.0f%%\n", bar, ratio*100)
}
