package options

import (
	"tableflip.dev/jot/pkg/printers"
)

func Wrap80(text string) string {
	return Wrap(text, 80)
}

func Wrap(text string, width int) string {
	return printers.Wrap(text, width)
}
