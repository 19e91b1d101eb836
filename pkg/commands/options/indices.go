package options

import (
	"strconv"
	"strings"
)

// ParseIndices reads task indices from arguments. Arguments that are not
// integers are dropped, the same as out of range indices are later on.
func ParseIndices(args []string) []int {
	out := make([]int, 0, len(args))
	for _, a := range args {
		for _, f := range strings.FieldsFunc(a, func(r rune) bool { return r == ',' || r == ' ' }) {
			if i, err := strconv.Atoi(f); err == nil {
				out = append(out, i)
			}
		}
	}
	return out
}
