package journal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidVersion is returned when a version string is not major.minor.patch.
	ErrInvalidVersion = errors.New("journal: invalid version")
	// ErrInvalidPart is returned for a version part other than major, minor or patch.
	ErrInvalidPart = errors.New("journal: invalid version part")
)

// Version is a major, minor, patch triple. It is stored as a three element
// JSON array.
type Version [3]int

// Part selects one component of a Version.
type Part int

const (
	Major Part = iota
	Minor
	Patch
)

// Parts lists the accepted part names in order of significance.
func Parts() []string {
	return []string{"major", "minor", "patch"}
}

// ParsePart maps major, minor or patch to a Part.
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return Major, nil
	case "minor":
		return Minor, nil
	case "patch":
		return Patch, nil
	}
	return 0, fmt.Errorf("%w: %q, expected one of %s", ErrInvalidPart, s, strings.Join(Parts(), ", "))
}

func (p Part) String() string {
	if p < Major || p > Patch {
		return fmt.Sprintf("Part(%d)", int(p))
	}
	return Parts()[p]
}

// ParseVersion reads "major.minor.patch", with an optional leading "v".
func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "v")
	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	var v Version
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || strings.ContainsAny(p, "+-") {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		v[i] = n
	}
	return v, nil
}

// MustParseVersion is ParseVersion for known-good literals.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}

// Bump increments the selected part and zeroes every less significant part.
func (v Version) Bump(p Part) Version {
	next := v
	next[p]++
	for i := int(p) + 1; i < len(next); i++ {
		next[i] = 0
	}
	return next
}

// Compare orders versions by major, then minor, then patch.
func (v Version) Compare(o Version) int {
	for i := range v {
		switch {
		case v[i] < o[i]:
			return -1
		case v[i] > o[i]:
			return 1
		}
	}
	return 0
}

// compareVersionKeys orders two version strings numerically. Keys that do
// not parse sort after the ones that do, by plain string order.
func compareVersionKeys(a, b string) int {
	va, errA := ParseVersion(a)
	vb, errB := ParseVersion(b)
	switch {
	case errA == nil && errB == nil:
		return va.Compare(vb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}
