// Package play defines the extraction pipeline's sole durable output — a
// Play, five white-ball numbers plus a Powerball — and the validator that
// every extraction path (template-matching or textual fallback) funnels
// through before a candidate is accepted (§4.8).
package play

import (
	"errors"
	"sort"
)

// Play is one validated ticket row.
type Play struct {
	White     [5]int
	Powerball int
}

// Validation errors, mirroring the teacher's sentinel-error convention
// (codec/errors.go: var Err... = errors.New(...), wrapped at call sites
// with fmt.Errorf when context is needed).
var (
	ErrWrongWhiteCount  = errors.New("play: white must have exactly five numbers")
	ErrWhiteOutOfRange  = errors.New("play: white number out of range [1,69]")
	ErrWhiteNotDistinct = errors.New("play: white numbers must be distinct")
	ErrPowerballRange   = errors.New("play: powerball out of range [1,26]")
)

// Validate enforces §4.8: five distinct white-ball entries in [1,69] and a
// Powerball in [1,26]. On success it returns a new Play with White sorted
// ascending; validation never mutates its argument. Validate is idempotent:
// validating an already-validated Play returns an equal Play and no error.
func Validate(white []int, powerball int) (Play, error) {
	if len(white) != 5 {
		return Play{}, ErrWrongWhiteCount
	}

	seen := make(map[int]bool, 5)
	sorted := append([]int(nil), white...)
	sort.Ints(sorted)

	for _, w := range sorted {
		if w < 1 || w > 69 {
			return Play{}, ErrWhiteOutOfRange
		}
		if seen[w] {
			return Play{}, ErrWhiteNotDistinct
		}
		seen[w] = true
	}

	if powerball < 1 || powerball > 26 {
		return Play{}, ErrPowerballRange
	}

	p := Play{Powerball: powerball}
	copy(p.White[:], sorted)
	return p, nil
}
