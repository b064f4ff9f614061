// SPDX-License-Identifier: Unlicense OR MIT

package input

import "fmt"

// Range is the half-open index interval [Min, Max). A Range with
// Min >= Max is empty.
type Range struct {
	Min, Max int
}

// FullRange returns the range [0, n).
func FullRange(n int) Range {
	return Range{Min: 0, Max: n}
}

// IsEmpty reports whether r contains no indices.
func (r Range) IsEmpty() bool {
	return r.Min >= r.Max
}

// Len returns the number of indices in r.
func (r Range) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Max - r.Min
}

// Contains reports whether i is in r.
func (r Range) Contains(i int) bool {
	return r.Min <= i && i < r.Max
}

// Expand returns the smallest range containing both r and i.
func (r Range) Expand(i int) Range {
	if r.IsEmpty() {
		return Range{Min: i, Max: i + 1}
	}
	if i < r.Min {
		r.Min = i
	}
	if i >= r.Max {
		r.Max = i + 1
	}
	return r
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Min, r.Max)
}
