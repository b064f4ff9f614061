// SPDX-License-Identifier: Unlicense OR MIT

package pointer

// Index is the position of a mouse button in a button array.
type Index int

// NoIndex is the index of buttons that are not recognized, and of
// button sets that contain more or less than one button.
const NoIndex Index = -1

// NumButtons is the number of recognized mouse buttons.
const NumButtons = 5

// IndexOf returns the index of the single button in b.
func IndexOf(b Buttons) Index {
	switch b {
	case ButtonPrimary:
		return 0
	case ButtonSecondary:
		return 1
	case ButtonTertiary:
		return 2
	case ButtonQuaternary:
		return 3
	case ButtonQuinary:
		return 4
	default:
		return NoIndex
	}
}

// Valid reports whether i refers to a recognized button.
func (i Index) Valid() bool {
	return i >= 0 && i < NumButtons
}

// Button returns the button at index i, or the empty set for an
// invalid index.
func (i Index) Button() Buttons {
	if !i.Valid() {
		return 0
	}
	return ButtonPrimary << uint(i)
}
