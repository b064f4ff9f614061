// SPDX-License-Identifier: Unlicense OR MIT

// Package nav defines the navigation inputs consumed by an
// immediate-mode GUI's gamepad and keyboard navigation mode.
package nav

import (
	"fmt"
)

// Input is a navigation input slot.
type Input int

// Inputs holds the analog value of every navigation input. Digital
// inputs are 0 or 1.
type Inputs [NumInputs]float32

const (
	// Activate, open, toggle or tweak a value.
	Activate Input = iota
	// Cancel, close or exit.
	Cancel
	// TextInput opens a text input or an on-screen keyboard.
	TextInput
	// Context menu or window movement.
	Menu
	DpadLeft
	DpadRight
	DpadUp
	DpadDown
	LStickLeft
	LStickRight
	LStickUp
	LStickDown
	// FocusPrev cycles to the previous window.
	FocusPrev
	// FocusNext cycles to the next window.
	FocusNext
	// TweakSlow slows down value tweaks.
	TweakSlow
	// TweakFast speeds up value tweaks.
	TweakFast

	// NumInputs is the number of navigation inputs.
	NumInputs = iota
)

var inputNames = [NumInputs]string{
	Activate:    "activate",
	Cancel:      "cancel",
	TextInput:   "input",
	Menu:        "menu",
	DpadLeft:    "dpad-left",
	DpadRight:   "dpad-right",
	DpadUp:      "dpad-up",
	DpadDown:    "dpad-down",
	LStickLeft:  "lstick-left",
	LStickRight: "lstick-right",
	LStickUp:    "lstick-up",
	LStickDown:  "lstick-down",
	FocusPrev:   "focus-prev",
	FocusNext:   "focus-next",
	TweakSlow:   "tweak-slow",
	TweakFast:   "tweak-fast",
}

// Valid reports whether in is a navigation input.
func (in Input) Valid() bool {
	return in >= 0 && in < NumInputs
}

func (in Input) String() string {
	if !in.Valid() {
		panic("invalid navigation input")
	}
	return inputNames[in]
}

// ParseInput returns the input with the given name, as returned by
// Input.String.
func ParseInput(name string) (Input, error) {
	for i, n := range inputNames {
		if n == name {
			return Input(i), nil
		}
	}
	return 0, fmt.Errorf("nav: unknown input %q", name)
}

// Set assigns the digital state of in.
func (in *Inputs) Set(i Input, down bool) {
	if down {
		in[i] = 1
	} else {
		in[i] = 0
	}
}

// SetAxis splits the signed value v between the slots for the
// positive and negative directions of an axis.
func (in *Inputs) SetAxis(pos, neg Input, v float32) {
	in[pos] = max(v, 0)
	in[neg] = max(-v, 0)
}

// Clear zeroes every input.
func (in *Inputs) Clear() {
	*in = Inputs{}
}
