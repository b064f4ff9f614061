// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer implements pointer events and maps mouse buttons to
the dense indices of an input state's mouse button array.

# Buttons

A mouse event carries the full set of buttons held down after the
event, not the single button that changed. Consumers that track
individual buttons compare the set with their own state:

	for i := pointer.Index(0); i < pointer.NumButtons; i++ {
		down := e.Buttons.Contain(i.Button())
		...
	}

# Indices

Button indices follow the order used by immediate-mode GUI libraries
for their mouse arrays: primary (left), secondary (right), tertiary
(middle), then the two navigation buttons.
*/
package pointer
