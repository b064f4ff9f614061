// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the marker type shared by every input event
// fed into an input state.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}
