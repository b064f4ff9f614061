// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input implements the per-frame input state shared between a
platform event layer and an immediate-mode GUI.

A [State] accumulates key, mouse, text and gamepad input as it
arrives, at any time during a frame. Once per frame the GUI side reads
the state and calls [State.ClearUpdateState]:

	s := input.NewState()
	// Platform callbacks:
	s.Queue(key.Event{Name: "A", State: key.Press})
	s.AddCharacter('a')
	// Frame:
	keys, r := s.Keys(), s.KeysUpdateRange()
	for i := r.Min; i < r.Max; i++ {
		gui.KeysDown[i] = keys[i]
	}
	s.ClearUpdateState()

# Update ranges

The key and mouse button arrays persist across frames: a key stays
down until its release arrives. Each array has an update [Range]
bounding the indices written since the last clear, so readers copy
only that slice. A new State and a state after one of the Reset
methods report the full array as updated; a state right after
ClearUpdateState reports an empty range.

# Transient state

Characters, the mouse wheel delta and the navigation inputs only
live for one frame and are discarded by ClearUpdateState.

# Threads

A State is not safe for concurrent use. Producers running on their own
goroutine should pass events to the goroutine that drives frames.
*/
package input
