// SPDX-License-Identifier: Unlicense OR MIT

/*
Package bridge copies an input state into the IO block of an
immediate-mode GUI once per frame.

A typical frame loop:

	st := input.NewState()
	io := bridge.NewIO()
	for {
		platform.Poll() // feeds st
		bridge.NewFrame(io, st)
		gui.NewFrame(io)
		...
	}
*/
package bridge

import (
	"gioui.org/x/imgui/f32"
	"gioui.org/x/imgui/io/input"
	"gioui.org/x/imgui/io/key"
	"gioui.org/x/imgui/io/nav"
	"gioui.org/x/imgui/io/pointer"
)

// ConfigFlags are the configuration flags of an IO.
type ConfigFlags uint32

// BackendFlags describe the capabilities of the platform backend.
type BackendFlags uint32

const (
	// ConfigNavEnableKeyboard enables keyboard navigation.
	ConfigNavEnableKeyboard ConfigFlags = 1 << iota
	// ConfigNavEnableGamepad enables gamepad navigation.
	ConfigNavEnableGamepad
)

const (
	// BackendHasGamepad is set while a gamepad is attached.
	BackendHasGamepad BackendFlags = 1 << iota
)

// IO is the input part of a GUI's per-frame IO block.
type IO struct {
	// KeysDown is indexed by key.Index.
	KeysDown [key.NumKeys]bool
	// KeyMap maps the named keys the GUI handles itself to
	// indices in KeysDown.
	KeyMap [NumKeys]key.Index
	// MouseDown is indexed by pointer.Index.
	MouseDown [pointer.NumButtons]bool
	MousePos  f32.Point
	// MouseWheel is the wheel movement of the current frame.
	MouseWheel float32
	// MouseDrawCursor requests a software cursor.
	MouseDrawCursor bool
	KeyCtrl         bool
	KeyShift        bool
	KeyAlt          bool
	NavInputs       nav.Inputs
	ConfigFlags     ConfigFlags
	BackendFlags    BackendFlags
	// InputCharacters are the characters typed during the frame.
	InputCharacters []rune
}

// NewIO returns an IO with the key map filled in.
func NewIO() *IO {
	io := new(IO)
	io.KeyMap = DefaultKeyMap()
	return io
}

// Apply copies the input of s to io. Only the updated parts of the
// key and mouse button arrays are copied.
func Apply(io *IO, s *input.State) {
	io.MouseDrawCursor = s.HasMousePointer()
	io.MousePos = s.MousePosition()
	io.MouseWheel = s.MouseWheelDelta()

	io.KeyCtrl = s.IsControlDown()
	io.KeyShift = s.IsShiftDown()
	io.KeyAlt = s.IsAltDown()

	if r := s.KeysUpdateRange(); !r.IsEmpty() {
		keys := s.Keys()
		copy(io.KeysDown[r.Min:r.Max], keys[r.Min:r.Max])
	}
	if r := s.MouseButtonsUpdateRange(); !r.IsEmpty() {
		btns := s.MouseButtons()
		copy(io.MouseDown[r.Min:r.Max], btns[r.Min:r.Max])
	}

	chars := s.Characters()
	io.InputCharacters = append(io.InputCharacters[:0], chars[:s.CharactersNum()]...)

	io.ConfigFlags = setFlag(io.ConfigFlags, ConfigNavEnableKeyboard, s.IsKeyboardNavigationEnabled())
	io.ConfigFlags = setFlag(io.ConfigFlags, ConfigNavEnableGamepad, s.IsGamepadNavigationEnabled())
	io.BackendFlags = setFlag(io.BackendFlags, BackendHasGamepad, s.HasGamepad())

	if s.IsGamepadNavigationEnabled() && s.HasGamepad() {
		io.NavInputs = s.NavigationInputs()
	} else {
		io.NavInputs = nav.Inputs{}
	}
}

// NewFrame applies s to io and clears the per-frame state of s.
func NewFrame(io *IO, s *input.State) {
	Apply(io, s)
	s.ClearUpdateState()
}

func setFlag[F ~uint32](flags, f F, on bool) F {
	if on {
		return flags | f
	}
	return flags &^ f
}
