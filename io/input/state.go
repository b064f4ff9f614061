// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"gioui.org/x/imgui/f32"
	"gioui.org/x/imgui/io/gamepad"
	"gioui.org/x/imgui/io/key"
	"gioui.org/x/imgui/io/nav"
	"gioui.org/x/imgui/io/pointer"
)

// MaxCharacters is the number of characters buffered per frame.
// Characters beyond that are dropped.
const MaxCharacters = 16

// GamepadMapping resolves gamepad controls to navigation inputs.
// It is implemented by *gamepad.Mapping.
type GamepadMapping interface {
	Button(b gamepad.Button) (nav.Input, bool)
	Axis(a gamepad.Axis) (pos, neg nav.Input, ok bool)
}

// Option configures a State.
type Option func(s *State)

// Drops counts input discarded by a State since it was created.
type Drops struct {
	// Characters added to a full character buffer.
	Characters int
	// Keys with an invalid index.
	Keys int
	// Mouse buttons with an invalid index.
	Buttons int
	// Gamepad controls without a navigation binding.
	Gamepad int
}

// State collects input for a frame. Use NewState to create a State.
type State struct {
	mapping GamepadMapping

	keysDown    [key.NumKeys]bool
	mouseDown   [pointer.NumButtons]bool
	mousePos    f32.Point
	hasPointer  bool
	ctrl        bool
	shift       bool
	alt         bool
	keyboardNav bool
	gamepadNav  bool
	hasGamepad  bool

	// Fields below are per frame and cleared by ClearUpdateState.
	chars       [MaxCharacters]rune
	nchars      int
	keysUpdate  Range
	mouseUpdate Range
	wheel       float32
	navInputs   nav.Inputs

	drops Drops
}

// WithGamepadMapping replaces the default gamepad navigation mapping.
// A nil mapping disables gamepad navigation input.
func WithGamepadMapping(m GamepadMapping) Option {
	return func(s *State) {
		if m == nil {
			m = new(gamepad.Mapping)
		}
		s.mapping = m
	}
}

// NewState returns an empty State with both update ranges covering
// their whole arrays, so the first frame copies everything.
func NewState(opts ...Option) *State {
	s := &State{mapping: gamepad.DefaultMapping()}
	for _, o := range opts {
		o(s)
	}
	s.ResetState()
	return s
}

// Characters returns the character buffer. Only the first
// CharactersNum entries are valid.
func (s *State) Characters() [MaxCharacters]rune {
	return s.chars
}

// CharactersNum returns the number of characters added this frame.
func (s *State) CharactersNum() int {
	return s.nchars
}

// AddCharacter appends ch to the character buffer, or drops it if the
// buffer is full.
func (s *State) AddCharacter(ch rune) {
	if s.nchars >= MaxCharacters {
		s.drops.Characters++
		return
	}
	s.chars[s.nchars] = ch
	s.nchars++
}

// Keys returns the down state of every key.
func (s *State) Keys() [key.NumKeys]bool {
	return s.keysDown
}

// KeysUpdateRange returns the, possibly empty, range of key indices
// written since the last clear.
func (s *State) KeysUpdateRange() Range {
	return s.keysUpdate
}

// SetKeyDown sets the state of the key at i and adds i to the keys
// update range. Invalid indices are ignored.
func (s *State) SetKeyDown(i key.Index, down bool) {
	if !i.Valid() {
		s.drops.Keys++
		return
	}
	s.keysDown[i] = down
	s.keysUpdate = s.keysUpdate.Expand(int(i))
}

// SetKey is like SetKeyDown for a key name.
func (s *State) SetKey(n key.Name, down bool) {
	s.SetKeyDown(key.IndexOf(n), down)
}

// MouseButtons returns the down state of every mouse button.
func (s *State) MouseButtons() [pointer.NumButtons]bool {
	return s.mouseDown
}

// MouseButtonsUpdateRange returns the, possibly empty, range of button
// indices written since the last clear.
func (s *State) MouseButtonsUpdateRange() Range {
	return s.mouseUpdate
}

// SetMouseDown sets the state of the button at i and adds i to the
// mouse buttons update range. Invalid indices are ignored.
func (s *State) SetMouseDown(i pointer.Index, down bool) {
	if !i.Valid() {
		s.drops.Buttons++
		return
	}
	s.mouseDown[i] = down
	s.mouseUpdate = s.mouseUpdate.Expand(int(i))
}

// SetMouseButton is like SetMouseDown for a single button.
func (s *State) SetMouseButton(b pointer.Buttons, down bool) {
	s.SetMouseDown(pointer.IndexOf(b), down)
}

// MouseWheelDelta returns the wheel movement accumulated this frame.
func (s *State) MouseWheelDelta() float32 {
	return s.wheel
}

// AddMouseWheelDelta accumulates wheel movement.
func (s *State) AddMouseWheelDelta(delta float32) {
	s.wheel += delta
}

// MousePosition returns the last reported mouse position.
func (s *State) MousePosition() f32.Point {
	return s.mousePos
}

func (s *State) SetMousePosition(p f32.Point) {
	s.mousePos = p
}

// HasMousePointer reports whether a mouse pointer is over the window.
func (s *State) HasMousePointer() bool {
	return s.hasPointer
}

func (s *State) SetMousePointer(present bool) {
	s.hasPointer = present
}

func (s *State) IsControlDown() bool { return s.ctrl }
func (s *State) IsShiftDown() bool   { return s.shift }
func (s *State) IsAltDown() bool     { return s.alt }

func (s *State) SetControlDown(down bool) { s.ctrl = down }
func (s *State) SetShiftDown(down bool)   { s.shift = down }
func (s *State) SetAltDown(down bool)     { s.alt = down }

// NavigationInputs returns the navigation inputs set this frame.
func (s *State) NavigationInputs() nav.Inputs {
	return s.navInputs
}

// SetGamepadNavigationKey sets the navigation input bound to b to 1
// or 0. Unbound buttons are ignored.
func (s *State) SetGamepadNavigationKey(b gamepad.Button, down bool) {
	in, ok := s.mapping.Button(b)
	if !ok || !in.Valid() {
		s.drops.Gamepad++
		return
	}
	s.navInputs.Set(in, down)
}

// SetGamepadNavigationAxis splits v between the navigation inputs
// bound to the two directions of a. Unbound axes are ignored.
func (s *State) SetGamepadNavigationAxis(a gamepad.Axis, v float32) {
	pos, neg, ok := s.mapping.Axis(a)
	if !ok || !pos.Valid() || !neg.Valid() {
		s.drops.Gamepad++
		return
	}
	s.navInputs.SetAxis(pos, neg, v)
}

func (s *State) IsKeyboardNavigationEnabled() bool { return s.keyboardNav }
func (s *State) IsGamepadNavigationEnabled() bool  { return s.gamepadNav }

// HasGamepad reports whether a gamepad is attached.
func (s *State) HasGamepad() bool { return s.hasGamepad }

func (s *State) SetKeyboardNavigationEnabled(enabled bool) { s.keyboardNav = enabled }
func (s *State) SetGamepadNavigationEnabled(enabled bool)  { s.gamepadNav = enabled }
func (s *State) SetGamepad(attached bool)                  { s.hasGamepad = attached }

// Dropped returns the count of input discarded so far.
func (s *State) Dropped() Drops {
	return s.drops
}

// ClearUpdateState discards the per-frame state: characters, wheel
// delta, navigation inputs and both update ranges, which become empty.
// Key and button states, modifiers, mouse position and the mode flags
// are kept.
func (s *State) ClearUpdateState() {
	s.clearCharacters()
	s.keysUpdate = Range{}
	s.mouseUpdate = Range{}
	s.wheel = 0
	s.navInputs.Clear()
}

// ResetState resets the keyboard, mouse and navigation state.
func (s *State) ResetState() { s.reset(true, true, true) }

// ResetKeyboardState releases every key and modifier, drops buffered
// characters and marks the whole key array as updated.
func (s *State) ResetKeyboardState() { s.reset(true, false, false) }

// ResetMouseState releases every button, zeroes the position and wheel
// delta and marks the whole button array as updated.
func (s *State) ResetMouseState() { s.reset(false, true, false) }

// ResetNavigationState zeroes the navigation inputs.
func (s *State) ResetNavigationState() { s.reset(false, false, true) }

func (s *State) reset(keyboard, mouse, navigation bool) {
	if keyboard {
		s.clearCharacters()
		s.clearKeys()
		s.clearModifiers()
	}
	if mouse {
		s.clearMouseButtons()
		s.clearMouseAnalog()
	}
	if navigation {
		s.navInputs.Clear()
	}
}

func (s *State) clearCharacters() {
	s.chars = [MaxCharacters]rune{}
	s.nchars = 0
}

func (s *State) clearKeys() {
	s.keysDown = [key.NumKeys]bool{}
	s.keysUpdate = FullRange(key.NumKeys)
}

func (s *State) clearModifiers() {
	s.ctrl, s.shift, s.alt = false, false, false
}

func (s *State) clearMouseButtons() {
	s.mouseDown = [pointer.NumButtons]bool{}
	s.mouseUpdate = FullRange(pointer.NumButtons)
}

func (s *State) clearMouseAnalog() {
	s.mousePos = f32.Point{}
	s.wheel = 0
}
