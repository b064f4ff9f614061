// SPDX-License-Identifier: Unlicense OR MIT

// Package glfwinput feeds GLFW window and gamepad input into an
// input.State.
//
// GLFW delivers callbacks from glfw.PollEvents on the main thread, so
// the State must be driven from the same thread.
package glfwinput

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"gioui.org/x/imgui/f32"
	"gioui.org/x/imgui/io/event"
	"gioui.org/x/imgui/io/gamepad"
	"gioui.org/x/imgui/io/input"
	"gioui.org/x/imgui/io/key"
	"gioui.org/x/imgui/io/pointer"
)

// Source translates the callbacks of one window.
type Source struct {
	state  *input.State
	window *glfw.Window

	joystick  glfw.Joystick
	threshold float32
	deadZone  float32

	btns       pointer.Buttons
	lastPos    f32.Point
	hasGamepad bool
	// held is the set of modifier keys down. Left and right
	// modifiers share a name.
	held map[glfw.Key]bool
}

// Option configures a Source.
type Option func(src *Source)

// WithJoystick selects the joystick polled for gamepad input. The
// default is glfw.Joystick1.
func WithJoystick(j glfw.Joystick) Option {
	return func(src *Source) {
		src.joystick = j
	}
}

// WithTriggerThreshold sets how far, in [0, 1], a trigger must be
// pulled to count as pressed. The default is 0.5.
func WithTriggerThreshold(t float32) Option {
	return func(src *Source) {
		src.threshold = t
	}
}

// WithDeadZone sets the stick magnitude below which stick input is
// ignored. The default is 0.15.
func WithDeadZone(d float32) Option {
	return func(src *Source) {
		src.deadZone = d
	}
}

// Attach registers input callbacks on w that feed s. It replaces any
// input callbacks already registered on w.
func Attach(w *glfw.Window, s *input.State, opts ...Option) *Source {
	src := newSource(s, opts...)
	src.window = w
	w.SetKeyCallback(func(w *glfw.Window, k glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		src.onKey(k, action, mods)
	})
	w.SetCharCallback(func(w *glfw.Window, char rune) {
		src.state.AddCharacter(char)
	})
	w.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		src.onMouseButton(button, action, mods)
	})
	w.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		src.onCursorPos(xpos, ypos)
	})
	w.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		src.onScroll(xoff, yoff)
	})
	w.SetCursorEnterCallback(func(w *glfw.Window, entered bool) {
		src.onCursorEnter(entered)
	})
	w.SetFocusCallback(func(w *glfw.Window, focused bool) {
		src.onFocus(focused)
	})
	return src
}

func newSource(s *input.State, opts ...Option) *Source {
	src := &Source{
		state:     s,
		joystick:  glfw.Joystick1,
		threshold: 0.5,
		deadZone:  0.15,
		held:      make(map[glfw.Key]bool),
	}
	for _, o := range opts {
		o(src)
	}
	return src
}

// Detach removes the callbacks registered by Attach.
func (src *Source) Detach() {
	w := src.window
	if w == nil {
		return
	}
	w.SetKeyCallback(nil)
	w.SetCharCallback(nil)
	w.SetMouseButtonCallback(nil)
	w.SetCursorPosCallback(nil)
	w.SetScrollCallback(nil)
	w.SetCursorEnterCallback(nil)
	w.SetFocusCallback(nil)
	src.window = nil
}

// Poll reads the joystick and queues the gamepad state. Call it once
// per frame after glfw.PollEvents; navigation inputs only last for one
// frame.
func (src *Source) Poll() {
	present := src.joystick.IsGamepad()
	if present != src.hasGamepad {
		src.hasGamepad = present
		src.state.Queue(gamepad.ConnectEvent{Connected: present})
	}
	if !present {
		return
	}
	if gs := src.joystick.GetGamepadState(); gs != nil {
		src.state.Queue(src.gamepadEvents(gs)...)
	}
}

func (src *Source) onKey(k glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	n, ok := keyName(k)
	if !ok {
		return
	}
	st := key.Press
	if action == glfw.Release {
		st = key.Release
	}
	if isModifier(n) {
		if st == key.Release {
			delete(src.held, k)
			if src.nameHeld(n) {
				return
			}
		} else {
			src.held[k] = true
		}
	}
	src.state.Queue(key.Event{Name: n, Modifiers: modifiers(mods), State: st})
}

// nameHeld reports whether any held key is named n.
func (src *Source) nameHeld(n key.Name) bool {
	for k := range src.held {
		if specialKeys[k] == n {
			return true
		}
	}
	return false
}

func (src *Source) onMouseButton(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	btn, ok := mouseButtons[button]
	if !ok {
		return
	}
	var typ pointer.Kind
	switch action {
	case glfw.Release:
		typ = pointer.Release
		src.btns &^= btn
	case glfw.Press:
		typ = pointer.Press
		src.btns |= btn
	default:
		return
	}
	src.state.Queue(pointer.Event{
		Kind:      typ,
		Source:    pointer.Mouse,
		Position:  src.lastPos,
		Buttons:   src.btns,
		Modifiers: modifiers(mods),
	})
}

func (src *Source) onCursorPos(xpos, ypos float64) {
	src.lastPos = f32.Point{X: float32(xpos), Y: float32(ypos)}
	kind := pointer.Move
	if src.btns != 0 {
		kind = pointer.Drag
	}
	src.state.Queue(pointer.Event{
		Kind:     kind,
		Source:   pointer.Mouse,
		Position: src.lastPos,
		Buttons:  src.btns,
	})
}

func (src *Source) onScroll(xoff, yoff float64) {
	// GLFW reports wheel movement away from the user as positive,
	// which scrolls content towards its start.
	src.state.Queue(pointer.Event{
		Kind:     pointer.Scroll,
		Source:   pointer.Mouse,
		Position: src.lastPos,
		Buttons:  src.btns,
		Scroll:   f32.Point{X: float32(-xoff), Y: float32(-yoff)},
	})
}

func (src *Source) onCursorEnter(entered bool) {
	kind := pointer.Leave
	if entered {
		kind = pointer.Enter
	}
	src.state.Queue(pointer.Event{
		Kind:     kind,
		Source:   pointer.Mouse,
		Position: src.lastPos,
		Buttons:  src.btns,
	})
}

func (src *Source) onFocus(focused bool) {
	if focused {
		return
	}
	// Releases are not delivered to unfocused windows.
	src.btns = 0
	clear(src.held)
	src.state.Queue(
		key.FocusEvent{Focus: false},
		pointer.Event{Kind: pointer.Cancel, Source: pointer.Mouse},
	)
}

func (src *Source) gamepadEvents(gs *glfw.GamepadState) []event.Event {
	var evts []event.Event
	for gb, b := range gamepadButtons {
		if gs.Buttons[gb] == glfw.Press {
			evts = append(evts, gamepad.ButtonEvent{Button: b, Pressed: true})
		}
	}
	triggers := []struct {
		axis glfw.GamepadAxis
		btn  gamepad.Button
		a    gamepad.Axis
	}{
		{glfw.AxisLeftTrigger, gamepad.LeftTrigger, gamepad.LeftTriggerAxis},
		{glfw.AxisRightTrigger, gamepad.RightTrigger, gamepad.RightTriggerAxis},
	}
	for _, t := range triggers {
		// Triggers rest at -1.
		v := (gs.Axes[t.axis] + 1) / 2
		if v >= src.threshold {
			evts = append(evts, gamepad.ButtonEvent{Button: t.btn, Pressed: true})
		}
		if v >= src.deadZone {
			evts = append(evts, gamepad.AxisEvent{Axis: t.a, Value: v})
		}
	}
	sticks := []struct {
		axis glfw.GamepadAxis
		a    gamepad.Axis
		sign float32
	}{
		{glfw.AxisLeftX, gamepad.LeftX, 1},
		// GLFW's Y axes point down.
		{glfw.AxisLeftY, gamepad.LeftY, -1},
		{glfw.AxisRightX, gamepad.RightX, 1},
		{glfw.AxisRightY, gamepad.RightY, -1},
	}
	for _, s := range sticks {
		v := gs.Axes[s.axis] * s.sign
		if v > -src.deadZone && v < src.deadZone {
			continue
		}
		evts = append(evts, gamepad.AxisEvent{Axis: s.a, Value: v})
	}
	return evts
}
