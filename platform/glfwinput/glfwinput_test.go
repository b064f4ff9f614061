// SPDX-License-Identifier: Unlicense OR MIT

package glfwinput

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"gioui.org/x/imgui/f32"
	"gioui.org/x/imgui/io/gamepad"
	"gioui.org/x/imgui/io/input"
	"gioui.org/x/imgui/io/key"
	"gioui.org/x/imgui/io/nav"
)

func TestKeyName(t *testing.T) {
	for _, tc := range []struct {
		k    glfw.Key
		name key.Name
		ok   bool
	}{
		{glfw.KeyA, "A", true},
		{glfw.KeyZ, "Z", true},
		{glfw.Key7, "7", true},
		{glfw.KeyF1, key.NameF1, true},
		{glfw.KeyF12, key.NameF12, true},
		{glfw.KeyF13, "", false},
		{glfw.KeyRightControl, key.NameCtrl, true},
		{glfw.KeyKPEnter, key.NameEnter, true},
		{glfw.KeyPrintScreen, "", false},
	} {
		n, ok := keyName(tc.k)
		if n != tc.name || ok != tc.ok {
			t.Errorf("keyName(%d) = %q, %v; want %q, %v", tc.k, n, ok, tc.name, tc.ok)
		}
	}
	// Every mapped name must resolve to a key index.
	for k, n := range specialKeys {
		if !key.IndexOf(n).Valid() {
			t.Errorf("GLFW key %d maps to unrecognized name %q", k, n)
		}
	}
}

func TestModifiers(t *testing.T) {
	got := modifiers(glfw.ModControl | glfw.ModAlt)
	if want := key.ModCtrl | key.ModAlt; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestKeyCallbacks(t *testing.T) {
	s := input.NewState()
	src := newSource(s)
	s.ClearUpdateState()
	src.onKey(glfw.KeyS, glfw.Press, glfw.ModControl)
	idx := key.IndexOf("S")
	if !s.Keys()[idx] || !s.IsControlDown() {
		t.Errorf("press: key=%v ctrl=%v", s.Keys()[idx], s.IsControlDown())
	}
	src.onKey(glfw.KeyS, glfw.Repeat, glfw.ModControl)
	if !s.Keys()[idx] {
		t.Errorf("repeat released the key")
	}
	src.onKey(glfw.KeyS, glfw.Release, 0)
	if s.Keys()[idx] || s.IsControlDown() {
		t.Errorf("release left key or ctrl down")
	}
	src.onKey(glfw.KeyPrintScreen, glfw.Press, 0)
	if got := s.Dropped().Keys; got != 0 {
		t.Errorf("unmapped GLFW key reached the state: %d drops", got)
	}
}

func TestModifierPair(t *testing.T) {
	s := input.NewState()
	src := newSource(s)
	ctrl := key.IndexOf(key.NameCtrl)
	src.onKey(glfw.KeyLeftControl, glfw.Press, 0)
	src.onKey(glfw.KeyRightControl, glfw.Press, glfw.ModControl)
	src.onKey(glfw.KeyLeftControl, glfw.Release, glfw.ModControl)
	if !s.IsControlDown() || !s.Keys()[ctrl] {
		t.Errorf("releasing one of two ctrl keys: ctrl=%v key=%v", s.IsControlDown(), s.Keys()[ctrl])
	}
	src.onKey(glfw.KeyRightControl, glfw.Release, 0)
	if s.IsControlDown() || s.Keys()[ctrl] {
		t.Errorf("releasing both ctrl keys: ctrl=%v key=%v", s.IsControlDown(), s.Keys()[ctrl])
	}

	src.onKey(glfw.KeyLeftShift, glfw.Press, 0)
	src.onFocus(false)
	src.onKey(glfw.KeyRightShift, glfw.Press, 0)
	src.onKey(glfw.KeyRightShift, glfw.Release, 0)
	if s.IsShiftDown() {
		t.Errorf("shift held across focus loss")
	}
}

func TestMouseCallbacks(t *testing.T) {
	s := input.NewState()
	src := newSource(s)
	src.onCursorEnter(true)
	src.onCursorPos(10.5, 20)
	src.onMouseButton(glfw.MouseButtonRight, glfw.Press, 0)
	src.onScroll(0, 1)
	if !s.HasMousePointer() {
		t.Errorf("cursor enter not reported")
	}
	if got := s.MousePosition(); got != f32.Pt(10.5, 20) {
		t.Errorf("position: got %v", got)
	}
	if !s.MouseButtons()[1] {
		t.Errorf("right button not down")
	}
	if got := s.MouseWheelDelta(); got != 1 {
		t.Errorf("wheel: got %v, want 1", got)
	}
	src.onMouseButton(glfw.MouseButtonRight, glfw.Release, 0)
	if s.MouseButtons()[1] {
		t.Errorf("right button still down")
	}
}

func TestFocusLoss(t *testing.T) {
	s := input.NewState()
	src := newSource(s)
	src.onKey(glfw.KeyW, glfw.Press, 0)
	src.onMouseButton(glfw.MouseButtonLeft, glfw.Press, 0)
	src.onFocus(false)
	if s.Keys()[key.IndexOf("W")] || s.MouseButtons()[0] {
		t.Errorf("focus loss left input down")
	}
	if src.btns != 0 {
		t.Errorf("focus loss kept button set %v", src.btns)
	}
}

func TestGamepadEvents(t *testing.T) {
	s := input.NewState()
	src := newSource(s, WithTriggerThreshold(0.8), WithDeadZone(0.2))
	var gs glfw.GamepadState
	gs.Buttons[glfw.ButtonA] = glfw.Press
	gs.Axes[glfw.AxisLeftX] = 0.1
	gs.Axes[glfw.AxisLeftY] = -0.5
	gs.Axes[glfw.AxisLeftTrigger] = 1
	gs.Axes[glfw.AxisRightTrigger] = 0.2
	s.Queue(src.gamepadEvents(&gs)...)
	in := s.NavigationInputs()
	if in[nav.Activate] != 1 {
		t.Errorf("A not mapped to activate")
	}
	if in[nav.LStickUp] != 0.5 {
		t.Errorf("stick up: got %v, want 0.5", in[nav.LStickUp])
	}
	if in[nav.LStickLeft] != 0 || in[nav.LStickRight] != 0 {
		t.Errorf("dead zone ignored: %v %v", in[nav.LStickLeft], in[nav.LStickRight])
	}
	if in[nav.TweakSlow] != 1 || in[nav.TweakFast] != 0 {
		t.Errorf("triggers: slow=%v fast=%v", in[nav.TweakSlow], in[nav.TweakFast])
	}
}

func TestGamepadTriggerAxes(t *testing.T) {
	m := new(gamepad.Mapping)
	m.BindAxis(gamepad.LeftTriggerAxis, nav.TweakSlow, nav.TweakFast)
	m.BindAxis(gamepad.RightY, nav.LStickUp, nav.LStickDown)
	s := input.NewState(input.WithGamepadMapping(m))
	src := newSource(s)
	var gs glfw.GamepadState
	gs.Axes[glfw.AxisLeftTrigger] = 0
	gs.Axes[glfw.AxisRightTrigger] = -1
	gs.Axes[glfw.AxisRightY] = 0.5
	s.Queue(src.gamepadEvents(&gs)...)
	in := s.NavigationInputs()
	if in[nav.TweakSlow] != 0.5 || in[nav.TweakFast] != 0 {
		t.Errorf("left trigger axis: slow=%v fast=%v, want 0.5 0", in[nav.TweakSlow], in[nav.TweakFast])
	}
	if in[nav.LStickDown] != 0.5 || in[nav.LStickUp] != 0 {
		t.Errorf("right stick y: down=%v up=%v, want 0.5 0", in[nav.LStickDown], in[nav.LStickUp])
	}
}
