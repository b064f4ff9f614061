// SPDX-License-Identifier: Unlicense OR MIT

package gamepad

import (
	"golang.org/x/exp/maps"

	"gioui.org/x/imgui/io/nav"
)

// Mapping resolves gamepad controls to navigation inputs. The zero
// Mapping maps nothing.
type Mapping struct {
	buttons map[Button]nav.Input
	axes    map[Axis]AxisBinding
}

// AxisBinding is the pair of navigation inputs fed by the two
// directions of an axis.
type AxisBinding struct {
	Positive, Negative nav.Input
}

// DefaultMapping returns the standard layout: face buttons activate,
// cancel, edit and open menus; the d-pad and left stick move; the
// shoulders cycle windows and the triggers adjust tweak speed.
func DefaultMapping() *Mapping {
	m := new(Mapping)
	m.Bind(DpadLeft, nav.DpadLeft)
	m.Bind(DpadRight, nav.DpadRight)
	m.Bind(DpadUp, nav.DpadUp)
	m.Bind(DpadDown, nav.DpadDown)
	m.Bind(FaceBottom, nav.Activate)
	m.Bind(FaceRight, nav.Cancel)
	m.Bind(FaceTop, nav.TextInput)
	m.Bind(FaceLeft, nav.Menu)
	m.Bind(LeftShoulder, nav.FocusPrev)
	m.Bind(RightShoulder, nav.FocusNext)
	m.Bind(LeftTrigger, nav.TweakSlow)
	m.Bind(RightTrigger, nav.TweakFast)
	m.BindAxis(LeftX, nav.LStickRight, nav.LStickLeft)
	m.BindAxis(LeftY, nav.LStickUp, nav.LStickDown)
	return m
}

// Bind maps b to in, replacing any previous binding of b.
func (m *Mapping) Bind(b Button, in nav.Input) {
	if m.buttons == nil {
		m.buttons = make(map[Button]nav.Input)
	}
	m.buttons[b] = in
}

// BindAxis maps the positive and negative directions of a.
func (m *Mapping) BindAxis(a Axis, pos, neg nav.Input) {
	if m.axes == nil {
		m.axes = make(map[Axis]AxisBinding)
	}
	m.axes[a] = AxisBinding{Positive: pos, Negative: neg}
}

// Unbind removes the binding of b.
func (m *Mapping) Unbind(b Button) {
	delete(m.buttons, b)
}

// UnbindAxis removes the binding of a.
func (m *Mapping) UnbindAxis(a Axis) {
	delete(m.axes, a)
}

// Button returns the navigation input bound to b.
func (m *Mapping) Button(b Button) (nav.Input, bool) {
	in, ok := m.buttons[b]
	return in, ok
}

// Axis returns the navigation inputs bound to the positive and
// negative directions of a.
func (m *Mapping) Axis(a Axis) (pos, neg nav.Input, ok bool) {
	ab, ok := m.axes[a]
	return ab.Positive, ab.Negative, ok
}

// Clone returns an independent copy of m.
func (m *Mapping) Clone() *Mapping {
	return &Mapping{
		buttons: maps.Clone(m.buttons),
		axes:    maps.Clone(m.axes),
	}
}
