// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"gioui.org/x/imgui/io/event"
	"gioui.org/x/imgui/io/gamepad"
	"gioui.org/x/imgui/io/key"
	"gioui.org/x/imgui/io/pointer"
)

// Queue applies events to the state. It understands the events of
// packages key, pointer and gamepad; other events are ignored.
//
// Key events update the key and the modifier state. Losing keyboard
// focus releases all keys. Pointer events move the mouse, and press,
// release and scroll events update the buttons and wheel. A pointer
// Cancel releases all buttons.
func (s *State) Queue(events ...event.Event) {
	for _, e := range events {
		switch e := e.(type) {
		case key.Event:
			s.queueKey(e)
		case key.EditEvent:
			for _, r := range e.Text {
				s.AddCharacter(r)
			}
		case key.FocusEvent:
			if !e.Focus {
				s.ResetKeyboardState()
			}
		case pointer.Event:
			s.queuePointer(e)
		case gamepad.ButtonEvent:
			s.SetGamepadNavigationKey(e.Button, e.Pressed)
		case gamepad.AxisEvent:
			s.SetGamepadNavigationAxis(e.Axis, e.Value)
		case gamepad.ConnectEvent:
			s.SetGamepad(e.Connected)
			if !e.Connected {
				s.ResetNavigationState()
			}
		}
	}
}

func (s *State) queueKey(e key.Event) {
	down := e.State == key.Press
	s.setModifiers(e.Modifiers)
	// Some platforms report a modifier key's own event without the
	// modifier in the set.
	switch e.Name {
	case key.NameCtrl:
		s.ctrl = down
	case key.NameShift:
		s.shift = down
	case key.NameAlt:
		s.alt = down
	}
	s.SetKey(e.Name, down)
}

func (s *State) setModifiers(m key.Modifiers) {
	s.ctrl = m.Contain(key.ModCtrl)
	s.shift = m.Contain(key.ModShift)
	s.alt = m.Contain(key.ModAlt)
}

func (s *State) queuePointer(e pointer.Event) {
	if e.Kind == pointer.Cancel {
		s.ResetMouseState()
		return
	}
	s.SetMousePosition(e.Position)
	switch e.Kind {
	case pointer.Press, pointer.Release:
		s.setModifiers(e.Modifiers)
		btns := e.Buttons
		if e.Source == pointer.Touch {
			btns = 0
			if e.Kind == pointer.Press {
				btns = pointer.ButtonPrimary
			}
		}
		s.syncButtons(btns)
	case pointer.Scroll:
		s.AddMouseWheelDelta(-e.Scroll.Y)
	case pointer.Enter:
		s.SetMousePointer(true)
	case pointer.Leave:
		s.SetMousePointer(false)
	}
}

// syncButtons updates the buttons whose state differs from btns.
func (s *State) syncButtons(btns pointer.Buttons) {
	for i := pointer.Index(0); i < pointer.NumButtons; i++ {
		down := btns.Contain(i.Button())
		if down != s.mouseDown[i] {
			s.SetMouseDown(i, down)
		}
	}
}
