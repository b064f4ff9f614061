// SPDX-License-Identifier: Unlicense OR MIT

package tcellinput

import (
	"strconv"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"gioui.org/x/imgui/f32"
	"gioui.org/x/imgui/io/key"
	"gioui.org/x/imgui/io/pointer"
)

// specialKeys must be consulted before the control letter range:
// tab, enter and backspace share their codes with Ctrl-I, Ctrl-M and
// Ctrl-H.
var specialKeys = map[tcell.Key]key.Name{
	tcell.KeyTab:        key.NameTab,
	tcell.KeyBacktab:    key.NameTab,
	tcell.KeyEnter:      key.NameReturn,
	tcell.KeyEscape:     key.NameEscape,
	tcell.KeyBackspace:  key.NameDeleteBackward,
	tcell.KeyBackspace2: key.NameDeleteBackward,
	tcell.KeyDelete:     key.NameDeleteForward,
	tcell.KeyInsert:     key.NameInsert,
	tcell.KeyHome:       key.NameHome,
	tcell.KeyEnd:        key.NameEnd,
	tcell.KeyPgUp:       key.NamePageUp,
	tcell.KeyPgDn:       key.NamePageDown,
	tcell.KeyUp:         key.NameUpArrow,
	tcell.KeyDown:       key.NameDownArrow,
	tcell.KeyLeft:       key.NameLeftArrow,
	tcell.KeyRight:      key.NameRightArrow,
}

func keyName(k tcell.Key, r rune) (key.Name, bool) {
	if n, ok := specialKeys[k]; ok {
		return n, true
	}
	switch {
	case k == tcell.KeyRune:
		if r == ' ' {
			return key.NameSpace, true
		}
		n := key.Name(string(unicode.ToUpper(r)))
		return n, key.IndexOf(n).Valid()
	case ctrlLetter(k):
		return key.Name(rune('A' + (k - tcell.KeyCtrlA))), true
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return key.Name("F" + strconv.Itoa(int(k-tcell.KeyF1)+1)), true
	}
	return "", false
}

func ctrlLetter(k tcell.Key) bool {
	if _, special := specialKeys[k]; special {
		return false
	}
	return k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ
}

func modifiers(m tcell.ModMask) key.Modifiers {
	var mods key.Modifiers
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModSuper
	}
	return mods
}

func buttons(m tcell.ButtonMask) pointer.Buttons {
	var b pointer.Buttons
	if m&tcell.ButtonPrimary != 0 {
		b |= pointer.ButtonPrimary
	}
	if m&tcell.ButtonSecondary != 0 {
		b |= pointer.ButtonSecondary
	}
	if m&tcell.ButtonMiddle != 0 {
		b |= pointer.ButtonTertiary
	}
	if m&tcell.Button4 != 0 {
		b |= pointer.ButtonQuaternary
	}
	if m&tcell.Button5 != 0 {
		b |= pointer.ButtonQuinary
	}
	return b
}

// wheel returns the scroll amount of the wheel bits of m, positive
// towards the end of the content.
func wheel(m tcell.ButtonMask) f32.Point {
	var s f32.Point
	if m&tcell.WheelUp != 0 {
		s.Y--
	}
	if m&tcell.WheelDown != 0 {
		s.Y++
	}
	if m&tcell.WheelLeft != 0 {
		s.X--
	}
	if m&tcell.WheelRight != 0 {
		s.X++
	}
	return s
}
