// SPDX-License-Identifier: Unlicense OR MIT

package glfwinput

import (
	"strconv"

	"github.com/go-gl/glfw/v3.3/glfw"

	"gioui.org/x/imgui/io/gamepad"
	"gioui.org/x/imgui/io/key"
	"gioui.org/x/imgui/io/pointer"
)

var specialKeys = map[glfw.Key]key.Name{
	glfw.KeyTab:          key.NameTab,
	glfw.KeyLeft:         key.NameLeftArrow,
	glfw.KeyRight:        key.NameRightArrow,
	glfw.KeyUp:           key.NameUpArrow,
	glfw.KeyDown:         key.NameDownArrow,
	glfw.KeyPageUp:       key.NamePageUp,
	glfw.KeyPageDown:     key.NamePageDown,
	glfw.KeyHome:         key.NameHome,
	glfw.KeyEnd:          key.NameEnd,
	glfw.KeyInsert:       key.NameInsert,
	glfw.KeyDelete:       key.NameDeleteForward,
	glfw.KeyBackspace:    key.NameDeleteBackward,
	glfw.KeySpace:        key.NameSpace,
	glfw.KeyEnter:        key.NameReturn,
	glfw.KeyKPEnter:      key.NameEnter,
	glfw.KeyEscape:       key.NameEscape,
	glfw.KeyLeftControl:  key.NameCtrl,
	glfw.KeyRightControl: key.NameCtrl,
	glfw.KeyLeftShift:    key.NameShift,
	glfw.KeyRightShift:   key.NameShift,
	glfw.KeyLeftAlt:      key.NameAlt,
	glfw.KeyRightAlt:     key.NameAlt,
	glfw.KeyLeftSuper:    key.NameSuper,
	glfw.KeyRightSuper:   key.NameSuper,
	glfw.KeyGraveAccent:  "`",
	glfw.KeyMinus:        "-",
	glfw.KeyEqual:        "=",
	glfw.KeyLeftBracket:  "[",
	glfw.KeyRightBracket: "]",
	glfw.KeyBackslash:    "\\",
	glfw.KeySemicolon:    ";",
	glfw.KeyApostrophe:   "'",
	glfw.KeyComma:        ",",
	glfw.KeyPeriod:       ".",
	glfw.KeySlash:        "/",
}

var mouseButtons = map[glfw.MouseButton]pointer.Buttons{
	glfw.MouseButtonLeft:   pointer.ButtonPrimary,
	glfw.MouseButtonRight:  pointer.ButtonSecondary,
	glfw.MouseButtonMiddle: pointer.ButtonTertiary,
	glfw.MouseButton4:      pointer.ButtonQuaternary,
	glfw.MouseButton5:      pointer.ButtonQuinary,
}

var gamepadButtons = map[glfw.GamepadButton]gamepad.Button{
	glfw.ButtonA:           gamepad.FaceBottom,
	glfw.ButtonB:           gamepad.FaceRight,
	glfw.ButtonX:           gamepad.FaceLeft,
	glfw.ButtonY:           gamepad.FaceTop,
	glfw.ButtonLeftBumper:  gamepad.LeftShoulder,
	glfw.ButtonRightBumper: gamepad.RightShoulder,
	glfw.ButtonBack:        gamepad.Back,
	glfw.ButtonStart:       gamepad.Start,
	glfw.ButtonLeftThumb:   gamepad.LeftThumb,
	glfw.ButtonRightThumb:  gamepad.RightThumb,
	glfw.ButtonDpadUp:      gamepad.DpadUp,
	glfw.ButtonDpadRight:   gamepad.DpadRight,
	glfw.ButtonDpadDown:    gamepad.DpadDown,
	glfw.ButtonDpadLeft:    gamepad.DpadLeft,
}

// keyName returns the name of a GLFW key.
func keyName(k glfw.Key) (key.Name, bool) {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return key.Name(rune('A' + (k - glfw.KeyA))), true
	case k >= glfw.Key0 && k <= glfw.Key9:
		return key.Name(rune('0' + (k - glfw.Key0))), true
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return key.Name("F" + strconv.Itoa(int(k-glfw.KeyF1)+1)), true
	}
	n, ok := specialKeys[k]
	return n, ok
}

func isModifier(n key.Name) bool {
	switch n {
	case key.NameCtrl, key.NameShift, key.NameAlt, key.NameSuper:
		return true
	}
	return false
}

func modifiers(mods glfw.ModifierKey) key.Modifiers {
	var m key.Modifiers
	if mods&glfw.ModControl != 0 {
		m |= key.ModCtrl
	}
	if mods&glfw.ModShift != 0 {
		m |= key.ModShift
	}
	if mods&glfw.ModAlt != 0 {
		m |= key.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= key.ModSuper
	}
	return m
}
