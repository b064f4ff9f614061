// SPDX-License-Identifier: Unlicense OR MIT

package bridge

import (
	"gioui.org/x/imgui/io/key"
)

// Key identifies a key the GUI interprets itself, for text editing
// and navigation.
type Key int

const (
	KeyTab Key = iota
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	// Clipboard and undo shortcuts.
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ

	// NumKeys is the number of named keys.
	NumKeys = iota
)

var keyNames = [NumKeys]key.Name{
	KeyTab:        key.NameTab,
	KeyLeftArrow:  key.NameLeftArrow,
	KeyRightArrow: key.NameRightArrow,
	KeyUpArrow:    key.NameUpArrow,
	KeyDownArrow:  key.NameDownArrow,
	KeyPageUp:     key.NamePageUp,
	KeyPageDown:   key.NamePageDown,
	KeyHome:       key.NameHome,
	KeyEnd:        key.NameEnd,
	KeyInsert:     key.NameInsert,
	KeyDelete:     key.NameDeleteForward,
	KeyBackspace:  key.NameDeleteBackward,
	KeySpace:      key.NameSpace,
	KeyEnter:      key.NameReturn,
	KeyEscape:     key.NameEscape,
	KeyA:          "A",
	KeyC:          "C",
	KeyV:          "V",
	KeyX:          "X",
	KeyY:          "Y",
	KeyZ:          "Z",
}

// DefaultKeyMap maps every named key to its index in a key array.
func DefaultKeyMap() [NumKeys]key.Index {
	var m [NumKeys]key.Index
	for k, n := range keyNames {
		m[k] = key.IndexOf(n)
	}
	return m
}
