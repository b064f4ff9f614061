// SPDX-License-Identifier: Unlicense OR MIT

package key

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Index is the position of a recognized key in a key array.
type Index int

// NoIndex is the index of every key that is not recognized.
const NoIndex Index = -1

// names lists the recognized keys in index order. The order is
// part of the contract with consumers that keep their own key
// arrays; append new keys at the end.
var names = [...]Name{
	NameTab,
	NameLeftArrow,
	NameRightArrow,
	NameUpArrow,
	NameDownArrow,
	NamePageUp,
	NamePageDown,
	NameHome,
	NameEnd,
	NameInsert,
	NameDeleteForward,
	NameDeleteBackward,
	NameSpace,
	NameReturn,
	NameEnter,
	NameEscape,
	NameCtrl,
	NameShift,
	NameAlt,
	NameSuper,
	NameCommand,
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	NameF1, NameF2, NameF3, NameF4, NameF5, NameF6,
	NameF7, NameF8, NameF9, NameF10, NameF11, NameF12,
	"`", "-", "=", "[", "]", "\\", ";", "'", ",", ".", "/",
}

// NumKeys is the number of recognized keys and the length of
// every key array.
const NumKeys = len(names)

var indices map[Name]Index

func init() {
	indices = make(map[Name]Index, NumKeys)
	for i, n := range names {
		indices[n] = Index(i)
	}
}

// IndexOf returns the index of the key with the given name, or NoIndex
// if the key is not recognized. Single letter names match regardless
// of case.
func IndexOf(n Name) Index {
	if idx, ok := indices[n]; ok {
		return idx
	}
	if len(n) == 1 {
		if idx, ok := indices[Name(strings.ToUpper(string(n)))]; ok {
			return idx
		}
	}
	return NoIndex
}

// Names returns the recognized key names in index order.
func Names() []Name {
	return slices.Clone(names[:])
}

// Valid reports whether i refers to a recognized key.
func (i Index) Valid() bool {
	return i >= 0 && int(i) < NumKeys
}

// Name returns the name of the key at i, or the empty Name for an
// invalid index.
func (i Index) Name() Name {
	if !i.Valid() {
		return ""
	}
	return names[i]
}

func (i Index) String() string {
	if !i.Valid() {
		return "NoIndex"
	}
	return string(names[i])
}
