// SPDX-License-Identifier: Unlicense OR MIT

// Package tcellinput feeds terminal input read by tcell into an
// input.State.
//
// Terminals report key presses but no releases. A Source therefore
// releases every key it pressed when EndFrame is called, after the
// frame that observed the press.
package tcellinput

import (
	"github.com/gdamore/tcell/v2"

	"gioui.org/x/imgui/f32"
	"gioui.org/x/imgui/io/input"
	"gioui.org/x/imgui/io/key"
	"gioui.org/x/imgui/io/pointer"
)

// Source translates tcell events.
type Source struct {
	state    *input.State
	cellSize f32.Point

	btns    pointer.Buttons
	pointer bool
	pressed []key.Name
	mods    bool
}

// Option configures a Source.
type Option func(src *Source)

// WithCellSize scales cell coordinates to pixels. The default size
// is one by one, reporting positions in cells.
func WithCellSize(sz f32.Point) Option {
	return func(src *Source) {
		src.cellSize = sz
	}
}

// New returns a Source feeding s.
func New(s *input.State, opts ...Option) *Source {
	src := &Source{
		state:    s,
		cellSize: f32.Pt(1, 1),
	}
	for _, o := range opts {
		o(src)
	}
	return src
}

// Handle applies ev to the state and reports whether ev is an input
// event.
func (src *Source) Handle(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		src.handleKey(e)
	case *tcell.EventMouse:
		src.handleMouse(e)
	case *tcell.EventFocus:
		src.handleFocus(e.Focused)
	default:
		return false
	}
	return true
}

// EndFrame releases the keys and modifiers pressed since the last
// call. Call it once per frame, after the state has been read and
// cleared.
func (src *Source) EndFrame() {
	for _, n := range src.pressed {
		src.state.Queue(key.Event{Name: n, State: key.Release})
	}
	src.pressed = src.pressed[:0]
	if src.mods {
		src.state.SetControlDown(false)
		src.state.SetShiftDown(false)
		src.state.SetAltDown(false)
		src.mods = false
	}
}

func (src *Source) handleKey(e *tcell.EventKey) {
	mods := modifiers(e.Modifiers())
	name, ok := keyName(e.Key(), e.Rune())
	if ctrlLetter(e.Key()) {
		mods |= key.ModCtrl
	}
	if e.Key() == tcell.KeyBacktab {
		mods |= key.ModShift
	}
	if mods != 0 {
		src.mods = true
	}
	if ok {
		src.state.Queue(key.Event{Name: name, Modifiers: mods, State: key.Press})
		src.pressed = append(src.pressed, name)
	} else {
		src.state.SetControlDown(mods.Contain(key.ModCtrl))
		src.state.SetShiftDown(mods.Contain(key.ModShift))
		src.state.SetAltDown(mods.Contain(key.ModAlt))
	}
	if e.Key() == tcell.KeyRune && !mods.Contain(key.ModCtrl) && !mods.Contain(key.ModAlt) {
		src.state.Queue(key.EditEvent{Text: string(e.Rune())})
	}
}

func (src *Source) handleMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	pos := f32.Pt(float32(x), float32(y)).MulPoint(src.cellSize)
	if !src.pointer {
		src.pointer = true
		src.state.Queue(pointer.Event{Kind: pointer.Enter, Source: pointer.Mouse, Position: pos})
	}
	mask := e.Buttons()
	btns := buttons(mask)
	mods := modifiers(e.Modifiers())
	ev := pointer.Event{
		Source:    pointer.Mouse,
		Position:  pos,
		Buttons:   btns,
		Modifiers: mods,
	}
	switch {
	case btns&^src.btns != 0:
		ev.Kind = pointer.Press
	case btns != src.btns:
		ev.Kind = pointer.Release
	case btns != 0:
		ev.Kind = pointer.Drag
	default:
		ev.Kind = pointer.Move
	}
	if ev.Kind == pointer.Press || ev.Kind == pointer.Release {
		src.mods = src.mods || mods != 0
	}
	src.btns = btns
	src.state.Queue(ev)
	if scroll := wheel(mask); scroll != (f32.Point{}) {
		src.state.Queue(pointer.Event{
			Kind:     pointer.Scroll,
			Source:   pointer.Mouse,
			Position: pos,
			Buttons:  btns,
			Scroll:   scroll,
		})
	}
}

func (src *Source) handleFocus(focused bool) {
	if focused {
		return
	}
	src.btns = 0
	src.pointer = false
	src.pressed = src.pressed[:0]
	src.mods = false
	src.state.Queue(
		key.FocusEvent{Focus: false},
		pointer.Event{Kind: pointer.Cancel, Source: pointer.Mouse},
		pointer.Event{Kind: pointer.Leave, Source: pointer.Mouse},
	)
}
