// SPDX-License-Identifier: Unlicense OR MIT

// Command terminal shows the input a GUI would receive each frame from
// a terminal. Press Escape to quit.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"gioui.org/x/imgui/bridge"
	"gioui.org/x/imgui/io/input"
	"gioui.org/x/imgui/io/key"
	"gioui.org/x/imgui/platform/tcellinput"
)

const frameTime = time.Second / 30

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()

	// PollEvent blocks, so events are read on their own goroutine
	// and handed to the frame loop, which owns the state.
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	state := input.NewState()
	src := tcellinput.New(state)
	io := bridge.NewIO()
	escape := io.KeyMap[bridge.KeyEscape]
	var text []rune

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if _, resize := ev.(*tcell.EventResize); resize {
				screen.Sync()
			}
			src.Handle(ev)
			continue
		case <-ticker.C:
		}
		bridge.NewFrame(io, state)
		src.EndFrame()
		if io.KeysDown[escape] {
			return
		}
		text = append(text, io.InputCharacters...)
		if len(text) > 40 {
			text = text[len(text)-40:]
		}
		draw(screen, io, text, state.Dropped())
	}
}

func draw(screen tcell.Screen, io *bridge.IO, text []rune, drops input.Drops) {
	screen.Clear()
	var down []string
	for i, d := range io.KeysDown {
		if d {
			down = append(down, key.Index(i).String())
		}
	}
	lines := []string{
		fmt.Sprintf("keys:     %v", down),
		fmt.Sprintf("mods:     ctrl=%v shift=%v alt=%v", io.KeyCtrl, io.KeyShift, io.KeyAlt),
		fmt.Sprintf("mouse:    %v buttons=%v pointer=%v", io.MousePos, io.MouseDown, io.MouseDrawCursor),
		fmt.Sprintf("text:     %s", string(text)),
		fmt.Sprintf("dropped:  %+v", drops),
		"",
		"Escape quits.",
	}
	for y, l := range lines {
		for x, r := range []rune(l) {
			screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		}
	}
	screen.Show()
}
