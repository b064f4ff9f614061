// SPDX-License-Identifier: Unlicense OR MIT

// package glfw doesn't build on OpenBSD and FreeBSD.
//go:build !openbsd && !freebsd && !android && !ios && !js

// Command glfw feeds GLFW input into an input state and logs the
// IO block a GUI would receive each frame.
package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"gioui.org/x/imgui/bridge"
	"gioui.org/x/imgui/io/gamepad"
	"gioui.org/x/imgui/io/input"
	"gioui.org/x/imgui/io/key"
	"gioui.org/x/imgui/platform/glfwinput"
)

var mappingFile = flag.String("gamepad", "", "YAML gamepad navigation mapping")

func main() {
	flag.Parse()
	// Required by the OpenGL threading model.
	runtime.LockOSThread()

	mapping := gamepad.DefaultMapping()
	if *mappingFile != "" {
		m, err := gamepad.LoadMapping(*mappingFile)
		if err != nil {
			log.Fatal(err)
		}
		mapping = m
	}

	err := glfw.Init()
	if err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()

	window, err := glfw.CreateWindow(800, 600, "Input + GLFW", nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatal(err)
	}

	state := input.NewState(input.WithGamepadMapping(mapping))
	state.SetKeyboardNavigationEnabled(true)
	state.SetGamepadNavigationEnabled(true)
	src := glfwinput.Attach(window, state)
	defer src.Detach()

	io := bridge.NewIO()
	var last bridge.IO
	for !window.ShouldClose() {
		glfw.PollEvents()
		src.Poll()
		bridge.NewFrame(io, state)
		logChanges(&last, io)
		last = *io
		last.InputCharacters = nil

		gl.ClearColor(0.2, 0.2, 0.2, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		window.SwapBuffers()
	}
	if d := state.Dropped(); d != (input.Drops{}) {
		log.Printf("dropped input: %+v", d)
	}
}

func logChanges(prev, io *bridge.IO) {
	for i, down := range io.KeysDown {
		if down != prev.KeysDown[i] {
			log.Printf("key %v down=%v", key.Index(i), down)
		}
	}
	for i, down := range io.MouseDown {
		if down != prev.MouseDown[i] {
			log.Printf("mouse button %d down=%v at %v", i, down, io.MousePos)
		}
	}
	if len(io.InputCharacters) > 0 {
		log.Printf("text %q", string(io.InputCharacters))
	}
	if io.MouseWheel != 0 {
		log.Printf("wheel %v", io.MouseWheel)
	}
	if io.NavInputs != prev.NavInputs {
		log.Printf("navigation %v", io.NavInputs)
	}
}
