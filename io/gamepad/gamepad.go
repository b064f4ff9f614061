// SPDX-License-Identifier: Unlicense OR MIT

// Package gamepad implements gamepad events and the mapping from
// gamepad buttons and axes to navigation inputs.
package gamepad

import "fmt"

// Button is a digital gamepad control.
type Button uint8

// Axis is an analog gamepad control. Stick axes range over [-1, 1]
// with up and right positive; trigger axes range over [0, 1].
type Axis uint8

// ButtonEvent is generated when a gamepad button is pressed or
// released.
type ButtonEvent struct {
	Button  Button
	Pressed bool
}

// AxisEvent is generated when an axis moves. Stick values are in
// [-1, 1] with up and right positive; trigger values are in [0, 1].
type AxisEvent struct {
	Axis  Axis
	Value float32
}

// ConnectEvent is generated when a gamepad is attached or detached.
type ConnectEvent struct {
	Connected bool
}

const (
	// FaceBottom is the bottom face button (A on Xbox layouts).
	FaceBottom Button = iota
	// FaceRight is the right face button (B on Xbox layouts).
	FaceRight
	// FaceLeft is the left face button (X on Xbox layouts).
	FaceLeft
	// FaceTop is the top face button (Y on Xbox layouts).
	FaceTop
	LeftShoulder
	RightShoulder
	// LeftTrigger is the left trigger pulled past its threshold.
	LeftTrigger
	// RightTrigger is the right trigger pulled past its threshold.
	RightTrigger
	DpadUp
	DpadDown
	DpadLeft
	DpadRight
	Back
	Start
	LeftThumb
	RightThumb

	numButtons = iota
)

const (
	LeftX Axis = iota
	LeftY
	RightX
	RightY
	LeftTriggerAxis
	RightTriggerAxis

	numAxes = iota
)

var buttonNames = [numButtons]string{
	FaceBottom:    "face-bottom",
	FaceRight:     "face-right",
	FaceLeft:      "face-left",
	FaceTop:       "face-top",
	LeftShoulder:  "left-shoulder",
	RightShoulder: "right-shoulder",
	LeftTrigger:   "left-trigger",
	RightTrigger:  "right-trigger",
	DpadUp:        "dpad-up",
	DpadDown:      "dpad-down",
	DpadLeft:      "dpad-left",
	DpadRight:     "dpad-right",
	Back:          "back",
	Start:         "start",
	LeftThumb:     "left-thumb",
	RightThumb:    "right-thumb",
}

var axisNames = [numAxes]string{
	LeftX:            "left-x",
	LeftY:            "left-y",
	RightX:           "right-x",
	RightY:           "right-y",
	LeftTriggerAxis:  "left-trigger",
	RightTriggerAxis: "right-trigger",
}

func (b Button) String() string {
	if int(b) >= numButtons {
		panic("unknown gamepad button")
	}
	return buttonNames[b]
}

func (a Axis) String() string {
	if int(a) >= numAxes {
		panic("unknown gamepad axis")
	}
	return axisNames[a]
}

// ParseButton returns the button named by Button.String.
func ParseButton(name string) (Button, error) {
	for i, n := range buttonNames {
		if n == name {
			return Button(i), nil
		}
	}
	return 0, fmt.Errorf("gamepad: unknown button %q", name)
}

// ParseAxis returns the axis named by Axis.String.
func ParseAxis(name string) (Axis, error) {
	for i, n := range axisNames {
		if n == name {
			return Axis(i), nil
		}
	}
	return 0, fmt.Errorf("gamepad: unknown axis %q", name)
}

func (ButtonEvent) ImplementsEvent()  {}
func (AxisEvent) ImplementsEvent()    {}
func (ConnectEvent) ImplementsEvent() {}
