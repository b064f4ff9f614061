// SPDX-License-Identifier: Unlicense OR MIT

package gamepad

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gioui.org/x/imgui/io/nav"
)

func TestDefaultMapping(t *testing.T) {
	m := DefaultMapping()
	buttons := []struct {
		b  Button
		in nav.Input
	}{
		{FaceBottom, nav.Activate},
		{FaceRight, nav.Cancel},
		{FaceTop, nav.TextInput},
		{FaceLeft, nav.Menu},
		{DpadLeft, nav.DpadLeft},
		{DpadRight, nav.DpadRight},
		{DpadUp, nav.DpadUp},
		{DpadDown, nav.DpadDown},
		{LeftShoulder, nav.FocusPrev},
		{RightShoulder, nav.FocusNext},
		{LeftTrigger, nav.TweakSlow},
		{RightTrigger, nav.TweakFast},
	}
	for _, tc := range buttons {
		in, ok := m.Button(tc.b)
		if !ok || in != tc.in {
			t.Errorf("Button(%v) = %v, %v; want %v, true", tc.b, in, ok, tc.in)
		}
	}
	for _, b := range []Button{Back, Start, LeftThumb, RightThumb} {
		if _, ok := m.Button(b); ok {
			t.Errorf("Button(%v) unexpectedly mapped", b)
		}
	}
	pos, neg, ok := m.Axis(LeftX)
	if !ok || pos != nav.LStickRight || neg != nav.LStickLeft {
		t.Errorf("Axis(LeftX) = %v, %v, %v", pos, neg, ok)
	}
	pos, neg, ok = m.Axis(LeftY)
	if !ok || pos != nav.LStickUp || neg != nav.LStickDown {
		t.Errorf("Axis(LeftY) = %v, %v, %v", pos, neg, ok)
	}
	if _, _, ok := m.Axis(RightX); ok {
		t.Errorf("Axis(RightX) unexpectedly mapped")
	}
}

func TestZeroMapping(t *testing.T) {
	var m Mapping
	if _, ok := m.Button(FaceBottom); ok {
		t.Errorf("zero Mapping maps FaceBottom")
	}
	if _, _, ok := m.Axis(LeftX); ok {
		t.Errorf("zero Mapping maps LeftX")
	}
	m.Unbind(FaceBottom)
	m.UnbindAxis(LeftX)
}

func TestCloneIndependent(t *testing.T) {
	m := DefaultMapping()
	c := m.Clone()
	c.Unbind(FaceBottom)
	c.Bind(Start, nav.Menu)
	if _, ok := m.Button(FaceBottom); !ok {
		t.Errorf("unbinding the clone changed the original")
	}
	if _, ok := m.Button(Start); ok {
		t.Errorf("binding the clone changed the original")
	}
}

func TestNames(t *testing.T) {
	for b := Button(0); b < numButtons; b++ {
		got, err := ParseButton(b.String())
		if err != nil || got != b {
			t.Errorf("ParseButton(%q) = %v, %v", b.String(), got, err)
		}
	}
	for a := Axis(0); a < numAxes; a++ {
		got, err := ParseAxis(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAxis(%q) = %v, %v", a.String(), got, err)
		}
	}
}

func TestParseMapping(t *testing.T) {
	const src = `
buttons:
  start: menu
  face-left: none
  face-bottom: input
axes:
  right-x: {positive: lstick-right, negative: lstick-left}
  left-y: none
`
	m, err := ParseMapping([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if in, ok := m.Button(Start); !ok || in != nav.Menu {
		t.Errorf("Button(Start) = %v, %v; want menu", in, ok)
	}
	if _, ok := m.Button(FaceLeft); ok {
		t.Errorf("face-left: none left a binding")
	}
	if in, _ := m.Button(FaceBottom); in != nav.TextInput {
		t.Errorf("Button(FaceBottom) = %v, want input", in)
	}
	if in, _ := m.Button(FaceRight); in != nav.Cancel {
		t.Errorf("unlisted button lost its default binding: %v", in)
	}
	if pos, neg, ok := m.Axis(RightX); !ok || pos != nav.LStickRight || neg != nav.LStickLeft {
		t.Errorf("Axis(RightX) = %v, %v, %v", pos, neg, ok)
	}
	if _, _, ok := m.Axis(LeftY); ok {
		t.Errorf("left-y: none left a binding")
	}
}

func TestParseMappingUnknownNames(t *testing.T) {
	const src = `
buttons:
  turbo: activate
  face-top: jump
axes:
  wheel: {positive: lstick-up, negative: lstick-down}
`
	_, err := ParseMapping([]byte(src))
	if err == nil {
		t.Fatal("ParseMapping accepted unknown names")
	}
	want := "jump, turbo, wheel"
	if !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not list %q", err, want)
	}
}

func TestParseMappingSyntax(t *testing.T) {
	if _, err := ParseMapping([]byte("buttons: [")); err == nil {
		t.Error("ParseMapping accepted malformed YAML")
	}
}

func TestLoadMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pad.yaml")
	if err := os.WriteFile(path, []byte("buttons:\n  back: cancel\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadMapping(path)
	if err != nil {
		t.Fatal(err)
	}
	if in, ok := m.Button(Back); !ok || in != nav.Cancel {
		t.Errorf("Button(Back) = %v, %v; want cancel", in, ok)
	}
	if _, err := LoadMapping(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadMapping of a missing file succeeded")
	}
}
