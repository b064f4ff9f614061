// SPDX-License-Identifier: Unlicense OR MIT

package nav

import (
	"testing"
)

func TestInputNames(t *testing.T) {
	for i := Input(0); i < NumInputs; i++ {
		name := i.String()
		if name == "" {
			t.Errorf("input %d has no name", i)
			continue
		}
		got, err := ParseInput(name)
		if err != nil {
			t.Errorf("ParseInput(%q): %v", name, err)
			continue
		}
		if got != i {
			t.Errorf("ParseInput(%q) = %d, want %d", name, got, i)
		}
	}
	if _, err := ParseInput("jump"); err == nil {
		t.Errorf("ParseInput accepted an unknown name")
	}
}

func TestInputsSetAxis(t *testing.T) {
	var in Inputs
	in.SetAxis(LStickRight, LStickLeft, 0.75)
	if in[LStickRight] != 0.75 || in[LStickLeft] != 0 {
		t.Errorf("positive axis: got right=%v left=%v", in[LStickRight], in[LStickLeft])
	}
	in.SetAxis(LStickRight, LStickLeft, -0.25)
	if in[LStickRight] != 0 || in[LStickLeft] != 0.25 {
		t.Errorf("negative axis: got right=%v left=%v", in[LStickRight], in[LStickLeft])
	}
}

func TestInputsSetClear(t *testing.T) {
	var in Inputs
	in.Set(Activate, true)
	if in[Activate] != 1 {
		t.Errorf("Set(true): got %v, want 1", in[Activate])
	}
	in.Set(Activate, false)
	if in[Activate] != 0 {
		t.Errorf("Set(false): got %v, want 0", in[Activate])
	}
	in.Set(Menu, true)
	in.Clear()
	if in != (Inputs{}) {
		t.Errorf("Clear left %v", in)
	}
}
