// SPDX-License-Identifier: Unlicense OR MIT

package gamepad

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"gioui.org/x/imgui/io/nav"
)

// unbound is the mapping file value that removes a binding.
const unbound = "none"

// mappingFile is the YAML form of a mapping:
//
//	buttons:
//	  face-bottom: activate
//	  back: none
//	axes:
//	  left-x: {positive: lstick-right, negative: lstick-left}
//	  right-y: none
type mappingFile struct {
	Buttons map[string]string   `yaml:"buttons"`
	Axes    map[string]axisFile `yaml:"axes"`
}

type axisFile struct {
	Positive string `yaml:"positive"`
	Negative string `yaml:"negative"`
	none     bool
}

func (a *axisFile) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode && n.Value == unbound {
		a.none = true
		return nil
	}
	type plain axisFile
	return n.Decode((*plain)(a))
}

// LoadMapping reads a YAML mapping file and applies it on top of
// DefaultMapping.
func LoadMapping(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gamepad: %w", err)
	}
	return ParseMapping(data)
}

// ParseMapping parses a YAML mapping and applies it on top of
// DefaultMapping. Controls missing from data keep their default
// binding; the value "none" removes it.
func ParseMapping(data []byte) (*Mapping, error) {
	var f mappingFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("gamepad: parsing mapping: %w", err)
	}
	m := DefaultMapping()
	unknown := make(map[string]bool)
	input := func(name string) nav.Input {
		in, err := nav.ParseInput(name)
		if err != nil {
			unknown[name] = true
		}
		return in
	}
	for name, target := range f.Buttons {
		b, err := ParseButton(name)
		if err != nil {
			unknown[name] = true
			continue
		}
		if target == unbound {
			m.Unbind(b)
			continue
		}
		m.Bind(b, input(target))
	}
	for name, target := range f.Axes {
		a, err := ParseAxis(name)
		if err != nil {
			unknown[name] = true
			continue
		}
		if target.none {
			m.UnbindAxis(a)
			continue
		}
		m.BindAxis(a, input(target.Positive), input(target.Negative))
	}
	if len(unknown) > 0 {
		names := maps.Keys(unknown)
		slices.Sort(names)
		return nil, fmt.Errorf("gamepad: unknown names in mapping: %s", strings.Join(names, ", "))
	}
	return m, nil
}
