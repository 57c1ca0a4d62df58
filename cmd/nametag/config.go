// seehuhn.de/go/nametag - name-tag textures for sprite labels
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/nametag"
	"seehuhn.de/go/nametag/raster"
)

// config is the contents of a label set file.
type config struct {
	Font        string        `yaml:"font"`
	Border      *int          `yaml:"border"`
	SpriteScale float64       `yaml:"spriteScale"`
	HeadTop     *float64      `yaml:"headTop"`
	Labels      []labelConfig `yaml:"labels"`
}

type labelConfig struct {
	Name       string `yaml:"name"`
	Width      int    `yaml:"width"`
	Size       int    `yaml:"size"`
	Border     *int   `yaml:"border"`
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	File       string `yaml:"file"`
}

// defaultHeadTop is the top of the demo characters' heads in world
// units: a body of height 2.352 carrying a head of radius 0.32.
const defaultHeadTop = 2.352 + 0.32

// job is a validated label, ready to be rendered.
type job struct {
	spec nametag.Spec
	file string
}

// defaultConfig returns the label set of the three demo characters.
func defaultConfig() *config {
	labels := []labelConfig{
		{Name: "Purple People Eater", Width: 150, Size: 32},
		{Name: "Green Machine", Width: 150, Size: 32},
		{Name: "Red Menace", Width: 150, Size: 32},
	}
	return &config{Labels: labels}
}

// readConfig decodes a label set.  Unknown keys are rejected, to catch
// misspelt settings.
func readConfig(r io.Reader) (*config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	cfg := &config{}
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding label set: %w", err)
	}
	return cfg, nil
}

func (c *config) weight() (raster.Weight, error) {
	w, err := raster.ParseWeight(c.Font)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", nametag.ErrInvalidArgument, err)
	}
	return w, nil
}

func (c *config) pixelScale() float64 {
	if c.SpriteScale > 0 {
		return c.SpriteScale
	}
	return nametag.DefaultSpriteScale
}

// headTop returns the height above which the labels float.
func (c *config) headTop() float64 {
	if c.HeadTop != nil {
		return *c.HeadTop
	}
	return defaultHeadTop
}

// jobs validates the labels and assigns output file names.
func (c *config) jobs() ([]job, error) {
	if len(c.Labels) == 0 {
		return nil, fmt.Errorf("label set is empty: %w", nametag.ErrInvalidArgument)
	}

	border := nametag.DefaultBorder
	if c.Border != nil {
		border = *c.Border
	}

	seen := make(map[string]int)
	res := make([]job, 0, len(c.Labels))
	for i, l := range c.Labels {
		s := nametag.NewSpec(l.Name, l.Width, l.Size)
		s.Border = border
		if l.Border != nil {
			s.Border = *l.Border
		}

		var err error
		if s.Background, err = parseColour(l.Background); err != nil {
			return nil, fmt.Errorf("label %d background: %w", i+1, err)
		}
		if s.Foreground, err = parseColour(l.Foreground); err != nil {
			return nil, fmt.Errorf("label %d foreground: %w", i+1, err)
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("label %d (%q): %w", i+1, l.Name, err)
		}

		file := l.File
		if file == "" {
			file = fileName(l.Name, i)
		}
		if j, dup := seen[file]; dup {
			return nil, fmt.Errorf("labels %d and %d both write %q: %w", j+1, i+1, file, nametag.ErrInvalidArgument)
		}
		seen[file] = i

		res = append(res, job{spec: s, file: file})
	}
	return res, nil
}

// parseColour parses "#rrggbb" or "#rrggbbaa".  The empty string gives
// nil, which selects the default colour.
func parseColour(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return nil, fmt.Errorf("colour %q: %w", s, nametag.ErrInvalidArgument)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("colour %q: %w", s, nametag.ErrInvalidArgument)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// fileName derives a PNG file name from a label name.
func fileName(name string, idx int) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
		} else {
			dash = true
		}
	}
	if b.Len() == 0 {
		return fmt.Sprintf("label-%d.png", idx+1)
	}
	return b.String() + ".png"
}
