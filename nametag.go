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

// Package nametag renders name tags for camera-facing sprite labels.
//
// A name tag is a bitmap of fixed size with the name centred inside.
// Names which are too long for the available width are compressed
// horizontally until they fit; the glyph height is never changed.
//
// The drawing itself is done by a [SurfaceProvider].  The package
// seehuhn.de/go/nametag/raster implements one in pure Go.
package nametag

import (
	"errors"
	"fmt"
	"image/color"
)

// DefaultBorder is the padding, in pixels, around the text area.
const DefaultBorder = 2

// ErrInvalidArgument is returned for label specifications which cannot
// be rendered.
var ErrInvalidArgument = errors.New("invalid argument")

// Default label colours.
var (
	DefaultBackground = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	DefaultForeground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Spec describes a name tag.
type Spec struct {
	Name string

	// BaseWidth is the width of the text area in pixels.
	BaseWidth int

	// FontSize is the em size of the text, and the height of the text
	// area, in pixels.
	FontSize int

	// Border is the padding around the text area in pixels.
	Border int

	// Background fills the whole bitmap, including the border.
	// If nil, DefaultBackground is used.
	Background color.Color

	// Foreground is the text colour.  If nil, DefaultForeground is used.
	Foreground color.Color
}

// NewSpec returns a Spec with the default border and colours.
func NewSpec(name string, baseWidth, fontSize int) Spec {
	return Spec{
		Name:      name,
		BaseWidth: baseWidth,
		FontSize:  fontSize,
		Border:    DefaultBorder,
	}
}

// Validate checks that the dimensions of s are usable.
func (s Spec) Validate() error {
	if s.BaseWidth <= 0 {
		return fmt.Errorf("base width %d: %w", s.BaseWidth, ErrInvalidArgument)
	}
	if s.FontSize <= 0 {
		return fmt.Errorf("font size %d: %w", s.FontSize, ErrInvalidArgument)
	}
	if s.Border < 0 {
		return fmt.Errorf("border %d: %w", s.Border, ErrInvalidArgument)
	}
	return nil
}

// Size returns the dimensions of the bitmap generated for s.
func (s Spec) Size() (width, height int) {
	return s.BaseWidth + 2*s.Border, s.FontSize + 2*s.Border
}

func (s Spec) background() color.Color {
	if s.Background == nil {
		return DefaultBackground
	}
	return s.Background
}

func (s Spec) foreground() color.Color {
	if s.Foreground == nil {
		return DefaultForeground
	}
	return s.Foreground
}

// FitScale returns the horizontal scale factor which makes text of the
// given natural width fit into baseWidth pixels.  Text which already
// fits, including empty text, is not scaled.
func FitScale(textWidth float64, baseWidth int) float64 {
	if textWidth <= 0 {
		return 1
	}
	return min(1, float64(baseWidth)/textWidth)
}
