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

package nametag

import (
	"image"
	"image/color"
)

// TextAlign gives the horizontal position of the anchor point of a
// text run.
type TextAlign int

const (
	// AlignLeft places the anchor at the start of the text.
	AlignLeft TextAlign = iota

	// AlignCenter places the anchor at the horizontal centre of the text.
	AlignCenter

	// AlignRight places the anchor at the end of the text.
	AlignRight
)

// TextBaseline gives the vertical position of the anchor point of a
// text run.
type TextBaseline int

const (
	// BaselineAlphabetic anchors text at its baseline.
	BaselineAlphabetic TextBaseline = iota

	// BaselineTop anchors text at the top of the em box.
	BaselineTop

	// BaselineMiddle anchors text at the middle of the em box.
	BaselineMiddle

	// BaselineBottom anchors text at the bottom of the em box.
	BaselineBottom
)

// A Surface is a 2D drawing target with a font already selected.
//
// Coordinates are in pixels with the origin at the top left corner and
// y growing downwards.  Drawing operations are mapped through the
// current transformation, which starts as the identity.
type Surface interface {
	// MeasureText returns the natural width of text in the current font,
	// ignoring the current transformation.
	MeasureText(text string) (float64, error)

	SetFillColor(c color.Color)
	FillRect(x, y, w, h float64)

	// Translate and Scale modify the current transformation, so that
	// they apply before any transformation already in effect.
	Translate(dx, dy float64)
	Scale(sx, sy float64)

	SetTextAlign(a TextAlign)
	SetTextBaseline(b TextBaseline)
	FillText(text string, x, y float64) error

	// Image returns the pixels drawn so far.
	Image() *image.RGBA
}

// A SurfaceProvider creates drawing surfaces.
type SurfaceProvider interface {
	// NewSurface returns a transparent surface of the given size, with a
	// font where one em is fontSize pixels.
	NewSurface(width, height int, fontSize float64) (Surface, error)
}
