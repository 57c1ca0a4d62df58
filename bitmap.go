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
	"math"
)

// Bitmap is a rendered name tag.
type Bitmap struct {
	Width, Height int

	// Pix holds the pixels in row-major order, four bytes (R, G, B, A)
	// per pixel, without padding between rows.
	Pix []byte

	// TextWidth is the natural width of the name before scaling.
	TextWidth float64

	// ScaleFactor is the horizontal scale applied to the name.
	ScaleFactor float64
}

// newBitmap copies the pixels of img.
func newBitmap(img *image.RGBA) *Bitmap {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, 4*w*h)
	for y := range h {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		copy(pix[4*w*y:4*w*(y+1)], src[:4*w])
	}
	return &Bitmap{Width: w, Height: h, Pix: pix}
}

// RGBAAt returns the colour of the pixel at (x, y).
func (b *Bitmap) RGBAAt(x, y int) color.RGBA {
	i := 4 * (y*b.Width + x)
	return color.RGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: b.Pix[i+3]}
}

// Image returns an image which shares its pixels with b.
// The image must not be modified.
func (b *Bitmap) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: 4 * b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// Sample returns the bilinearly filtered colour at texture coordinates
// (u, v), where (0, 0) is the top left corner of the bitmap and (1, 1)
// the bottom right.  Coordinates outside the unit square are clamped to
// the edge, so that the border colour extends the bitmap in every
// direction.
func (b *Bitmap) Sample(u, v float64) color.RGBA {
	x := clamp(u*float64(b.Width)-0.5, 0, float64(b.Width-1))
	y := clamp(v*float64(b.Height)-0.5, 0, float64(b.Height-1))

	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := min(x0+1, b.Width-1), min(y0+1, b.Height-1)
	fx, fy := x-float64(x0), y-float64(y0)

	c00, c10 := b.RGBAAt(x0, y0), b.RGBAAt(x1, y0)
	c01, c11 := b.RGBAAt(x0, y1), b.RGBAAt(x1, y1)
	mix := func(a, b, c, d uint8) uint8 {
		top := float64(a)*(1-fx) + float64(b)*fx
		bot := float64(c)*(1-fx) + float64(d)*fx
		return uint8(math.Round(top*(1-fy) + bot*fy))
	}
	return color.RGBA{
		R: mix(c00.R, c10.R, c01.R, c11.R),
		G: mix(c00.G, c10.G, c01.G, c11.G),
		B: mix(c00.B, c10.B, c01.B, c11.B),
		A: mix(c00.A, c10.A, c01.A, c11.A),
	}
}

// clamp limits x to [lo, hi].  NaN gives lo.
func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return lo
	}
	return math.Max(lo, math.Min(hi, x))
}
