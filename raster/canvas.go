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

// Package raster implements nametag surfaces in pure Go.
//
// Shapes and glyph outlines are converted into paths, transformed by
// the current transformation matrix and filled with anti-aliasing by a
// scanline rasteriser.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font/sfnt"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/nametag"
)

// Provider creates canvases which all use the same font.
// A Provider is safe for concurrent use.
type Provider struct {
	font *sfnt.Font
}

var _ nametag.SurfaceProvider = (*Provider)(nil)

// NewProvider returns a Provider using the built-in font of the given
// weight.
func NewProvider(w Weight) (*Provider, error) {
	f, err := LoadFont(w)
	if err != nil {
		return nil, err
	}
	return NewProviderForFont(f), nil
}

// NewProviderForFont returns a Provider using f.
func NewProviderForFont(f *sfnt.Font) *Provider {
	return &Provider{font: f}
}

// NewSurface implements [nametag.SurfaceProvider].
func (p *Provider) NewSurface(width, height int, fontSize float64) (nametag.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas size %dx%d: %w", width, height, nametag.ErrInvalidArgument)
	}
	if !(fontSize > 0) {
		return nil, fmt.Errorf("font size %g: %w", fontSize, nametag.ErrInvalidArgument)
	}
	face, err := NewFace(p.font, fontSize)
	if err != nil {
		return nil, err
	}
	return NewCanvas(width, height, face), nil
}

// Canvas is an RGBA drawing surface.  All fills are anti-aliased and
// composited onto the existing pixels using the source-over operator.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img  *image.RGBA
	face *Face
	ctm  matrix.Matrix

	fill     color.RGBA // premultiplied
	align    nametag.TextAlign
	baseline nametag.TextBaseline

	r   *rasteriser
	buf path.Data
}

var _ nametag.Surface = (*Canvas)(nil)

// NewCanvas returns a transparent canvas of the given size, drawing text
// with face.  The fill colour starts as opaque black.
func NewCanvas(width, height int, face *Face) *Canvas {
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: face,
		ctm:  matrix.Identity,
		fill: color.RGBA{A: 255},
		r:    newRasteriser(clip),
	}
}

// Image implements [nametag.Surface].  The returned image shares its
// pixels with the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// SetFillColor implements [nametag.Surface].
func (c *Canvas) SetFillColor(col color.Color) {
	c.fill = color.RGBAModel.Convert(col).(color.RGBA)
}

// SetTextAlign implements [nametag.Surface].
func (c *Canvas) SetTextAlign(a nametag.TextAlign) {
	c.align = a
}

// SetTextBaseline implements [nametag.Surface].
func (c *Canvas) SetTextBaseline(b nametag.TextBaseline) {
	c.baseline = b
}

// Translate implements [nametag.Surface].
func (c *Canvas) Translate(dx, dy float64) {
	c.ctm = matrix.Translate(dx, dy).Mul(c.ctm)
}

// Scale implements [nametag.Surface].
func (c *Canvas) Scale(sx, sy float64) {
	c.ctm = matrix.Scale(sx, sy).Mul(c.ctm)
}

// FillRect implements [nametag.Surface].
func (c *Canvas) FillRect(x, y, w, h float64) {
	c.buf.Cmds = append(c.buf.Cmds[:0],
		path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose)
	c.buf.Coords = append(c.buf.Coords[:0],
		vec.Vec2{X: x, Y: y},
		vec.Vec2{X: x + w, Y: y},
		vec.Vec2{X: x + w, Y: y + h},
		vec.Vec2{X: x, Y: y + h})
	c.paint(&c.buf)
}

// MeasureText implements [nametag.Surface].
func (c *Canvas) MeasureText(text string) (float64, error) {
	return c.face.Advance(text)
}

// FillText implements [nametag.Surface].  The anchor (x, y) is placed
// according to the current text alignment and baseline.
func (c *Canvas) FillText(text string, x, y float64) error {
	w, err := c.face.Advance(text)
	if err != nil {
		return err
	}
	switch c.align {
	case nametag.AlignCenter:
		x -= w / 2
	case nametag.AlignRight:
		x -= w
	}

	base, err := c.baselineFor(y)
	if err != nil {
		return err
	}

	c.buf.Cmds = c.buf.Cmds[:0]
	c.buf.Coords = c.buf.Coords[:0]
	if err := c.face.AppendText(&c.buf, text, x, base); err != nil {
		return err
	}
	c.paint(&c.buf)
	return nil
}

// baselineFor returns the y coordinate of the alphabetic baseline for
// text anchored at y.  The line box of height Size is split between
// ascent and descent in the proportion given by the font metrics.
func (c *Canvas) baselineFor(y float64) (float64, error) {
	if c.baseline == nametag.BaselineAlphabetic {
		return y, nil
	}

	size := c.face.Size()
	ascent, descent, err := c.face.Metrics()
	if err != nil {
		return 0, err
	}
	above := 0.8 * size
	if ascent+descent > 0 {
		above = size * ascent / (ascent + descent)
	}

	switch c.baseline {
	case nametag.BaselineTop:
		return y + above, nil
	case nametag.BaselineMiddle:
		return y + above - size/2, nil
	case nametag.BaselineBottom:
		return y + above - size, nil
	default:
		return y, nil
	}
}

// paint fills p with the current fill colour.
func (c *Canvas) paint(p *path.Data) {
	if c.fill.A == 0 {
		return
	}
	c.r.CTM = c.ctm
	c.r.Fill(p, nonZero, c.composite)
}

// composite blends the fill colour into one row of pixels.
func (c *Canvas) composite(y, x0 int, coverage []float32) {
	src := c.fill
	row := c.img.Pix[c.img.PixOffset(x0, y):]
	for i, cov := range coverage {
		px := row[4*i : 4*i+4 : 4*i+4]
		k := float64(cov)
		keep := 1 - float64(src.A)*k/255
		px[0] = blend(src.R, px[0], k, keep)
		px[1] = blend(src.G, px[1], k, keep)
		px[2] = blend(src.B, px[2], k, keep)
		px[3] = blend(src.A, px[3], k, keep)
	}
}

func blend(src, dst uint8, k, keep float64) uint8 {
	v := float64(src)*k + float64(dst)*keep
	return uint8(math.Min(255, math.Round(v)))
}
