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

package nametag_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/nametag"
	"seehuhn.de/go/nametag/raster"
	"seehuhn.de/go/nametag/testcases"
)

// fakeSurface measures every character as 10 pixels wide and records the
// drawing state at the time of each call.
type fakeSurface struct {
	img      *image.RGBA
	fontSize float64

	tx, ty   float64
	sx, sy   float64
	fill     color.Color
	align    nametag.TextAlign
	baseline nametag.TextBaseline

	rects []fakeCall
	texts []fakeCall
}

type fakeCall struct {
	text     string
	x, y     float64
	w, h     float64
	tx, ty   float64
	sx, sy   float64
	fill     color.Color
	align    nametag.TextAlign
	baseline nametag.TextBaseline
}

const fakeCharWidth = 10

func (f *fakeSurface) MeasureText(text string) (float64, error) {
	return float64(len([]rune(text)) * fakeCharWidth), nil
}

func (f *fakeSurface) SetFillColor(c color.Color) { f.fill = c }

func (f *fakeSurface) FillRect(x, y, w, h float64) {
	f.rects = append(f.rects, f.call("", x, y, w, h))
}

func (f *fakeSurface) Translate(dx, dy float64) {
	f.tx += f.sx * dx
	f.ty += f.sy * dy
}

func (f *fakeSurface) Scale(sx, sy float64) {
	f.sx *= sx
	f.sy *= sy
}

func (f *fakeSurface) SetTextAlign(a nametag.TextAlign)       { f.align = a }
func (f *fakeSurface) SetTextBaseline(b nametag.TextBaseline) { f.baseline = b }

func (f *fakeSurface) FillText(text string, x, y float64) error {
	f.texts = append(f.texts, f.call(text, x, y, 0, 0))
	return nil
}

func (f *fakeSurface) Image() *image.RGBA { return f.img }

func (f *fakeSurface) call(text string, x, y, w, h float64) fakeCall {
	return fakeCall{
		text: text, x: x, y: y, w: w, h: h,
		tx: f.tx, ty: f.ty, sx: f.sx, sy: f.sy,
		fill: f.fill, align: f.align, baseline: f.baseline,
	}
}

type fakeProvider struct {
	last *fakeSurface
	err  error
}

func (p *fakeProvider) NewSurface(width, height int, fontSize float64) (nametag.Surface, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.last = &fakeSurface{
		img:      image.NewRGBA(image.Rect(0, 0, width, height)),
		fontSize: fontSize,
		sx:       1,
		sy:       1,
	}
	return p.last, nil
}

func TestGenerateDrawingSequence(t *testing.T) {
	p := &fakeProvider{}
	g := nametag.NewGenerator(p)

	b, err := g.Generate(nametag.NewSpec("Red Menace", 150, 32))
	require.NoError(t, err)
	assert.Equal(t, 154, b.Width)
	assert.Equal(t, 36, b.Height)
	assert.Equal(t, 32.0, p.last.fontSize)

	// background covers the whole bitmap, untransformed
	require.Len(t, p.last.rects, 1)
	bg := p.last.rects[0]
	assert.Equal(t, fakeCall{w: 154, h: 36, sx: 1, sy: 1, fill: nametag.DefaultBackground}, bg)

	// text is anchored at the centre, not scaled
	require.Len(t, p.last.texts, 1)
	txt := p.last.texts[0]
	assert.Equal(t, "Red Menace", txt.text)
	assert.Equal(t, 77.0, txt.tx)
	assert.Equal(t, 18.0, txt.ty)
	assert.Equal(t, 1.0, txt.sx)
	assert.Equal(t, 1.0, txt.sy)
	assert.Zero(t, txt.x)
	assert.Zero(t, txt.y)
	assert.Equal(t, nametag.AlignCenter, txt.align)
	assert.Equal(t, nametag.BaselineMiddle, txt.baseline)
	assert.Equal(t, nametag.DefaultForeground, txt.fill)

	assert.Equal(t, 100.0, b.TextWidth)
	assert.Equal(t, 1.0, b.ScaleFactor)
}

func TestGenerateCompressesLongNames(t *testing.T) {
	p := &fakeProvider{}
	g := nametag.NewGenerator(p)

	// 19 characters, 190 pixels natural width
	b, err := g.Generate(nametag.NewSpec("Purple People Eater", 150, 32))
	require.NoError(t, err)

	txt := p.last.texts[0]
	assert.InDelta(t, 150.0/190.0, txt.sx, 1e-12)
	assert.Equal(t, 1.0, txt.sy, "text must not be scaled vertically")
	assert.InDelta(t, 150, txt.sx*b.TextWidth, 1e-9)
	assert.Equal(t, txt.sx, b.ScaleFactor)
}

func TestGenerateSizeIndependentOfName(t *testing.T) {
	g := nametag.NewGenerator(&fakeProvider{})
	for _, name := range []string{"", "A", "Green Machine", "a very long name which does not fit at all"} {
		for _, border := range []int{0, 2, 5} {
			s := nametag.NewSpec(name, 150, 32)
			s.Border = border
			b, err := g.Generate(s)
			require.NoError(t, err)
			assert.Equal(t, 150+2*border, b.Width, "%q border %d", name, border)
			assert.Equal(t, 32+2*border, b.Height, "%q border %d", name, border)
		}
	}
}

func TestGenerateEmptyName(t *testing.T) {
	p := &fakeProvider{}
	b, err := nametag.NewGenerator(p).Generate(nametag.NewSpec("", 150, 32))
	require.NoError(t, err)
	assert.Equal(t, 1.0, b.ScaleFactor)
	assert.Zero(t, b.TextWidth)
}

func TestGenerateInvalidArguments(t *testing.T) {
	p := &fakeProvider{}
	g := nametag.NewGenerator(p)
	for _, s := range []nametag.Spec{
		{Name: "x", BaseWidth: 0, FontSize: 32},
		{Name: "x", BaseWidth: -5, FontSize: 32},
		{Name: "x", BaseWidth: 150, FontSize: 0},
		{Name: "x", BaseWidth: 150, FontSize: -1},
		{Name: "x", BaseWidth: 150, FontSize: 32, Border: -2},
	} {
		_, err := g.Generate(s)
		assert.ErrorIs(t, err, nametag.ErrInvalidArgument, "%+v", s)
	}
	assert.Nil(t, p.last, "no surface may be created for invalid input")
}

func TestGenerateSurfaceError(t *testing.T) {
	boom := errors.New("no canvas")
	_, err := nametag.NewGenerator(&fakeProvider{err: boom}).Generate(nametag.NewSpec("x", 10, 10))
	assert.ErrorIs(t, err, boom)
}

func TestFitScale(t *testing.T) {
	assert.Equal(t, 1.0, nametag.FitScale(0, 150))
	assert.Equal(t, 1.0, nametag.FitScale(-1, 150))
	assert.Equal(t, 1.0, nametag.FitScale(100, 150))
	assert.Equal(t, 1.0, nametag.FitScale(150, 150))
	assert.Equal(t, 0.5, nametag.FitScale(300, 150))
}

func newRasterGenerator(t *testing.T) *nametag.Generator {
	t.Helper()
	p, err := raster.NewProvider(raster.Bold)
	require.NoError(t, err)
	return nametag.NewGenerator(p)
}

func TestRasterCases(t *testing.T) {
	g := newRasterGenerator(t)

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				b, err := g.Generate(tc.Spec)
				require.NoError(t, err)

				w, h := tc.Spec.Size()
				require.Equal(t, w, b.Width)
				require.Equal(t, h, b.Height)
				require.Len(t, b.Pix, 4*w*h)

				require.LessOrEqual(t, b.ScaleFactor*b.TextWidth, float64(tc.Spec.BaseWidth)+1e-6)
				switch tc.Fit {
				case testcases.FitNatural:
					assert.Equal(t, 1.0, b.ScaleFactor)
				case testcases.FitCompressed:
					assert.Less(t, b.ScaleFactor, 1.0)
					assert.InDelta(t, float64(tc.Spec.BaseWidth), b.ScaleFactor*b.TextWidth, 1e-6)
				}

				bg := color.RGBAModel.Convert(background(tc.Spec)).(color.RGBA)
				inked := 0
				for y := range b.Height {
					for x := range b.Width {
						if b.RGBAAt(x, y) != bg {
							inked++
						}
					}
				}
				switch tc.Ink {
				case testcases.InkNone:
					assert.Zero(t, inked, "blank label must only contain the background")
				case testcases.InkSome:
					assert.Positive(t, inked)
				}
			})
		}
	}
}

func background(s nametag.Spec) color.Color {
	if s.Background == nil {
		return nametag.DefaultBackground
	}
	return s.Background
}

// TestRasterTextFitsBaseWidth checks that the ink of a compressed name
// stays within the text area, with a little allowance for side bearings.
func TestRasterTextFitsBaseWidth(t *testing.T) {
	g := newRasterGenerator(t)
	s := nametag.NewSpec("Purple People Eater", 150, 32)
	s.Border = 10
	b, err := g.Generate(s)
	require.NoError(t, err)

	minX, maxX := b.Width, -1
	for y := range b.Height {
		for x := range b.Width {
			if b.RGBAAt(x, y) != nametag.DefaultBackground {
				minX, maxX = min(minX, x), max(maxX, x)
			}
		}
	}
	require.GreaterOrEqual(t, maxX, 0, "no text drawn")
	assert.GreaterOrEqual(t, minX, s.Border-2)
	assert.LessOrEqual(t, maxX, s.Border+s.BaseWidth+1)
	// the compressed name uses most of the available width
	assert.Greater(t, maxX-minX, s.BaseWidth*9/10)
}

func TestRasterDeterministic(t *testing.T) {
	g := newRasterGenerator(t)
	s := nametag.NewSpec("Red Menace", 150, 32)

	a, err := g.Generate(s)
	require.NoError(t, err)
	b, err := g.Generate(s)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a.Pix, b.Pix), "repeated generation differs")
}

func TestRasterBorderKeepsBackground(t *testing.T) {
	g := newRasterGenerator(t)
	b, err := g.Generate(nametag.NewSpec("Green Machine", 150, 32))
	require.NoError(t, err)

	for _, y := range []int{0, b.Height - 1} {
		for x := range b.Width {
			require.Equal(t, nametag.DefaultBackground, b.RGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
	for y := range b.Height {
		for _, x := range []int{0, b.Width - 1} {
			require.Equal(t, nametag.DefaultBackground, b.RGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

// inkRows returns the rows of img which contain a pixel differing from bg
// by more than a small threshold.
func inkRows(img *image.RGBA, bg color.RGBA) []int {
	diff := func(a, b uint8) bool { return max(a, b)-min(a, b) > 8 }
	var rows []int
	r := img.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if diff(c.R, bg.R) || diff(c.G, bg.G) || diff(c.B, bg.B) || diff(c.A, bg.A) {
				rows = append(rows, y-r.Min.Y)
				break
			}
		}
	}
	return rows
}

// TestRasterTextNotClippedVertically draws each name a second time onto a
// canvas with plenty of room above and below, using the same anchor
// shifted by a whole number of pixels.  Every row of ink found there must
// also be present in the label.
func TestRasterTextNotClippedVertically(t *testing.T) {
	const pad = 32
	p, err := raster.NewProvider(raster.Bold)
	require.NoError(t, err)
	g := nametag.NewGenerator(p)

	for _, name := range []string{"Purple People Eater", "Ünïcødé Ñame", "Jumpy Quagga"} {
		t.Run(name, func(t *testing.T) {
			s := nametag.NewSpec(name, 150, 32)
			b, err := g.Generate(s)
			require.NoError(t, err)

			sf, err := p.NewSurface(b.Width, b.Height+2*pad, float64(s.FontSize))
			require.NoError(t, err)
			sf.SetFillColor(nametag.DefaultBackground)
			sf.FillRect(0, 0, float64(b.Width), float64(b.Height+2*pad))
			sf.Translate(float64(b.Width)/2, float64(b.Height)/2+pad)
			sf.Scale(b.ScaleFactor, 1)
			sf.SetTextAlign(nametag.AlignCenter)
			sf.SetTextBaseline(nametag.BaselineMiddle)
			sf.SetFillColor(nametag.DefaultForeground)
			require.NoError(t, sf.FillText(name, 0, 0))

			tall := inkRows(sf.Image(), nametag.DefaultBackground)
			require.NotEmpty(t, tall, "no text drawn")
			for i := range tall {
				tall[i] -= pad
			}
			assert.Equal(t, tall, inkRows(b.Image(), nametag.DefaultBackground))
		})
	}
}
