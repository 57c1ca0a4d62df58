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

package raster

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Weight selects one of the built-in fonts.
type Weight int

const (
	Bold Weight = iota
	Regular
)

func (w Weight) String() string {
	switch w {
	case Bold:
		return "bold"
	case Regular:
		return "regular"
	default:
		return fmt.Sprintf("Weight(%d)", int(w))
	}
}

// ParseWeight converts "bold" or "regular" into a Weight.
// The empty string gives Bold.
func ParseWeight(s string) (Weight, error) {
	switch s {
	case "", "bold":
		return Bold, nil
	case "regular":
		return Regular, nil
	default:
		return 0, fmt.Errorf("unknown font weight %q", s)
	}
}

// LoadFont parses one of the Go fonts bundled with x/image.
func LoadFont(w Weight) (*sfnt.Font, error) {
	var data []byte
	switch w {
	case Bold:
		data = gobold.TTF
	case Regular:
		data = goregular.TTF
	default:
		return nil, fmt.Errorf("unknown font weight %d", int(w))
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s font: %w", w, err)
	}
	return f, nil
}

// Face is a font at a fixed pixel size.
//
// A Face is not safe for concurrent use, since it owns the scratch
// buffer used for glyph lookups.
type Face struct {
	font *sfnt.Font
	size float64
	ppem fixed.Int26_6
	buf  sfnt.Buffer
}

// NewFace returns a face of f, scaled so that the distance from the
// ascender to the descender line is size pixels.  Glyphs which stay
// within the font's ascent and descent then fit into a line of height
// size.
func NewFace(f *sfnt.Font, size float64) (*Face, error) {
	var buf sfnt.Buffer
	upem := f.UnitsPerEm()
	m, err := f.Metrics(&buf, fixed.I(int(upem)), font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("font metrics: %w", err)
	}
	em := size
	if extent := fromFixed(m.Ascent + m.Descent); extent > 0 {
		em = size * float64(upem) / extent
	}
	return &Face{
		font: f,
		size: size,
		ppem: fixed.Int26_6(em*64 + 0.5),
		buf:  buf,
	}, nil
}

// Size returns the line height in pixels.
func (fc *Face) Size() float64 {
	return fc.size
}

// Metrics returns the ascent and descent of the face in pixels.
// Both values are positive for normal fonts.
func (fc *Face) Metrics() (ascent, descent float64, err error) {
	m, err := fc.font.Metrics(&fc.buf, fc.ppem, font.HintingNone)
	if err != nil {
		return 0, 0, err
	}
	return fromFixed(m.Ascent), fromFixed(m.Descent), nil
}

// Advance returns the width of text set in a single line without
// scaling: the sum of glyph advances, adjusted by pair kerning.
func (fc *Face) Advance(text string) (float64, error) {
	var total fixed.Int26_6
	var prev sfnt.GlyphIndex
	first := true
	for _, r := range text {
		gid, err := fc.glyph(r)
		if err != nil {
			return 0, err
		}
		if !first {
			total += fc.kern(prev, gid)
		}
		adv, err := fc.font.GlyphAdvance(&fc.buf, gid, fc.ppem, font.HintingNone)
		if err != nil {
			return 0, fmt.Errorf("advance of %q: %w", r, err)
		}
		total += adv
		prev, first = gid, false
	}
	return fromFixed(total), nil
}

// AppendText appends the outlines of text to p.  The pen starts at
// (x, baseline) in a coordinate system where y grows downwards, and
// moves by the same advances which Advance adds up.
func (fc *Face) AppendText(p *path.Data, text string, x, baseline float64) error {
	var prev sfnt.GlyphIndex
	first := true
	for _, r := range text {
		gid, err := fc.glyph(r)
		if err != nil {
			return err
		}
		if !first {
			x += fromFixed(fc.kern(prev, gid))
		}
		if err := fc.appendGlyph(p, gid, x, baseline); err != nil {
			return fmt.Errorf("outline of %q: %w", r, err)
		}
		adv, err := fc.font.GlyphAdvance(&fc.buf, gid, fc.ppem, font.HintingNone)
		if err != nil {
			return fmt.Errorf("advance of %q: %w", r, err)
		}
		x += fromFixed(adv)
		prev, first = gid, false
	}
	return nil
}

// appendGlyph adds the contours of one glyph, each as a closed subpath.
func (fc *Face) appendGlyph(p *path.Data, gid sfnt.GlyphIndex, x, y float64) error {
	segs, err := fc.font.LoadGlyph(&fc.buf, gid, fc.ppem, nil)
	if err != nil {
		return err
	}

	pt := func(q fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: x + fromFixed(q.X), Y: y + fromFixed(q.Y)}
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Cmds = append(p.Cmds, path.CmdClose)
			}
			p.Cmds = append(p.Cmds, path.CmdMoveTo)
			p.Coords = append(p.Coords, pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p.Cmds = append(p.Cmds, path.CmdLineTo)
			p.Coords = append(p.Coords, pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p.Cmds = append(p.Cmds, path.CmdQuadTo)
			p.Coords = append(p.Coords, pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p.Cmds = append(p.Cmds, path.CmdCubeTo)
			p.Coords = append(p.Coords, pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	if open {
		p.Cmds = append(p.Cmds, path.CmdClose)
	}
	return nil
}

// glyph maps r to a glyph index.  Characters which are not in the font
// use the .notdef glyph.
func (fc *Face) glyph(r rune) (sfnt.GlyphIndex, error) {
	gid, err := fc.font.GlyphIndex(&fc.buf, r)
	if err != nil {
		return 0, fmt.Errorf("glyph for %q: %w", r, err)
	}
	return gid, nil
}

func (fc *Face) kern(a, b sfnt.GlyphIndex) fixed.Int26_6 {
	k, err := fc.font.Kern(&fc.buf, a, b, fc.ppem, font.HintingNone)
	if err != nil {
		// ErrNotFound for fonts or pairs without kerning data
		return 0
	}
	return k
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
