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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// fillRule selects how the interior of a self-overlapping path is found.
type fillRule int

const (
	// nonZero treats a point as inside if the winding number is non-zero.
	// Glyph outlines are designed for this rule.
	nonZero fillRule = iota

	// evenOdd treats a point as inside if a ray from it crosses the
	// outline an odd number of times.
	evenOdd
)

// spanFunc receives the coverage of one scanline, starting at pixel x0.
// The coverage slice is only valid for the duration of the call.
type spanFunc func(y, x0 int, coverage []float32)

// edge is a line segment in device space.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// rasteriser computes, for every pixel touched by a filled path, the
// fraction of the pixel area covered by the path.
//
// Internal buffers grow as needed and are reused between calls.
// A rasteriser is not safe for concurrent use.
type rasteriser struct {
	// CTM maps user space to device space. It must be non-singular.
	CTM matrix.Matrix

	// Clip limits output to an integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a
	// curve and the line segments used to approximate it.
	Flatness float64

	// bufferedArea is the largest bounding box area (in pixels) which is
	// rendered using full 2D accumulation buffers.  Larger paths use an
	// active edge list with single-row buffers.
	bufferedArea int

	cover    []float32
	area     []float32
	edges    []edge
	active   []int
	rowTouch []bool

	haveBox      bool
	boxX0, boxX1 float64
	boxY0, boxY1 float64
}

// newRasteriser returns a rasteriser which clips to the given rectangle
// and uses the identity transformation.
func newRasteriser(clip rect.Rect) *rasteriser {
	return &rasteriser{
		CTM:          matrix.Identity,
		Clip:         clip,
		Flatness:     defaultFlatness,
		bufferedArea: bufferedAreaLimit,
	}
}

// Fill rasterises the interior of p according to rule and reports the
// resulting coverage row by row, from top to bottom.
func (r *rasteriser) Fill(p *path.Data, rule fillRule, emit spanFunc) {
	x0, x1, y0, y1, ok := r.buildEdges(p)
	if !ok {
		return
	}
	if (x1-x0)*(y1-y0) < r.bufferedArea {
		r.fillBuffered(x0, x1, y0, y1, rule, emit)
	} else {
		r.fillScanning(x0, x1, y0, y1, rule, emit)
	}
}

// linear applies the 2×2 part of the CTM.
func (r *rasteriser) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// quadratic splits a quadratic Bézier curve into line segments.  The
// number of segments is chosen from the device-space deviation of the
// control point, so that anisotropic transforms are handled correctly.
func (r *rasteriser) quadratic(p0, p1, p2 vec.Vec2) {
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, q)
		prev = q
	}
}

// cubic splits a cubic Bézier curve into line segments, using Wang's
// formula for the segment count.
func (r *rasteriser) cubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, q)
		prev = q
	}
}

// buildEdges converts p into device-space edges and returns the
// integer bounding box of the edges, clipped to r.Clip.
func (r *rasteriser) buildEdges(p *path.Data) (x0, x1, y0, y1 int, ok bool) {
	r.edges = r.edges[:0]
	r.haveBox = false

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.quadratic(cur, p.Coords[k], p.Coords[k+1])
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.cubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	// filling closes open subpaths implicitly
	if cur != start {
		r.addEdge(cur, start)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	x0 = max(int(math.Floor(r.boxX0)), int(r.Clip.LLx))
	x1 = min(int(math.Floor(r.boxX1))+1, int(r.Clip.URx))
	y0 = max(int(math.Floor(r.boxY0)), int(r.Clip.LLy))
	y1 = min(int(math.Floor(r.boxY1))+1, int(r.Clip.URy))
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}
	return x0, x1, y0, y1, true
}

// addEdge appends the user-space segment from a to b to the edge list.
func (r *rasteriser) addEdge(a, b vec.Vec2) {
	m := r.CTM
	ax := m[0]*a.X + m[2]*a.Y + m[4]
	ay := m[1]*a.X + m[3]*a.Y + m[5]
	bx := m[0]*b.X + m[2]*b.Y + m[4]
	by := m[1]*b.X + m[3]*b.Y + m[5]

	dy := by - ay
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: ax, y0: ay, x1: bx, y1: by, dxdy: (bx - ax) / dy})

	if !r.haveBox {
		r.boxX0, r.boxX1 = min(ax, bx), max(ax, bx)
		r.boxY0, r.boxY1 = min(ay, by), max(ay, by)
		r.haveBox = true
		return
	}
	r.boxX0 = min(r.boxX0, ax, bx)
	r.boxX1 = max(r.boxX1, ax, bx)
	r.boxY0 = min(r.boxY0, ay, by)
	r.boxY1 = max(r.boxY1, ay, by)
}

// Each edge crossing a pixel adds two quantities to the accumulation
// buffers:
//
//	cover = ±dy              signed vertical extent inside the pixel
//	area  = cover·(1-xFrac)  the part of cover to the right of the edge
//
// Running along a scanline, the coverage of pixel i is
// sum(cover[0:i]) + area[i].  Folding this value by the fill rule gives
// anti-aliased coverage in [0, 1].

// accumulate adds the contribution of e within scanline y to the
// buffers, which are indexed by x - bx0.  Contributions left of the
// buffer are collected in the first cell.
func (r *rasteriser) accumulate(e *edge, y int, cover, area []float32, bx0, bx1 int) {
	top := max(float64(y), e.yMin())
	bot := min(float64(y+1), e.yMax())
	if bot <= top {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xt := e.x0 + e.dxdy*(top-e.y0)
	xb := e.x0 + e.dxdy*(bot-e.y0)
	left, right := min(xt, xb), max(xt, xb)
	pl := int(math.Floor(left))
	pr := int(math.Floor(right))

	switch {
	case pr < bx0:
		c := sign * float32(bot-top)
		cover[0] += c
		area[0] += c
		return
	case pl >= bx1:
		return
	case pl == pr:
		r.accumulateCell(e, top, bot, sign, pl, cover, area, bx0, bx1)
		return
	}

	dydx := 1 / e.dxdy
	for px := pl; px <= pr; px++ {
		ya := e.y0 + dydx*(float64(px)-e.x0)
		yb := e.y0 + dydx*(float64(px+1)-e.x0)
		s0 := max(min(ya, yb), top)
		s1 := min(max(ya, yb), bot)
		if s1 <= s0 {
			continue
		}
		r.accumulateCell(e, s0, s1, sign, px, cover, area, bx0, bx1)
	}
}

// accumulateCell handles the part of e between y-coordinates top and
// bot, which lies within the single pixel column px.
func (r *rasteriser) accumulateCell(e *edge, top, bot float64, sign float32, px int, cover, area []float32, bx0, bx1 int) {
	c := sign * float32(bot-top)
	if px < bx0 {
		cover[0] += c
		area[0] += c
		return
	}
	if px >= bx1 {
		return
	}

	xm := e.x0 + e.dxdy*((top+bot)/2-e.y0)
	frac := xm - float64(px)

	i := px - bx0
	cover[i] += c
	area[i] += c * float32(1-frac)
}

// integrate turns the accumulated buffers of one scanline into
// coverage values, stored in cover.
func integrate(cover, area []float32, rule fillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == evenOdd {
			mod := raw - 2*float32(int(raw/2))
			raw = 1 - abs32(1-mod)
		} else if raw > 1 {
			raw = 1
		}
		cover[i] = raw
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros strips zero coverage from both ends of a scanline.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillBuffered accumulates all edges into 2D buffers covering the
// bounding box, then integrates row by row.
func (r *rasteriser) fillBuffered(x0, x1, y0, y1 int, rule fillRule, emit spanFunc) {
	w, h := x1-x0, y1-y0
	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	r.rowTouch = slices.Grow(r.rowTouch[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.rowTouch)

	for i := range r.edges {
		e := &r.edges[i]
		from := max(int(math.Floor(e.yMin())), y0)
		to := min(int(math.Floor(e.yMax()))+1, y1)
		for y := from; y < to; y++ {
			row := y - y0
			off := row * w
			r.accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], x0, x1)
			r.rowTouch[row] = true
		}
	}

	for row := range h {
		if !r.rowTouch[row] {
			continue
		}
		off := row * w
		line := r.cover[off : off+w]
		integrate(line, r.area[off:off+w], rule)
		if span, dx := trimZeros(line); span != nil {
			emit(y0+row, x0+dx, span)
		}
	}
}

// fillScanning walks the scanlines top to bottom, keeping a list of the
// edges which intersect the current row.
func (r *rasteriser) fillScanning(x0, x1, y0, y1 int, rule fillRule, emit spanFunc) {
	w := x1 - x0
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := y0; y < y1; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < bot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)

		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(e, y, r.cover, r.area, x0, x1)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if span, dx := trimZeros(r.cover); span != nil {
			emit(y, x0+dx, span)
		}
	}
}

const (
	// defaultFlatness is the curve tolerance in device pixels.  0.25 is
	// below what can be seen at label sizes.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// bufferedAreaLimit bounds the bounding box area of paths which use
	// 2D accumulation buffers.
	bufferedAreaLimit = 65536
)
