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
	"fmt"
	"log/slog"
)

// Generator renders name tags onto surfaces from a SurfaceProvider.
type Generator struct {
	surfaces SurfaceProvider
}

// NewGenerator returns a Generator which draws using p.
func NewGenerator(p SurfaceProvider) *Generator {
	return &Generator{surfaces: p}
}

// Generate renders the name tag described by s.
//
// The name is drawn centred, using the middle of the em box as the
// vertical anchor.  If the name is wider than s.BaseWidth, it is
// compressed horizontally to exactly that width.
func (g *Generator) Generate(s Spec) (*Bitmap, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	width, height := s.Size()

	sf, err := g.surfaces.NewSurface(width, height, float64(s.FontSize))
	if err != nil {
		return nil, fmt.Errorf("surface for %q: %w", s.Name, err)
	}

	textWidth, err := sf.MeasureText(s.Name)
	if err != nil {
		return nil, fmt.Errorf("measuring %q: %w", s.Name, err)
	}

	sf.SetFillColor(s.background())
	sf.FillRect(0, 0, float64(width), float64(height))

	scale := FitScale(textWidth, s.BaseWidth)
	sf.Translate(float64(width)/2, float64(height)/2)
	sf.Scale(scale, 1)
	sf.SetTextAlign(AlignCenter)
	sf.SetTextBaseline(BaselineMiddle)
	sf.SetFillColor(s.foreground())
	if err := sf.FillText(s.Name, 0, 0); err != nil {
		return nil, fmt.Errorf("drawing %q: %w", s.Name, err)
	}

	b := newBitmap(sf.Image())
	b.TextWidth = textWidth
	b.ScaleFactor = scale

	Logger().Debug("name tag generated",
		slog.String("name", s.Name),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Float64("textWidth", textWidth),
		slog.Float64("scale", scale))
	return b, nil
}
