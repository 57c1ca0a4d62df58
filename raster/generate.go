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
	"sync"

	"seehuhn.de/go/nametag"
)

var defaultGenerator = sync.OnceValues(func() (*nametag.Generator, error) {
	p, err := NewProvider(Bold)
	if err != nil {
		return nil, err
	}
	return nametag.NewGenerator(p), nil
})

// Generate renders the name tag described by s using the bold Go font.
// It is safe for concurrent use.
func Generate(s nametag.Spec) (*nametag.Bitmap, error) {
	g, err := defaultGenerator()
	if err != nil {
		return nil, err
	}
	return g.Generate(s)
}
