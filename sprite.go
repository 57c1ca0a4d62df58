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

// DefaultSpriteScale converts label pixels into world units.
const DefaultSpriteScale = 0.01

// SpriteScale returns the world-space size of a sprite showing b, when
// one pixel corresponds to pixelScale world units.  The aspect ratio of
// the bitmap is preserved.
func SpriteScale(b *Bitmap, pixelScale float64) (x, y float64) {
	return float64(b.Width) * pixelScale, float64(b.Height) * pixelScale
}

// LabelOffset returns the height at which to place the centre of a label
// sprite, so that it floats clear of an object whose top is at headTop.
func LabelOffset(headTop float64, fontSize int, pixelScale float64) float64 {
	return headTop + float64(fontSize)*pixelScale
}
