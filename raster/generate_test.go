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
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/nametag"
)

func TestGenerateMatchesBoldProvider(t *testing.T) {
	s := nametag.NewSpec("Red Menace", 150, 32)

	got, err := Generate(s)
	require.NoError(t, err)

	p, err := NewProvider(Bold)
	require.NoError(t, err)
	want, err := nametag.NewGenerator(p).Generate(s)
	require.NoError(t, err)

	assert.Equal(t, 154, got.Width)
	assert.Equal(t, 36, got.Height)
	assert.True(t, bytes.Equal(want.Pix, got.Pix), "default generator differs from a bold provider")
	assert.Equal(t, want.ScaleFactor, got.ScaleFactor)
}

func TestGenerateConcurrent(t *testing.T) {
	names := []string{"Purple People Eater", "Green Machine", "Red Menace"}
	want := make([][]byte, len(names))
	for i, name := range names {
		b, err := Generate(nametag.NewSpec(name, 150, 32))
		require.NoError(t, err)
		want[i] = b.Pix
	}

	var wg sync.WaitGroup
	errs := make(chan error, 4*len(names))
	for range 4 {
		for i, name := range names {
			wg.Add(1)
			go func() {
				defer wg.Done()
				b, err := Generate(nametag.NewSpec(name, 150, 32))
				if err == nil && !bytes.Equal(want[i], b.Pix) {
					err = assert.AnError
				}
				errs <- err
			}()
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestGenerateInvalidSpec(t *testing.T) {
	_, err := Generate(nametag.NewSpec("x", 0, 32))
	assert.ErrorIs(t, err, nametag.ErrInvalidArgument)
}
