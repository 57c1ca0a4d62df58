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

// Package testcases collects name tags used to test label generation.
package testcases

import "seehuhn.de/go/nametag"

// TestCase defines a single label rendering test.
type TestCase struct {
	Name string // lowercase a-z and _ only
	Spec nametag.Spec
	Fit  Fit
	Ink  Ink
}

// Fit is the expected horizontal scaling of the text.
type Fit int

const (
	FitAny        Fit = iota // not checked
	FitNatural               // drawn at natural width
	FitCompressed            // compressed to the base width
)

// Ink is the expected presence of text pixels.
type Ink int

const (
	InkAny  Ink = iota // not checked
	InkNone            // background only
	InkSome            // at least one pixel differs from the background
)

// All contains all test cases, grouped by category.
var All = map[string][]TestCase{
	"demo":     demoCases,
	"fit":      fitCases,
	"compress": compressCases,
	"edge":     edgeCases,
}

// spec returns a label specification with the default border.
func spec(name string, width, size int) nametag.Spec {
	return nametag.NewSpec(name, width, size)
}
