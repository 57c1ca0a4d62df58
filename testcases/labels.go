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

package testcases

import (
	"image/color"

	"seehuhn.de/go/nametag"
)

// Demo lists the three characters of the sprite label scene.
var Demo = []nametag.Spec{
	spec("Purple People Eater", 150, 32),
	spec("Green Machine", 150, 32),
	spec("Red Menace", 150, 32),
}

var demoCases = []TestCase{
	{Name: "purple_people_eater", Spec: Demo[0], Fit: FitCompressed, Ink: InkSome},
	{Name: "green_machine", Spec: Demo[1], Fit: FitCompressed, Ink: InkSome},
	{Name: "red_menace", Spec: Demo[2], Ink: InkSome},
}

var fitCases = []TestCase{
	{Name: "short", Spec: spec("Red", 150, 32), Fit: FitNatural, Ink: InkSome},
	{Name: "small_font", Spec: spec("Bob", 60, 20), Fit: FitNatural, Ink: InkSome},
	{Name: "single_letter", Spec: spec("i", 40, 32), Fit: FitNatural, Ink: InkSome},
	{Name: "wide_area", Spec: spec("Green Machine", 600, 32), Fit: FitNatural, Ink: InkSome},
}

var compressCases = []TestCase{
	{Name: "long_name", Spec: spec("Purple People Eater", 120, 32), Fit: FitCompressed, Ink: InkSome},
	{Name: "narrow", Spec: spec("Green Machine", 100, 24), Fit: FitCompressed, Ink: InkSome},
	{Name: "wide_letters", Spec: spec("WWWWWWWWWW", 100, 16), Fit: FitCompressed, Ink: InkSome},
	{Name: "tiny_area", Spec: spec("Red Menace", 1, 1), Fit: FitCompressed},
}

var edgeCases = []TestCase{
	{Name: "empty", Spec: spec("", 150, 32), Fit: FitNatural, Ink: InkNone},
	{Name: "space_only", Spec: spec("   ", 150, 32), Fit: FitNatural, Ink: InkNone},
	{Name: "no_border", Spec: withBorder(spec("Red", 150, 32), 0), Fit: FitNatural, Ink: InkSome},
	{Name: "wide_border", Spec: withBorder(spec("Red Menace", 150, 32), 20), Ink: InkSome},
	{Name: "accents", Spec: spec("Ünïcødé Ñame", 150, 32), Ink: InkSome},
	{Name: "colours", Spec: withColours(spec("Green Machine", 150, 32),
		color.RGBA{R: 255, G: 255, B: 255, A: 255}, color.RGBA{G: 128, A: 255}),
		Fit: FitCompressed, Ink: InkSome},
	{Name: "same_colours", Spec: withColours(spec("Green Machine", 150, 32),
		color.RGBA{R: 40, G: 40, B: 40, A: 255}, color.RGBA{R: 40, G: 40, B: 40, A: 255}),
		Fit: FitCompressed, Ink: InkNone},
}

func withBorder(s nametag.Spec, border int) nametag.Spec {
	s.Border = border
	return s
}

func withColours(s nametag.Spec, bg, fg color.Color) nametag.Spec {
	s.Background = bg
	s.Foreground = fg
	return s
}
