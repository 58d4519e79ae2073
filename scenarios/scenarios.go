// seehuhn.de/go/raster - a 2D rendering library
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

// Package scenarios holds named, fixed exclusion sequences used both
// by the test suite and by cmd/floatvis, in the same
// category-to-named-cases shape the teacher's testcases package uses
// for rendering fixtures.
package scenarios

import "seehuhn.de/go/float"

// Scenario is a named sequence of exclusions run against a zone of a
// fixed width.
type Scenario struct {
	Name       string
	InlineSize float.Length
	Exclusions []float.Exclusion
}

// All groups every scenario by category. Category names are used as a
// filename-safe prefix by cmd/floatvis, mirroring how the teacher's
// testcases.All keys prefix reference image names.
var All = map[string][]Scenario{
	"basic":    basicCases,
	"stacking": stackingCases,
	"merge":    mergeCases,
}

// excl is a terse constructor for float.Exclusion, used to keep the
// scenario tables below readable.
func excl(side float.Side, inline, block float.Length) float.Exclusion {
	return float.Exclusion{Side: side, Size: float.Size{Inline: inline, Block: block}}
}
