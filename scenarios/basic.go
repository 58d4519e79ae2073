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

package scenarios

import "seehuhn.de/go/float"

// basicCases covers S1 (empty) and S2 (single left float).
var basicCases = []Scenario{
	{
		Name:       "empty",
		InlineSize: 100,
		Exclusions: nil,
	},
	{
		Name:       "single_left",
		InlineSize: 100,
		Exclusions: []float.Exclusion{
			excl(float.Left, 30, 20),
		},
	},
	{
		Name:       "single_right",
		InlineSize: 100,
		Exclusions: []float.Exclusion{
			excl(float.Right, 30, 20),
		},
	},
}
