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

// stackingCases covers S3 (two lefts sharing a row), S4 (two lefts
// that don't fit and stack vertically), and S5 (left and right
// sharing a row).
var stackingCases = []Scenario{
	{
		Name:       "two_left_share_row",
		InlineSize: 100,
		Exclusions: []float.Exclusion{
			excl(float.Left, 30, 20),
			excl(float.Left, 40, 20),
		},
	},
	{
		Name:       "two_left_stack_vertically",
		InlineSize: 100,
		Exclusions: []float.Exclusion{
			excl(float.Left, 60, 20),
			excl(float.Left, 60, 20),
		},
	},
	{
		Name:       "left_and_right_share_row",
		InlineSize: 100,
		Exclusions: []float.Exclusion{
			excl(float.Left, 30, 20),
			excl(float.Right, 40, 20),
		},
	},
	{
		// The first right float leaves 80 units free on its row, so
		// the second settles beside it, to its left, on the same row.
		Name:       "two_right_share_row",
		InlineSize: 100,
		Exclusions: []float.Exclusion{
			excl(float.Right, 20, 10),
			excl(float.Right, 20, 10),
		},
	},
	{
		// A tall left float followed by several narrower right
		// floats of varying height, exercising uneven settle depths
		// on both sides at once.
		Name:       "mixed_heights",
		InlineSize: 120,
		Exclusions: []float.Exclusion{
			excl(float.Left, 40, 50),
			excl(float.Right, 30, 10),
			excl(float.Right, 30, 15),
			excl(float.Left, 50, 5),
		},
	},
}
