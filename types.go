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

// Package float implements the geometric core of CSS 2.1 §9.5.1 float
// placement: given a layout zone of fixed inline width and unbounded
// block length, and a sequence of rectangular exclusions stacked
// against the left or right edge, it computes where each exclusion
// settles. An [Exclusions] value tracks the current silhouette of
// already-placed exclusions as an ordered sequence of horizontal
// bands; [Exclusions.Place] queries the topmost position a new
// rectangle fits at, and [Exclusions.Exclude] commits a rectangle to
// the silhouette.
package float

import "math"

// Length is a signed coordinate or extent in app units, the fixed
// integer scale CSS layout computes in. Addition, subtraction, and
// negation are ordinary int32 arithmetic; callers are expected to keep
// values well inside range (see DESIGN.md for the open question this
// leaves unresolved).
type Length int32

// Side names one of the two edges exclusions can be flush against.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Size is a width/height pair. Inline is the horizontal extent, block
// the vertical extent, using the writing-mode-neutral axis names CSS
// layout uses.
type Size struct {
	Inline Length
	Block  Length
}

// Point is an origin inside the zone, in the same axes as [Size].
type Point struct {
	Inline Length
	Block  Length
}

// Placement is the result of [Exclusions.Place]: the origin at which
// an object should be drawn, the available inline size of the band it
// was placed in, and the side it was placed against.
type Placement struct {
	Origin              Point
	AvailableInlineSize Length
	Side                Side
}

// maxLength is the largest representable Length. Nothing in the
// package references it; in particular it is never a stand-in for the
// unbounded sentinel (see Extent).
const maxLength = Length(math.MaxInt32)
