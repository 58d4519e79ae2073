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

package render

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/float"
)

// Layout is everything render needs to draw the result of one
// float.PlaceAll call: the zone width, its total block extent (the
// caller decides how far down to draw, since the zone itself may be
// unbounded), and the rectangles that were placed.
type Layout struct {
	InlineSize float.Length
	BlockSize  float.Length
	Placed     []float.Placed
}

// markerRadius is the corner radius of the rounded debug marker drawn
// at the top inline corner of every placed rectangle; it exists to
// give the rasteriser a cubic Bézier to flatten on every render, not
// just when a scenario happens to need curves.
const markerRadius = 3

// Silhouette builds a path outlining every placed rectangle in l, each
// as its own closed subpath, plus a small rounded-corner marker at the
// origin of each rectangle. Coordinates are in layout units with the
// origin at the top-left, Y growing downward, matching float.Point.
func Silhouette(l Layout) *path.Data {
	p := &path.Data{}
	for _, pl := range l.Placed {
		x0 := float64(pl.Origin.Inline)
		y0 := float64(pl.Origin.Block)
		x1 := x0 + float64(pl.Exclusion.Size.Inline)
		y1 := y0 + float64(pl.Exclusion.Size.Block)

		p = rectangleSubpath(p, x0, y0, x1, y1)
		p = roundedCornerMarker(p, x0, y0)
	}
	return p
}

// rectangleSubpath appends a clockwise rectangle, [x0,x1]×[y0,y1], as a
// new closed subpath.
func rectangleSubpath(p *path.Data, x0, y0, x1, y1 float64) *path.Data {
	return p.
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// roundedCornerMarker draws a small quarter-circle fan, approximated
// with a single cubic Bézier, hugging the inside of the corner at
// (cx, cy). It is purely decorative: a visual cue for where a
// rectangle's origin landed, built the same way the teacher approximates
// circular arcs elsewhere (kappa ≈ 0.5523 for a quarter circle).
func roundedCornerMarker(p *path.Data, cx, cy float64) *path.Data {
	const kappa = 0.5522847498307936
	r := float64(markerRadius)
	k := r * kappa

	return p.
		MoveTo(vec.Vec2{X: cx + r, Y: cy}).
		CubeTo(
			vec.Vec2{X: cx + r, Y: cy + k},
			vec.Vec2{X: cx + k, Y: cy + r},
			vec.Vec2{X: cx, Y: cy + r},
		).
		LineTo(vec.Vec2{X: cx, Y: cy}).
		Close()
}
