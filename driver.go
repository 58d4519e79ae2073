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

package float

// Exclusion is one rectangle to place and then register, as fed to
// [PlaceAll].
type Exclusion struct {
	Side Side
	Size Size
}

// Placed is the result of running one [Exclusion] through [PlaceAll]:
// the request as given, and the origin it settled at.
type Placed struct {
	Exclusion Exclusion
	Origin    Point
}

// PlaceAll runs a sequence of exclusions against a zone of inline
// width w, in order: for each exclusion, clamp its inline size to w,
// place it, convert the placement to an absolute occupied extent, and
// commit that extent with Exclude. This is the full contract spec §6
// gives for the driver that sits above the engine; PlaceAll implements
// it directly since the contract leaves nothing unspecified.
func PlaceAll(w Length, exclusions []Exclusion) []Placed {
	zone := New(w)
	placed := make([]Placed, 0, len(exclusions))

	for _, excl := range exclusions {
		size := excl.Size
		if size.Inline > w {
			size.Inline = w
		}

		placement := zone.Place(excl.Side, size)

		var absInline Length
		switch excl.Side {
		case Left:
			absInline = placement.Origin.Inline + size.Inline
		case Right:
			absInline = w - placement.Origin.Inline
		}
		absBlock := placement.Origin.Block + size.Block

		zone.Exclude(excl.Side, Size{Inline: absInline, Block: absBlock})

		placed = append(placed, Placed{
			Exclusion: Exclusion{Side: excl.Side, Size: size},
			Origin:    placement.Origin,
		})
	}

	return placed
}
