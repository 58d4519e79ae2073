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

import "fmt"

// Extent is a band's block extent: either a known, finite length, or
// Unbounded for the sentinel band that stands in for "to +∞". Using a
// tagged length instead of a magic MAX value keeps the unbounded case
// exhaustively checkable instead of a comparison against a constant
// that also happens to be a valid length.
type Extent struct {
	length    Length
	unbounded bool
}

// Finite returns a bounded extent of the given length. n must be > 0
// for any band other than the one about to become the new sentinel's
// replacement during a split.
func Finite(n Length) Extent {
	return Extent{length: n}
}

// UnboundedExtent is the extent of the final, sentinel band.
var UnboundedExtent = Extent{unbounded: true}

// IsUnbounded reports whether e stands for "to +∞".
func (e Extent) IsUnbounded() bool {
	return e.unbounded
}

// Finite returns e's length and true, or (0, false) if e is unbounded.
func (e Extent) Finite() (Length, bool) {
	if e.unbounded {
		return 0, false
	}
	return e.length, true
}

// contains reports whether block position pos falls in the half-open
// range [start, start+e).
func (e Extent) contains(start, pos Length) bool {
	if pos < start {
		return false
	}
	if e.unbounded {
		return true
	}
	return pos < start+e.length
}

// sub returns the extent remaining after splitting off amount from the
// front of a range of extent e: an unbounded extent stays unbounded
// (infinity minus anything finite is still infinity), a finite extent
// shrinks by amount.
func (e Extent) sub(amount Length) Extent {
	if e.unbounded {
		return e
	}
	return Finite(e.length - amount)
}

func (e Extent) String() string {
	if e.unbounded {
		return "∞"
	}
	return fmt.Sprintf("%d", e.length)
}

// Band records one horizontal slice of the zone: how far the
// available area's edges are inset from the zone's edges, and how
// tall the slice is.
//
// Left and Right are stored as non-positive insets: Left == 0 means no
// left exclusion reaches this band, Left == -k means k app units of
// inline space are excluded on the left. Right follows the same
// convention on the right edge. Both invariants are maintained by the
// Exclusions engine, never by Band itself.
type Band struct {
	Left   Length
	Right  Length
	Length Extent
}

// availableSize returns how much inline space is free in this band,
// given the zone's inline width w.
func (b Band) availableSize(w Length) Length {
	return w + b.Left + b.Right
}

// get returns the inset on the given side.
func (b Band) get(side Side) Length {
	if side == Left {
		return b.Left
	}
	return b.Right
}

// set assigns the inset on the given side.
func (b *Band) set(side Side, v Length) {
	if side == Left {
		b.Left = v
	} else {
		b.Right = v
	}
}

func (b Band) String() string {
	return fmt.Sprintf("Band{left=%d, right=%d, length=%v}", b.Left, b.Right, b.Length)
}
