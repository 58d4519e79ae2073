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

import (
	"fmt"
	"strings"

	"seehuhn.de/go/float/splay"
)

// Exclusions tracks the silhouette of a layout zone: a fixed inline
// width and the bands already carved out by previously placed
// exclusions. The zero value is not usable; construct one with [New].
//
// An Exclusions value is exclusively owned. Both Place and Exclude
// mutate it, even Place, which only ever re-shapes the tree through
// splaying and never changes a band's content.
type Exclusions struct {
	bands      *splay.Map[Length, Band]
	inlineSize Length
}

// New returns a zone of the given inline width, with no exclusions
// placed yet: a single sentinel band spanning the whole, unbounded
// block axis.
func New(w Length) *Exclusions {
	bands := splay.New[Length, Band]()
	bands.Insert(0, Band{Left: 0, Right: 0, Length: UnboundedExtent})
	return &Exclusions{bands: bands, inlineSize: w}
}

// Clone returns a deep copy of e; mutating one does not affect the
// other.
func (e *Exclusions) Clone() *Exclusions {
	return &Exclusions{bands: e.bands.Clone(), inlineSize: e.inlineSize}
}

// InlineSize returns the zone's fixed inline width.
func (e *Exclusions) InlineSize() Length {
	return e.inlineSize
}

// Place finds the topmost band an object of size.Inline fits in and
// returns the origin at which it should be drawn, flush against side.
// Place does not change the silhouette, but like every operation on
// Exclusions it may re-shape the tree through splaying.
func (e *Exclusions) Place(side Side, size Size) Placement {
	start, band, ok := e.bands.SearchLowerBound(func(bandStart Length, b Band) splay.Ordering {
		return fitOrdering(bandStart, b, size.Inline, e.inlineSize)
	})
	if !ok {
		panic("float: Exclusions.Place: no band matched the fit search; band invariants are violated")
	}

	var inlinePos Length
	switch side {
	case Left:
		inlinePos = -band.Left
	case Right:
		inlinePos = e.inlineSize + band.Right - size.Inline
	}

	return Placement{
		Origin:              Point{Inline: inlinePos, Block: start},
		AvailableInlineSize: band.availableSize(e.inlineSize),
		Side:                side,
	}
}

// fitOrdering is the band-fit comparator from spec §4.3.2: any band
// the object fits in (or the final sentinel, which always accepts) is
// a match; earlier block positions are searched first since the goal
// is the topmost fitting band.
func fitOrdering(bandStart Length, b Band, wanted, zoneWidth Length) splay.Ordering {
	if wanted <= b.availableSize(zoneWidth) {
		return splay.Less
	}
	if b.Length.IsUnbounded() {
		return splay.Equal
	}
	return splay.Greater
}

// Exclude registers that a rectangle of size.Inline × size.Block now
// occupies the zone flush against side, with its block extent
// spanning [0, size.Block). It is a no-op if either dimension is
// zero.
func (e *Exclusions) Exclude(side Side, size Size) {
	if size.Inline == 0 || size.Block == 0 {
		return
	}

	e.split(size.Block)

	cursor := size.Block
	var cursorBand Band
	haveCursorBand := false

	for {
		found, band, ok := e.bands.Search(func(bandStart Length, b Band) splay.Ordering {
			return containmentOrdering(bandStart, b.Length, cursor)
		})
		if !ok {
			break
		}
		if -band.get(side) > size.Inline {
			break
		}

		band.set(side, -size.Inline)

		merge := haveCursorBand && band.Left == cursorBand.Left && band.Right == cursorBand.Right
		if merge {
			band.Length = growBy(band.Length, cursorBand.Length)
		}

		e.bands.Insert(found, band)
		if merge {
			e.bands.Remove(cursor)
		}

		cursor = found
		cursorBand = band
		haveCursorBand = true
	}
}

// containmentOrdering locates the band whose range contains
// position−1: the band immediately above the cursor, since block
// position grows downward through the document.
func containmentOrdering(bandStart Length, length Extent, position Length) splay.Ordering {
	if position <= bandStart {
		return splay.Less
	}
	if end, ok := length.Finite(); ok && position > bandStart+end {
		return splay.Greater
	}
	return splay.Equal
}

// growBy adds other's length onto e's, used when two adjacent bands
// merge after ending up with identical (left, right) insets. An
// unbounded extent absorbs anything added to it.
func growBy(e, other Extent) Extent {
	if e.unbounded || other.unbounded {
		return UnboundedExtent
	}
	return Finite(e.length + other.length)
}

// split ensures a band boundary exists exactly at position, splitting
// whichever band currently straddles it into an upper piece (shrunk to
// end at position) and a lower piece (starting at position, carrying
// the same insets, running to the old band's former end). If position
// already is a band boundary, split is a no-op: this is the early-out
// spec.md §9(b) permits, avoiding a transient zero-length entry.
func (e *Exclusions) split(position Length) {
	if _, ok := e.bands.Get(position); ok {
		return
	}

	upperKey, upperBand, ok := e.bands.Search(func(bandStart Length, b Band) splay.Ordering {
		switch {
		case position < bandStart:
			return splay.Less
		default:
			if end, fin := b.Length.Finite(); fin && position >= bandStart+end {
				return splay.Greater
			}
			return splay.Equal
		}
	})
	if !ok {
		panic("float: Exclusions.split: no band contains the split position; band invariants are violated")
	}

	lowerExtent := upperBand.Length.sub(position - upperKey)
	lowerBand := Band{Left: upperBand.Left, Right: upperBand.Right, Length: lowerExtent}

	upperBand.Length = Finite(position - upperKey)
	e.bands.Insert(upperKey, upperBand)
	e.bands.Insert(position, lowerBand)
}

// String renders the band sequence for debugging, in ascending block
// order.
func (e *Exclusions) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Exclusions(inline_size=%d):\n", e.inlineSize)
	for _, entry := range e.Bands() {
		fmt.Fprintf(&b, "  %d: %v\n", entry.Start, entry.Band)
	}
	return b.String()
}

// Bands returns the current bands in ascending block order, on a
// cloned tree so the original's shape (and thus any splay-dependent
// amortized cost guarantee) is left untouched. Bands are contiguous
// and each starts exactly at the end of its predecessor, so this is a
// plain chase of Get calls rather than a tree traversal; it is meant
// for tests, debugging, and the render package, not the hot path.
func (e *Exclusions) Bands() []BandEntry {
	var out []BandEntry
	clone := e.Clone()
	pos := Length(0)
	for {
		band, ok := clone.bands.Get(pos)
		if !ok {
			break
		}
		out = append(out, BandEntry{Start: pos, Band: band})
		length, finite := band.Length.Finite()
		if !finite {
			break
		}
		pos += length
	}
	return out
}

// BandEntry pairs a band with its starting block position, as
// returned by [Exclusions.Bands].
type BandEntry struct {
	Start Length
	Band  Band
}
