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

package float_test

import (
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/float"
	"seehuhn.de/go/float/scenarios"
)

// TestPlaceAllScenarios runs every named scenario through PlaceAll and
// checks the testable invariants from spec.md §8 against the result:
// no rectangle overflows the zone, no two rectangles with overlapping
// block ranges also overlap in their inline range, and nothing settles
// above the top of the zone.
//
// Invariants are checked after every prefix of the sequence, not just
// at the end, so a violation introduced mid-sequence by an earlier
// exclusion is caught at the step that created it.
func TestPlaceAllScenarios(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(scenarios.All)) {
		for _, sc := range scenarios.All[category] {
			t.Run(category+"/"+sc.Name, func(t *testing.T) {
				for n := 1; n <= len(sc.Exclusions); n++ {
					placed := float.PlaceAll(sc.InlineSize, sc.Exclusions[:n])
					checkNoOverflow(t, sc.InlineSize, placed)
					checkNoOverlap(t, placed)
				}
			})
		}
	}
}

// checkNoOverflow is invariant 1: every placed rectangle's occupied
// inline range lies within [0, w], and its block origin never goes
// negative.
func checkNoOverflow(t *testing.T, w float.Length, placed []float.Placed) {
	t.Helper()
	for i, p := range placed {
		if p.Origin.Block < 0 {
			t.Fatalf("placed[%d].Origin.Block = %d; want >= 0", i, p.Origin.Block)
		}
		if p.Origin.Inline < 0 {
			t.Fatalf("placed[%d].Origin.Inline = %d; want >= 0", i, p.Origin.Inline)
		}
		if p.Origin.Inline+p.Exclusion.Size.Inline > w {
			t.Fatalf("placed[%d] occupies inline [%d, %d); zone width is %d",
				i, p.Origin.Inline, p.Origin.Inline+p.Exclusion.Size.Inline, w)
		}
	}
}

// checkNoOverlap is invariant 2: no two placed rectangles whose block
// ranges intersect may also overlap in their inline range.
func checkNoOverlap(t *testing.T, placed []float.Placed) {
	t.Helper()
	for i := range placed {
		for j := i + 1; j < len(placed); j++ {
			a, b := placed[i], placed[j]
			if !blockRangesOverlap(a, b) {
				continue
			}
			if inlineRangesOverlap(a, b) {
				t.Fatalf("placed[%d] = %+v and placed[%d] = %+v overlap", i, a, j, b)
			}
		}
	}
}

func blockRangesOverlap(a, b float.Placed) bool {
	aLo, aHi := a.Origin.Block, a.Origin.Block+a.Exclusion.Size.Block
	bLo, bHi := b.Origin.Block, b.Origin.Block+b.Exclusion.Size.Block
	return aLo < bHi && bLo < aHi
}

func inlineRangesOverlap(a, b float.Placed) bool {
	aLo, aHi := a.Origin.Inline, a.Origin.Inline+a.Exclusion.Size.Inline
	bLo, bHi := b.Origin.Inline, b.Origin.Inline+b.Exclusion.Size.Inline
	return aLo < bHi && bLo < aHi
}

// TestPlaceAllClampsOversizeExclusions checks the driver's own
// precondition handling from spec.md §6: an exclusion wider than the
// zone is clamped rather than rejected.
func TestPlaceAllClampsOversizeExclusions(t *testing.T) {
	placed := float.PlaceAll(100, []float.Exclusion{
		{Side: float.Left, Size: float.Size{Inline: 500, Block: 10}},
	})
	if len(placed) != 1 {
		t.Fatalf("len(placed) = %d; want 1", len(placed))
	}
	if placed[0].Exclusion.Size.Inline != 100 {
		t.Fatalf("clamped inline size = %d; want 100", placed[0].Exclusion.Size.Inline)
	}
}

// BenchmarkPlaceAllManyIdenticalLeft exercises the amortized-merge-cost
// claim for repeated same-side, same-width floats: the "merge" scenario
// category holds 64 identical left floats precisely to make any
// regression to quadratic behavior show up here.
func BenchmarkPlaceAllManyIdenticalLeft(b *testing.B) {
	var sc scenarios.Scenario
	for _, s := range scenarios.All["merge"] {
		if s.Name == "many_identical_left" {
			sc = s
		}
	}

	b.ReportAllocs()
	for b.Loop() {
		float.PlaceAll(sc.InlineSize, sc.Exclusions)
	}
}
