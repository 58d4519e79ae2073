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

package splay

import (
	"math/rand"
	"slices"
	"testing"
)

func TestInsertGet(t *testing.T) {
	m := New[int, string]()
	m.Insert(5, "five")
	m.Insert(1, "one")
	m.Insert(9, "nine")

	for k, want := range map[int]string{5: "five", 1: "one", 9: "nine"} {
		v, ok := m.Get(k)
		if !ok || v != want {
			t.Errorf("Get(%d) = %q, %v; want %q, true", k, v, ok, want)
		}
	}
	if _, ok := m.Get(42); ok {
		t.Errorf("Get(42) found an entry that was never inserted")
	}
}

func TestInsertOverwrite(t *testing.T) {
	m := New[int, string]()
	m.Insert(1, "a")
	prior, had := m.Insert(1, "b")
	if !had || prior != "a" {
		t.Fatalf("Insert overwrite returned %q, %v; want %q, true", prior, had, "a")
	}
	v, _ := m.Get(1)
	if v != "b" {
		t.Fatalf("Get(1) = %q; want %q", v, "b")
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d; want 1", m.Len())
	}
}

func TestRemove(t *testing.T) {
	m := New[int, int]()
	for i := range 20 {
		m.Insert(i, i*i)
	}
	if m.Len() != 20 {
		t.Fatalf("Len() = %d; want 20", m.Len())
	}

	for i := 0; i < 20; i += 2 {
		v, ok := m.Remove(i)
		if !ok || v != i*i {
			t.Fatalf("Remove(%d) = %d, %v; want %d, true", i, v, ok, i*i)
		}
	}
	if m.Len() != 10 {
		t.Fatalf("Len() after removing evens = %d; want 10", m.Len())
	}
	for i := 0; i < 20; i++ {
		v, ok := m.Get(i)
		if i%2 == 0 {
			if ok {
				t.Errorf("Get(%d) still found after removal", i)
			}
		} else if !ok || v != i*i {
			t.Errorf("Get(%d) = %d, %v; want %d, true", i, v, ok, i*i)
		}
	}

	if _, ok := m.Remove(1000); ok {
		t.Errorf("Remove of an absent key reported success")
	}
}

func TestRandomizedAgainstMap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	reference := map[int]int{}
	m := New[int, int]()

	for i := range 2000 {
		k := rng.Intn(200)
		switch rng.Intn(3) {
		case 0:
			reference[k] = i
			m.Insert(k, i)
		case 1:
			delete(reference, k)
			m.Remove(k)
		default:
			wantV, wantOK := reference[k]
			gotV, gotOK := m.Get(k)
			if wantOK != gotOK || (wantOK && wantV != gotV) {
				t.Fatalf("Get(%d) = %d, %v; want %d, %v", k, gotV, gotOK, wantV, wantOK)
			}
		}
	}

	if m.Len() != len(reference) {
		t.Fatalf("Len() = %d; want %d", m.Len(), len(reference))
	}
	for k, want := range reference {
		got, ok := m.Get(k)
		if !ok || got != want {
			t.Errorf("Get(%d) = %d, %v; want %d, true", k, got, ok, want)
		}
	}
}

// TestSearchLowerBound exercises the boundary-finding search used by
// the exclusions engine: cmp reports Less for keys at or above a
// threshold and Greater below it, so SearchLowerBound must return the
// smallest key at or above the threshold.
func TestSearchLowerBound(t *testing.T) {
	m := New[int, int]()
	keys := []int{0, 10, 20, 30, 40, 50}
	for _, k := range keys {
		m.Insert(k, k*2)
	}

	cases := []struct {
		threshold int
		wantKey   int
		wantOK    bool
	}{
		{-5, 0, true},
		{0, 0, true},
		{1, 10, true},
		{25, 30, true},
		{50, 50, true},
		{51, 0, false}, // nothing is >= 51
	}

	for _, c := range cases {
		threshold := c.threshold
		key, val, ok := m.SearchLowerBound(func(k, v int) Ordering {
			switch {
			case k >= threshold:
				return Less
			default:
				return Greater
			}
		})
		if ok != c.wantOK {
			t.Errorf("threshold %d: ok = %v; want %v", threshold, ok, c.wantOK)
			continue
		}
		if ok && (key != c.wantKey || val != c.wantKey*2) {
			t.Errorf("threshold %d: got (%d, %d); want (%d, %d)", threshold, key, val, c.wantKey, c.wantKey*2)
		}
	}
}

// TestSearchEqualOnly checks that plain Search only ever returns a
// node where cmp reported Equal, never falling back to a neighbor.
func TestSearchEqualOnly(t *testing.T) {
	m := New[int, int]()
	for _, k := range []int{0, 10, 20, 30} {
		m.Insert(k, k)
	}

	// containment comparator: band [k, k+10) for each key k
	find := func(pos int) (int, bool) {
		_, v, ok := m.Search(func(k, _ int) Ordering {
			switch {
			case pos < k:
				return Less
			case pos >= k+10:
				return Greater
			default:
				return Equal
			}
		})
		return v, ok
	}

	for pos, want := range map[int]int{0: 0, 5: 0, 9: 0, 10: 10, 25: 20, 39: 30} {
		v, ok := find(pos)
		if !ok || v != want {
			t.Errorf("find(%d) = %d, %v; want %d, true", pos, v, ok, want)
		}
	}
	if _, ok := find(40); ok {
		t.Errorf("find(40) unexpectedly matched a band (no band covers 40)")
	}
}

func TestClone(t *testing.T) {
	m := New[int, int]()
	for i := range 10 {
		m.Insert(i, i)
	}
	c := m.Clone()
	c.Insert(100, 100)
	c.Remove(0)

	if m.Len() != 10 {
		t.Fatalf("original Len() = %d; want 10 (clone must not alias)", m.Len())
	}
	if _, ok := m.Get(0); !ok {
		t.Fatalf("original lost key 0 after clone mutation")
	}
	if _, ok := m.Get(100); ok {
		t.Fatalf("original gained key 100 after clone mutation")
	}
}

func TestInorderStaysSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := New[int, struct{}]()
	var keys []int
	for range 500 {
		k := rng.Intn(100000)
		if _, had := m.Get(k); !had {
			m.Insert(k, struct{}{})
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	var got []int
	var walk func(n *node[int, struct{}])
	walk = func(n *node[int, struct{}]) {
		if n == nil {
			return
		}
		walk(n.left)
		got = append(got, n.key)
		walk(n.right)
	}
	walk(m.root)

	if !slices.Equal(got, keys) {
		t.Fatalf("in-order traversal is not sorted or lost keys")
	}
}
