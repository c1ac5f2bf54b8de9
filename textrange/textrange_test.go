// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package textrange

import (
	"fmt"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b Range) bool { return a == b }),
}

// sample is a set of ranges used for properties that must hold for all
// ranges.
var sample = []Range{
	Empty(0),
	Empty(5),
	Empty(Inf),
	New(0, 5),
	New(3, 7),
	New(5, 10),
	New(0, Inf),
	New(6, Inf),
	New(Inf-1, Inf),
	New(0, Inf-1),
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}

func TestNew(t *testing.T) {
	for _, tt := range []struct{ start, end Size }{
		{0, 0}, {0, 1}, {3, 7}, {7, 7}, {0, Inf}, {Inf, Inf}, {Inf - 1, Inf},
	} {
		r := New(tt.start, tt.end)
		if r.Start() != tt.start || r.End() != tt.end {
			t.Errorf("New(%s, %s) = %s, want bounds preserved", tt.start, tt.end, r)
		}
	}
	for _, tt := range []struct{ start, end Size }{
		{1, 0}, {7, 3}, {Inf, 0}, {Inf, Inf - 1},
	} {
		mustPanic(t, fmt.Sprintf("New(%s, %s)", tt.start, tt.end), func() { New(tt.start, tt.end) })
	}
}

func TestInvariant(t *testing.T) {
	for _, r := range sample {
		if r.Start() > r.End() {
			t.Errorf("%s: start > end", r)
		}
	}
	var zero Range
	if diff := cmp.Diff(Empty(0), zero, cmpOpts...); diff != "" {
		t.Errorf("zero Range is not Empty(0) (-want +got):\n%s", diff)
	}
}

func TestEmpty(t *testing.T) {
	for _, o := range []Size{0, 1, 100, Inf - 1, Inf} {
		r := Empty(o)
		if !r.IsEmpty() {
			t.Errorf("Empty(%s).IsEmpty() = false", o)
		}
		if r.Len() != 0 {
			t.Errorf("Empty(%s).Len() = %s, want 0", o, r.Len())
		}
		if r.Start() != o || r.End() != o {
			t.Errorf("Empty(%s) = %s", o, r)
		}
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		r    Range
		want Size
	}{
		{New(3, 7), 4},
		{New(0, 0), 0},
		{New(0, Inf-1), Inf - 1},
		{New(0, Inf), Inf},
		{New(6, Inf), Inf},
		{New(Inf-1, Inf), Inf},
		{Empty(Inf), 0},
		{At(10, 5), 5},
		{UpTo(9), 9},
		{ToEnd(4), Inf},
	}
	for _, tt := range tests {
		t.Run(tt.r.String(), func(t *testing.T) {
			if got := tt.r.Len(); got != tt.want {
				t.Errorf("Len() = %s, want %s", got, tt.want)
			}
		})
	}
	mustPanic(t, "At overflow", func() { At(Inf-1, 1) })
}

func TestContains(t *testing.T) {
	r := New(3, 7)
	tests := []struct {
		offset               Size
		exclusive, inclusive bool
	}{
		{2, false, false},
		{3, true, true},
		{6, true, true},
		{7, false, true},
		{8, false, false},
		{Inf, false, false},
	}
	for _, tt := range tests {
		if got := r.ContainsExclusive(tt.offset); got != tt.exclusive {
			t.Errorf("%s.ContainsExclusive(%s) = %v, want %v", r, tt.offset, got, tt.exclusive)
		}
		if got := r.ContainsInclusive(tt.offset); got != tt.inclusive {
			t.Errorf("%s.ContainsInclusive(%s) = %v, want %v", r, tt.offset, got, tt.inclusive)
		}
	}
	if Empty(5).ContainsExclusive(5) {
		t.Errorf("empty range contains a point")
	}
	if !Empty(5).ContainsInclusive(5) {
		t.Errorf("Empty(5).ContainsInclusive(5) = false")
	}
	if !ToEnd(0).ContainsExclusive(Inf - 1) {
		t.Errorf("unbounded range does not contain Inf-1")
	}
}

func TestContainsRange(t *testing.T) {
	tests := []struct {
		r, other Range
		want     bool
	}{
		{New(3, 7), New(4, 6), true},
		{New(3, 7), New(3, 8), false},
		{New(3, 7), New(2, 7), false},
		{New(3, 7), Empty(3), true},
		{New(3, 7), Empty(7), true},
		{New(3, 7), Empty(8), false},
		{Empty(4), Empty(4), true},
		{Empty(4), Empty(5), false},
		{Empty(4), New(4, 5), false},
		{ToEnd(2), New(5, 100), true},
	}
	for _, tt := range tests {
		if got := tt.r.ContainsRange(tt.other); got != tt.want {
			t.Errorf("%s.ContainsRange(%s) = %v, want %v", tt.r, tt.other, got, tt.want)
		}
	}
	for _, r := range sample {
		if !r.ContainsRange(r) {
			t.Errorf("%s does not contain itself", r)
		}
	}
}

func TestIntersection(t *testing.T) {
	type result struct {
		R  Range
		OK bool
	}
	tests := []struct {
		name string
		a, b Range
		want result
	}{
		{"touching", New(0, 5), New(5, 10), result{Empty(5), true}},
		{"disjoint", New(0, 4), New(5, 10), result{Range{}, false}},
		{"nested", New(0, 10), New(3, 7), result{New(3, 7), true}},
		{"overlapping", New(0, 6), New(4, 10), result{New(4, 6), true}},
		{"unbounded", ToEnd(4), New(0, 8), result{New(4, 8), true}},
		{"both unbounded", ToEnd(4), ToEnd(9), result{ToEnd(9), true}},
		{"empty inside", New(0, 10), Empty(3), result{Empty(3), true}},
		{"empty outside", New(0, 10), Empty(11), result{Range{}, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, args := range [][2]Range{{tt.a, tt.b}, {tt.b, tt.a}} {
				r, ok := Intersection(args[0], args[1])
				if diff := cmp.Diff(tt.want, result{r, ok}, cmpOpts...); diff != "" {
					t.Errorf("Intersection(%s, %s) unexpected result (-want +got):\n%s", args[0], args[1], diff)
				}
			}
		})
	}
}

func TestCovering(t *testing.T) {
	tests := []struct {
		a, b, want Range
	}{
		{New(0, 3), New(5, 10), New(0, 10)},
		{New(3, 7), New(4, 6), New(3, 7)},
		{Empty(2), Empty(9), New(2, 9)},
		{New(3, 7), ToEnd(5), ToEnd(3)},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Covering(tt.a, tt.b), cmpOpts...); diff != "" {
			t.Errorf("Covering(%s, %s) unexpected result (-want +got):\n%s", tt.a, tt.b, diff)
		}
	}
	for _, a := range sample {
		for _, b := range sample {
			if Covering(a, b) != Covering(b, a) {
				t.Errorf("Covering(%s, %s) != Covering(%s, %s)", a, b, b, a)
			}
			c := Covering(a, b)
			if !c.ContainsRange(a) || !c.ContainsRange(b) {
				t.Errorf("Covering(%s, %s) = %s does not contain both", a, b, c)
			}
		}
	}
	if got, want := New(3, 7).CoverOffset(1), New(1, 7); got != want {
		t.Errorf("CoverOffset(1) = %s, want %s", got, want)
	}
}

func TestShift(t *testing.T) {
	if got, want := New(3, 7).Add(2), New(5, 9); got != want {
		t.Errorf("Add = %s, want %s", got, want)
	}
	if got, want := ToEnd(3).Add(2), ToEnd(5); got != want {
		t.Errorf("Add = %s, want %s", got, want)
	}
	if got, want := New(3, 7).Sub(3), New(0, 4); got != want {
		t.Errorf("Sub = %s, want %s", got, want)
	}
	if got, want := ToEnd(3).Sub(1), ToEnd(2); got != want {
		t.Errorf("Sub = %s, want %s", got, want)
	}
	if _, ok := New(3, Inf-1).CheckedAdd(1); ok {
		t.Errorf("CheckedAdd past Inf succeeded")
	}
	if _, ok := New(3, 7).CheckedSub(4); ok {
		t.Errorf("CheckedSub below zero succeeded")
	}
	for _, r := range sample {
		if got := r.Add(0); got != r {
			t.Errorf("%s.Add(0) = %s", r, got)
		}
		if got, ok := r.CheckedSub(0); !ok || got != r {
			t.Errorf("%s.CheckedSub(0) = %s, %v", r, got, ok)
		}
	}
	if got, want := Empty(Inf).Add(4), Empty(Inf); got != want {
		t.Errorf("Empty(Inf).Add(4) = %s, want %s", got, want)
	}
	if got, want := Empty(Inf).Sub(4), Empty(Inf); got != want {
		t.Errorf("Empty(Inf).Sub(4) = %s, want %s", got, want)
	}
	mustPanic(t, "Sub underflow", func() { New(3, 7).Sub(4) })
	mustPanic(t, "Add overflow", func() { New(3, 7).Add(Inf - 5) })
}

func TestCompareAndHash(t *testing.T) {
	got := []Range{New(5, 10), ToEnd(0), New(0, 5), Empty(5), New(0, 3)}
	sort.Slice(got, func(i, j int) bool { return Compare(got[i], got[j]) < 0 })
	want := []Range{New(0, 3), New(0, 5), ToEnd(0), Empty(5), New(5, 10)}
	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("sorted ranges (-want +got):\n%s", diff)
	}

	seen := map[uint64]Range{}
	for _, r := range sample {
		if Compare(r, r) != 0 {
			t.Errorf("Compare(%s, %s) != 0", r, r)
		}
		if other, ok := seen[r.Hash()]; ok {
			t.Errorf("hash collision between %s and %s", r, other)
		}
		seen[r.Hash()] = r
		if New(r.Start(), r.End()).Hash() != r.Hash() {
			t.Errorf("%s: equal ranges hash differently", r)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		r    Range
		want string
	}{
		{New(3, 7), "3..7"},
		{Empty(0), "0..0"},
		{ToEnd(6), "6..inf"},
		{Empty(Inf), "inf..inf"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := fmt.Sprintf("%v", tt.r); got != tt.want {
			t.Errorf("%%v = %q, want %q", got, tt.want)
		}
	}
}

func TestSlice(t *testing.T) {
	const text = "hello world"
	tests := []struct {
		r    Range
		want string
	}{
		{New(0, 5), "hello"},
		{ToEnd(6), "world"},
		{New(6, 11), "world"},
		{Empty(11), ""},
		{ToEnd(11), ""},
		{UpTo(Inf), text},
	}
	for _, tt := range tests {
		if got := tt.r.Slice(text); got != tt.want {
			t.Errorf("%s.Slice(%q) = %q, want %q", tt.r, text, got, tt.want)
		}
		if got := string(tt.r.SliceBytes([]byte(text))); got != tt.want {
			t.Errorf("%s.SliceBytes(%q) = %q, want %q", tt.r, text, got, tt.want)
		}
	}

	buf := []byte(text)
	copy(New(0, 5).SliceBytes(buf), "HELLO")
	if got := string(buf); got != "HELLO world" {
		t.Errorf("write through SliceBytes: got %q", got)
	}
	if got := cap(New(0, 5).SliceBytes(buf)); got != 5 {
		t.Errorf("cap(SliceBytes) = %d, want 5", got)
	}

	mustPanic(t, "end past buffer", func() { New(0, 12).Slice(text) })
	mustPanic(t, "start past buffer", func() { ToEnd(12).Slice(text) })
	mustPanic(t, "bytes end past buffer", func() { New(3, 20).SliceBytes(buf) })
}

func TestFits(t *testing.T) {
	tests := []struct {
		r    Range
		n    int
		want bool
	}{
		{New(0, 5), 5, true},
		{New(0, 6), 5, false},
		{ToEnd(5), 5, true},
		{ToEnd(6), 5, false},
		{Empty(Inf), 5, false},
	}
	for _, tt := range tests {
		if got := tt.r.Fits(tt.n); got != tt.want {
			t.Errorf("%s.Fits(%d) = %v, want %v", tt.r, tt.n, got, tt.want)
		}
	}
}

func TestBounds(t *testing.T) {
	for _, r := range sample {
		if r.Start() == Inf {
			// Empty(Inf) has no unbounded counterpart with a finite start,
			// but still round-trips.
			if got := FromBounds(r.Bounds()); got != r {
				t.Errorf("FromBounds(%s.Bounds()) = %s", r, got)
			}
			continue
		}
		b := r.Bounds()
		if b.Unbounded != (r.End() == Inf) {
			t.Errorf("%s.Bounds().Unbounded = %v", r, b.Unbounded)
		}
		if got := FromBounds(b); got != r {
			t.Errorf("FromBounds(%v) = %s, want %s", b, got, r)
		}
	}
	if got, want := ToEnd(6).Bounds().String(), "[6, ∞)"; got != want {
		t.Errorf("Bounds().String() = %q, want %q", got, want)
	}
	if got, want := New(3, 7).Bounds().String(), "[3, 7)"; got != want {
		t.Errorf("Bounds().String() = %q, want %q", got, want)
	}
	mustPanic(t, "reversed bounds", func() { FromBounds(Bounds{Start: 7, End: 3}) })
}

func TestInts(t *testing.T) {
	s, e := New(3, 7).Ints()
	if s != 3 || e != 7 {
		t.Errorf("Ints() = %d, %d", s, e)
	}
	s, e = ToEnd(3).IntsWithin(11)
	if s != 3 || e != 11 {
		t.Errorf("IntsWithin(11) = %d, %d", s, e)
	}
	s, e = New(3, 7).IntsWithin(11)
	if s != 3 || e != 7 {
		t.Errorf("IntsWithin(11) = %d, %d", s, e)
	}
	mustPanic(t, "Ints on unbounded", func() { ToEnd(3).Ints() })
}

func TestUnchecked(t *testing.T) {
	r := NewUnchecked(7, 3)
	if r.IsEmpty() {
		t.Errorf("reversed range reported empty")
	}
	if got, want := NewUnchecked(3, 7), New(3, 7); got != want {
		t.Errorf("NewUnchecked(3, 7) = %s, want %s", got, want)
	}
}
