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

// Package textrange provides Range, a half-open interval [start, end) of
// offsets into a text buffer.
//
// A Range always satisfies start <= end. Constructors panic when asked to
// build a reversed range; that is a programming error in the caller. An end
// of textsize.Inf means "through the end of the buffer".
package textrange

import (
	"fmt"

	"github.com/google/textrange/textsize"
)

// Size is an alias for the offset type used by ranges.
type Size = textsize.Size

// Inf is the unbounded end sentinel.
const Inf = textsize.Inf

// Range is a half-open interval [Start(), End()) of text offsets.
//
// The zero value is the empty range at offset 0. Ranges are comparable with
// == and may be used as map keys.
type Range struct {
	// Invariant: start <= end
	start, end Size
}

// New returns the range [start, end). It panics if end < start.
func New(start, end Size) Range {
	if end < start {
		panic(fmt.Sprintf("textrange: invalid range %s..%s (start > end)", start, end))
	}
	return Range{start, end}
}

// NewUnchecked returns the range [start, end) without checking that
// start <= end.
//
// The caller must have already established start <= end. Other methods may
// return incorrect results for a Range built in violation of that rule.
func NewUnchecked(start, end Size) Range {
	return Range{start, end}
}

// Empty returns the zero-length range at offset. Any offset is valid,
// including Inf.
func Empty(offset Size) Range {
	return Range{offset, offset}
}

// UpTo returns the range [0, end).
func UpTo(end Size) Range {
	return Range{0, end}
}

// ToEnd returns the range [start, Inf), which extends through the end of any
// buffer it is applied to.
func ToEnd(start Size) Range {
	return Range{start, Inf}
}

// At returns the range [offset, offset+length). It panics if the end would
// not be a finite Size.
func At(offset, length Size) Range {
	end, ok := textsize.CheckedAdd(offset, length)
	if !ok {
		panic(fmt.Sprintf("textrange: offset %s + length %s overflows", offset, length))
	}
	return Range{offset, end}
}

// Start returns the inclusive start of the range.
func (r Range) Start() Size { return r.start }

// End returns the exclusive end of the range.
func (r Range) End() Size { return r.end }

// Len returns the length of the range.
//
// Empty ranges have length 0, even Empty(Inf). A non-empty range that ends
// at Inf has length Inf.
func (r Range) Len() Size {
	if r.IsEmpty() {
		return 0
	}
	if r.end == Inf {
		return Inf
	}
	return r.end - r.start
}

// IsEmpty reports whether start == end.
//
// It does not detect reversed ranges built with NewUnchecked.
func (r Range) IsEmpty() bool {
	return r.start == r.end
}

// ContainsExclusive reports whether start <= offset < end.
func (r Range) ContainsExclusive(offset Size) bool {
	return r.start <= offset && offset < r.end
}

// ContainsInclusive reports whether start <= offset <= end. Use it when a
// cursor sitting just past the last character counts as inside the range.
func (r Range) ContainsInclusive(offset Size) bool {
	return r.start <= offset && offset <= r.end
}

// ContainsRange reports whether other lies completely within r. Every range
// contains itself.
func (r Range) ContainsRange(other Range) bool {
	return r.start <= other.start && other.end <= r.end
}

// Intersection returns the range covered by both a and b.
//
// If a and b only touch, the result is the empty range at the touching
// offset. If there is a gap between them, ok is false.
func Intersection(a, b Range) (result Range, ok bool) {
	start := textsize.Max(a.start, b.start)
	end := textsize.Min(a.end, b.end)
	if end < start {
		return Range{}, false
	}
	return Range{start, end}, true
}

// Covering returns the smallest range that contains both a and b.
func Covering(a, b Range) Range {
	return Range{textsize.Min(a.start, b.start), textsize.Max(a.end, b.end)}
}

// CoverOffset returns the smallest range that contains r and offset.
func (r Range) CoverOffset(offset Size) Range {
	return Covering(r, Empty(offset))
}

// CheckedAdd returns r shifted right by delta. Inf bounds stay Inf. It
// returns false if a finite bound would overflow.
func (r Range) CheckedAdd(delta Size) (Range, bool) {
	if r.start == Inf || delta == 0 {
		return r, true
	}
	start, ok := textsize.CheckedAdd(r.start, delta)
	if !ok {
		return Range{}, false
	}
	end := Inf
	if r.end != Inf {
		if end, ok = textsize.CheckedAdd(r.end, delta); !ok {
			return Range{}, false
		}
	}
	return Range{start, end}, true
}

// CheckedSub returns r shifted left by delta. Inf bounds stay Inf. It
// returns false if the start would become negative.
func (r Range) CheckedSub(delta Size) (Range, bool) {
	if r.start == Inf || delta == 0 {
		return r, true
	}
	start, ok := textsize.CheckedSub(r.start, delta)
	if !ok {
		return Range{}, false
	}
	end := Inf
	if r.end != Inf {
		// end >= start >= delta, so this cannot fail.
		end = textsize.Sub(r.end, delta)
	}
	return Range{start, end}, true
}

// Add is like CheckedAdd but panics on overflow.
func (r Range) Add(delta Size) Range {
	s, ok := r.CheckedAdd(delta)
	if !ok {
		panic(fmt.Sprintf("textrange: %s + %s overflows", r, delta))
	}
	return s
}

// Sub is like CheckedSub but panics on underflow.
func (r Range) Sub(delta Size) Range {
	s, ok := r.CheckedSub(delta)
	if !ok {
		panic(fmt.Sprintf("textrange: %s - %s underflows", r, delta))
	}
	return s
}

// Compare orders ranges by start offset, then by end offset. It returns -1,
// 0 or +1.
func Compare(a, b Range) int {
	switch {
	case a.start < b.start:
		return -1
	case a.start > b.start:
		return 1
	case a.end < b.end:
		return -1
	case a.end > b.end:
		return 1
	}
	return 0
}

// Hash returns a hash of the range derived only from its bounds. Equal
// ranges have equal hashes, across processes.
func (r Range) Hash() uint64 {
	return uint64(r.start)<<32 | uint64(r.end)
}

// String returns "<start>..<end>", for example "3..7" or "6..inf".
func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.start, r.end)
}
