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

import "fmt"

// Slice returns text[start:end]. An Inf end slices through the end of text.
//
// Slice panics like an ordinary slice expression if the range does not fit
// in text.
func (r Range) Slice(text string) string {
	if r.end == Inf {
		return text[r.start.Int():]
	}
	return text[r.start.Int():r.end.Int()]
}

// SliceBytes is like Slice for a byte slice. The result aliases buf, so
// writes through it modify buf.
func (r Range) SliceBytes(buf []byte) []byte {
	if r.end == Inf {
		return buf[r.start.Int():]
	}
	return buf[r.start.Int():r.end.Int():r.end.Int()]
}

// Fits reports whether the range can slice a buffer of length n without
// panicking.
func (r Range) Fits(n int) bool {
	if n < 0 || uint64(r.start) > uint64(n) {
		return false
	}
	return r.end == Inf || uint64(r.end) <= uint64(n)
}

// Ints returns the bounds as host indexes. It panics if the end is Inf; use
// IntsWithin for ranges that may be unbounded.
func (r Range) Ints() (start, end int) {
	return r.start.Int(), r.end.Int()
}

// IntsWithin returns the bounds as host indexes into a buffer of length n,
// mapping an Inf end to n.
func (r Range) IntsWithin(n int) (start, end int) {
	if r.end == Inf {
		return r.start.Int(), n
	}
	return r.Ints()
}

// Bounds describes a range in the vocabulary of generic interval APIs: an
// inclusive start and an end that is either exclusive or unbounded.
type Bounds struct {
	// Start is the inclusive lower bound.
	Start Size
	// End is the exclusive upper bound. It is ignored if Unbounded is true.
	End Size
	// Unbounded is true if there is no upper bound.
	Unbounded bool
}

// Bounds returns the range as a Bounds value. An Inf end is reported as
// Unbounded.
func (r Range) Bounds() Bounds {
	if r.end == Inf {
		return Bounds{Start: r.start, Unbounded: true}
	}
	return Bounds{Start: r.start, End: r.end}
}

// FromBounds is the inverse of Range.Bounds. It panics if the bounds are
// reversed.
func FromBounds(b Bounds) Range {
	if b.Unbounded {
		return ToEnd(b.Start)
	}
	return New(b.Start, b.End)
}

// String returns the bounds in interval notation, for example "[3, 7)" or
// "[6, ∞)".
func (b Bounds) String() string {
	if b.Unbounded {
		return fmt.Sprintf("[%s, ∞)", b.Start)
	}
	return fmt.Sprintf("[%s, %s)", b.Start, b.End)
}
