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

// Package textsize provides Size, a 32-bit offset or length within a text
// buffer.
//
// The largest representable value, Inf, is reserved as a sentinel meaning
// "unbounded". It compares greater than every other Size, and arithmetic in
// this package never produces it from finite operands.
package textsize

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// Size is an offset or length in a text buffer. Units (bytes, UTF-16 code
// units) are chosen by the caller.
type Size uint32

// Inf is the unbounded sentinel.
const Inf Size = math.MaxUint32

const infString = "inf"

// FromInt converts a host index into a Size. It panics if n is negative or
// does not fit below Inf.
func FromInt(n int) Size {
	if n < 0 || uint64(n) >= uint64(Inf) {
		panic(fmt.Sprintf("textsize: %d out of range [0, %d)", n, uint64(Inf)))
	}
	return Size(n)
}

// Of returns the UTF-8 length of s.
func Of(s string) Size { return FromInt(len(s)) }

// OfBytes returns the length of b.
func OfBytes(b []byte) Size { return FromInt(len(b)) }

// OfRune returns the number of bytes needed to encode r in UTF-8.
func OfRune(r rune) Size {
	n := utf8.RuneLen(r)
	if n < 0 {
		// Invalid runes are written as U+FFFD.
		n = utf8.RuneLen(utf8.RuneError)
	}
	return Size(n)
}

// OfUTF16 returns the number of UTF-16 code units needed to encode s.
func OfUTF16(s string) Size {
	n := 0
	for _, r := range s {
		if r1, _ := utf16.EncodeRune(r); r1 == utf8.RuneError {
			n++ // no surrogate pair needed
		} else {
			n += 2
		}
	}
	return FromInt(n)
}

const maxInt = int(^uint(0) >> 1)

// IsInf reports whether s is the unbounded sentinel.
func (s Size) IsInf() bool { return s == Inf }

// Int converts s to a host index. It panics for Inf, which has no index.
func (s Size) Int() int {
	if s == Inf {
		panic("textsize: Inf has no integer value")
	}
	if uint64(s) > uint64(maxInt) {
		panic(fmt.Sprintf("textsize: %s does not fit in an int", s))
	}
	return int(s)
}

// String returns s in base 10, or "inf" for Inf.
func (s Size) String() string {
	if s == Inf {
		return infString
	}
	return strconv.FormatUint(uint64(s), 10)
}

// ParseSize parses the output of Size.String.
func ParseSize(str string) (Size, error) {
	if str == infString {
		return Inf, nil
	}
	n, err := strconv.ParseUint(str, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid text size %q: %w", str, err)
	}
	return Size(n), nil
}

// Sub returns a - b. Both operands must be finite and b must not exceed a;
// otherwise Sub panics.
func Sub(a, b Size) Size {
	d, ok := CheckedSub(a, b)
	if !ok {
		panic(fmt.Sprintf("textsize: invalid subtraction %s - %s", a, b))
	}
	return d
}

// CheckedSub returns a - b, or false if either operand is Inf or the result
// would be negative.
func CheckedSub(a, b Size) (Size, bool) {
	if a == Inf || b == Inf || b > a {
		return 0, false
	}
	return a - b, true
}

// CheckedAdd returns a + b, or false if either operand is Inf or the sum
// would reach Inf.
func CheckedAdd(a, b Size) (Size, bool) {
	if a == Inf || b == Inf {
		return 0, false
	}
	sum := uint64(a) + uint64(b)
	if sum >= uint64(Inf) {
		return 0, false
	}
	return Size(sum), true
}

// Min returns the smaller of a and b.
func Min(a, b Size) Size {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max(a, b Size) Size {
	if b > a {
		return b
	}
	return a
}
