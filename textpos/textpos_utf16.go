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

package textpos

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/apparentlymart/go-textseg/textseg"
	"github.com/google/textrange/textrange"
	"github.com/google/textrange/textsize"
)

// utf16Units returns the number of UTF-16 code units needed for the UTF-8
// sequence seq.
func utf16Units(seq []byte) int {
	n := 0
	for len(seq) > 0 {
		r, l := utf8.DecodeRune(seq)
		seq = seq[l:]
		c1, c2 := utf16.EncodeRune(r)
		if c1 == 0xfffd && c2 == 0xfffd {
			n++ // codepoint fits in one 16-bit unit
		} else {
			n += 2 // codepoint requires a surrogate pair
		}
	}
	return n
}

// utf16Column counts UTF-16 code units from the start of line up to offset.
// An offset inside a UTF-8 sequence counts the units before that sequence.
func (d *Document) utf16Column(line Line, offset textsize.Size) Column {
	start := d.lines[line.Offset()]
	for offset > start && offset < d.size && !utf8.RuneStart(d.text[offset]) {
		offset--
	}
	remain := []byte(d.text[start:offset])
	units := 0
	for len(remain) > 0 {
		// Individual UTF-8 sequences rather than grapheme clusters: an LSP
		// position may point into the middle of a grapheme cluster.
		adv, seq, _ := textseg.ScanUTF8Sequences(remain, true)
		if adv == 0 || adv > len(remain) {
			break
		}
		remain = remain[adv:]
		units += utf16Units(seq)
	}
	return ColumnFromOffset(units)
}

// OffsetForUTF16 returns the byte offset of a (line, UTF-16 column) pair, or
// false if the pair is outside the document.
//
// A column that points at the second unit of a surrogate pair is rounded down
// to the start of the character, because UTF-8 sequences cannot be divided
// the same way.
func (d *Document) OffsetForUTF16(lc LineColumn) (textsize.Size, bool) {
	if !lc.IsValid() || lc.Line().Ordinal() > len(d.lines) {
		return 0, false
	}
	lr := d.LineRange(lc.Line())
	want := lc.Column().Offset()
	remain := []byte(d.Text(lr))
	byteCt, units := 0, 0
	for units < want {
		if len(remain) == 0 {
			// ran out of characters on the line, so the column is invalid
			return 0, false
		}
		adv, seq, _ := textseg.ScanUTF8Sequences(remain, true)
		if adv == 0 || adv > len(remain) {
			return 0, false
		}
		n := utf16Units(seq)
		if units+n > want {
			break
		}
		remain = remain[adv:]
		byteCt += adv
		units += n
	}
	return lr.Start() + textsize.FromInt(byteCt), true
}

// RangeForUTF16 is like RangeFor for (line, UTF-16 column) pairs.
func (d *Document) RangeForUTF16(start, end LineColumn) (textrange.Range, error) {
	s, ok := d.OffsetForUTF16(start)
	if !ok {
		return textrange.Range{}, fmt.Errorf("%s: start position %s is outside the document", d.name, start)
	}
	e, ok := d.OffsetForUTF16(end)
	if !ok {
		return textrange.Range{}, fmt.Errorf("%s: end position %s is outside the document", d.name, end)
	}
	if e < s {
		return textrange.Range{}, fmt.Errorf("%s: end position %s is before start position %s", d.name, end, start)
	}
	return textrange.New(s, e), nil
}
