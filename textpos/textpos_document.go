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

	"github.com/google/textrange/textrange"
	"github.com/google/textrange/textsize"
)

// -----------------------------------------------------------------------------
// Document

// A Document is a named text together with a table of line start offsets.
//
// Every '\n' starts a new line, so text ending in a newline has a final,
// empty line. A Document is immutable and may be used from multiple
// goroutines.
type Document struct {
	name  string
	text  string
	size  textsize.Size
	lines []textsize.Size // offset of the first byte of each line; lines[0] == 0
}

// NewDocument returns a Document for text. The name is only used in
// positions and error messages. NewDocument panics if text is too long to be
// addressed by a textsize.Size.
func NewDocument(name, text string) *Document {
	size := textsize.Of(text)
	lines := []textsize.Size{0}
	for offset := 0; offset < len(text); offset++ {
		if text[offset] == '\n' {
			lines = append(lines, textsize.Size(offset+1))
		}
	}
	return &Document{name: name, text: text, size: size, lines: lines}
}

// Name returns the document name as provided to NewDocument.
func (d *Document) Name() string { return d.name }

// Len returns the length of the document in bytes.
func (d *Document) Len() textsize.Size { return d.size }

// LineCount returns the number of lines in the document. It is always at
// least 1.
func (d *Document) LineCount() int { return len(d.lines) }

// Text returns the text covered by r. An unbounded range extends to the end
// of the document. Text panics if r does not fit in the document.
func (d *Document) Text(r textrange.Range) string { return r.Slice(d.text) }

// Contents returns the full text of the document.
func (d *Document) Contents() string { return d.text }

// Full returns the range covering the whole document.
func (d *Document) Full() textrange.Range { return textrange.UpTo(d.size) }

func (d *Document) checkLine(line Line) {
	if !line.IsValid() || line.Ordinal() > len(d.lines) {
		panic(fmt.Sprintf("invalid line %s (should be in [1, %d])", line, len(d.lines)))
	}
}

// LineStart returns the offset of the first byte of line. It panics if line
// is not in the document.
func (d *Document) LineStart(line Line) textsize.Size {
	d.checkLine(line)
	return d.lines[line.Offset()]
}

// LineRange returns the range of line, excluding its terminating "\n" or
// "\r\n". It panics if line is not in the document.
func (d *Document) LineRange(line Line) textrange.Range {
	d.checkLine(line)
	start := d.lines[line.Offset()]
	end := d.size
	if line.Ordinal() < len(d.lines) {
		end = d.lines[line.Ordinal()] - 1
		if end > start && d.text[end-1] == '\r' {
			end--
		}
	}
	return textrange.New(start, end)
}

func (d *Document) resolve(offset textsize.Size) textsize.Size {
	if offset == textsize.Inf {
		return d.size
	}
	if offset > d.size {
		panic(fmt.Sprintf("invalid offset %s (should be <= %s)", offset, d.size))
	}
	return offset
}

func (d *Document) lineOf(offset textsize.Size) Line {
	return LineFromOffset(searchSizes(d.lines, offset))
}

// Position returns the position of offset with a byte column. Inf resolves
// to the end of the document. Position panics if offset is beyond the end of
// the document.
func (d *Document) Position(offset textsize.Size) Position {
	offset = d.resolve(offset)
	line := d.lineOf(offset)
	col := textsize.Sub(offset, d.lines[line.Offset()])
	return Position{d.name, offset, MakeLineColumn(line, ColumnFromOffset(col.Int()))}
}

// PositionUTF16 is like Position but the column counts UTF-16 code units.
func (d *Document) PositionUTF16(offset textsize.Size) Position {
	offset = d.resolve(offset)
	line := d.lineOf(offset)
	return Position{d.name, offset, MakeLineColumn(line, d.utf16Column(line, offset))}
}

// PositionRange returns the positions of the bounds of r with byte columns.
func (d *Document) PositionRange(r textrange.Range) PositionRange {
	return PositionRange{d.Position(r.Start()), d.Position(r.End())}
}

// PositionRangeUTF16 is like PositionRange with UTF-16 columns.
func (d *Document) PositionRangeUTF16(r textrange.Range) PositionRange {
	return PositionRange{d.PositionUTF16(r.Start()), d.PositionUTF16(r.End())}
}

// OffsetFor returns the offset of a (line, byte column) pair, or false if the
// pair is outside the document. The column may point just past the end of
// the line.
func (d *Document) OffsetFor(lc LineColumn) (textsize.Size, bool) {
	if !lc.IsValid() || lc.Line().Ordinal() > len(d.lines) {
		return 0, false
	}
	lr := d.LineRange(lc.Line())
	if uint64(lc.Column().Offset()) > uint64(lr.Len()) {
		return 0, false
	}
	return lr.Start() + textsize.Size(lc.Column().Offset()), true
}

// RangeFor returns the range between two (line, byte column) pairs.
func (d *Document) RangeFor(start, end LineColumn) (textrange.Range, error) {
	s, ok := d.OffsetFor(start)
	if !ok {
		return textrange.Range{}, fmt.Errorf("%s: start position %s is outside the document", d.name, start)
	}
	e, ok := d.OffsetFor(end)
	if !ok {
		return textrange.Range{}, fmt.Errorf("%s: end position %s is outside the document", d.name, end)
	}
	if e < s {
		return textrange.Range{}, fmt.Errorf("%s: end position %s is before start position %s", d.name, end, start)
	}
	return textrange.New(s, e), nil
}

// -----------------------------------------------------------------------------
// Position

// Position describes an offset in a document along with its line and column.
// A Position is valid if the line number is > 0.
type Position struct {
	fileName   string        // document name, if any
	offset     textsize.Size // offset, starting at 0
	lineColumn LineColumn    // line and column numbers, may be invalid
}

// FileName returns the document name of the position.
func (p Position) FileName() string { return p.fileName }

// Offset returns the offset of the position.
func (p Position) Offset() textsize.Size { return p.offset }

// LineColumn returns the line and column of the position.
func (p Position) LineColumn() LineColumn { return p.lineColumn }

// Line returns the line of the position.
func (p Position) Line() Line { return p.lineColumn.Line() }

// Column returns the column of the position.
func (p Position) Column() Column { return p.lineColumn.Column() }

// IsValid reports whether the position is valid.
func (p Position) IsValid() bool { return p.Line().IsValid() }

// String returns a string in one of several forms:
//
//	file:line:column    valid position with file name
//	file:line           valid position with file name but no column (column == 0)
//	line:column         valid position without file name
//	line                valid position without file name and no column (column == 0)
//	file                invalid position with file name
//	-                   invalid position without file name
//
func (p Position) String() string {
	s := p.FileName()
	if p.IsValid() {
		if s != "" {
			s += ":"
		}
		s += p.Line().String()
		if p.Column().IsValid() {
			s += ":" + p.Column().String()
		}
	}
	if s == "" {
		s = "-"
	}
	return s
}

// PositionRange is a pair of positions bounding a textrange.Range in a
// document.
type PositionRange struct {
	start, end Position
}

// Start returns the position of the inclusive start of the range.
func (r PositionRange) Start() Position { return r.start }

// End returns the position of the exclusive end of the range.
func (r PositionRange) End() Position { return r.end }

// Range returns the offsets of the range. An unbounded end has already been
// resolved to the end of the document.
func (r PositionRange) Range() textrange.Range {
	return textrange.New(r.start.Offset(), r.end.Offset())
}

// String returns "file:line:col-col" for a range within one line and
// "file:line:col-line:col" otherwise. The file name is omitted if empty.
func (r PositionRange) String() string {
	rangePart := fmt.Sprintf("%s-", r.start.LineColumn())
	if r.start.Line() == r.end.Line() {
		rangePart += r.end.Column().String()
	} else {
		rangePart += r.end.LineColumn().String()
	}
	if r.start.FileName() == "" {
		return rangePart
	}
	return fmt.Sprintf("%s:%s", r.start.FileName(), rangePart)
}

// -----------------------------------------------------------------------------
// Helper functions

// searchSizes returns the index of the last element of a that is <= x. a
// must be sorted and a[0] <= x.
func searchSizes(a []textsize.Size, x textsize.Size) int {
	i, j := 0, len(a)
	for i < j {
		h := i + (j-i)/2 // avoid overflow when computing h
		// i ≤ h < j
		if a[h] <= x {
			i = h + 1
		} else {
			j = h
		}
	}
	return i - 1
}
