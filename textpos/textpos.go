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

// Package textpos maps text offsets and textrange.Range values to
// line-based positions in a named document, and back.
//
// Columns are available in two units: bytes of UTF-8 text, and UTF-16 code
// units as used by the Language Server Protocol.
package textpos

import "fmt"

// Line is the line number of some text in a file.
type Line struct {
	value int
}

// LineFromOffset returns a Line object from an offset value (where 0
// indicates the first line).
func LineFromOffset(o int) Line { return LineFromOrdinal(o + 1) }

// LineFromOrdinal returns a Line object from a positive value.
func LineFromOrdinal(o int) Line { return Line{o} }

// Offset returns the line number where 0 indicates the first line.
func (n Line) Offset() int { return n.Ordinal() - 1 }

// Ordinal returns the line number where 1 indicates the first line.
func (n Line) Ordinal() int { return n.value }

// String returns the ordinal value encoded as a base 10 string.
func (n Line) String() string { return fmt.Sprintf("%d", n.Ordinal()) }

// IsValid reports if the line value is valid (ordinal >= 1).
func (n Line) IsValid() bool { return n.Ordinal() > 0 }

// Column is a horizontal offset within a line of text, counted in bytes or
// in UTF-16 code units depending on where it came from.
type Column struct {
	value int
}

// ColumnFromOffset returns a Column object from an offset value (where 0
// indicates the first column).
func ColumnFromOffset(o int) Column { return ColumnFromOrdinal(o + 1) }

// ColumnFromOrdinal returns a Column object from an ordinal value (where 1
// indicates the first column).
func ColumnFromOrdinal(o int) Column { return Column{o} }

// Offset returns the Column number where 0 indicates the first Column.
func (n Column) Offset() int { return n.Ordinal() - 1 }

// Ordinal returns the Column number where 1 indicates the first Column.
func (n Column) Ordinal() int { return n.value }

// String returns the ordinal value encoded as a base 10 string.
func (n Column) String() string { return fmt.Sprintf("%d", n.Ordinal()) }

// IsValid reports if the column value is valid (ordinal >= 1).
func (n Column) IsValid() bool { return n.Ordinal() > 0 }

// LineColumn is a two dimensional textual position (line, column).
type LineColumn struct {
	line Line
	col  Column
}

// MakeLineColumn returns a new LineColumn tuple.
func MakeLineColumn(line Line, col Column) LineColumn {
	return LineColumn{line, col}
}

// Line returns the line for the tuple.
func (p LineColumn) Line() Line { return p.line }

// Column returns the column for the tuple.
func (p LineColumn) Column() Column { return p.col }

// IsValid reports whether both the line and the column are valid.
func (p LineColumn) IsValid() bool { return p.line.IsValid() && p.col.IsValid() }

// String returns "lineOrdinal:columnOrdinal", with "-" in place of an
// invalid line or column.
func (p LineColumn) String() string {
	l, c := "-", "-"
	if p.Line().IsValid() {
		l = p.Line().String()
	}
	if p.Column().IsValid() {
		c = p.Column().String()
	}
	return fmt.Sprintf("%s:%s", l, c)
}
