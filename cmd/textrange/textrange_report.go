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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/textrange/textpos"
	"github.com/google/textrange/textrange"
	"github.com/google/textrange/textrange/rangeproto"
	"github.com/mitchellh/go-wordwrap"
	"google.golang.org/protobuf/encoding/prototext"
)

const (
	columnsUTF8  = "utf8"
	columnsUTF16 = "utf16"

	formatText      = "text"
	formatJSON      = "json"
	formatPrototext = "prototext"
)

// entry is one range of one document.
type entry struct {
	doc *textpos.Document
	r   textrange.Range
}

func (e entry) text() string { return e.doc.Text(e.r) }

// report returns an entry for each range. Every range must fit in the
// document.
func report(doc *textpos.Document, ranges []textrange.Range) ([]entry, error) {
	var entries []entry
	for _, r := range ranges {
		if !r.Fits(doc.Len().Int()) {
			return nil, fmt.Errorf("%s: range %s does not fit in file of %s bytes", doc.Name(), r, doc.Len())
		}
		entries = append(entries, entry{doc, r})
	}
	return entries, nil
}

type reportOptions struct {
	utf16  bool
	format string
	wrap   int
}

func (c *config) reportOptions() (*reportOptions, error) {
	opts := &reportOptions{format: c.format, wrap: c.wrap}
	switch c.columns {
	case columnsUTF8:
	case columnsUTF16:
		opts.utf16 = true
	default:
		return nil, fmt.Errorf("bad -columns value %q (want %s or %s)", c.columns, columnsUTF8, columnsUTF16)
	}
	switch c.format {
	case formatText, formatJSON, formatPrototext:
	default:
		return nil, fmt.Errorf("bad -format value %q (want %s, %s or %s)", c.format, formatText, formatJSON, formatPrototext)
	}
	if c.wrap < 0 {
		return nil, fmt.Errorf("bad -wrap value %d", c.wrap)
	}
	return opts, nil
}

func (o *reportOptions) span(e entry) textpos.PositionRange {
	if o.utf16 {
		return e.doc.PositionRangeUTF16(e.r)
	}
	return e.doc.PositionRange(e.r)
}

// jsonEntry is the line written for each entry with -format=json.
type jsonEntry struct {
	File  string          `json:"file"`
	Range textrange.Range `json:"range"`
	Start string          `json:"start"`
	End   string          `json:"end"`
	Text  string          `json:"text"`
}

func (o *reportOptions) write(w io.Writer, e entry) error {
	span := o.span(e)
	switch o.format {
	case formatJSON:
		line, err := json.Marshal(&jsonEntry{
			File:  e.doc.Name(),
			Range: e.r,
			Start: span.Start().LineColumn().String(),
			End:   span.End().LineColumn().String(),
			Text:  e.text(),
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", line)
		return err
	case formatPrototext:
		msg := prototext.MarshalOptions{Multiline: true}.Format(rangeproto.ToMessage(e.r))
		_, err := fmt.Fprintf(w, "# %s\n%s# text: %q\n", span, msg, e.text())
		return err
	default:
		if o.wrap == 0 {
			_, err := fmt.Fprintf(w, "%s: %q\n", span, e.text())
			return err
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s:\n", span)
		for _, line := range strings.Split(strings.TrimSuffix(wordwrap.WrapString(e.text(), uint(o.wrap)), "\n"), "\n") {
			fmt.Fprintf(&sb, "\t%s\n", line)
		}
		_, err := io.WriteString(w, sb.String())
		return err
	}
}
