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

// Package rangeproto encodes textrange.Range values as protocol buffer
// messages.
//
// The message has two uint32 fields:
//
//	message TextRange {
//	  uint32 start = 1;
//	  uint32 end = 2;
//	}
//
// An unbounded end is written as 4294967295. Marshal and Unmarshal work on
// the wire format directly. Descriptor, ToMessage and FromMessage provide a
// dynamic protoreflect view of the same message for use with proto.Marshal,
// prototext and protocmp.
package rangeproto

import (
	"fmt"

	"github.com/google/textrange/textrange"
	"github.com/google/textrange/textsize"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	startFieldNumber protowire.Number = 1
	endFieldNumber   protowire.Number = 2
)

// Marshal returns the wire encoding of r.
func Marshal(r textrange.Range) []byte {
	return Append(nil, r)
}

// Append appends the wire encoding of r to b. Zero-valued fields are omitted,
// as proto3 does.
func Append(b []byte, r textrange.Range) []byte {
	if r.Start() != 0 {
		b = protowire.AppendTag(b, startFieldNumber, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(r.Start()))
	}
	if r.End() != 0 {
		b = protowire.AppendTag(b, endFieldNumber, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(r.End()))
	}
	return b
}

// Unmarshal decodes a TextRange message. Unknown fields are skipped. Missing
// fields are zero. An encoded range whose start is after its end is an
// error.
func Unmarshal(b []byte) (textrange.Range, error) {
	var start, end textsize.Size
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return textrange.Range{}, fmt.Errorf("bad TextRange tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == startFieldNumber && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return textrange.Range{}, fmt.Errorf("bad TextRange.start: %w", protowire.ParseError(n))
			}
			// uint32 fields keep the low 32 bits, like proto.Unmarshal.
			start = textsize.Size(uint32(v))
			b = b[n:]
		case num == endFieldNumber && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return textrange.Range{}, fmt.Errorf("bad TextRange.end: %w", protowire.ParseError(n))
			}
			end = textsize.Size(uint32(v))
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return textrange.Range{}, fmt.Errorf("bad field %d in TextRange: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	if end < start {
		return textrange.Range{}, fmt.Errorf("TextRange start %s is after end %s", start, end)
	}
	return textrange.New(start, end), nil
}
