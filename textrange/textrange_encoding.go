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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/textrange/textsize"
)

// Text and JSON encodings of Range. Both carry only the two bounds.

const rangeSeparator = ".."

// Parse parses the output of Range.String. An empty end ("6..") is read as
// Inf.
//
// Unlike New, Parse reports reversed bounds as an error because its input
// usually comes from outside the program.
func Parse(s string) (Range, error) {
	idx := strings.Index(s, rangeSeparator)
	if idx == -1 {
		return Range{}, fmt.Errorf("invalid range %q: missing %q", s, rangeSeparator)
	}
	startStr, endStr := s[:idx], s[idx+len(rangeSeparator):]
	start, err := textsize.ParseSize(startStr)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: bad start: %w", s, err)
	}
	end := Inf
	if endStr != "" {
		if end, err = textsize.ParseSize(endStr); err != nil {
			return Range{}, fmt.Errorf("invalid range %q: bad end: %w", s, err)
		}
	}
	return checked(start, end)
}

func checked(start, end Size) (Range, error) {
	if end < start {
		return Range{}, fmt.Errorf("invalid range %s..%s: start is after end", start, end)
	}
	return Range{start, end}, nil
}

// MarshalText implements encoding.TextMarshaler using the String format.
func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (r *Range) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Set implements flag.Value.
func (r *Range) Set(s string) error {
	return r.UnmarshalText([]byte(s))
}

// MarshalJSON encodes the range as the array [start, end]. Inf is written
// as its numeric value.
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]uint32{uint32(r.start), uint32(r.end)})
}

// UnmarshalJSON decodes the array form written by MarshalJSON. A JSON null
// leaves r unchanged.
func (r *Range) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var bounds []uint32
	if err := json.Unmarshal(data, &bounds); err != nil {
		return fmt.Errorf("invalid JSON range: %w", err)
	}
	if len(bounds) != 2 {
		return fmt.Errorf("invalid JSON range %s: want [start, end], got %d elements", data, len(bounds))
	}
	parsed, err := checked(Size(bounds[0]), Size(bounds[1]))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
