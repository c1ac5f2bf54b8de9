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

package rangeproto

import (
	"fmt"
	"strings"
	"sync"

	"github.com/golang/glog"
	"github.com/google/textrange/textrange"
	"github.com/google/textrange/textsize"
	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/builder"
	"github.com/jhump/protoreflect/desc/protoprint"
	wordwrap "github.com/mitchellh/go-wordwrap"
	"github.com/stoewer/go-strcase"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

const (
	protoPackage  = "textrange"
	protoFileName = "textrange.proto"
	goTypeName    = "TextRange"

	// Wrapped comment lines, including indentation and "// ", fit in this
	// many columns.
	protoWrapColumn = 80
)

type fieldDef struct {
	goName  string
	number  int32
	comment string
}

var fieldDefs = []fieldDef{
	{
		goName: "Start",
		number: int32(startFieldNumber),
		comment: "Inclusive start offset of the range. Offsets are counted in whatever " +
			"unit the producer of the range uses, usually bytes of UTF-8 text.",
	},
	{
		goName: "End",
		number: int32(endFieldNumber),
		comment: fmt.Sprintf("Exclusive end offset of the range. The value %d means the range "+
			"extends through the end of the text. End is never less than start.", uint32(textsize.Inf)),
	},
}

// MessageName returns the proto message name for a range.
func MessageName() string { return strcase.UpperCamelCase(goTypeName) }

// FullName returns the fully qualified proto message name for a range.
func FullName() protoreflect.FullName {
	return protoreflect.FullName(protoPackage + "." + MessageName())
}

func fieldName(def fieldDef) string { return strcase.SnakeCase(def.goName) }

// wrapComment prepares a comment for builder.Comments. The printer adds "//"
// to each line, so every line starts with a space.
func wrapComment(comment string, indent int) string {
	linePrefix := strings.Repeat(" ", indent) + "// "
	maxContentLineLength := uint(protoWrapColumn - len(linePrefix))
	var lines []string
	for _, line := range strings.Split(wordwrap.WrapString(comment, maxContentLineLength), "\n") {
		if len(linePrefix)+len(line) > protoWrapColumn {
			glog.Warningf("despite word wrapping, comment %q results in line length %d, max recommended is %d", comment, len(linePrefix)+len(line), protoWrapColumn)
		}
		lines = append(lines, " "+line)
	}
	return strings.Join(lines, "\n")
}

func buildFile() (*desc.FileDescriptor, error) {
	msg := builder.NewMessage(MessageName())
	msg.SetComments(builder.Comments{
		LeadingComment: wrapComment("A half-open interval [start, end) of offsets into a text buffer.", 0),
	})
	for _, def := range fieldDefs {
		f := builder.NewField(fieldName(def), builder.FieldTypeUInt32()).SetNumber(def.number)
		f.SetComments(builder.Comments{
			LeadingComment: wrapComment(def.comment, 2),
		})
		msg.AddField(f)
	}
	b := builder.NewFile(protoFileName).SetProto3(true).SetPackageName(protoPackage)
	b.AddMessage(msg)
	fd, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", protoFileName, err)
	}
	return fd, nil
}

// Schema returns the .proto source of the TextRange message.
func Schema() (string, error) {
	fd, err := buildFile()
	if err != nil {
		return "", err
	}
	p := &protoprint.Printer{}
	return p.PrintProtoToString(fd)
}

var (
	descOnce   sync.Once
	descriptor protoreflect.MessageDescriptor
)

// Descriptor returns the descriptor of the TextRange message.
//
// The schema is fixed, so Descriptor panics if it fails to build.
func Descriptor() protoreflect.MessageDescriptor {
	descOnce.Do(func() {
		fd, err := buildFile()
		if err != nil {
			panic(err)
		}
		file, err := protodesc.NewFile(fd.AsFileDescriptorProto(), nil)
		if err != nil {
			panic(fmt.Sprintf("invalid %s: %v", protoFileName, err))
		}
		descriptor = file.Messages().ByName(protoreflect.Name(MessageName()))
	})
	return descriptor
}

func fields(md protoreflect.MessageDescriptor) (start, end protoreflect.FieldDescriptor) {
	return md.Fields().ByNumber(startFieldNumber), md.Fields().ByNumber(endFieldNumber)
}

// ToMessage returns a dynamic TextRange message holding r.
func ToMessage(r textrange.Range) *dynamicpb.Message {
	md := Descriptor()
	startField, endField := fields(md)
	m := dynamicpb.NewMessage(md)
	m.Set(startField, protoreflect.ValueOfUint32(uint32(r.Start())))
	m.Set(endField, protoreflect.ValueOfUint32(uint32(r.End())))
	return m
}

// FromMessage reads a range from any message with the TextRange schema,
// generated or dynamic.
func FromMessage(m protoreflect.Message) (textrange.Range, error) {
	md := m.Descriptor()
	if md.FullName() != FullName() {
		return textrange.Range{}, fmt.Errorf("got message %s, want %s", md.FullName(), FullName())
	}
	startField, endField := fields(md)
	if startField == nil || endField == nil {
		return textrange.Range{}, fmt.Errorf("message %s is missing start or end fields", md.FullName())
	}
	for _, f := range []protoreflect.FieldDescriptor{startField, endField} {
		if f.Kind() != protoreflect.Uint32Kind || f.Cardinality() == protoreflect.Repeated {
			return textrange.Range{}, fmt.Errorf("field %s of %s is %s %s, want singular uint32", f.Name(), md.FullName(), f.Cardinality(), f.Kind())
		}
	}
	start := textsize.Size(m.Get(startField).Uint())
	end := textsize.Size(m.Get(endField).Uint())
	if end < start {
		return textrange.Range{}, fmt.Errorf("TextRange start %s is after end %s", start, end)
	}
	return textrange.New(start, end), nil
}
