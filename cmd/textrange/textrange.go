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

// Program textrange prints the text covered by byte ranges of files, along
// with the line:column span of each range.
//
// Example:
//
//	textrange -files 'src/**/*.go' -range 0..120 -range 4000.. -columns utf16
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/golang/glog"
	"github.com/google/textrange/textpos"
	"github.com/google/textrange/textrange"
	"github.com/google/textrange/textrange/rangeproto"
	"github.com/google/textrange/textsize"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

var cfg = registerFlags(flag.CommandLine)

type config struct {
	files       string
	ranges      rangeList
	columns     string
	format      string
	wrap        int
	printSchema bool
	parallelism int
}

func registerFlags(fs *flag.FlagSet) *config {
	cfg := &config{}
	fs.StringVar(&cfg.files, "files", "", "comma-separated list of file globs; ** matches any number of directories")
	fs.Var(&cfg.ranges, "range", "byte range to print, as start..end or start.. (may be repeated)")
	fs.StringVar(&cfg.columns, "columns", columnsUTF8, "unit of reported columns: utf8 (bytes) or utf16 (code units, as in LSP)")
	fs.StringVar(&cfg.format, "format", formatText, "output format: text, json or prototext")
	fs.IntVar(&cfg.wrap, "wrap", 0, "if positive, word wrap excerpts at this many columns")
	fs.BoolVar(&cfg.printSchema, "print_schema", false, "print the .proto definition of TextRange and exit")
	fs.IntVar(&cfg.parallelism, "parallelism", 8, "maximum number of files read concurrently")
	return cfg
}

// rangeList is a repeatable flag of ranges.
type rangeList []textrange.Range

func (l *rangeList) String() string {
	var parts []string
	for _, r := range *l {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ",")
}

func (l *rangeList) Set(s string) error {
	var r textrange.Range
	if err := r.Set(s); err != nil {
		return err
	}
	*l = append(*l, r)
	return nil
}

func main() {
	flag.Parse()
	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "fatal textrange error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config, w io.Writer) error {
	if cfg.printSchema {
		schema, err := rangeproto.Schema()
		if err != nil {
			return fmt.Errorf("error building schema: %w", err)
		}
		_, err = io.WriteString(w, schema)
		return err
	}
	opts, err := cfg.reportOptions()
	if err != nil {
		return err
	}
	if len(cfg.ranges) == 0 {
		return fmt.Errorf("no ranges given; use -range start..end")
	}
	paths, err := expandGlobs(cfg.files)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files matched -files=%q", cfg.files)
	}
	glog.Infof("reporting %d ranges in %d files", len(cfg.ranges), len(paths))

	reports, err := reportAll(ctx, paths, cfg.ranges, cfg.parallelism)
	if err != nil {
		return err
	}
	for _, entries := range reports {
		for _, e := range entries {
			if err := opts.write(w, e); err != nil {
				return err
			}
		}
	}
	return nil
}

// reportAll reads every path concurrently and returns the entries for each
// file in the order of paths.
func reportAll(ctx context.Context, paths []string, ranges []textrange.Range, parallelism int) ([][]entry, error) {
	if parallelism < 1 {
		parallelism = 1
	}
	sem := semaphore.NewWeighted(int64(parallelism))
	reports := make([][]entry, len(paths))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		if err := sem.Acquire(egCtx, 1); err != nil {
			break
		}
		eg.Go(func() error {
			defer sem.Release(1)
			doc, err := readDocument(path)
			if err != nil {
				return err
			}
			entries, err := report(doc, ranges)
			if err != nil {
				return err
			}
			reports[i] = entries
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

func readDocument(path string) (*textpos.Document, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if uint64(len(data)) >= uint64(textsize.Inf) {
		return nil, fmt.Errorf("%s: file of %d bytes is too large", path, len(data))
	}
	doc := textpos.NewDocument(path, string(data))
	glog.Infof("read %s: %d bytes in %d lines", path, doc.Len(), doc.LineCount())
	return doc, nil
}

// expandGlobs returns the regular files matching a comma-separated list of
// doublestar patterns. Matches of each pattern are sorted; a file matched by
// more than one pattern is reported once, at its first match.
func expandGlobs(patterns string) ([]string, error) {
	var paths []string
	seen := map[string]bool{}
	for _, pattern := range strings.Split(patterns, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		matches, err := doublestar.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad file pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			glog.Warningf("pattern %q matched no files", pattern)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if seen[m] {
				continue
			}
			fi, err := os.Stat(m)
			if err != nil {
				return nil, err
			}
			if fi.IsDir() {
				continue
			}
			seen[m] = true
			paths = append(paths, m)
		}
	}
	return paths, nil
}
