// Copyright 2026 go-flagsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command flagsort reads whitespace-delimited tokens from stdin or the named
// files, sorts them in place with American flag sort, and prints one token
// per line in ascending order.
//
// Usage:
//
//	flagsort < words.txt
//	flagsort --ints < ids.txt          # parse tokens as non-negative integers
//	flagsort --parallel big-words.txt  # drain top-level buckets concurrently
//
// Tokens are compared by extended ASCII byte order. With --ints, every token
// must parse as a non-negative base-10 integer up to 64 bits.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/ajroetker/go-flagsort/flagsort"
)

var (
	intMode  = flag.Bool("ints", false, "Parse tokens as non-negative base-10 integers")
	parallel = flag.Bool("parallel", false, "Sort top-level digit buckets concurrently")
)

func main() {
	flag.Parse()

	opts := options{ints: *intMode, parallel: *parallel}
	if err := run(opts, flag.Args(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "flagsort: %v\n", err)
		os.Exit(1)
	}
}

// options mirrors the command-line flags so run stays testable without the
// package-level flag state.
type options struct {
	ints     bool
	parallel bool
}

// maxTokenSize bounds a single input token; sorting itself has no key length
// limit, this only sizes the scanner buffer.
const maxTokenSize = 1 << 20

func run(opts options, paths []string, stdin io.Reader, stdout io.Writer) error {
	var readers []io.Reader
	if len(paths) == 0 {
		readers = append(readers, stdin)
	}
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()
		readers = append(readers, f)
	}

	sc := bufio.NewScanner(io.MultiReader(readers...))
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)

	out := bufio.NewWriter(stdout)

	if opts.ints {
		var vals []uint64
		for sc.Scan() {
			v, err := strconv.ParseUint(sc.Text(), 10, 64)
			if err != nil {
				return fmt.Errorf("token %q: not a non-negative integer", sc.Text())
			}
			vals = append(vals, v)
		}
		if err := sc.Err(); err != nil {
			return err
		}

		if opts.parallel {
			flagsort.UintsParallel(vals)
		} else {
			flagsort.Uints(vals)
		}
		for _, v := range vals {
			fmt.Fprintln(out, v)
		}
		return out.Flush()
	}

	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return err
	}

	if opts.parallel {
		flagsort.StringsParallel(words)
	} else {
		flagsort.Strings(words)
	}
	for _, w := range words {
		fmt.Fprintln(out, w)
	}
	return out.Flush()
}
