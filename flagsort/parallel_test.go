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

package flagsort

import (
	"math/rand"
	"slices"
	"testing"
)

// TestStringsParallelMatchesSequential verifies the parallel variant
// produces the exact same order as Strings on an input large enough to take
// the parallel path
func TestStringsParallelMatchesSequential(t *testing.T) {
	data := randomWords(parallelCutoff*2, 12)
	want := slices.Clone(data)
	Strings(want)

	StringsParallel(data)
	if !slices.Equal(data, want) {
		t.Errorf("StringsParallel differs from Strings")
	}
}

// TestUintsParallelMatchesSequential verifies the parallel integer variant
func TestUintsParallelMatchesSequential(t *testing.T) {
	data := make([]uint64, parallelCutoff*2)
	for i := range data {
		data[i] = rand.Uint64()
	}
	want := slices.Clone(data)
	Uints(want)

	UintsParallel(data)
	if !slices.Equal(data, want) {
		t.Errorf("UintsParallel differs from Uints")
	}
}

// TestParallelSmallInput verifies small inputs take the sequential path and
// still sort correctly
func TestParallelSmallInput(t *testing.T) {
	data := randomWords(100, 8)
	want := slices.Clone(data)
	slices.Sort(want)

	StringsParallel(data)
	if !slices.Equal(data, want) {
		t.Errorf("StringsParallel(small) does not match slices.Sort")
	}

	var empty []string
	StringsParallel(empty)
	if len(empty) != 0 {
		t.Errorf("StringsParallel(empty) should not modify empty slice")
	}
}

// TestParallelSkewedBuckets tests an input where almost every key lands in
// one top-level bucket
func TestParallelSkewedBuckets(t *testing.T) {
	data := make([]string, parallelCutoff*2)
	for i := range data {
		data[i] = "k" + randomWords(1, 8)[0]
	}
	data[0] = "a"
	data[1] = "z"
	want := slices.Clone(data)
	slices.Sort(want)

	StringsParallel(data)
	if !slices.Equal(data, want) {
		t.Errorf("StringsParallel(skewed) does not match slices.Sort")
	}
}
