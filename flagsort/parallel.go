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
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelCutoff: below this many elements the goroutine overhead exceeds
// the partitioning win and the sequential path is used.
const parallelCutoff = 1 << 13

// StringsParallel sorts a like Strings, draining the top-level digit buckets
// with up to GOMAXPROCS workers. The resulting order is identical to
// Strings; small inputs fall back to the sequential path.
func StringsParallel(a []string) {
	parallelSort(a, 0, len(a)-1, newByteSorter[string])
}

// UintsParallel sorts a like Uints using up to GOMAXPROCS workers.
func UintsParallel[T UintKey](a []T) {
	parallelSort(a, 0, len(a)-1, newUintSorter[T])
}

// parallelSort runs one partitioning pass at depth 0 and hands the resulting
// buckets to a bounded worker group. Buckets are disjoint index ranges, so
// workers share the array without synchronization; each worker owns its own
// scratch tables.
func parallelSort[K any](a []K, lo, hi int, newSorter func() *sorter[K]) {
	if hi-lo+1 <= parallelCutoff {
		newSorter().sort(a, lo, hi)
		return
	}

	s := newSorter()
	s.partition(a, workItem{lo, hi, 0})
	// after a single partition the work list holds exactly the top-level
	// buckets that still need refining
	buckets := s.stack
	if len(buckets) == 0 {
		return
	}

	items := make(chan workItem, len(buckets))
	for _, it := range buckets {
		items <- it
	}
	close(items)

	workers := min(runtime.GOMAXPROCS(0), len(buckets))
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			w := newSorter()
			for it := range items {
				w.run(a, it)
			}
			return nil
		})
	}
	// workers never fail; Wait is only the join point
	_ = g.Wait()
}
