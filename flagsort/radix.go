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

const (
	// radix: extended ASCII alphabet size, one bucket per digit value.
	radix = 256

	// cutoff: ranges spanning no more than this are handed to insertion sort.
	cutoff = 15

	// tableSize: one leading slot for the end-of-key sentinel plus one
	// trailing slot consumed by the prefix sum.
	tableSize = radix + 2
)

// workItem is a contiguous index range whose keys agree on every digit
// position before depth but are not yet ordered at depth or beyond.
type workItem struct {
	lo, hi, depth int
}

// sorter carries the scratch state for one top-level call: the digit
// extractor for the key type, the bucket offset tables, and the explicit
// LIFO work list that replaces recursion. The tables are allocated once and
// zeroed between work items, never reallocated.
type sorter[K any] struct {
	digit    func(k K, d int) int
	less     func(v, w K, d int) bool
	maxDepth int // number of digit positions; 0 when keys self-terminate

	first [tableSize]int // bucket start offsets
	next  [tableSize]int // next free slot per bucket during permutation
	stack []workItem
}

// sort orders the inclusive range a[lo..hi]. Ranges of length 0 or 1
// (including any hi < lo) are already ordered and returned untouched.
func (s *sorter[K]) sort(a []K, lo, hi int) {
	if hi <= lo {
		return
	}
	s.run(a, workItem{lo, hi, 0})
}

// run drains the work list starting from root. Termination: every pushed
// item strictly increases depth, depth is bounded (by maxDepth, or by key
// length through the sentinel bucket), and small ranges are finished
// immediately without pushing.
func (s *sorter[K]) run(a []K, root workItem) {
	s.stack = append(s.stack[:0], root)
	for len(s.stack) > 0 {
		it := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		if it.hi <= it.lo+cutoff {
			insertionSort(a, it.lo, it.hi, it.depth, s.less)
			continue
		}
		s.partition(a, it)
	}
}

// partition buckets a[lo..hi] by the digit at it.depth in three linear
// phases (count, prefix sum, permute) and pushes every bucket still spanning
// more than one element onto the work list.
func (s *sorter[K]) partition(a []K, it workItem) {
	lo, hi, d := it.lo, it.hi, it.depth

	// frequency counts; the +1 keeps slot 0 for the end-of-key sentinel
	for i := lo; i <= hi; i++ {
		c := s.digit(a[i], d) + 1
		s.first[c+1]++
	}

	// prefix sums: first[c] becomes the start offset of bucket c, and
	// first[c+1]-1 its end offset
	s.first[0] = lo
	for c := 0; c <= radix; c++ {
		s.first[c+1] += s.first[c]

		// the sentinel bucket (c == 0) holds exhausted keys and is already
		// fully ordered; fixed-width keys stop one position short of width
		if c > 0 && s.first[c+1]-1 > s.first[c] &&
			(s.maxDepth == 0 || d+1 < s.maxDepth) {
			s.stack = append(s.stack, workItem{s.first[c], s.first[c+1] - 1, d + 1})
		}
	}

	// permute in place: while the element at k belongs to a bucket starting
	// after k, swap it into that bucket's next free slot. Every swap lands
	// at least one element in its definitive slot, so the pass is linear.
	copy(s.next[:], s.first[:])
	for k := lo; k <= hi; k++ {
		c := s.digit(a[k], d) + 1
		for s.first[c] > k {
			j := s.next[c]
			a[k], a[j] = a[j], a[k]
			s.next[c]++
			c = s.digit(a[k], d) + 1
		}
		s.next[c]++
	}

	// tables must be fully zero before the next work item
	clear(s.first[:])
	clear(s.next[:])
}
