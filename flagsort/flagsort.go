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

// ByteKey is the constraint for variable-length keys addressed byte by byte.
type ByteKey interface {
	string | []byte
}

// UintKey is the constraint for fixed-width unsigned integer keys, sorted by
// big-endian byte comparison.
type UintKey interface {
	uint16 | uint32 | uint64
}

// Strings sorts a in ascending lexicographic order by extended ASCII code
// units. The sort is in place and unstable.
func Strings(a []string) {
	StringsRange(a, 0, len(a)-1)
}

// StringsRange sorts the inclusive index range a[lo..hi]. Elements outside
// the range are not touched.
func StringsRange(a []string, lo, hi int) {
	newByteSorter[string]().sort(a, lo, hi)
}

// Bytes sorts a in ascending lexicographic byte order, in place and unstable.
func Bytes(a [][]byte) {
	BytesRange(a, 0, len(a)-1)
}

// BytesRange sorts the inclusive index range a[lo..hi].
func BytesRange(a [][]byte, lo, hi int) {
	newByteSorter[[]byte]().sort(a, lo, hi)
}

// Uints sorts a in ascending order, in place and unstable.
func Uints[T UintKey](a []T) {
	UintsRange(a, 0, len(a)-1)
}

// UintsRange sorts the inclusive index range a[lo..hi].
func UintsRange[T UintKey](a []T, lo, hi int) {
	newUintSorter[T]().sort(a, lo, hi)
}

// Int32s sorts a in ascending order, in place and unstable.
//
// Every value must be non-negative. This is a precondition, not a runtime
// check: negative values are bucketed by their two's-complement bytes and
// the result is an arbitrary but non-crashing order.
func Int32s(a []int32) {
	newInt32Sorter().sort(a, 0, len(a)-1)
}

// newByteSorter builds a sorter for string-like keys. Depth is unbounded:
// every key self-terminates through the end-of-key sentinel digit.
func newByteSorter[K ByteKey]() *sorter[K] {
	return &sorter[K]{
		digit: byteDigit[K],
		less:  byteLess[K],
	}
}

// newUintSorter builds a sorter for fixed-width unsigned keys. The work-list
// depth is capped at the key's byte width.
func newUintSorter[T UintKey]() *sorter[T] {
	width := byteWidth[T]()
	top := 8 * (width - 1)
	return &sorter[T]{
		digit: func(v T, d int) int {
			return int(uint64(v)>>(top-8*d)) & 0xff
		},
		// keys reaching the fallback agree on all digits before depth, so a
		// whole-value compare equals the byte-suffix compare
		less:     func(v, w T, _ int) bool { return v < w },
		maxDepth: width,
	}
}

func newInt32Sorter() *sorter[int32] {
	return &sorter[int32]{
		digit: func(v int32, d int) int {
			return int(uint32(v)>>(24-8*d)) & 0xff
		},
		less:     func(v, w int32, _ int) bool { return v < w },
		maxDepth: 4,
	}
}

// byteWidth returns the width in bytes of an unsigned key type.
func byteWidth[T UintKey]() int {
	var zero T
	switch any(zero).(type) {
	case uint16:
		return 2
	case uint32:
		return 4
	case uint64:
		return 8
	}
	return 0
}

// byteDigit returns the code unit of k at position d, or -1 when k is
// exhausted. The sort never asks for a position past the key's length.
func byteDigit[K ByteKey](k K, d int) int {
	if d == len(k) {
		return -1
	}
	return int(k[d])
}

// byteLess reports whether v sorts before w, comparing from position d
// onward; on a shared prefix the shorter key is less.
func byteLess[K ByteKey](v, w K, d int) bool {
	n := min(len(v), len(w))
	for i := d; i < n; i++ {
		if v[i] != w[i] {
			return v[i] < w[i]
		}
	}
	return len(v) < len(w)
}
