// Package flagsort provides in-place MSD radix sorting ("American flag sort")
// for byte-addressable keys: extended ASCII strings, byte slices, and
// fixed-width unsigned integers.
//
// # Algorithm
//
// American flag sort is a most-significant-digit radix sort that works
// without an auxiliary output array. Each pass partitions a range into 256
// digit buckets by counting occurrences, turning the counts into bucket
// offsets with a prefix sum, and then permuting elements into their buckets
// in a single in-place cyclic pass. Buckets that still contain more than one
// element are pushed onto an explicit work list and refined on the next digit
// position; recursion is never used, so arbitrarily long keys cannot exhaust
// a call stack.
//
// Ranges at or below a small cutoff are finished with insertion sort, which
// resumes comparison at the current digit position since all earlier digits
// are already known equal across the range.
//
// # Supported Key Types
//
//   - string, []byte: lexicographic byte order; on a shared prefix, the
//     shorter key sorts first. Code units must be in the 0-255 range.
//   - uint16, uint32, uint64: ascending order by big-endian byte comparison,
//     which for unsigned values is plain numeric order.
//   - int32 via Int32s: values must be non-negative; see its doc comment.
//
// All sorts are unstable: equal keys may be reordered among themselves.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-flagsort/flagsort"
//
//	func ProcessWords(words []string) {
//	    flagsort.Strings(words) // in-place ascending sort
//	}
//
// # Performance
//
// Running time is linear in the total number of key bytes examined, not
// O(n log n) comparisons. Auxiliary memory is constant: two 258-entry offset
// tables plus the pending-range work list, independent of input size.
//
// Because digit buckets occupy disjoint index ranges, sibling buckets are
// independent subproblems. StringsParallel and UintsParallel exploit this by
// draining the top-level buckets with a bounded worker group; output order is
// identical to the sequential functions.
package flagsort
