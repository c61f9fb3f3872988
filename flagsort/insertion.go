package flagsort

// insertionSort orders a[lo..hi] by adjacent exchanges. Comparison starts at
// digit position depth: every key in the range already agrees on all earlier
// digits. Worst case quadratic, but the caller only hands over ranges at or
// below the cutoff constant.
func insertionSort[K any](a []K, lo, hi, depth int, less func(v, w K, d int) bool) {
	for i := lo; i <= hi; i++ {
		for j := i; j > lo && less(a[j], a[j-1], depth); j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
