package flagsort

import (
	"math/rand"
	"slices"
	"testing"
)

// Generate random data for benchmarks
func generateWords(n int) []string {
	return randomWords(n, 16)
}

func generateUint32(n int) []uint32 {
	data := make([]uint32, n)
	for i := range data {
		data[i] = rand.Uint32()
	}
	return data
}

func generateUint64(n int) []uint64 {
	data := make([]uint64, n)
	for i := range data {
		data[i] = rand.Uint64()
	}
	return data
}

// String benchmarks
func BenchmarkStrings_1000(b *testing.B) {
	benchmarkStrings(b, 1000)
}

func BenchmarkStrings_10000(b *testing.B) {
	benchmarkStrings(b, 10000)
}

func BenchmarkStrings_100000(b *testing.B) {
	benchmarkStrings(b, 100000)
}

func benchmarkStrings(b *testing.B, n int) {
	ref := generateWords(n)
	data := make([]string, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Strings(data)
	}
}

func BenchmarkStringsParallel_100000(b *testing.B) {
	ref := generateWords(100000)
	data := make([]string, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		StringsParallel(data)
	}
}

// Stdlib comparison
func BenchmarkStdlibSortStrings_10000(b *testing.B) {
	ref := generateWords(10000)
	data := make([]string, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

// Integer benchmarks
func BenchmarkUint32s_10000(b *testing.B) {
	ref := generateUint32(10000)
	data := make([]uint32, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Uints(data)
	}
}

func BenchmarkUint64s_10000(b *testing.B) {
	ref := generateUint64(10000)
	data := make([]uint64, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Uints(data)
	}
}

func BenchmarkStdlibSortUint32_10000(b *testing.B) {
	ref := generateUint32(10000)
	data := make([]uint32, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}
