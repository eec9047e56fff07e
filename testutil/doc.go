// Package testutil provides testing utilities for seiscube.
//
// This package is intended for use in tests and examples only.
// It provides a deterministic in-memory Reader and a seeded RNG for
// generating random requests.
//
// # Synthetic Volumes
//
//	r := testutil.NewSyntheticReader("small.sgz",
//	    []int{100, 102, 104}, []int{10, 12}, []float64{0, 4, 8})
//	vol, _ := seiscube.Open(r)
//
// Every sample holds Value(i, j, k) for its zero-based inline, crossline and
// sample position, so results can be checked without a reference file.
// Call counters record which reads were issued.
package testutil
