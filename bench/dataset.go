package bench

import "math/rand"

// UniqueDataset returns the keys 0..n-1 shuffled by a generator seeded
// with seed. The same seed always yields the same order.
func UniqueDataset(n int, seed int64) []int {
	return rand.New(rand.NewSource(seed)).Perm(n)
}
