// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package letters

// IntN returns a uniformly random int in [0, n). math/rand/v2's IntN fits.
type IntN func(n int) int

// Shuffle permutes s in place with a backward Fisher-Yates pass: for each i
// from len(s)-1 down to 1 it swaps s[i] with s[j], j drawn from [0, i].
// Every permutation is equally likely when intn is unbiased.
func Shuffle[T any](s []T, intn IntN) {
	for i := len(s) - 1; i > 0; i-- {
		j := intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
