// Package scramble derives deterministic tile orderings from a seed.
// The same seed always yields the same permutation, so an image
// scrambled with a seed can be restored by applying the inverse of
// that seed's ordering.
package scramble

import "sort"

// xorshift32 is the PRNG the scrambled images are keyed with. The
// exact output sequence is the contract; swapping in another generator
// would break every existing seed.
type xorshift32 struct {
	state uint32
}

func newXorshift32(seed uint32) *xorshift32 {
	if seed == 0 {
		seed = 1
	}
	return &xorshift32{state: seed}
}

func (r *xorshift32) next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Ordering returns the permutation of [0, n) keyed by seed: each index
// is tagged with the next PRNG value and the indices are sorted by
// tag. The result is always a valid permutation.
func Ordering(seed uint32, n int) []int {
	type tagged struct {
		tag   uint32
		index int
	}
	prng := newXorshift32(seed)
	items := make([]tagged, n)
	for i := range items {
		items[i] = tagged{tag: prng.next(), index: i}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].tag < items[j].tag
	})

	ordering := make([]int, n)
	for i, item := range items {
		ordering[i] = item.index
	}
	return ordering
}
