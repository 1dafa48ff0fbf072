// Package hash computes cluster content hashes.
//
// A content hash summarizes cluster membership so that "same members, different frame"
// can be detected without comparing member lists. Hashes are built from per-point XXH3
// digests folded with wrapping addition, which makes them independent of member order
// and lets the collision merger combine two clusters without revisiting their members.
package hash

import "github.com/zeebo/xxh3"

// Content accumulates the content hash of a set of points.
//
// The zero value is the hash of the empty set.
type Content struct {
	sum   uint64
	count int
	seed  uint64
}

// NewContent creates an accumulator.
//
// Parameters:
//   - seed: Seed for the per-point hash (use 0 for the unseeded XXH3 digest)
//
// Returns:
//   - *Content: Empty accumulator
func NewContent(seed uint64) *Content {
	return &Content{seed: seed}
}

// Add folds one point identity into the hash.
func (c *Content) Add(id string) {
	c.sum = Combine(c.sum, pointHash(id, c.seed))
	c.count++
}

// Sum returns the accumulated hash.
func (c *Content) Sum() uint64 {
	return c.sum
}

// Len returns the number of folded identities.
func (c *Content) Len() int {
	return c.count
}

// Point returns the content hash of a single-point set.
//
// Parameters:
//   - id: Point identity
//
// Returns:
//   - uint64: XXH3 digest of id
func Point(id string) uint64 {
	return pointHash(id, 0)
}

// Of returns the content hash of the given point identities.
func Of(ids ...string) uint64 {
	var sum uint64
	for _, id := range ids {
		sum = Combine(sum, Point(id))
	}

	return sum
}

// Combine merges the hashes of two disjoint sets.
//
// Combine is commutative and associative, so the result does not depend on the order
// in which clusters are absorbed.
func Combine(a, b uint64) uint64 {
	return a + b
}

func pointHash(id string, seed uint64) uint64 {
	if seed != 0 {
		return xxh3.HashStringSeed(id, seed)
	}

	return xxh3.HashString(id)
}
