// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// This file collects the rank/select surface for both Bitmap and Bitmap64:
// counting members up to a value, and locating the n-th smallest member.
// Each container already knows how to rank/select within itself
// (container.go's rank/selectAt dispatch); this layer walks the top-level
// index to find which container a query lands in.

// Rank returns the number of values <= x.
func (rb *Bitmap) Rank(x uint32) int {
	hi, lo := uint16(x>>16), uint16(x&0xFFFF)
	rank := 0
	for i := range rb.containers {
		switch {
		case rb.keys[i] < hi:
			rank += rb.containers[i].cardinality()
		case rb.keys[i] == hi:
			rank += rb.containers[i].rank(lo)
			return rank
		default:
			return rank
		}
	}
	return rank
}

// Select returns the rank-th smallest value (0-indexed), or false if the
// bitmap has fewer than rank+1 members.
func (rb *Bitmap) Select(rank int) (uint32, bool) {
	if rank < 0 {
		return 0, false
	}
	remaining := rank
	for i := range rb.containers {
		card := rb.containers[i].cardinality()
		if remaining < card {
			v, ok := rb.containers[i].selectAt(remaining)
			return uint32(rb.keys[i])<<16 | uint32(v), ok
		}
		remaining -= card
	}
	return 0, false
}

// GetIndex returns the rank (0-indexed position) of x if present.
func (rb *Bitmap) GetIndex(x uint32) (int, bool) {
	if !rb.Contains(x) {
		return 0, false
	}
	return rb.Rank(x) - 1, true
}

// Rank returns the number of values <= x.
func (rb *Bitmap64) Rank(x uint64) uint64 {
	high, lo := x>>16, uint16(x&0xFFFF)
	key := keyFromHigh48(high)
	var rank uint64
	ascend(rb.tree.root, func(leaf *artLeaf) bool {
		switch {
		case leaf.key.compare(key) < 0:
			rank += uint64(leaf.value.cardinality())
			return true
		case leaf.key.compare(key) == 0:
			rank += uint64(leaf.value.rank(lo))
			return false
		default:
			return false
		}
	})
	return rank
}

// Select returns the rank-th smallest value (0-indexed), or false if the
// bitmap has fewer than rank+1 members.
func (rb *Bitmap64) Select(rank uint64) (uint64, bool) {
	remaining := rank
	var result uint64
	found := false
	ascend(rb.tree.root, func(leaf *artLeaf) bool {
		card := uint64(leaf.value.cardinality())
		if remaining < card {
			v, ok := leaf.value.selectAt(int(remaining))
			if ok {
				result = leaf.key.high48()<<16 | uint64(v)
				found = true
			}
			return false
		}
		remaining -= card
		return true
	})
	return result, found
}

// GetIndex returns the rank (0-indexed position) of x if present.
func (rb *Bitmap64) GetIndex(x uint64) (uint64, bool) {
	if !rb.Contains(x) {
		return 0, false
	}
	return rb.Rank(x) - 1, true
}
