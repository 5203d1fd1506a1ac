// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// This file implements the 64-bit top-level index (C8) on top of artTree:
// a value splits into a 48-bit high key, routed through the trie, and a
// 16-bit low key addressing a container exactly as in the 32-bit index.

// getOrCreate returns the (forked) container for the given 48-bit high
// key, creating an empty array container for it if absent.
func (rb *Bitmap64) getOrCreate(high uint64) *container {
	key := keyFromHigh48(high)
	if c := rb.tree.find(key); c != nil {
		c.fork()
		return c
	}
	c := newArrayContainer()
	rb.tree.insert(key, c)
	return c
}

// mergeAnd intersects rb with other, dropping containers that become
// empty or have no counterpart.
func (rb *Bitmap64) mergeAnd(other *Bitmap64) {
	if other == nil || other.tree.size == 0 {
		rb.Clear()
		return
	}
	var drop []artKey
	ascend(rb.tree.root, func(leaf *artLeaf) bool {
		oc := other.tree.find(leaf.key)
		c := leaf.value
		c.fork()
		switch {
		case oc == nil:
			drop = append(drop, leaf.key)
		case !ctrAnd(c, oc):
			drop = append(drop, leaf.key)
		}
		return true
	})
	for _, k := range drop {
		rb.tree.remove(k)
	}
}

// mergeOr unions other into rb.
func (rb *Bitmap64) mergeOr(other *Bitmap64) {
	if other == nil {
		return
	}
	ascend(other.tree.root, func(leaf *artLeaf) bool {
		if c := rb.tree.find(leaf.key); c != nil {
			c.fork()
			ctrOr(c, leaf.value)
			repack(c)
		} else {
			rb.tree.insert(leaf.key, copyContainerOutPtr(leaf.value, other.cow))
		}
		return true
	})
}

// mergeXor computes rb ^= other.
func (rb *Bitmap64) mergeXor(other *Bitmap64) {
	if other == nil {
		return
	}
	var drop []artKey
	ascend(other.tree.root, func(leaf *artLeaf) bool {
		if c := rb.tree.find(leaf.key); c != nil {
			c.fork()
			ctrXor(c, leaf.value)
			repack(c)
			if c.isEmpty() {
				drop = append(drop, leaf.key)
			}
		} else {
			rb.tree.insert(leaf.key, copyContainerOutPtr(leaf.value, other.cow))
		}
		return true
	})
	for _, k := range drop {
		rb.tree.remove(k)
	}
}

// mergeAndNot computes rb &^= other.
func (rb *Bitmap64) mergeAndNot(other *Bitmap64) {
	if other == nil {
		return
	}
	var drop []artKey
	ascend(rb.tree.root, func(leaf *artLeaf) bool {
		oc := other.tree.find(leaf.key)
		if oc == nil {
			return true
		}
		c := leaf.value
		c.fork()
		if !ctrAndNot(c, oc) {
			drop = append(drop, leaf.key)
		}
		return true
	})
	for _, k := range drop {
		rb.tree.remove(k)
	}
}

// copyContainerOutPtr is copyContainerOut adapted to the pointer-holding
// artLeaf value: Bitmap64 stores *container directly in its trie leaves
// rather than a containers slice, so sharing and cloning operate on the
// pointer's pointee instead of a slice element.
func copyContainerOutPtr(c *container, cow bool) *container {
	if !cow {
		clone := c.clone()
		return &clone
	}
	c.shared = share(c.shared)
	out := *c
	out.shared = c.shared
	return &out
}

// equals reports whether rb and other contain exactly the same values.
func (rb *Bitmap64) equals(other *Bitmap64) bool {
	if rb.tree.size != other.tree.size {
		return false
	}
	equal := true
	ascend(rb.tree.root, func(leaf *artLeaf) bool {
		oc := other.tree.find(leaf.key)
		if oc == nil || oc.cardinality() != leaf.value.cardinality() {
			equal = false
			return false
		}
		return true
	})
	if !equal {
		return false
	}
	rb.Range(func(x uint64) bool {
		if !other.Contains(x) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// isSubset reports whether every value in rb is also in other.
func (rb *Bitmap64) isSubset(other *Bitmap64) bool {
	ok := true
	rb.Range(func(x uint64) bool {
		if !other.Contains(x) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// intersects reports whether rb and other share at least one value.
func (rb *Bitmap64) intersects(other *Bitmap64) bool {
	found := false
	ascend(rb.tree.root, func(leaf *artLeaf) bool {
		oc := other.tree.find(leaf.key)
		if oc == nil {
			return true
		}
		c1, c2 := leaf.value, oc
		smaller, larger := c1, c2
		if c2.cardinality() < c1.cardinality() {
			smaller, larger = c2, c1
		}
		smaller.forEach(func(v uint16) bool {
			if larger.contains(v) {
				found = true
				return false
			}
			return true
		})
		return !found
	})
	return found
}
