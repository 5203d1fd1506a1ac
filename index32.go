// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// This file implements the 32-bit top-level index (C7): an ordered sorted
// array mapping a 16-bit high key to its container, with merges for the
// whole-bitmap set operations (a binary-search lookup per key for And, a
// linear two-pointer walk for the others). Bitmap (bitmap32.go) is the public
// surface built on top of it.

// ctrAdd inserts a new container for key hi at position pos, shifting
// everything after it one slot to the right.
func (rb *Bitmap) ctrAdd(hi uint16, pos int, c container) {
	rb.containers = append(rb.containers, container{})
	if pos < len(rb.containers)-1 {
		copy(rb.containers[pos+1:], rb.containers[pos:len(rb.containers)-1])
	}
	rb.containers[pos] = c

	rb.keys = append(rb.keys, 0)
	if pos < len(rb.keys)-1 {
		copy(rb.keys[pos+1:], rb.keys[pos:len(rb.keys)-1])
	}
	rb.keys[pos] = hi
}

// ctrDel removes the container at pos.
func (rb *Bitmap) ctrDel(pos int) {
	if pos < 0 || pos >= len(rb.containers) {
		return
	}
	copy(rb.containers[pos:], rb.containers[pos+1:])
	rb.containers = rb.containers[:len(rb.containers)-1]
	copy(rb.keys[pos:], rb.keys[pos+1:])
	rb.keys = rb.keys[:len(rb.keys)-1]
}

// getOrCreate returns the (forked) container for high key hi, creating an
// empty array container for it if absent.
func (rb *Bitmap) getOrCreate(hi uint16) *container {
	idx, exists := find16(rb.keys, hi)
	if !exists {
		rb.ctrAdd(hi, idx, *newArrayContainer())
	}
	c := &rb.containers[idx]
	c.fork()
	return c
}

// copyContainerOut returns a container suitable for storing into another
// bitmap: if COW is enabled, both copies end up sharing the same payload
// via a refcount; otherwise a deep clone is made.
func copyContainerOut(c *container, cow bool) container {
	if !cow {
		return c.clone()
	}
	c.shared = share(c.shared)
	out := *c
	out.shared = c.shared
	return out
}

// mergeAnd intersects rb with other, dropping containers that become empty.
func (rb *Bitmap) mergeAnd(other *Bitmap) {
	switch {
	case other == nil || len(other.containers) == 0:
		rb.Clear()
		return
	case len(rb.containers) == 0:
		return
	}

	var drop []int
	for i := range rb.containers {
		idx, exists := find16(other.keys, rb.keys[i])
		c1 := &rb.containers[i]
		c1.fork()
		switch {
		case !exists:
			drop = append(drop, i)
		case !ctrAnd(c1, &other.containers[idx]):
			drop = append(drop, i)
		}
	}
	for i := len(drop) - 1; i >= 0; i-- {
		rb.ctrDel(drop[i])
	}
}

// mergeOr unions other into rb.
func (rb *Bitmap) mergeOr(other *Bitmap) {
	switch {
	case other == nil || len(other.containers) == 0:
		return
	case len(rb.containers) == 0:
		rb.containers = make([]container, len(other.containers))
		rb.keys = make([]uint16, len(other.keys))
		for i := range other.containers {
			rb.containers[i] = copyContainerOut(&other.containers[i], other.cow)
		}
		copy(rb.keys, other.keys)
		return
	}

	i, j := 0, 0
	newContainers := make([]container, 0, len(rb.containers)+len(other.containers))
	newKeys := make([]uint16, 0, len(rb.keys)+len(other.keys))

	for i < len(rb.containers) && j < len(other.containers) {
		k1, k2 := rb.keys[i], other.keys[j]
		switch {
		case k1 < k2:
			newContainers = append(newContainers, rb.containers[i])
			newKeys = append(newKeys, k1)
			i++
		case k1 > k2:
			newContainers = append(newContainers, copyContainerOut(&other.containers[j], other.cow))
			newKeys = append(newKeys, k2)
			j++
		default:
			c1 := &rb.containers[i]
			c1.fork()
			ctrOr(c1, &other.containers[j])
			repack(c1)
			newContainers = append(newContainers, *c1)
			newKeys = append(newKeys, k1)
			i++
			j++
		}
	}
	for ; i < len(rb.containers); i++ {
		newContainers = append(newContainers, rb.containers[i])
		newKeys = append(newKeys, rb.keys[i])
	}
	for ; j < len(other.containers); j++ {
		newContainers = append(newContainers, copyContainerOut(&other.containers[j], other.cow))
		newKeys = append(newKeys, other.keys[j])
	}

	rb.containers = newContainers
	rb.keys = newKeys
}

// mergeOrLazy is mergeOr without the repack step: touched bitmap containers
// are left with size == sizeUnknown for a subsequent repair to recompute.
func (rb *Bitmap) mergeOrLazy(other *Bitmap) {
	switch {
	case other == nil || len(other.containers) == 0:
		return
	case len(rb.containers) == 0:
		rb.mergeOr(other)
		return
	}

	i, j := 0, 0
	newContainers := make([]container, 0, len(rb.containers)+len(other.containers))
	newKeys := make([]uint16, 0, len(rb.keys)+len(other.keys))

	for i < len(rb.containers) && j < len(other.containers) {
		k1, k2 := rb.keys[i], other.keys[j]
		switch {
		case k1 < k2:
			newContainers = append(newContainers, rb.containers[i])
			newKeys = append(newKeys, k1)
			i++
		case k1 > k2:
			newContainers = append(newContainers, copyContainerOut(&other.containers[j], other.cow))
			newKeys = append(newKeys, k2)
			j++
		default:
			c1 := &rb.containers[i]
			c1.fork()
			ctrOr(c1, &other.containers[j])
			if c1.typ == typeBitmap {
				c1.size = sizeUnknown
			}
			newContainers = append(newContainers, *c1)
			newKeys = append(newKeys, k1)
			i++
			j++
		}
	}
	for ; i < len(rb.containers); i++ {
		newContainers = append(newContainers, rb.containers[i])
		newKeys = append(newKeys, rb.keys[i])
	}
	for ; j < len(other.containers); j++ {
		newContainers = append(newContainers, copyContainerOut(&other.containers[j], other.cow))
		newKeys = append(newKeys, other.keys[j])
	}

	rb.containers = newContainers
	rb.keys = newKeys
}

// mergeXorLazy is mergeXor without the repack/empty-drop step.
func (rb *Bitmap) mergeXorLazy(other *Bitmap) {
	if other == nil || len(other.containers) == 0 {
		return
	}

	i, j := 0, 0
	newContainers := make([]container, 0, len(rb.containers)+len(other.containers))
	newKeys := make([]uint16, 0, len(rb.keys)+len(other.keys))

	for i < len(rb.containers) && j < len(other.containers) {
		k1, k2 := rb.keys[i], other.keys[j]
		switch {
		case k1 < k2:
			newContainers = append(newContainers, rb.containers[i])
			newKeys = append(newKeys, k1)
			i++
		case k1 > k2:
			newContainers = append(newContainers, copyContainerOut(&other.containers[j], other.cow))
			newKeys = append(newKeys, k2)
			j++
		default:
			c1 := &rb.containers[i]
			c1.fork()
			ctrXor(c1, &other.containers[j])
			if c1.typ == typeBitmap {
				c1.size = sizeUnknown
			}
			newContainers = append(newContainers, *c1)
			newKeys = append(newKeys, k1)
			i++
			j++
		}
	}
	for ; i < len(rb.containers); i++ {
		newContainers = append(newContainers, rb.containers[i])
		newKeys = append(newKeys, rb.keys[i])
	}
	for ; j < len(other.containers); j++ {
		newContainers = append(newContainers, copyContainerOut(&other.containers[j], other.cow))
		newKeys = append(newKeys, other.keys[j])
	}

	rb.containers = newContainers
	rb.keys = newKeys
}

// mergeXor computes rb ^= other.
func (rb *Bitmap) mergeXor(other *Bitmap) {
	if other == nil || len(other.containers) == 0 {
		return
	}

	i, j := 0, 0
	newContainers := make([]container, 0, len(rb.containers)+len(other.containers))
	newKeys := make([]uint16, 0, len(rb.keys)+len(other.keys))

	for i < len(rb.containers) && j < len(other.containers) {
		k1, k2 := rb.keys[i], other.keys[j]
		switch {
		case k1 < k2:
			newContainers = append(newContainers, rb.containers[i])
			newKeys = append(newKeys, k1)
			i++
		case k1 > k2:
			newContainers = append(newContainers, copyContainerOut(&other.containers[j], other.cow))
			newKeys = append(newKeys, k2)
			j++
		default:
			c1 := &rb.containers[i]
			c1.fork()
			ctrXor(c1, &other.containers[j])
			repack(c1)
			if !c1.isEmpty() {
				newContainers = append(newContainers, *c1)
				newKeys = append(newKeys, k1)
			}
			i++
			j++
		}
	}
	for ; i < len(rb.containers); i++ {
		newContainers = append(newContainers, rb.containers[i])
		newKeys = append(newKeys, rb.keys[i])
	}
	for ; j < len(other.containers); j++ {
		newContainers = append(newContainers, copyContainerOut(&other.containers[j], other.cow))
		newKeys = append(newKeys, other.keys[j])
	}

	rb.containers = newContainers
	rb.keys = newKeys
}

// mergeAndNot computes rb &^= other.
func (rb *Bitmap) mergeAndNot(other *Bitmap) {
	if other == nil || len(other.containers) == 0 {
		return
	}

	var drop []int
	j := 0
	for i := range rb.containers {
		for j < len(other.containers) && other.keys[j] < rb.keys[i] {
			j++
		}
		if j >= len(other.containers) || other.keys[j] != rb.keys[i] {
			continue
		}

		c1 := &rb.containers[i]
		c1.fork()
		if !ctrAndNot(c1, &other.containers[j]) {
			drop = append(drop, i)
		}
	}
	for i := len(drop) - 1; i >= 0; i-- {
		rb.ctrDel(drop[i])
	}
}

// equals reports whether rb and other contain exactly the same values.
func (rb *Bitmap) equals(other *Bitmap) bool {
	if len(rb.containers) != len(other.containers) {
		return false
	}
	for i := range rb.containers {
		if rb.keys[i] != other.keys[i] {
			return false
		}
		if rb.containers[i].cardinality() != other.containers[i].cardinality() {
			return false
		}
	}

	equal := true
	rb.Range(func(x uint32) bool {
		if !other.Contains(x) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// isSubset reports whether every value in rb is also in other.
func (rb *Bitmap) isSubset(other *Bitmap) bool {
	ok := true
	rb.Range(func(x uint32) bool {
		if !other.Contains(x) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// intersects reports whether rb and other share at least one value, without
// materializing the intersection.
func (rb *Bitmap) intersects(other *Bitmap) bool {
	i, j := 0, 0
	for i < len(rb.containers) && j < len(other.containers) {
		k1, k2 := rb.keys[i], other.keys[j]
		switch {
		case k1 < k2:
			i++
		case k1 > k2:
			j++
		default:
			found := false
			c1, c2 := &rb.containers[i], &other.containers[j]
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
			if found {
				return true
			}
			i++
			j++
		}
	}
	return false
}
