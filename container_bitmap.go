// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "math/bits"

// bmpSet sets a single bit, returning true if it was not already set.
func (c *container) bmpSet(value uint16) bool {
	if c.bits.Contains(uint32(value)) {
		return false
	}
	c.bits.Set(uint32(value))
	if c.size != sizeUnknown {
		c.size++
	}
	return true
}

func (c *container) bmpDel(value uint16) bool {
	if !c.bits.Contains(uint32(value)) {
		return false
	}
	c.bits.Remove(uint32(value))
	if c.size != sizeUnknown {
		c.size--
	}
	return true
}

func (c *container) bmpHas(value uint16) bool {
	return c.bits.Contains(uint32(value))
}

// bmpSetRange sets [lo,hi) and recomputes the cached cardinality by
// recounting the whole bitmap.
func (c *container) bmpSetRange(lo, hi int) {
	setRange(c.bits, lo, hi)
	c.size = int32(c.bits.Count())
}

func (c *container) bmpResetRange(lo, hi int) {
	clearRange(c.bits, lo, hi)
	c.size = int32(c.bits.Count())
}

func (c *container) bmpFlipRange(lo, hi int) {
	flipRange(c.bits, lo, hi)
	c.size = int32(c.bits.Count())
}

// bmpRank returns the number of set bits at positions <= v.
func (c *container) bmpRank(v uint16) int {
	return popcountUpto(c.bits, int(v))
}

// bmpSelect returns the rank-th set bit (0-indexed), or false if there
// are fewer than rank+1 bits set.
func (c *container) bmpSelect(rank int) (uint16, bool) {
	if rank < 0 {
		return 0, false
	}
	remaining := rank
	for i, w := range c.bits {
		count := bits.OnesCount64(w)
		if remaining < count {
			pos := selectInWord(w, remaining)
			return uint16(i*64 + pos), true
		}
		remaining -= count
	}
	return 0, false
}

// bmpOptimize converts back to array once the container has shrunk below
// the threshold where an array is smaller.
func (c *container) bmpOptimize() {
	if c.cardinality() <= arrayMaxSize {
		c.bmpToArray()
	}
}

func (c *container) bmpToArray() {
	n := c.cardinality()
	arr := make([]uint16, n)
	extractSetBits16(c.bits, arr, 0)
	c.arr = arr
	c.bits = nil
	c.typ = typeArray
	c.size = int32(n)
}

func (c *container) bmpMin() (uint16, bool) {
	pos := minWords(c.bits)
	if pos < 0 {
		return 0, false
	}
	return uint16(pos), true
}

func (c *container) bmpMax() (uint16, bool) {
	pos := maxWords(c.bits)
	if pos < 0 {
		return 0, false
	}
	return uint16(pos), true
}

// bmpRange visits every set bit in ascending order, stopping early if fn
// returns false. Each non-zero word is scanned four bits at a time and the
// scan of a word stops after its highest set bit; fn is called once per set
// bit.
func (c *container) bmpRange(fn func(uint16) bool) {
	for blkAt, blk := range c.bits {
		if blk == 0 {
			continue
		}
		offset := uint32(blkAt << 6)
		for ; blk > 0; blk >>= 4 {
			nibble := blk & 0b1111
			for b := uint32(0); b < 4; b++ {
				if nibble&(1<<b) != 0 {
					if !fn(uint16(offset + b)) {
						return
					}
				}
			}
			offset += 4
		}
	}
}
