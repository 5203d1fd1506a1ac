// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// BulkContext32 caches the last high key looked up on a Bitmap so that a
// run of calls sharing a key prefix skip the top-level search. It is
// zero-valued ready to use, and is invalidated by any mutation of its
// bitmap that does not go through one of its own *Bulk methods.
type BulkContext32 struct {
	valid bool
	key   uint16
	index int
}

// AddBulk adds x to rb, reusing the cached container when x's high key
// matches the last call through ctx.
func (ctx *BulkContext32) AddBulk(rb *Bitmap, x uint32) {
	hi, lo := uint16(x>>16), uint16(x&0xFFFF)
	if ctx.valid && ctx.key == hi {
		c := &rb.containers[ctx.index]
		c.fork()
		c.set(lo)
		return
	}

	c := rb.getOrCreate(hi)
	c.set(lo)
	idx, _ := find16(rb.keys, hi)
	*ctx = BulkContext32{valid: true, key: hi, index: idx}
}

// ContainsBulk checks membership of x, reusing the cached container lookup.
func (ctx *BulkContext32) ContainsBulk(rb *Bitmap, x uint32) bool {
	hi, lo := uint16(x>>16), uint16(x&0xFFFF)
	if ctx.valid && ctx.key == hi {
		return rb.containers[ctx.index].contains(lo)
	}

	idx, exists := find16(rb.keys, hi)
	if !exists {
		return false
	}
	*ctx = BulkContext32{valid: true, key: hi, index: idx}
	return rb.containers[idx].contains(lo)
}

// RemoveBulk removes x from rb, reusing the cached container lookup.
func (ctx *BulkContext32) RemoveBulk(rb *Bitmap, x uint32) {
	hi, lo := uint16(x>>16), uint16(x&0xFFFF)
	idx, exists := ctx.index, true
	if !ctx.valid || ctx.key != hi {
		idx, exists = find16(rb.keys, hi)
	}
	if !exists {
		ctx.valid = false
		return
	}

	c := &rb.containers[idx]
	c.fork()
	if c.remove(lo) && c.isEmpty() {
		rb.ctrDel(idx)
		ctx.valid = false
		return
	}
	*ctx = BulkContext32{valid: true, key: hi, index: idx}
}
