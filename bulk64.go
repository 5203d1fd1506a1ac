// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// BulkContext64 caches the last high-48 key looked up on a Bitmap64 so a
// run of calls sharing a key prefix skip the trie descent, mirroring
// BulkContext32's cache over the flat 32-bit index.
type BulkContext64 struct {
	valid bool
	key   uint64
	cont  *container
}

// AddBulk adds x to rb, reusing the cached container when x's high key
// matches the last call through ctx.
func (ctx *BulkContext64) AddBulk(rb *Bitmap64, x uint64) {
	high, lo := x>>16, uint16(x&0xFFFF)
	if ctx.valid && ctx.key == high {
		ctx.cont.fork()
		ctx.cont.set(lo)
		return
	}
	c := rb.getOrCreate(high)
	c.set(lo)
	*ctx = BulkContext64{valid: true, key: high, cont: c}
}

// ContainsBulk checks membership of x, reusing the cached container lookup.
func (ctx *BulkContext64) ContainsBulk(rb *Bitmap64, x uint64) bool {
	high, lo := x>>16, uint16(x&0xFFFF)
	if ctx.valid && ctx.key == high {
		return ctx.cont.contains(lo)
	}
	c := rb.tree.find(keyFromHigh48(high))
	if c == nil {
		return false
	}
	*ctx = BulkContext64{valid: true, key: high, cont: c}
	return c.contains(lo)
}

// RemoveBulk removes x from rb, reusing the cached container lookup.
func (ctx *BulkContext64) RemoveBulk(rb *Bitmap64, x uint64) {
	high, lo := x>>16, uint16(x&0xFFFF)
	key := keyFromHigh48(high)
	c := ctx.cont
	if !ctx.valid || ctx.key != high {
		c = rb.tree.find(key)
	}
	if c == nil {
		ctx.valid = false
		return
	}
	c.fork()
	if c.remove(lo) && c.isEmpty() {
		rb.tree.remove(key)
		ctx.valid = false
		return
	}
	*ctx = BulkContext64{valid: true, key: high, cont: c}
}
