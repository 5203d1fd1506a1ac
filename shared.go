// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "github.com/kelindar/bitmap"

// refcount is a non-atomic reference counter attached to a container that is
// logically shared between two or more bitmaps after a Clone. The contract
// (per the bitmap's single-writer, many-readers concurrency model) is that
// the counter is only ever touched by a thread holding exclusive access to
// every bitmap that references it; a caller mutating bitmaps from more than
// one goroutine must either serialize those calls or make this atomic
// themselves.
type refcount struct {
	n int32
}

// share marks c as shared between the caller and one more owner, returning
// the (possibly newly allocated) counter to attach to both copies.
func share(existing *refcount) *refcount {
	if existing == nil {
		return &refcount{n: 2}
	}
	existing.n++
	return existing
}

// fork gives the caller a privately owned container, deep-cloning the
// payload the first time a shared container is mutated. A shared container
// is never nested: the clone always has shared == nil.
func (c *container) fork() {
	if c.shared == nil {
		return
	}

	c.shared.n--
	if c.shared.n <= 0 {
		// We held the last reference; take ownership outright.
		c.shared = nil
		return
	}

	clone := make([]uint16, len(c.arr), cap(c.arr))
	copy(clone, c.arr)
	c.arr = clone

	if c.bits != nil {
		cloneBits := make(bitmap.Bitmap, len(c.bits))
		copy(cloneBits, c.bits)
		c.bits = cloneBits
	}
	c.shared = nil
}
