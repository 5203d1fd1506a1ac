// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "github.com/kelindar/bitmap"

// Thresholds governing the space-minimal representation for a container, per
// the container dispatch and repacking rules (C6).
const (
	arrayMaxSize  = 4096 // ARRAY_MAX: above this an array converts to bitmap
	runMinSize    = 128  // run-count threshold; not read by runOptimize or repack
	runMaxSize    = 2048 // above this many runs a run container prefers bitmap
	optimizeEvery = 2048 // tryOptimize runs a full optimize pass this often
	bitmapWords   = 1024 // words backing one 65536-bit dense container
)

// ctype is the tag of the union a container holds.
type ctype byte

const (
	typeArray ctype = iota
	typeBitmap
	typeRun
)

func (t ctype) String() string {
	switch t {
	case typeArray:
		return "array"
	case typeBitmap:
		return "bitmap"
	case typeRun:
		return "run"
	default:
		return "unknown"
	}
}

// sizeUnknown is the cardinality sentinel for a bitmap container mid-lazy-op.
const sizeUnknown = -1

// container is a chunk payload: a tagged union over array, bitmap, and run
// representations, with an optional copy-on-write wrapper. Kernels never see
// a shared container directly - call is always preceded by fork() at the
// dispatch boundary.
type container struct {
	typ    ctype
	size   int32         // cardinality, or sizeUnknown for a lazy bitmap
	call   uint16        // mutation counter driving tryOptimize
	arr    []uint16      // array values, or run {start, length-1} pairs
	bits   bitmap.Bitmap // dense words, typeBitmap only
	shared *refcount
}

func newArrayContainer() *container {
	return &container{typ: typeArray, arr: make([]uint16, 0, 64)}
}

// bmp returns the dense word view of a bitmap container.
func (c *container) bmp() bitmap.Bitmap {
	return c.bits
}

// cardinality returns the container's element count, recomputing a lazily
// marked bitmap cardinality first if needed.
func (c *container) cardinality() int {
	if c.typ == typeBitmap && c.size == sizeUnknown {
		c.size = int32(c.bits.Count())
	}
	return int(c.size)
}

func (c *container) isEmpty() bool {
	return c.cardinality() == 0
}

// set adds a value, returning true if it was not already present.
func (c *container) set(value uint16) (ok bool) {
	c.fork()
	switch c.typ {
	case typeArray:
		if ok = c.arrSet(value); ok {
			if len(c.arr) > arrayMaxSize {
				c.arrToBmp()
			}
			c.tryOptimize()
		}
	case typeBitmap:
		if ok = c.bmpSet(value); ok {
			c.tryOptimize()
		}
	case typeRun:
		if ok = c.runSet(value); ok {
			c.tryOptimize()
		}
	}
	return
}

// remove deletes a value, returning true if it was present.
func (c *container) remove(value uint16) (ok bool) {
	c.fork()
	switch c.typ {
	case typeArray:
		if ok = c.arrDel(value); ok {
			c.tryOptimize()
		}
	case typeBitmap:
		if ok = c.bmpDel(value); ok {
			c.tryOptimize()
		}
	case typeRun:
		if ok = c.runDel(value); ok {
			c.tryOptimize()
		}
	}
	return
}

func (c *container) contains(value uint16) bool {
	switch c.typ {
	case typeArray:
		return c.arrHas(value)
	case typeBitmap:
		return c.bmpHas(value)
	case typeRun:
		return c.runHas(value)
	}
	return false
}

// optimize converts the container to its minimal-bytes representation.
func (c *container) optimize() {
	c.fork()
	switch c.typ {
	case typeArray:
		c.arrOptimize()
	case typeBitmap:
		c.bmpOptimize()
	case typeRun:
		c.runOptimize()
	}
}

// tryOptimize runs a full optimize pass every optimizeEvery mutations, the
// same amortization the teacher's container uses to avoid checking
// conversion thresholds on every single Set/Remove.
func (c *container) tryOptimize() {
	if c.call++; c.call%optimizeEvery == 0 {
		c.optimize()
	}
}

func (c *container) min() (uint16, bool) {
	if c.isEmpty() {
		return 0, false
	}
	switch c.typ {
	case typeArray:
		return c.arrMin()
	case typeBitmap:
		return c.bmpMin()
	case typeRun:
		return c.runMin()
	}
	return 0, false
}

func (c *container) max() (uint16, bool) {
	if c.isEmpty() {
		return 0, false
	}
	switch c.typ {
	case typeArray:
		return c.arrMax()
	case typeBitmap:
		return c.bmpMax()
	case typeRun:
		return c.runMax()
	}
	return 0, false
}

// rank returns the number of values <= v in the container.
func (c *container) rank(v uint16) int {
	switch c.typ {
	case typeArray:
		return c.arrRank(v)
	case typeBitmap:
		return c.bmpRank(v)
	case typeRun:
		return c.runRank(v)
	}
	return 0
}

// selectAt returns the rank-th smallest value (0-indexed) in the container.
func (c *container) selectAt(rank int) (uint16, bool) {
	switch c.typ {
	case typeArray:
		return c.arrSelect(rank)
	case typeBitmap:
		return c.bmpSelect(rank)
	case typeRun:
		return c.runSelect(rank)
	}
	return 0, false
}

// forEach visits every value in the container in ascending order, stopping
// early if fn returns false.
func (c *container) forEach(fn func(uint16) bool) {
	switch c.typ {
	case typeArray:
		for _, v := range c.arr {
			if !fn(v) {
				return
			}
		}
	case typeRun:
		n := len(c.arr) / 2
		for i := 0; i < n; i++ {
			start, end := int(c.arr[i*2]), int(c.arr[i*2])+int(c.arr[i*2+1])
			for v := start; v <= end; v++ {
				if !fn(uint16(v)) {
					return
				}
			}
		}
	case typeBitmap:
		c.bmpRange(fn)
	}
}

// clone returns a deep, unshared copy of c.
func (c *container) clone() container {
	out := container{typ: c.typ, size: c.size}
	if c.arr != nil {
		out.arr = append([]uint16(nil), c.arr...)
	}
	if c.bits != nil {
		out.bits = append(bitmap.Bitmap(nil), c.bits...)
	}
	return out
}
