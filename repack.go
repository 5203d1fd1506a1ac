// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// repack converts c to its minimal-bytes representation after a union or
// XOR, per C6: a bitmap result shrinks to array at or below arrayMaxSize; a run
// result is kept only while its header is smaller than both the array and
// bitmap encodings, otherwise converted to whichever of those is smaller.
func repack(c *container) {
	switch c.typ {
	case typeBitmap:
		if c.cardinality() <= arrayMaxSize {
			c.bmpToArray()
		}
	case typeArray:
		c.arrOptimize()
	case typeRun:
		repackRun(c)
	}
}

func repackRun(c *container) {
	numRuns := len(c.arr) / 2
	card := int(c.size)
	runBytes := numRuns*4 + 2
	arrayBytes := card * 2
	bitmapBytes := bitmapWords * 8

	if runBytes < arrayBytes && runBytes < bitmapBytes {
		return
	}
	if arrayBytes <= bitmapBytes {
		c.runToArray()
	} else {
		c.runToBmp()
	}
}

// repair recomputes cardinality for a lazily-marked bitmap container and
// repacks it to the minimal variant - the post-processing step any lazy
// union/XOR sequence requires before a subsequent cardinality- or
// type-reading operation.
func repair(c *container) {
	if c.typ == typeBitmap && c.size == sizeUnknown {
		c.size = int32(c.bits.Count())
	}
	repack(c)
}
