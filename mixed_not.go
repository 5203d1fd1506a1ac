// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// ctrNot complements c in place over the half-open range [lo, hi) of the
// container's 16-bit value space. The variant-dependent paths all funnel
// through a dense flip and get repacked by the caller afterward.
func ctrNot(c *container, lo, hi int) {
	switch c.typ {
	case typeArray:
		c.arrToBmp()
	case typeRun:
		c.runToBmp()
	}
	c.bmpFlipRange(lo, hi)
}
