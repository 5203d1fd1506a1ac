// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "github.com/kelindar/bitmap"

// arrSet inserts value into a sorted array container via binary search +
// memmove, growing geometrically (the dispatcher caps this at arrayMaxSize
// before the container is repacked into a bitmap).
func (c *container) arrSet(value uint16) bool {
	idx, exists := find16(c.arr, value)
	if exists {
		return false
	}

	oldLen := len(c.arr)
	c.arr = append(c.arr, 0)
	if idx < oldLen {
		copy(c.arr[idx+1:], c.arr[idx:])
	}
	c.arr[idx] = value
	c.size++
	return true
}

func (c *container) arrDel(value uint16) bool {
	idx, exists := find16(c.arr, value)
	if !exists {
		return false
	}

	copy(c.arr[idx:], c.arr[idx+1:])
	c.arr = c.arr[:len(c.arr)-1]
	c.size--
	return true
}

func (c *container) arrHas(value uint16) bool {
	_, exists := find16(c.arr, value)
	return exists
}

func (c *container) arrRank(v uint16) int {
	idx, exists := find16(c.arr, v)
	if exists {
		return idx + 1
	}
	return idx
}

func (c *container) arrSelect(rank int) (uint16, bool) {
	if rank < 0 || rank >= len(c.arr) {
		return 0, false
	}
	return c.arr[rank], true
}

// arrOptimize picks the minimal-bytes representation: run if the values are
// dense enough to form few long runs, bitmap if the array has grown past the
// point where a dense bitmap is smaller.
func (c *container) arrOptimize() {
	switch {
	case c.arrIsDense():
		c.arrToRun()
	case len(c.arr) > arrayMaxSize:
		c.arrToBmp()
	}
}

// arrIsDense estimates, without building the run encoding, whether
// converting to a run container would save space.
func (c *container) arrIsDense() bool {
	if len(c.arr) < 128 {
		return false
	}

	lo, hi := c.arr[0], c.arr[len(c.arr)-1]
	span := int(hi-lo) + 1
	size := len(c.arr)

	density := float64(size) / float64(span)
	switch {
	case density < 0.1:
		return false
	case density > 0.8:
		return true
	}

	runs := size
	if gap := float64(span) / float64(size); gap < 2.0 {
		runs = int(float64(size) * (1.0 - density*0.7))
	}

	sizeAsArr := size * 2
	sizeAsRun := runs*4 + 2
	return sizeAsRun < sizeAsArr*3/4 && runs <= size/3
}

// arrToRun builds the run encoding in one pass and converts only if it meets
// the minimal-bytes bar; returns whether it converted.
func (c *container) arrToRun() bool {
	if len(c.arr) == 0 {
		return false
	}

	runs := make([]uint16, 0, len(c.arr)/2)
	start := c.arr[0]
	end := c.arr[0]
	for i := 1; i < len(c.arr); i++ {
		if c.arr[i] == end+1 {
			end = c.arr[i]
			continue
		}
		runs = append(runs, start, end-start)
		start = c.arr[i]
		end = c.arr[i]
	}
	runs = append(runs, start, end-start)

	numRuns := len(runs) / 2
	sizeAsArray := len(c.arr) * 2
	sizeAsRun := numRuns*4 + 2
	if sizeAsRun < sizeAsArray*3/4 && numRuns <= len(c.arr)/3 {
		c.arr = runs
		c.typ = typeRun
		return true
	}
	return false
}

// arrToBmp converts the array into a dense bitmap container.
func (c *container) arrToBmp() {
	src := c.arr
	c.bits = make(bitmap.Bitmap, bitmapWords)
	c.arr = nil
	c.typ = typeBitmap
	for _, value := range src {
		c.bits.Set(uint32(value))
	}
}

func (c *container) arrMin() (uint16, bool) {
	if len(c.arr) == 0 {
		return 0, false
	}
	return c.arr[0], true
}

func (c *container) arrMax() (uint16, bool) {
	if len(c.arr) == 0 {
		return 0, false
	}
	return c.arr[len(c.arr)-1], true
}
