// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// ctrAndNot computes c1 &^= c2 in place, returning whether the result is
// non-empty. c1 is assumed already forked.
func ctrAndNot(c1, c2 *container) bool {
	switch c1.typ {
	case typeArray:
		switch c2.typ {
		case typeArray:
			return arrAndNotArr(c1, c2)
		case typeBitmap:
			return arrAndNotBmp(c1, c2)
		case typeRun:
			return arrAndNotRun(c1, c2)
		}
	case typeBitmap:
		switch c2.typ {
		case typeArray:
			return bmpAndNotArr(c1, c2)
		case typeBitmap:
			return bmpAndNotBmp(c1, c2)
		case typeRun:
			return bmpAndNotRun(c1, c2)
		}
	case typeRun:
		switch c2.typ {
		case typeArray:
			return runAndNotArr(c1, c2)
		case typeBitmap:
			return runAndNotBmp(c1, c2)
		case typeRun:
			return runAndNotRun(c1, c2)
		}
	}
	return false
}

func arrAndNotArr(c1, c2 *container) bool {
	a, b := c1.arr, c2.arr
	out := a[:0]
	i, j := 0, 0
	for i < len(a) {
		for j < len(b) && b[j] < a[i] {
			j++
		}
		if j >= len(b) || b[j] != a[i] {
			out = append(out, a[i])
		}
		i++
	}
	c1.arr = out
	c1.size = int32(len(out))
	return c1.size > 0
}

func arrAndNotBmp(c1, c2 *container) bool {
	a, b := c1.arr, c2.bmp()
	out := a[:0]
	for _, v := range a {
		if !b.Contains(uint32(v)) {
			out = append(out, v)
		}
	}
	c1.arr = out
	c1.size = int32(len(out))
	return c1.size > 0
}

func arrAndNotRun(c1, c2 *container) bool {
	a, runs := c1.arr, c2.arr
	out := a[:0]
	n := len(runs) / 2
	j := 0
	for _, v := range a {
		for j < n && runs[j*2]+runs[j*2+1] < v {
			j++
		}
		if j >= n || v < runs[j*2] {
			out = append(out, v)
		}
	}
	c1.arr = out
	c1.size = int32(len(out))
	return c1.size > 0
}

func bmpAndNotArr(c1, c2 *container) bool {
	bm := c1.bmp()
	for _, v := range c2.arr {
		bm.Remove(uint32(v))
	}
	c1.size = int32(bm.Count())
	return c1.size > 0
}

func bmpAndNotBmp(c1, c2 *container) bool {
	a, b := c1.bmp(), c2.bmp()
	a.AndNot(b)
	c1.size = int32(a.Count())
	return c1.size > 0
}

func bmpAndNotRun(c1, c2 *container) bool {
	bm := c1.bmp()
	runs := c2.arr
	for i := 0; i < len(runs); i += 2 {
		start, length := int(runs[i]), int(runs[i+1])
		clearRange(bm, start, start+length+1)
	}
	c1.size = int32(bm.Count())
	return c1.size > 0
}

func runAndNotArr(c1, c2 *container) bool {
	c1.runToArray()
	return arrAndNotArr(c1, c2)
}

func runAndNotBmp(c1, c2 *container) bool {
	runs := c1.arr
	bm := c2.bmp()
	out := make([]uint16, 0, c1.size)
	n := len(runs) / 2
	for i := 0; i < n; i++ {
		start, end := int(runs[i*2]), int(runs[i*2])+int(runs[i*2+1])
		for v := start; v <= end; v++ {
			if !bm.Contains(uint32(v)) {
				out = append(out, uint16(v))
			}
		}
	}
	c1.arr = out
	c1.bits = nil
	c1.typ = typeArray
	c1.size = int32(len(out))
	return c1.size > 0
}

// runAndNotRun computes the relative complement of two disjoint run
// sequences, producing a new run sequence via an interval sweep.
func runAndNotRun(c1, c2 *container) bool {
	a, b := c1.arr, c2.arr
	na, nb := len(a)/2, len(b)/2
	out := make([]uint16, 0, len(a))
	size := int32(0)

	i, j := 0, 0
	for i < na {
		start, end := int(a[i*2]), int(a[i*2])+int(a[i*2+1])
		for j < nb && int(b[j*2])+int(b[j*2+1]) < start {
			j++
		}

		cur := start
		k := j
		for k < nb && int(b[k*2]) <= end {
			bs, be := int(b[k*2]), int(b[k*2])+int(b[k*2+1])
			if bs > cur {
				out = append(out, uint16(cur), uint16(bs-1-cur))
				size += int32(bs - cur)
			}
			if be+1 > cur {
				cur = be + 1
			}
			k++
		}
		if cur <= end {
			out = append(out, uint16(cur), uint16(end-cur))
			size += int32(end - cur + 1)
		}
		i++
	}

	c1.arr = out
	c1.size = size
	return size > 0
}
