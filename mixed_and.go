// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// ctrAnd computes c1 &= c2 in place, returning whether the result is
// non-empty. c1 is assumed already forked (privately owned).
func ctrAnd(c1, c2 *container) bool {
	switch c1.typ {
	case typeArray:
		switch c2.typ {
		case typeArray:
			return arrAndArr(c1, c2)
		case typeBitmap:
			return arrAndBmp(c1, c2)
		case typeRun:
			return arrAndRun(c1, c2)
		}
	case typeBitmap:
		switch c2.typ {
		case typeArray:
			return bmpAndArr(c1, c2)
		case typeBitmap:
			return bmpAndBmp(c1, c2)
		case typeRun:
			return bmpAndRun(c1, c2)
		}
	case typeRun:
		switch c2.typ {
		case typeArray:
			return runAndArr(c1, c2)
		case typeBitmap:
			return runAndBmp(c1, c2)
		case typeRun:
			return runAndRun(c1, c2)
		}
	}
	return false
}

func arrAndArr(c1, c2 *container) bool {
	a, b := c1.arr, c2.arr
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			a[k] = a[i]
			k++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	c1.arr = a[:k]
	c1.size = int32(k)
	return k > 0
}

func arrAndBmp(c1, c2 *container) bool {
	a, b := c1.arr, c2.bmp()
	out := a[:0]
	for _, v := range a {
		if b.Contains(uint32(v)) {
			out = append(out, v)
		}
	}
	c1.arr = out
	c1.size = int32(len(out))
	return c1.size > 0
}

func arrAndRun(c1, c2 *container) bool {
	a, runs := c1.arr, c2.arr
	out := a[:0]
	i, j := 0, 0
	n := len(runs) / 2
	for i < len(a) && j < n {
		v := a[i]
		start, end := runs[j*2], runs[j*2]+runs[j*2+1]
		switch {
		case v < start:
			i++
		case v > end:
			j++
		default:
			out = append(out, v)
			i++
		}
	}
	c1.arr = out
	c1.size = int32(len(out))
	return c1.size > 0
}

func bmpAndArr(c1, c2 *container) bool {
	a, b := c1.bmp(), c2.arr
	out := make([]uint16, 0, len(b))
	for _, v := range b {
		if a.Contains(uint32(v)) {
			out = append(out, v)
		}
	}
	c1.arr = out
	c1.bits = nil
	c1.size = int32(len(out))
	c1.typ = typeArray
	return c1.size > 0
}

func bmpAndBmp(c1, c2 *container) bool {
	a, b := c1.bmp(), c2.bmp()
	a.And(b)
	c1.size = int32(a.Count())
	return c1.size > 0
}

func bmpAndRun(c1, c2 *container) bool {
	a, runs := c1.bmp(), c2.arr
	n := len(runs) / 2
	if n == 0 {
		c1.size = 0
		return false
	}

	count, run := 0, 0
	a.Filter(func(x uint32) bool {
		for run < n && x > uint32(runs[run*2]+runs[run*2+1]) {
			run++
		}
		if run < n && x >= uint32(runs[run*2]) {
			count++
			return true
		}
		return false
	})
	c1.size = int32(count)
	return c1.size > 0
}

func runAndArr(c1, c2 *container) bool {
	runs, b := c1.arr, c2.arr
	out := make([]uint16, 0, len(b))
	i, j := 0, 0
	n := len(runs) / 2
	for i < n && j < len(b) {
		start, end := runs[i*2], runs[i*2]+runs[i*2+1]
		for j < len(b) && b[j] < start {
			j++
		}
		for j < len(b) && b[j] <= end {
			out = append(out, b[j])
			j++
		}
		i++
	}
	c1.arr = out
	c1.bits = nil
	c1.size = int32(len(out))
	c1.typ = typeArray
	return c1.size > 0
}

func runAndRun(c1, c2 *container) bool {
	a, b := c1.arr, c2.arr
	out := make([]uint16, 0, min(len(a), len(b)))
	i, j := 0, 0
	na, nb := len(a)/2, len(b)/2
	size := 0
	for i < na && j < nb {
		s1, e1 := int(a[i*2]), int(a[i*2])+int(a[i*2+1])
		s2, e2 := int(b[j*2]), int(b[j*2])+int(b[j*2+1])

		is, ie := s1, e1
		if s2 > is {
			is = s2
		}
		if e2 < ie {
			ie = e2
		}
		if is <= ie {
			out = append(out, uint16(is), uint16(ie-is))
			size += ie - is + 1
		}

		switch {
		case e1 < e2:
			i++
		case e2 < e1:
			j++
		default:
			i++
			j++
		}
	}
	c1.arr = out
	c1.size = int32(size)
	return size > 0
}

// runAndBmp computes c1 &= c2 where c1 is a run container and c2 a bitmap
// (left untouched - it may belong to another bitmap). The result is
// produced as an array and converted to a bitmap here if it grows past
// arrayMaxSize.
func runAndBmp(c1, c2 *container) bool {
	bm := c2.bmp()
	runs := c1.arr
	n := len(runs) / 2
	out := make([]uint16, 0, c1.size)
	for i := 0; i < n; i++ {
		start, end := int(runs[i*2]), int(runs[i*2])+int(runs[i*2+1])
		for v := start; v <= end; v++ {
			if bm.Contains(uint32(v)) {
				out = append(out, uint16(v))
			}
		}
	}
	c1.arr = out
	c1.bits = nil
	c1.typ = typeArray
	c1.size = int32(len(out))
	if c1.size > arrayMaxSize {
		c1.arrToBmp()
	}
	return c1.size > 0
}
