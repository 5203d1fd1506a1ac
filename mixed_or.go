// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// ctrOr computes c1 |= c2 in place. c1 is assumed already forked.
func ctrOr(c1, c2 *container) {
	switch c1.typ {
	case typeArray:
		switch c2.typ {
		case typeArray:
			arrOrArr(c1, c2)
		case typeBitmap:
			arrOrBmp(c1, c2)
		case typeRun:
			arrOrRun(c1, c2)
		}
	case typeBitmap:
		switch c2.typ {
		case typeArray:
			bmpOrArr(c1, c2)
		case typeBitmap:
			bmpOrBmp(c1, c2)
		case typeRun:
			bmpOrRun(c1, c2)
		}
	case typeRun:
		switch c2.typ {
		case typeArray:
			runOrArr(c1, c2)
		case typeBitmap:
			runOrBmp(c1, c2)
		case typeRun:
			runOrRun(c1, c2)
		}
	}
}

func arrOrArr(c1, c2 *container) {
	a, b := c1.arr, c2.arr
	out := make([]uint16, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	c1.arr = out
	c1.size = int32(len(out))
}

func arrOrBmp(c1, c2 *container) {
	c1.arrToBmp()
	bmpOrBmp(c1, c2)
}

func arrOrRun(c1, c2 *container) {
	runs := c2.arr
	n := len(runs) / 2
	out := make([]uint16, 0, len(c1.arr)+n)
	runIdx := 0

	for _, v := range c1.arr {
		for runIdx < n && runs[runIdx*2]+runs[runIdx*2+1] < v {
			start, end := runs[runIdx*2], runs[runIdx*2]+runs[runIdx*2+1]
			for x := start; x <= end; x++ {
				out = append(out, x)
			}
			runIdx++
		}
		if runIdx < n && v >= runs[runIdx*2] && v <= runs[runIdx*2]+runs[runIdx*2+1] {
			continue
		}
		out = append(out, v)
	}
	for runIdx < n {
		start, end := runs[runIdx*2], runs[runIdx*2]+runs[runIdx*2+1]
		for x := start; x <= end; x++ {
			out = append(out, x)
		}
		runIdx++
	}

	dedup := out[:0]
	for i, v := range out {
		if i == 0 || v != dedup[len(dedup)-1] {
			dedup = append(dedup, v)
		}
	}
	c1.arr = dedup
	c1.size = int32(len(dedup))
	c1.typ = typeArray
}

func bmpOrArr(c1, c2 *container) {
	bm := c1.bmp()
	for _, v := range c2.arr {
		if !bm.Contains(uint32(v)) {
			bm.Set(uint32(v))
		}
	}
	c1.size = int32(bm.Count())
}

func bmpOrBmp(c1, c2 *container) {
	a, b := c1.bmp(), c2.bmp()
	a.Or(b)
	c1.size = int32(a.Count())
}

func bmpOrRun(c1, c2 *container) {
	bm := c1.bmp()
	runs := c2.arr
	for i := 0; i < len(runs); i += 2 {
		start, end := int(runs[i]), int(runs[i])+int(runs[i+1])
		setRange(bm, start, end+1)
	}
	c1.size = int32(bm.Count())
}

func runOrArr(c1, c2 *container) {
	c1.runToArray()
	arrOrArr(c1, c2)
	c1.optimize()
}

func runOrBmp(c1, c2 *container) {
	c1.runToBmp()
	bmpOrBmp(c1, c2)
}

// runOrRun merges two disjoint run sequences into their union, fusing
// overlapping or adjacent runs as it sweeps.
func runOrRun(c1, c2 *container) {
	a, b := c1.arr, c2.arr
	na, nb := len(a)/2, len(b)/2
	out := make([]uint16, 0, len(a)+len(b))
	i, j := 0, 0

	for i < na && j < nb {
		s1, e1 := int(a[i*2]), int(a[i*2])+int(a[i*2+1])
		s2, e2 := int(b[j*2]), int(b[j*2])+int(b[j*2+1])

		var us, ue int
		if s1 <= s2 {
			us, ue = s1, e1
		} else {
			us, ue = s2, e2
		}

		if s1 <= e2+1 && s2 <= e1+1 {
			if e2 > ue {
				ue = e2
			}
			if e1 > ue {
				ue = e1
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

			for i < na && int(a[i*2]) <= ue+1 {
				if end := int(a[i*2]) + int(a[i*2+1]); end > ue {
					ue = end
				}
				i++
			}
			for j < nb && int(b[j*2]) <= ue+1 {
				if end := int(b[j*2]) + int(b[j*2+1]); end > ue {
					ue = end
				}
				j++
			}
			out = append(out, uint16(us), uint16(ue-us))
		} else if s1 < s2 {
			out = append(out, uint16(s1), uint16(e1-s1))
			i++
		} else {
			out = append(out, uint16(s2), uint16(e2-s2))
			j++
		}
	}

	for i < na {
		out = append(out, a[i*2], a[i*2+1])
		i++
	}
	for j < nb {
		out = append(out, b[j*2], b[j*2+1])
		j++
	}

	card := int32(0)
	for k := 0; k < len(out); k += 2 {
		card += int32(out[k+1]) + 1
	}
	c1.arr = out
	c1.size = card
}
