// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "math/rand/v2"

// newContainer builds a container of the given representation directly from
// values, bypassing Bitmap so container-level kernels can be tested in
// isolation, mirroring the teacher's assert_test.go helpers.
func newContainer(typ ctype, data ...uint16) *container {
	c := &container{typ: typ}
	if typ == typeArray || typ == typeRun {
		c.arr = make([]uint16, 0, len(data))
	}
	for _, v := range data {
		switch typ {
		case typeArray:
			c.arrSet(v)
		case typeBitmap:
			c.bmpSet(v)
		case typeRun:
			c.runSet(v)
		}
	}
	if typ == typeRun {
		c.runOptimize()
	}
	return c
}

func newArr(data ...uint16) *container { return newContainer(typeArray, data...) }
func newRun(data ...uint16) *container { return newContainer(typeRun, data...) }
func newBmp(data ...uint16) *container { return newContainer(typeBitmap, data...) }

func valuesOf(rb *Bitmap) []uint32 {
	out := []uint32{}
	rb.Range(func(x uint32) bool {
		out = append(out, x)
		return true
	})
	return out
}

type dataGen = func() ([]uint32, string)

// genSeq creates consecutive integers starting from offset.
func genSeq(size int, offset uint32) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = offset + uint32(i)
		}
		return data, "seq"
	}
}

// genRand creates random integers within a range.
func genRand(size int, maxVal uint32) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = uint32(rand.IntN(int(maxVal)))
		}
		return data, "rnd"
	}
}

// genSparse creates sparse integers with large gaps.
func genSparse(size int) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = uint32(i * 1000)
		}
		return data, "sps"
	}
}

// genDense creates dense integers packed into a small range.
func genDense(size int) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = uint32(rand.IntN(size/10 + 1))
		}
		return data, "dns"
	}
}

// genBoundary creates values at container and type-width boundaries.
func genBoundary() dataGen {
	return func() ([]uint32, string) {
		data := []uint32{0, 65535, 65536, 131071, 131072, 4294967295}
		return data, "bnd"
	}
}

// genMixed spreads values across array, bitmap and run containers.
func genMixed() dataGen {
	return func() ([]uint32, string) {
		var data []uint32
		data = append(data, 1, 5, 10, 100, 500, 1000)
		for i := 0; i < 1000; i++ {
			data = append(data, uint32(65536+i*3))
		}
		for i := 131072; i <= 131172; i++ {
			data = append(data, uint32(i))
		}
		return data, "mix"
	}
}

func uniqueSorted(vals []uint32) []uint32 {
	seen := make(map[uint32]bool, len(vals))
	out := make([]uint32, 0, len(vals))
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
