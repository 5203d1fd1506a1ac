// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// Range calls fn for every value in the bitmap in ascending order, stopping
// early if fn returns false.
func (rb *Bitmap) Range(fn func(x uint32) bool) {
	for i := range rb.containers {
		base := uint32(rb.keys[i]) << 16
		stop := false
		rb.containers[i].forEach(func(v uint16) bool {
			if !fn(base | uint32(v)) {
				stop = true
				return false
			}
			return true
		})
		if stop {
			return
		}
	}
}

// Filter removes every value for which f returns false.
func (rb *Bitmap) Filter(f func(x uint32) bool) {
	var toRemove []uint32
	rb.Range(func(x uint32) bool {
		if !f(x) {
			toRemove = append(toRemove, x)
		}
		return true
	})
	for _, x := range toRemove {
		rb.Remove(x)
	}
}

// Iterator32 is an explicit cursor over a Bitmap's values: a container index
// plus a cursor within that container, per the design note that external
// iterators should be iterative structs rather than coroutines.
type Iterator32 struct {
	rb       *Bitmap
	cidx     int
	cursor   int // position within the current container's enumeration
	values   []uint16
	loaded   bool
}

// Iterator returns a fresh external iterator positioned before the first
// value.
func (rb *Bitmap) Iterator() *Iterator32 {
	return &Iterator32{rb: rb, cidx: 0, cursor: -1}
}

func (it *Iterator32) loadContainer() {
	it.values = it.values[:0]
	if it.cidx >= len(it.rb.containers) {
		it.loaded = true
		return
	}
	c := &it.rb.containers[it.cidx]
	vals := make([]uint16, 0, c.cardinality())
	c.forEach(func(v uint16) bool {
		vals = append(vals, v)
		return true
	})
	it.values = vals
	it.loaded = true
}

// Next advances the iterator and reports whether a value is available.
func (it *Iterator32) Next() (uint32, bool) {
	for {
		if !it.loaded {
			it.loadContainer()
			it.cursor = -1
		}
		it.cursor++
		if it.cursor < len(it.values) {
			base := uint32(it.rb.keys[it.cidx]) << 16
			return base | uint32(it.values[it.cursor]), true
		}
		it.cidx++
		if it.cidx >= len(it.rb.containers) {
			return 0, false
		}
		it.loaded = false
	}
}

// AdvanceTo positions the iterator at the first value >= target, returning
// it if present.
func (it *Iterator32) AdvanceTo(target uint32) (uint32, bool) {
	hi := uint16(target >> 16)
	it.cidx, _ = find16(it.rb.keys, hi)
	it.loaded = false
	for {
		v, ok := it.Next()
		if !ok || v >= target {
			return v, ok
		}
	}
}

// BulkRead fills out with up to len(out) successive values, returning the
// number written.
func (it *Iterator32) BulkRead(out []uint32) int {
	n := 0
	for n < len(out) {
		v, ok := it.Next()
		if !ok {
			break
		}
		out[n] = v
		n++
	}
	return n
}
