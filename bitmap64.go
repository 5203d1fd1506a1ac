// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// Bitmap64 represents a roaring bitmap of uint64 values: an adaptive radix
// trie (art.go/index64.go) over the 48-bit high key, with the low 16 bits
// addressed by the same container representations as Bitmap.
type Bitmap64 struct {
	tree artTree
	cow  bool
}

// New64 creates a new empty 64-bit bitmap.
func New64() *Bitmap64 {
	return &Bitmap64{}
}

// Of64 creates a 64-bit bitmap containing exactly the given values.
func Of64(vals ...uint64) *Bitmap64 {
	rb := New64()
	rb.AddMany(vals)
	return rb
}

// SetCopyOnWrite enables or disables copy-on-write semantics for future
// Clone calls.
func (rb *Bitmap64) SetCopyOnWrite(enabled bool) {
	rb.cow = enabled
}

// Add sets the bit x in the bitmap.
func (rb *Bitmap64) Add(x uint64) {
	rb.Set(x)
}

// AddMany adds every value in vals.
func (rb *Bitmap64) AddMany(vals []uint64) {
	for _, v := range vals {
		rb.Set(v)
	}
}

// Set sets the bit x in the bitmap.
func (rb *Bitmap64) Set(x uint64) {
	high, lo := x>>16, uint16(x&0xFFFF)
	c := rb.getOrCreate(high)
	c.set(lo)
}

// Remove removes the bit x from the bitmap.
func (rb *Bitmap64) Remove(x uint64) {
	high, lo := x>>16, uint16(x&0xFFFF)
	key := keyFromHigh48(high)
	c := rb.tree.find(key)
	if c == nil {
		return
	}
	c.fork()
	if !c.remove(lo) {
		return
	}
	if c.isEmpty() {
		rb.tree.remove(key)
	}
}

// RemoveMany removes every value in vals.
func (rb *Bitmap64) RemoveMany(vals []uint64) {
	for _, v := range vals {
		rb.Remove(v)
	}
}

// AddRange adds every value in the closed range [lo, hi].
func (rb *Bitmap64) AddRange(lo, hi uint64) {
	if lo > hi {
		return
	}
	for v := lo; ; v++ {
		rb.Add(v)
		if v == hi {
			break
		}
	}
}

// RemoveRange removes every value in the closed range [lo, hi].
func (rb *Bitmap64) RemoveRange(lo, hi uint64) {
	if lo > hi {
		return
	}
	for v := lo; ; v++ {
		rb.Remove(v)
		if v == hi {
			break
		}
	}
}

// FlipRange complements every value in the closed range [lo, hi].
func (rb *Bitmap64) FlipRange(lo, hi uint64) {
	if lo > hi {
		return
	}
	highLo, highHi := lo>>16, hi>>16
	for high := highLo; ; high++ {
		lo16, hi16 := 0, 0xFFFF
		if high == highLo {
			lo16 = int(uint16(lo))
		}
		if high == highHi {
			hi16 = int(uint16(hi))
		}

		c := rb.getOrCreate(high)
		ctrNot(c, lo16, hi16+1)
		repack(c)
		if c.isEmpty() {
			rb.tree.remove(keyFromHigh48(high))
		}
		if high == highHi {
			break
		}
	}
}

// Contains checks whether x is a member of the bitmap.
func (rb *Bitmap64) Contains(x uint64) bool {
	high, lo := x>>16, uint16(x&0xFFFF)
	c := rb.tree.find(keyFromHigh48(high))
	return c != nil && c.contains(lo)
}

// Count returns the total cardinality of the bitmap.
func (rb *Bitmap64) Count() uint64 {
	var count uint64
	ascend(rb.tree.root, func(leaf *artLeaf) bool {
		count += uint64(leaf.value.cardinality())
		return true
	})
	return count
}

// Cardinality is an alias for Count matching the external-interface naming.
func (rb *Bitmap64) Cardinality() uint64 { return rb.Count() }

// IsEmpty reports whether the bitmap has no members.
func (rb *Bitmap64) IsEmpty() bool {
	return rb.tree.size == 0
}

// Clear empties the bitmap.
func (rb *Bitmap64) Clear() {
	rb.tree = artTree{}
}

// Clone returns a copy of the bitmap, sharing containers via copy-on-write
// when enabled and deep-cloning otherwise.
func (rb *Bitmap64) Clone() *Bitmap64 {
	into := New64()
	into.cow = rb.cow
	ascend(rb.tree.root, func(leaf *artLeaf) bool {
		into.tree.insert(leaf.key, copyContainerOutPtr(leaf.value, rb.cow))
		if rb.cow {
			leaf.value.shared = into.tree.find(leaf.key).shared
		}
		return true
	})
	return into
}

// Optimize converts every container to its minimal-bytes representation.
func (rb *Bitmap64) Optimize() {
	ascend(rb.tree.root, func(leaf *artLeaf) bool {
		leaf.value.optimize()
		return true
	})
}

// RunOptimize is an alias for Optimize matching the external-interface name.
func (rb *Bitmap64) RunOptimize() { rb.Optimize() }

// And intersects rb with other(s) in place.
func (rb *Bitmap64) And(other *Bitmap64, extra ...*Bitmap64) {
	rb.mergeAnd(other)
	for _, bm := range extra {
		if bm != nil {
			rb.mergeAnd(bm)
		}
	}
}

// Or unions other(s) into rb in place.
func (rb *Bitmap64) Or(other *Bitmap64, extra ...*Bitmap64) {
	rb.mergeOr(other)
	for _, bm := range extra {
		if bm != nil {
			rb.mergeOr(bm)
		}
	}
}

// Xor computes the symmetric difference with other(s) in place.
func (rb *Bitmap64) Xor(other *Bitmap64, extra ...*Bitmap64) {
	rb.mergeXor(other)
	for _, bm := range extra {
		if bm != nil {
			rb.mergeXor(bm)
		}
	}
}

// AndNot removes every value present in other(s) from rb in place.
func (rb *Bitmap64) AndNot(other *Bitmap64, extra ...*Bitmap64) {
	rb.mergeAndNot(other)
	for _, bm := range extra {
		if bm != nil {
			rb.mergeAndNot(bm)
		}
	}
}

// Equals reports whether rb and other contain the same values.
func (rb *Bitmap64) Equals(other *Bitmap64) bool { return rb.equals(other) }

// IsSubset reports whether every value in rb is also a member of other.
func (rb *Bitmap64) IsSubset(other *Bitmap64) bool { return rb.isSubset(other) }

// Intersects reports whether rb and other share at least one value.
func (rb *Bitmap64) Intersects(other *Bitmap64) bool { return rb.intersects(other) }

// Min returns the smallest value in the bitmap.
func (rb *Bitmap64) Min() (uint64, bool) {
	leaf := minLeaf(rb.tree.root)
	if leaf == nil {
		return 0, false
	}
	v, _ := leaf.value.min()
	return leaf.key.high48()<<16 | uint64(v), true
}

// Max returns the largest value in the bitmap.
func (rb *Bitmap64) Max() (uint64, bool) {
	leaf := maxLeaf(rb.tree.root)
	if leaf == nil {
		return 0, false
	}
	v, _ := leaf.value.max()
	return leaf.key.high48()<<16 | uint64(v), true
}

// Range calls fn for every value in the bitmap in ascending order, stopping
// early if fn returns false.
func (rb *Bitmap64) Range(fn func(x uint64) bool) {
	ascend(rb.tree.root, func(leaf *artLeaf) bool {
		base := leaf.key.high48() << 16
		cont := true
		leaf.value.forEach(func(v uint16) bool {
			if !fn(base | uint64(v)) {
				cont = false
				return false
			}
			return true
		})
		return cont
	})
}

// Stats64 reports the number of containers of each representation.
type Stats64 struct {
	Containers  int
	ArrayCount  int
	BitmapCount int
	RunCount    int
	SizeInBytes int
}

// Stats computes container-type counts and an estimate of in-memory size.
func (rb *Bitmap64) Stats() Stats64 {
	var s Stats64
	ascend(rb.tree.root, func(leaf *artLeaf) bool {
		s.Containers++
		switch leaf.value.typ {
		case typeArray:
			s.ArrayCount++
			s.SizeInBytes += len(leaf.value.arr) * 2
		case typeBitmap:
			s.BitmapCount++
			s.SizeInBytes += bitmapWords * 8
		case typeRun:
			s.RunCount++
			s.SizeInBytes += len(leaf.value.arr) * 2
		}
		return true
	})
	s.SizeInBytes += s.Containers * artKeyBytes
	return s
}

// SizeInBytes estimates the in-memory footprint of the bitmap's containers.
func (rb *Bitmap64) SizeInBytes() int {
	return rb.Stats().SizeInBytes
}
