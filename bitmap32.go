// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// Bitmap represents a roaring bitmap of uint32 values: a sorted index of
// 16-bit high keys over container payloads (bitmap32.go/index32.go), with
// set algebra dispatched through container.go/mixed_*.go and wire encoding
// in codec32.go.
type Bitmap struct {
	containers []container // payloads in key order
	keys       []uint16    // high 16 bits for each container, strictly ascending
	cow        bool        // copy-on-write: Clone shares instead of deep-copying
}

// New creates a new empty bitmap.
func New() *Bitmap {
	return &Bitmap{}
}

// Of creates a bitmap containing exactly the given values.
func Of(vals ...uint32) *Bitmap {
	rb := New()
	rb.AddMany(vals)
	return rb
}

// FromRange creates a bitmap containing min, min+step, min+2*step, ... up
// to (but excluding) max.
func FromRange(min, max uint32, step uint32) *Bitmap {
	rb := New()
	if step == 0 || min >= max {
		return rb
	}
	for v := min; v < max; v += step {
		rb.Add(v)
		if v+step < v { // overflow guard
			break
		}
	}
	return rb
}

// SetCopyOnWrite enables or disables copy-on-write semantics for future
// Clone calls.
func (rb *Bitmap) SetCopyOnWrite(enabled bool) {
	rb.cow = enabled
}

// Add sets the bit x in the bitmap, growing it if necessary.
func (rb *Bitmap) Add(x uint32) {
	rb.Set(x)
}

// AddMany adds every value in vals.
func (rb *Bitmap) AddMany(vals []uint32) {
	for _, v := range vals {
		rb.Set(v)
	}
}

// Set sets the bit x in the bitmap.
func (rb *Bitmap) Set(x uint32) {
	hi, lo := uint16(x>>16), uint16(x&0xFFFF)
	c := rb.getOrCreate(hi)
	c.set(lo)
}

// Remove removes the bit x from the bitmap.
func (rb *Bitmap) Remove(x uint32) {
	hi, lo := uint16(x>>16), uint16(x&0xFFFF)
	idx, exists := find16(rb.keys, hi)
	if !exists {
		return
	}
	c := &rb.containers[idx]
	c.fork()
	if !c.remove(lo) {
		return
	}
	if c.isEmpty() {
		rb.ctrDel(idx)
	}
}

// RemoveMany removes every value in vals.
func (rb *Bitmap) RemoveMany(vals []uint32) {
	for _, v := range vals {
		rb.Remove(v)
	}
}

// AddRange adds every value in the closed range [lo, hi].
func (rb *Bitmap) AddRange(lo, hi uint32) {
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
func (rb *Bitmap) RemoveRange(lo, hi uint32) {
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
func (rb *Bitmap) FlipRange(lo, hi uint32) {
	if lo > hi {
		return
	}
	hiKeyLo, hiKeyHi := uint16(lo>>16), uint16(hi>>16)
	for key := hiKeyLo; ; key++ {
		lo16, hi16 := 0, 0xFFFF
		if key == hiKeyLo {
			lo16 = int(uint16(lo))
		}
		if key == hiKeyHi {
			hi16 = int(uint16(hi))
		}

		c := rb.getOrCreate(key)
		ctrNot(c, lo16, hi16+1)
		repack(c)
		idx, _ := find16(rb.keys, key)
		if rb.containers[idx].isEmpty() {
			rb.ctrDel(idx)
		}
		if key == hiKeyHi {
			break
		}
	}
}

// Contains checks whether x is a member of the bitmap.
func (rb *Bitmap) Contains(x uint32) bool {
	hi, lo := uint16(x>>16), uint16(x&0xFFFF)
	idx, exists := find16(rb.keys, hi)
	if !exists {
		return false
	}
	return rb.containers[idx].contains(lo)
}

// Count returns the total cardinality of the bitmap.
func (rb *Bitmap) Count() int {
	count := 0
	for i := range rb.containers {
		count += rb.containers[i].cardinality()
	}
	return count
}

// Cardinality is an alias for Count, matching the external-interface naming
// in the wire-format-compatible roaring vocabulary.
func (rb *Bitmap) Cardinality() int {
	return rb.Count()
}

// RangeCardinality returns the number of values in the closed range [lo, hi].
func (rb *Bitmap) RangeCardinality(lo, hi uint32) int {
	if lo > hi {
		return 0
	}
	count := 0
	rb.Range(func(x uint32) bool {
		if x > hi {
			return false
		}
		if x >= lo {
			count++
		}
		return true
	})
	return count
}

// IsEmpty reports whether the bitmap has no members.
func (rb *Bitmap) IsEmpty() bool {
	return len(rb.containers) == 0
}

// Clear empties the bitmap.
func (rb *Bitmap) Clear() {
	rb.containers = rb.containers[:0]
	rb.keys = rb.keys[:0]
}

// Clone returns a copy of the bitmap. With copy-on-write disabled (the
// default) this deep-clones every container; with it enabled, containers
// are shared via a refcounted wrapper until the first mutation on either
// side.
func (rb *Bitmap) Clone() *Bitmap {
	into := New()
	into.cow = rb.cow
	into.containers = make([]container, len(rb.containers))
	into.keys = make([]uint16, len(rb.keys))
	copy(into.keys, rb.keys)
	for i := range rb.containers {
		into.containers[i] = copyContainerOut(&rb.containers[i], rb.cow)
		if rb.cow {
			rb.containers[i].shared = into.containers[i].shared
		}
	}
	return into
}

// Optimize converts every container to its minimal-bytes representation.
func (rb *Bitmap) Optimize() {
	for i := range rb.containers {
		rb.containers[i].optimize()
	}
}

// RunOptimize is an alias for Optimize matching the external-interface name.
func (rb *Bitmap) RunOptimize() {
	rb.Optimize()
}

// RemoveRunCompression converts every run container back to array or
// bitmap, whichever is smaller, undoing RunOptimize.
func (rb *Bitmap) RemoveRunCompression() {
	for i := range rb.containers {
		c := &rb.containers[i]
		c.fork()
		if c.typ != typeRun {
			continue
		}
		if int(c.size)*2 <= bitmapWords*8 {
			c.runToArray()
		} else {
			c.runToBmp()
		}
	}
}

// ShrinkToFit trims the backing slice of every array and run container to
// its length and returns the number of bytes saved.
func (rb *Bitmap) ShrinkToFit() int {
	saved := 0
	for i := range rb.containers {
		c := &rb.containers[i]
		if c.typ == typeBitmap {
			continue
		}
		if extra := cap(c.arr) - len(c.arr); extra > 0 {
			saved += extra * 2
			shrunk := make([]uint16, len(c.arr))
			copy(shrunk, c.arr)
			c.arr = shrunk
		}
	}
	return saved
}

// And intersects rb with other(s) in place.
func (rb *Bitmap) And(other *Bitmap, extra ...*Bitmap) {
	rb.mergeAnd(other)
	for _, bm := range extra {
		if bm != nil {
			rb.mergeAnd(bm)
		}
	}
}

// Or unions other(s) into rb in place.
func (rb *Bitmap) Or(other *Bitmap, extra ...*Bitmap) {
	rb.mergeOr(other)
	for _, bm := range extra {
		if bm != nil {
			rb.mergeOr(bm)
		}
	}
}

// OrLazy unions other into rb without maintaining cardinality or repacking
// the touched containers. Call Repair before any operation that reads a
// touched container's cardinality or type.
func (rb *Bitmap) OrLazy(other *Bitmap) {
	rb.mergeOrLazy(other)
}

// XorLazy computes the symmetric difference with other without maintaining
// cardinality or repacking. Call Repair before relying on the result.
func (rb *Bitmap) XorLazy(other *Bitmap) {
	rb.mergeXorLazy(other)
}

// Repair recomputes cardinality and repacks every container left dirty by a
// lazy operation, and drops any container a lazy operation left empty.
func (rb *Bitmap) Repair() {
	for i := len(rb.containers) - 1; i >= 0; i-- {
		repair(&rb.containers[i])
		if rb.containers[i].isEmpty() {
			rb.ctrDel(i)
		}
	}
}

// Xor computes the symmetric difference with other(s) in place.
func (rb *Bitmap) Xor(other *Bitmap, extra ...*Bitmap) {
	rb.mergeXor(other)
	for _, bm := range extra {
		if bm != nil {
			rb.mergeXor(bm)
		}
	}
}

// AndNot removes every value present in other(s) from rb in place.
func (rb *Bitmap) AndNot(other *Bitmap, extra ...*Bitmap) {
	rb.mergeAndNot(other)
	for _, bm := range extra {
		if bm != nil {
			rb.mergeAndNot(bm)
		}
	}
}

// AndCardinality returns |rb ∩ other| without allocating the intersection.
func (rb *Bitmap) AndCardinality(other *Bitmap) int {
	count := 0
	i, j := 0, 0
	for i < len(rb.containers) && j < len(other.containers) {
		switch {
		case rb.keys[i] < other.keys[j]:
			i++
		case rb.keys[i] > other.keys[j]:
			j++
		default:
			tmp := rb.containers[i].clone()
			ctrAnd(&tmp, &other.containers[j])
			count += tmp.cardinality()
			i++
			j++
		}
	}
	return count
}

// OrCardinality returns |rb ∪ other| without allocating the union.
func (rb *Bitmap) OrCardinality(other *Bitmap) int {
	return rb.Count() + other.Count() - rb.AndCardinality(other)
}

// JaccardIndex returns |rb ∩ other| / |rb ∪ other|, or 0 when both are
// empty, computed from cardinalities alone per CRoaring's
// roaring_bitmap_jaccard_index.
func (rb *Bitmap) JaccardIndex(other *Bitmap) float64 {
	andCard := rb.AndCardinality(other)
	orCard := rb.Count() + other.Count() - andCard
	if orCard == 0 {
		return 0
	}
	return float64(andCard) / float64(orCard)
}

// Equals reports whether rb and other contain the same values.
func (rb *Bitmap) Equals(other *Bitmap) bool {
	return rb.equals(other)
}

// IsSubset reports whether every value in rb is also a member of other.
func (rb *Bitmap) IsSubset(other *Bitmap) bool {
	return rb.isSubset(other)
}

// IsStrictSubset reports whether rb is a subset of other and other has at
// least one value rb does not.
func (rb *Bitmap) IsStrictSubset(other *Bitmap) bool {
	return rb.Count() < other.Count() && rb.isSubset(other)
}

// Intersects reports whether rb and other share at least one value.
func (rb *Bitmap) Intersects(other *Bitmap) bool {
	return rb.intersects(other)
}

// Min returns the smallest value in the bitmap.
func (rb *Bitmap) Min() (uint32, bool) {
	for i := 0; i < len(rb.containers); i++ {
		if v, ok := rb.containers[i].min(); ok {
			return uint32(rb.keys[i])<<16 | uint32(v), true
		}
	}
	return 0, false
}

// Max returns the largest value in the bitmap.
func (rb *Bitmap) Max() (uint32, bool) {
	for i := len(rb.containers) - 1; i >= 0; i-- {
		if v, ok := rb.containers[i].max(); ok {
			return uint32(rb.keys[i])<<16 | uint32(v), true
		}
	}
	return 0, false
}

// Minimum is an alias for Min matching the external-interface naming.
func (rb *Bitmap) Minimum() (uint32, bool) { return rb.Min() }

// Maximum is an alias for Max matching the external-interface naming.
func (rb *Bitmap) Maximum() (uint32, bool) { return rb.Max() }

// Stats reports the number of containers of each representation, a debug
// aid for callers tuning workloads against the container thresholds.
type Stats struct {
	Containers    int
	ArrayCount    int
	BitmapCount   int
	RunCount      int
	SizeInBytes   int
}

// Stats computes container-type counts and an estimate of in-memory size.
func (rb *Bitmap) Stats() Stats {
	var s Stats
	s.Containers = len(rb.containers)
	for i := range rb.containers {
		switch rb.containers[i].typ {
		case typeArray:
			s.ArrayCount++
			s.SizeInBytes += len(rb.containers[i].arr) * 2
		case typeBitmap:
			s.BitmapCount++
			s.SizeInBytes += bitmapWords * 8
		case typeRun:
			s.RunCount++
			s.SizeInBytes += len(rb.containers[i].arr) * 2
		}
	}
	s.SizeInBytes += len(rb.keys) * 2
	return s
}

// SizeInBytes estimates the in-memory footprint of the bitmap's containers.
func (rb *Bitmap) SizeInBytes() int {
	return rb.Stats().SizeInBytes
}
