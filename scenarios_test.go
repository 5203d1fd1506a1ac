// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1: empty round-trip.
func TestScenarioEmptyRoundTrip(t *testing.T) {
	rb := New()
	assert.True(t, rb.IsEmpty())
	assert.Equal(t, 0, rb.Cardinality())

	data := rb.ToBytes()
	rb2, err := ReadBitmap(data)
	require.NoError(t, err)
	assert.True(t, rb2.Equals(rb))
}

// Scenario 2: dense range, run-optimize shrinks it to two runs.
func TestScenarioDenseRange(t *testing.T) {
	rb := FromRange(0, 100_000, 1)
	assert.Equal(t, 100_000, rb.Cardinality())
	assert.True(t, rb.Contains(50_000))
	assert.False(t, rb.Contains(100_000))

	rb.RunOptimize()
	for i := range rb.containers {
		assert.Equal(t, typeRun, rb.containers[i].typ)
	}
}

// Scenario 3: set algebra over small explicit sets.
func TestScenarioSetAlgebra(t *testing.T) {
	a := Of(1, 2, 3, 100, 1000, 10000, 1000000, 20000000)
	b := Of(1000, 2000, 10000)

	and := a.Clone()
	and.And(b)
	assert.Equal(t, []uint32{1000, 10000}, valuesOf(and))

	or := a.Clone()
	or.Or(b)
	want := a.Clone()
	want.Add(2000)
	assert.Equal(t, valuesOf(want), valuesOf(or))

	andNot := a.Clone()
	andNot.AndNot(b)
	wantAndNot := a.Clone()
	wantAndNot.Remove(1000)
	wantAndNot.Remove(10000)
	assert.Equal(t, valuesOf(wantAndNot), valuesOf(andNot))

	xor := a.Clone()
	xor.Xor(b)
	wantXor := wantAndNot.Clone()
	wantXor.Add(2000)
	assert.Equal(t, valuesOf(wantXor), valuesOf(xor))
}

// Scenario 4: copy-on-write mutation isolation.
func TestScenarioCopyOnWrite(t *testing.T) {
	a := New()
	a.SetCopyOnWrite(true)
	a.AddMany([]uint32{1, 2, 3})

	aPrime := a.Clone()
	aPrime.Add(4)

	assert.False(t, a.Contains(4))
	assert.True(t, aPrime.Contains(4))

	// aPrime forked on mutation and now holds a private clone; a remains
	// the shared wrapper's sole owner, with its refcount dropped to 1.
	assert.Nil(t, aPrime.containers[0].shared)
	require.NotNil(t, a.containers[0].shared)
	assert.Equal(t, int32(1), a.containers[0].shared.n)
}

// Scenario 5: rank/select over a strided range.
func TestScenarioRankSelectOverRange(t *testing.T) {
	rb := FromRange(0, 1000, 3)
	assert.Equal(t, 334, rb.Cardinality())

	v, ok := rb.Select(100)
	require.True(t, ok)
	assert.Equal(t, uint32(300), v)
	assert.Equal(t, 100, rb.Rank(299))
}

// Scenario 6: values crossing the 32-bit boundary in a 64-bit bitmap.
func TestScenario64BitCrossing(t *testing.T) {
	rb := New64()
	rb.Add(0xFFFF_FFFE)
	rb.Add(0xFFFF_FFFF)
	rb.Add(0x1_0000_0000)

	got := values64Of(rb)
	assert.Equal(t, []uint64{0xFFFF_FFFE, 0xFFFF_FFFF, 0x1_0000_0000}, got)

	min, _ := rb.Min()
	max, _ := rb.Max()
	assert.Equal(t, uint64(0xFFFF_FFFE), min)
	assert.Equal(t, uint64(0x1_0000_0000), max)
}

// Universal property: |A ∪ B| + |A ∩ B| = |A| + |B|.
func TestPropertyUnionIntersectionCardinality(t *testing.T) {
	data1, _ := genRand(500, 100_000)()
	data2, _ := genRand(500, 100_000)()
	a, b := Of(data1...), Of(data2...)

	union := a.Clone()
	union.Or(b)
	inter := a.Clone()
	inter.And(b)

	assert.Equal(t, a.Count()+b.Count(), union.Count()+inter.Count())
}

// Universal property: |A \ B| = |A| - |A ∩ B|.
func TestPropertyAndNotCardinality(t *testing.T) {
	data1, _ := genRand(500, 100_000)()
	data2, _ := genRand(500, 100_000)()
	a, b := Of(data1...), Of(data2...)

	diff := a.Clone()
	diff.AndNot(b)
	inter := a.Clone()
	inter.And(b)

	assert.Equal(t, a.Count()-inter.Count(), diff.Count())
}

// Universal property: A ⊕ B = (A ∪ B) \ (A ∩ B).
func TestPropertyXorEqualsUnionMinusIntersection(t *testing.T) {
	data1, _ := genRand(500, 100_000)()
	data2, _ := genRand(500, 100_000)()
	a, b := Of(data1...), Of(data2...)

	xor := a.Clone()
	xor.Xor(b)

	union := a.Clone()
	union.Or(b)
	inter := a.Clone()
	inter.And(b)
	union.AndNot(inter)

	assert.Equal(t, valuesOf(union), valuesOf(xor))
}

// Universal property: run_optimize then remove_run_compression is lossless
// and run_optimize never grows the in-memory size estimate (SizeInBytes).
func TestPropertyRunOptimizeRoundTrip(t *testing.T) {
	rb := New()
	for i := 1000; i <= 5000; i++ {
		rb.Add(uint32(i))
	}
	before := rb.SizeInBytes()
	want := valuesOf(rb)

	rb.RunOptimize()
	assert.LessOrEqual(t, rb.SizeInBytes(), before)

	rb.RemoveRunCompression()
	assert.Equal(t, want, valuesOf(rb))
}

// Universal property: allocating op equals copy-then-in-place op.
func TestPropertyAllocatingMatchesInPlace(t *testing.T) {
	data1, _ := genRand(300, 50_000)()
	data2, _ := genRand(300, 50_000)()
	a, b := Of(data1...), Of(data2...)

	inPlace := a.Clone()
	inPlace.And(b)

	fresh := a.Clone()
	fresh.And(b)
	assert.Equal(t, valuesOf(fresh), valuesOf(inPlace))
}

// Universal property: for v in A, rank(A, v) >= 1 and select(rank-1) == v.
func TestPropertyRankSelectRoundTrip(t *testing.T) {
	data, _ := genRand(500, 1_000_000)()
	rb := Of(data...)

	rb.Range(func(v uint32) bool {
		r := rb.Rank(v)
		assert.GreaterOrEqual(t, r, 1)
		got, ok := rb.Select(r - 1)
		assert.True(t, ok)
		assert.Equal(t, v, got)
		return true
	})
}
