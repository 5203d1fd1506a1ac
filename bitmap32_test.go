// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmapAddContainsRemove(t *testing.T) {
	rb := New()
	rb.Add(1)
	rb.Add(65537)
	rb.Add(4294967295)

	assert.True(t, rb.Contains(1))
	assert.True(t, rb.Contains(65537))
	assert.True(t, rb.Contains(4294967295))
	assert.False(t, rb.Contains(2))
	assert.Equal(t, 3, rb.Count())

	rb.Remove(65537)
	assert.False(t, rb.Contains(65537))
	assert.Equal(t, 2, rb.Count())
}

func TestBitmapRoundTripAcrossGenerators(t *testing.T) {
	gens := []dataGen{
		genSeq(1000, 0),
		genRand(2000, 1_000_000),
		genSparse(500),
		genDense(2000),
		genBoundary(),
		genMixed(),
	}
	for _, gen := range gens {
		data, name := gen()
		t.Run(name, func(t *testing.T) {
			rb := Of(data...)
			want := uniqueSorted(data)
			assert.Equal(t, want, valuesOf(rb))
			assert.Equal(t, len(want), rb.Count())
		})
	}
}

func TestBitmapRankSelectInverse(t *testing.T) {
	data, _ := genMixed()
	rb := Of(data...)
	values := valuesOf(rb)

	for i, v := range values {
		assert.Equal(t, i+1, rb.Rank(v), "rank of %d", v)
		got, ok := rb.Select(i)
		require.True(t, ok)
		assert.Equal(t, v, got)
	}
	_, ok := rb.Select(len(values))
	assert.False(t, ok)
}

func TestBitmapCloneIsIndependent(t *testing.T) {
	rb := Of(1, 2, 3, 100000)
	clone := rb.Clone()
	clone.Add(4)
	clone.Remove(1)

	assert.True(t, rb.Contains(1))
	assert.False(t, rb.Contains(4))
	assert.True(t, clone.Contains(4))
	assert.False(t, clone.Contains(1))
}

func TestBitmapCloneCopyOnWriteSharesUntilMutated(t *testing.T) {
	rb := New()
	rb.SetCopyOnWrite(true)
	rb.AddMany([]uint32{1, 2, 3})

	clone := rb.Clone()
	assert.Equal(t, valuesOf(rb), valuesOf(clone))

	clone.Add(4)
	assert.False(t, rb.Contains(4))
	assert.True(t, clone.Contains(4))
}

func TestBitmapFlipRange(t *testing.T) {
	rb := Of(1, 3, 5)
	rb.FlipRange(0, 5)
	assert.Equal(t, []uint32{0, 2, 4}, valuesOf(rb))
}

func TestBitmapCardinalityIdentities(t *testing.T) {
	a := Of(1, 2, 3, 4, 5)
	b := Of(3, 4, 5, 6, 7)

	andCard := a.AndCardinality(b)
	orCard := a.OrCardinality(b)
	assert.Equal(t, 3, andCard)
	assert.Equal(t, 7, orCard)

	jaccard := a.JaccardIndex(b)
	assert.InDelta(t, float64(andCard)/float64(orCard), jaccard, 1e-9)

	union := a.Clone()
	union.Or(b)
	assert.Equal(t, orCard, union.Count())

	inter := a.Clone()
	inter.And(b)
	assert.Equal(t, andCard, inter.Count())
}

func TestBitmapEqualsSubsetIntersects(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(1, 2, 3)
	c := Of(1, 2, 3, 4)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.True(t, a.IsSubset(c))
	assert.False(t, c.IsSubset(a))
	assert.True(t, a.IsStrictSubset(c))
	assert.True(t, a.Intersects(c))

	d := Of(10, 20)
	assert.False(t, a.Intersects(d))
}

func TestBitmapLazyOrThenRepairMatchesEagerOr(t *testing.T) {
	data, _ := genMixed()
	a1 := Of(data...)
	a2 := Of(data...)
	b := Of(7, 65540, 131073)

	a1.Or(b)

	a2.OrLazy(b)
	a2.Repair()

	assert.Equal(t, valuesOf(a1), valuesOf(a2))
}

func TestBitmapOptimizeIsMinimalBytes(t *testing.T) {
	rb := New()
	for i := 1000; i <= 2000; i++ {
		rb.Add(uint32(i))
	}
	before := rb.SizeInBytes()
	rb.Optimize()
	after := rb.SizeInBytes()
	assert.LessOrEqual(t, after, before)
	assert.Equal(t, 1001, rb.Count())
}

func TestBitmapMinMax(t *testing.T) {
	rb := Of(50, 10, 70, 5)
	min, ok := rb.Min()
	require.True(t, ok)
	assert.Equal(t, uint32(5), min)

	max, ok := rb.Max()
	require.True(t, ok)
	assert.Equal(t, uint32(70), max)

	empty := New()
	_, ok = empty.Min()
	assert.False(t, ok)
}

func TestBitmapIteratorMatchesRange(t *testing.T) {
	data, _ := genMixed()
	rb := Of(data...)

	it := rb.Iterator()
	var got []uint32
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, valuesOf(rb), got)
}

func TestBulkContext32(t *testing.T) {
	rb := New()
	var ctx BulkContext32
	for i := uint32(0); i < 10; i++ {
		ctx.AddBulk(rb, 65536+i)
	}
	for i := uint32(0); i < 10; i++ {
		assert.True(t, ctx.ContainsBulk(rb, 65536+i))
	}
	ctx.RemoveBulk(rb, 65536+5)
	assert.False(t, rb.Contains(65536+5))
	assert.Equal(t, 9, rb.Count())
}
