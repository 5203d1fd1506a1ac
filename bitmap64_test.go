// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values64Of(rb *Bitmap64) []uint64 {
	out := []uint64{}
	rb.Range(func(x uint64) bool {
		out = append(out, x)
		return true
	})
	return out
}

func TestBitmap64AddContainsRemove(t *testing.T) {
	rb := New64()
	rb.Add(1)
	rb.Add(1 << 32)
	rb.Add(1 << 48)
	rb.Add(0xFFFFFFFFFFFFFFFF)

	assert.True(t, rb.Contains(1))
	assert.True(t, rb.Contains(1<<32))
	assert.True(t, rb.Contains(1<<48))
	assert.True(t, rb.Contains(0xFFFFFFFFFFFFFFFF))
	assert.False(t, rb.Contains(2))
	assert.Equal(t, uint64(4), rb.Count())

	rb.Remove(1 << 32)
	assert.False(t, rb.Contains(1<<32))
	assert.Equal(t, uint64(3), rb.Count())
}

func TestBitmap64SpreadAcrossHighPrefixes(t *testing.T) {
	rb := New64()
	var want []uint64
	for i := uint64(0); i < 300; i++ {
		v := i * (1 << 40)
		rb.Add(v)
		want = append(want, v)
	}
	assert.Equal(t, want, values64Of(rb))
	assert.Equal(t, uint64(len(want)), rb.Count())
}

func TestBitmap64MinMax(t *testing.T) {
	rb := Of64(500, 10, 1<<40, 5)
	min, ok := rb.Min()
	require.True(t, ok)
	assert.Equal(t, uint64(5), min)

	max, ok := rb.Max()
	require.True(t, ok)
	assert.Equal(t, uint64(1<<40), max)
}

func TestBitmap64SetAlgebra(t *testing.T) {
	a := Of64(1, 2, 3, 1<<40)
	b := Of64(2, 3, 4, 1<<40)

	inter := a.Clone()
	inter.And(b)
	assert.Equal(t, []uint64{2, 3, 1 << 40}, values64Of(inter))

	union := a.Clone()
	union.Or(b)
	assert.Equal(t, []uint64{1, 2, 3, 4, 1 << 40}, values64Of(union))

	diff := a.Clone()
	diff.AndNot(b)
	assert.Equal(t, []uint64{1}, values64Of(diff))

	xor := a.Clone()
	xor.Xor(b)
	assert.Equal(t, []uint64{1, 4}, values64Of(xor))
}

func TestBitmap64EqualsSubsetIntersects(t *testing.T) {
	a := Of64(1, 2, 3)
	b := Of64(1, 2, 3)
	c := Of64(1, 2, 3, 4)

	assert.True(t, a.Equals(b))
	assert.True(t, a.IsSubset(c))
	assert.True(t, a.Intersects(c))

	d := Of64(1 << 50)
	assert.False(t, a.Intersects(d))
}

func TestBitmap64RankSelectInverse(t *testing.T) {
	rb := Of64(1, 2, 3, 1<<20, 1<<40)
	values := values64Of(rb)
	for i, v := range values {
		assert.Equal(t, uint64(i+1), rb.Rank(v))
		got, ok := rb.Select(uint64(i))
		require.True(t, ok)
		assert.Equal(t, v, got)
	}
}

func TestBulkContext64(t *testing.T) {
	rb := New64()
	var ctx BulkContext64
	base := uint64(1) << 40
	for i := uint64(0); i < 10; i++ {
		ctx.AddBulk(rb, base+i)
	}
	for i := uint64(0); i < 10; i++ {
		assert.True(t, ctx.ContainsBulk(rb, base+i))
	}
	ctx.RemoveBulk(rb, base+5)
	assert.False(t, rb.Contains(base+5))
	assert.Equal(t, uint64(9), rb.Count())
}

func TestBitmap64Iterator(t *testing.T) {
	rb := Of64(1, 1<<20, 1<<40, 1<<50)
	it := rb.Iterator()
	var got []uint64
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, values64Of(rb), got)
}
