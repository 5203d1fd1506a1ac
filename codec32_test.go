// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCodecTestBitmap() *Bitmap {
	rb := New()
	rb.Set(1)
	rb.Set(5)
	rb.Set(10)

	for i := 0xFFFF; i < 0xFFFF+0x5FFF; i += 3 {
		rb.Set(uint32(i))
	}

	for i := 131072; i < 131072+1000; i++ {
		rb.Set(uint32(i))
	}

	rb.Set(4294967295)
	rb.Optimize()
	return rb
}

func TestCodecRoundTrip(t *testing.T) {
	rb := makeCodecTestBitmap()
	data := rb.ToBytes()

	rb2, err := ReadBitmap(data)
	require.NoError(t, err)
	assert.Equal(t, valuesOf(rb), valuesOf(rb2))
	assert.Equal(t, rb.Count(), rb2.Count())
}

func TestCodecFromBytesMatchesToBytes(t *testing.T) {
	rb := makeCodecTestBitmap()
	data := rb.ToBytes()
	rb2 := FromBytes(data)
	assert.Equal(t, valuesOf(rb), valuesOf(rb2))
}

func TestCodecWriteToReadFrom(t *testing.T) {
	rb := makeCodecTestBitmap()
	var buf bytes.Buffer
	n, err := rb.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	rb2 := New()
	_, err = rb2.ReadFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, valuesOf(rb), valuesOf(rb2))
}

func TestCodecEmptyBitmap(t *testing.T) {
	rb := New()
	data := rb.ToBytes()
	rb2, err := ReadBitmap(data)
	require.NoError(t, err)
	assert.True(t, rb2.IsEmpty())
}

func TestCodecTruncatedInputIsRejected(t *testing.T) {
	rb := makeCodecTestBitmap()
	data := rb.ToBytes()

	for _, cut := range []int{1, 4, 8, len(data) / 2, len(data) - 1} {
		_, err := ReadBitmap(data[:cut])
		assert.Error(t, err, "cut at %d should fail", cut)
	}
}

func TestCodecBadCookieIsRejected(t *testing.T) {
	data := []byte{0, 0, 0, 0}
	_, err := ReadBitmap(data)
	assert.True(t, errors.Is(err, ErrBadCookie))
}

func TestCodecUnorderedKeysAreRejected(t *testing.T) {
	rb := makeCodecTestBitmap()
	data := rb.ToBytes()
	require.True(t, len(data) > 16)

	// overwrite the first descriptor key with the second to break strict
	// ascending order.
	hdr := 8
	if rb.hasRunContainer() {
		hdr = 4 + (len(rb.containers)+7)/8
	}
	corrupt := append([]byte(nil), data...)
	copy(corrupt[hdr:hdr+2], corrupt[hdr+4:hdr+6])

	_, err := ReadBitmap(corrupt)
	assert.Error(t, err)
}
