// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Bitmap64 serializes as a sequence of 32-bit portable bitmaps (codec32.go),
// one per distinct top-32-bit prefix of its values: a uint64 sub-bitmap
// count, then per sub-bitmap a big-endian uint32 prefix, a uint32 byte
// length, and that many bytes of the 32-bit portable format for the
// remaining bits. The explicit length lets a reader skip or bounds-check a
// sub-bitmap without first fully parsing its payload.
func (rb *Bitmap64) groupByPrefix() ([]uint32, []*Bitmap) {
	groups := map[uint32]*Bitmap{}
	var order []uint32
	ascend(rb.tree.root, func(leaf *artLeaf) bool {
		high48 := leaf.key.high48()
		prefix := uint32(high48 >> 16)
		mid := uint16(high48 & 0xFFFF)

		sub, ok := groups[prefix]
		if !ok {
			sub = New()
			groups[prefix] = sub
			order = append(order, prefix)
		}
		idx, exists := find16(sub.keys, mid)
		if !exists {
			sub.ctrAdd(mid, idx, *leaf.value)
		}
		return true
	})

	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && order[j-1] > order[j]; j-- {
			order[j-1], order[j] = order[j], order[j-1]
		}
	}
	subs := make([]*Bitmap, len(order))
	for i, p := range order {
		subs[i] = groups[p]
	}
	return order, subs
}

// WriteTo writes the bitmap in the 64-bit portable format to w.
func (rb *Bitmap64) WriteTo(w io.Writer) (int64, error) {
	prefixes, subs := rb.groupByPrefix()
	var n int64

	if err := binary.Write(w, binary.BigEndian, uint64(len(subs))); err != nil {
		return n, err
	}
	n += 8

	for i, sub := range subs {
		if err := binary.Write(w, binary.BigEndian, prefixes[i]); err != nil {
			return n, err
		}
		n += 4

		payload := sub.ToBytes()
		if err := binary.Write(w, binary.BigEndian, uint32(len(payload))); err != nil {
			return n, err
		}
		n += 4

		m, err := w.Write(payload)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// ToBytes serializes the bitmap to the 64-bit portable format.
func (rb *Bitmap64) ToBytes() []byte {
	var buf bytes.Buffer
	if _, err := rb.WriteTo(&buf); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// ReadBitmap64 safely deserializes the 64-bit portable format from buf.
func ReadBitmap64(buf []byte) (*Bitmap64, error) {
	r := &byteReader{buf: buf}

	count, err := r.readUint64BE()
	if err != nil {
		return nil, fmt.Errorf("%w: sub-bitmap count", ErrTruncated)
	}
	if count > 1<<32 {
		return nil, ErrTooManyContainers
	}

	rb := New64()
	for i := uint64(0); i < count; i++ {
		prefix, err := r.readUint32BE()
		if err != nil {
			return nil, fmt.Errorf("%w: sub-bitmap %d prefix", ErrTruncated, i)
		}
		length, err := r.readUint32BE()
		if err != nil {
			return nil, fmt.Errorf("%w: sub-bitmap %d length", ErrTruncated, i)
		}
		payload, err := r.readBytes(int(length))
		if err != nil {
			return nil, fmt.Errorf("%w: sub-bitmap %d payload", ErrTruncated, i)
		}

		sub, err := ReadBitmap(payload)
		if err != nil {
			return nil, fmt.Errorf("roaring: sub-bitmap %d: %w", i, err)
		}
		for j := range sub.containers {
			high := uint64(prefix)<<16 | uint64(sub.keys[j])
			c := sub.containers[j]
			rb.tree.insert(keyFromHigh48(high), &c)
		}
	}
	return rb, nil
}

// FromBytes64 is the panicking counterpart to ReadBitmap64: it runs the same
// bounds-checked reader and panics on malformed input rather than returning
// an error.
func FromBytes64(buf []byte) *Bitmap64 {
	rb, err := ReadBitmap64(buf)
	if err != nil {
		panic(err)
	}
	return rb
}

// ReadFrom reads the 64-bit portable format from a stream.
func (rb *Bitmap64) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	decoded, err := ReadBitmap64(data)
	if err != nil {
		return int64(len(data)), err
	}
	*rb = *decoded
	return int64(len(data)), nil
}

func (r *byteReader) readUint64BE() (uint64, error) {
	b, err := r.readBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (r *byteReader) readUint32BE() (uint32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}
