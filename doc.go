// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

// Package roaring implements compressed bitmaps of unsigned 32-bit and
// 64-bit integers, compatible on disk with the portable Roaring format.
//
// A Bitmap partitions its uint32 universe into 65536-wide chunks addressed
// by the top 16 bits of each value; a Bitmap64 partitions its uint64
// universe into chunks addressed by the top 48 bits, each chunk holding a
// single container for the remaining 16 bits. Every chunk is one of three
// container representations - array, bitmap, or run - chosen to minimize
// storage for the values it holds, and converted automatically as values
// are added or removed.
package roaring
