// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import (
	"encoding/binary"
	"math"
)

// decodeU8 through decodeF64 are pure fixed-width scalar decoders. Each
// takes an exact-length slice and reinterprets its bytes; a caller passing
// the wrong width is a programmer error, not a malformed-input error, so
// these panic rather than return an error (the class file grammar fixes
// every field width at the call site — Cursor.Take already validated the
// length against the buffer before calling in).
func decodeU8(b []byte) uint8 {
	if len(b) != 1 {
		panic("classfile: decodeU8 requires exactly 1 byte")
	}
	return b[0]
}

func decodeU16(b []byte) uint16 {
	if len(b) != 2 {
		panic("classfile: decodeU16 requires exactly 2 bytes")
	}
	return binary.BigEndian.Uint16(b)
}

func decodeU32(b []byte) uint32 {
	if len(b) != 4 {
		panic("classfile: decodeU32 requires exactly 4 bytes")
	}
	return binary.BigEndian.Uint32(b)
}

func decodeI32(b []byte) int32 {
	if len(b) != 4 {
		panic("classfile: decodeI32 requires exactly 4 bytes")
	}
	return int32(binary.BigEndian.Uint32(b))
}

func decodeI64(b []byte) int64 {
	if len(b) != 8 {
		panic("classfile: decodeI64 requires exactly 8 bytes")
	}
	return int64(binary.BigEndian.Uint64(b))
}

func decodeF32(b []byte) float32 {
	if len(b) != 4 {
		panic("classfile: decodeF32 requires exactly 4 bytes")
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b))
}

func decodeF64(b []byte) float64 {
	if len(b) != 8 {
		panic("classfile: decodeF64 requires exactly 8 bytes")
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b))
}
