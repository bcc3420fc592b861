// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// testState wraps pool in the decodeState the field/method/attribute
// decoders expect, using the package default attribute_length cap and no
// logger (tests that care about the fallback Warn pass a logger to
// decodeModifiedUTF8 directly instead).
func testState(pool *ConstantPool) *decodeState {
	return &decodeState{pool: pool, maxAttributeLength: defaultMaxAttributeLength}
}

// byteBuilder assembles raw big-endian class-file bytes by hand, since
// no fixture binaries were available to retrieve; every test in this
// package that needs file bytes builds them with this helper instead.
type byteBuilder struct {
	buf []byte
}

func newByteBuilder() *byteBuilder {
	return &byteBuilder{}
}

func (b *byteBuilder) u8(v uint8) *byteBuilder {
	b.buf = append(b.buf, v)
	return b
}

func (b *byteBuilder) u16(v uint16) *byteBuilder {
	b.buf = append(b.buf, byte(v>>8), byte(v))
	return b
}

func (b *byteBuilder) u32(v uint32) *byteBuilder {
	b.buf = append(b.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	return b
}

func (b *byteBuilder) i32(v int32) *byteBuilder {
	return b.u32(uint32(v))
}

func (b *byteBuilder) i64(v int64) *byteBuilder {
	return b.u32(uint32(v >> 32)).u32(uint32(v))
}

func (b *byteBuilder) bytes(v ...byte) *byteBuilder {
	b.buf = append(b.buf, v...)
	return b
}

// utf8Constant appends a tagUtf8 constant-pool entry for s.
func (b *byteBuilder) utf8Constant(s string) *byteBuilder {
	b.u8(tagUtf8)
	b.u16(uint16(len(s)))
	b.buf = append(b.buf, []byte(s)...)
	return b
}

// classConstant appends a tagClass constant-pool entry referencing
// nameIndex.
func (b *byteBuilder) classConstant(nameIndex uint16) *byteBuilder {
	return b.u8(tagClass).u16(nameIndex)
}

func (b *byteBuilder) bytesOut() []byte {
	return b.buf
}

// minimalClassFile builds the smallest legal class file: magic, version
// 61.3, a two-entry constant pool (the class's own name as Utf8 and a
// Class constant pointing at it), access_flags=0x0021 (Public|Super),
// this_class pointing at that Class constant, a null super_class, and no
// interfaces/fields/
// methods/attributes (spec §8 scenario 2, extended with a resolvable
// this_class since Parse requires one).
func minimalClassFile() []byte {
	b := newByteBuilder()
	b.u32(classMagic)
	b.u16(3)  // minor_version
	b.u16(61) // major_version
	b.u16(3)  // constant_pool_count: entries at indices 1, 2
	b.utf8Constant("Minimal")
	b.classConstant(1)
	b.u16(0x0021) // access_flags: Public, Super
	b.u16(2)      // this_class -> Class constant at index 2
	b.u16(0)      // super_class: none
	b.u16(0)      // interfaces_count
	b.u16(0)      // fields_count
	b.u16(0)      // methods_count
	b.u16(0)      // attributes_count
	return b.bytesOut()
}
