// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import (
	"encoding/json"

	"github.com/go-kratos/kratos/v2/log"
)

// Constant tag byte values, the fixed numeric codes from the JVM
// specification (spec §3). Gaps (2, 13, 14) are reserved by the spec
// itself and never assigned.
const (
	tagUtf8               = 1
	tagInteger            = 3
	tagFloat              = 4
	tagLong               = 5
	tagDouble             = 6
	tagClass              = 7
	tagString             = 8
	tagFieldref           = 9
	tagMethodref          = 10
	tagInterfaceMethodref = 11
	tagNameAndType        = 12
	tagMethodHandle       = 15
	tagMethodType         = 16
	tagDynamic            = 17
	tagInvokeDynamic      = 18
	tagModule             = 19
	tagPackage            = 20
)

// ReferenceKind is a MethodHandle's reference_kind, one of 9 variants
// (JVM spec §4.4.8, Table 4.4.8-A).
type ReferenceKind int

const (
	RefGetField ReferenceKind = iota + 1
	RefGetStatic
	RefPutField
	RefPutStatic
	RefInvokeVirtual
	RefInvokeStatic
	RefInvokeSpecial
	RefNewInvokeSpecial
	RefInvokeInterface
)

func (k ReferenceKind) String() string {
	switch k {
	case RefGetField:
		return "GetField"
	case RefGetStatic:
		return "GetStatic"
	case RefPutField:
		return "PutField"
	case RefPutStatic:
		return "PutStatic"
	case RefInvokeVirtual:
		return "InvokeVirtual"
	case RefInvokeStatic:
		return "InvokeStatic"
	case RefInvokeSpecial:
		return "InvokeSpecial"
	case RefNewInvokeSpecial:
		return "NewInvokeSpecial"
	case RefInvokeInterface:
		return "InvokeInterface"
	default:
		return "Unknown"
	}
}

// Constant is the tagged-union interface implemented by all 17
// constant-pool variant structs. Index returns the 1-based pool slot the
// constant was decoded into; callers downcast via a type switch or one of
// the ConstantPool.AsXxx accessors, mirroring the runtime-downcast pattern
// the source JVM represents, recast here as Go's type switch over an
// interface (spec §9).
type Constant interface {
	Index() int
	constantTag() byte
}

type constantBase struct {
	index int
}

func (c constantBase) Index() int { return c.index }

// ConstantUtf8 is a Utf8 constant: a modified-UTF-8 byte string already
// decoded to its logical Go string form.
type ConstantUtf8 struct {
	constantBase
	Value string
}

func (ConstantUtf8) constantTag() byte { return tagUtf8 }

// ConstantInteger is an Integer constant.
type ConstantInteger struct {
	constantBase
	Value int32
}

func (ConstantInteger) constantTag() byte { return tagInteger }

// ConstantFloat is a Float constant.
type ConstantFloat struct {
	constantBase
	Value float32
}

func (ConstantFloat) constantTag() byte { return tagFloat }

// ConstantLong is a Long constant; it and the following reserved pool
// index together occupy two consecutive slots (spec §3, §4.4).
type ConstantLong struct {
	constantBase
	Value int64
}

func (ConstantLong) constantTag() byte { return tagLong }

// ConstantDouble is a Double constant; see ConstantLong for the two-slot
// rule it shares.
type ConstantDouble struct {
	constantBase
	Value float64
}

func (ConstantDouble) constantTag() byte { return tagDouble }

// ConstantClass names a class or interface by its binary name, referenced
// indirectly through a Utf8 constant.
type ConstantClass struct {
	constantBase
	NameIndex int
}

func (ConstantClass) constantTag() byte { return tagClass }

// ConstantString is a String literal, referenced indirectly through a
// Utf8 constant.
type ConstantString struct {
	constantBase
	StringIndex int
}

func (ConstantString) constantTag() byte { return tagString }

// ConstantFieldref is a symbolic reference to a field.
type ConstantFieldref struct {
	constantBase
	ClassIndex       int
	NameAndTypeIndex int
}

func (ConstantFieldref) constantTag() byte { return tagFieldref }

// ConstantMethodref is a symbolic reference to a class method.
type ConstantMethodref struct {
	constantBase
	ClassIndex       int
	NameAndTypeIndex int
}

func (ConstantMethodref) constantTag() byte { return tagMethodref }

// ConstantInterfaceMethodref is a symbolic reference to an interface
// method.
type ConstantInterfaceMethodref struct {
	constantBase
	ClassIndex       int
	NameAndTypeIndex int
}

func (ConstantInterfaceMethodref) constantTag() byte { return tagInterfaceMethodref }

// ConstantNameAndType pairs a name with a descriptor, both referenced
// through Utf8 constants.
type ConstantNameAndType struct {
	constantBase
	NameIndex       int
	DescriptorIndex int
}

func (ConstantNameAndType) constantTag() byte { return tagNameAndType }

// ConstantMethodHandle is a method handle: a reference_kind plus the
// pool index the kind governs the interpretation of.
type ConstantMethodHandle struct {
	constantBase
	ReferenceKind  ReferenceKind
	ReferenceIndex int
}

func (ConstantMethodHandle) constantTag() byte { return tagMethodHandle }

// ConstantMethodType is a method descriptor referenced as a first-class
// constant.
type ConstantMethodType struct {
	constantBase
	DescriptorIndex int
}

func (ConstantMethodType) constantTag() byte { return tagMethodType }

// ConstantDynamic is a dynamically-computed constant, resolved through a
// bootstrap method at link time.
type ConstantDynamic struct {
	constantBase
	BootstrapMethodAttrIndex int
	NameAndTypeIndex         int
}

func (ConstantDynamic) constantTag() byte { return tagDynamic }

// ConstantInvokeDynamic is a dynamically-computed call site, resolved
// through a bootstrap method at link time.
type ConstantInvokeDynamic struct {
	constantBase
	BootstrapMethodAttrIndex int
	NameAndTypeIndex         int
}

func (ConstantInvokeDynamic) constantTag() byte { return tagInvokeDynamic }

// ConstantModule names a module, referenced through a Utf8 constant.
type ConstantModule struct {
	constantBase
	NameIndex int
}

func (ConstantModule) constantTag() byte { return tagModule }

// ConstantPackage names a package, referenced through a Utf8 constant.
type ConstantPackage struct {
	constantBase
	NameIndex int
}

func (ConstantPackage) constantTag() byte { return tagPackage }

// ConstantPool is the assembled 1-based constant table. Index 0 is always
// absent, and the slot following a Long or Double is absent as well (the
// "hole" left by the two-slot rule) — an integer-keyed map reads this
// absence naturally, instead of forcing a dense sequence to paper over it
// with a sentinel (spec §9).
type ConstantPool struct {
	entries map[int]Constant
	count   int
}

// Get returns the constant at index, or (nil, false) if index is 0,
// negative, past the pool's extent, or lands on a reserved hole.
func (p *ConstantPool) Get(index int) (Constant, bool) {
	c, ok := p.entries[index]
	return c, ok
}

// MarshalJSON renders the pool as an index-keyed object, since its
// entries map holds unexported fields that encoding/json would otherwise
// skip entirely.
func (p *ConstantPool) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.entries)
}

// Len reports the constant_pool_count the pool was decoded with
// (including the always-absent slot 0 and any Long/Double holes).
func (p *ConstantPool) Len() int {
	return p.count
}

// AsUtf8 returns the Utf8 constant at index, or (nil, false) if absent or
// a different variant.
func (p *ConstantPool) AsUtf8(index int) (*ConstantUtf8, bool) {
	c, ok := p.Get(index)
	if !ok {
		return nil, false
	}
	v, ok := c.(*ConstantUtf8)
	return v, ok
}

// AsClass returns the Class constant at index, or (nil, false) if absent
// or a different variant.
func (p *ConstantPool) AsClass(index int) (*ConstantClass, bool) {
	c, ok := p.Get(index)
	if !ok {
		return nil, false
	}
	v, ok := c.(*ConstantClass)
	return v, ok
}

// AsNameAndType returns the NameAndType constant at index, or (nil,
// false) if absent or a different variant.
func (p *ConstantPool) AsNameAndType(index int) (*ConstantNameAndType, bool) {
	c, ok := p.Get(index)
	if !ok {
		return nil, false
	}
	v, ok := c.(*ConstantNameAndType)
	return v, ok
}

// Utf8String is a convenience over AsUtf8 that returns the decoded
// string directly, for the common case where the caller only wants the
// text and treats absence as the empty string.
func (p *ConstantPool) Utf8String(index int) (string, bool) {
	u, ok := p.AsUtf8(index)
	if !ok {
		return "", false
	}
	return u.Value, true
}

// ClassName resolves a Class constant's index to its binary name,
// looking the Class constant up and then its name_index's Utf8 constant
// in one step.
func (p *ConstantPool) ClassName(index int) (string, bool) {
	cls, ok := p.AsClass(index)
	if !ok {
		return "", false
	}
	return p.Utf8String(cls.NameIndex)
}

func decodeConstantPool(c *Cursor, count int, logger *log.Helper) (*ConstantPool, error) {
	pool := &ConstantPool{entries: make(map[int]Constant, count), count: count}
	for i := 1; i < count; {
		startOffset := c.Position()
		tagByte, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		constant, width, err := decodeConstant(c, i, tagByte, startOffset, logger)
		if err != nil {
			return nil, err
		}
		pool.entries[i] = constant
		i += width
	}
	return pool, nil
}

func decodeConstant(c *Cursor, index int, tag byte, offset int, logger *log.Helper) (Constant, int, error) {
	base := constantBase{index: index}
	switch tag {
	case tagUtf8:
		length, err := c.ReadU16()
		if err != nil {
			return nil, 0, err
		}
		raw, err := c.Take(int(length))
		if err != nil {
			return nil, 0, err
		}
		s := decodeModifiedUTF8(raw, logger, offset)
		return &ConstantUtf8{constantBase: base, Value: s}, 1, nil
	case tagInteger:
		v, err := c.ReadI32()
		if err != nil {
			return nil, 0, err
		}
		return &ConstantInteger{constantBase: base, Value: v}, 1, nil
	case tagFloat:
		v, err := c.ReadF32()
		if err != nil {
			return nil, 0, err
		}
		return &ConstantFloat{constantBase: base, Value: v}, 1, nil
	case tagLong:
		v, err := c.ReadI64()
		if err != nil {
			return nil, 0, err
		}
		return &ConstantLong{constantBase: base, Value: v}, 2, nil
	case tagDouble:
		v, err := c.ReadF64()
		if err != nil {
			return nil, 0, err
		}
		return &ConstantDouble{constantBase: base, Value: v}, 2, nil
	case tagClass:
		nameIdx, err := c.ReadU16()
		if err != nil {
			return nil, 0, err
		}
		return &ConstantClass{constantBase: base, NameIndex: int(nameIdx)}, 1, nil
	case tagString:
		strIdx, err := c.ReadU16()
		if err != nil {
			return nil, 0, err
		}
		return &ConstantString{constantBase: base, StringIndex: int(strIdx)}, 1, nil
	case tagFieldref:
		classIdx, natIdx, err := readTwoIndices(c)
		if err != nil {
			return nil, 0, err
		}
		return &ConstantFieldref{constantBase: base, ClassIndex: classIdx, NameAndTypeIndex: natIdx}, 1, nil
	case tagMethodref:
		classIdx, natIdx, err := readTwoIndices(c)
		if err != nil {
			return nil, 0, err
		}
		return &ConstantMethodref{constantBase: base, ClassIndex: classIdx, NameAndTypeIndex: natIdx}, 1, nil
	case tagInterfaceMethodref:
		classIdx, natIdx, err := readTwoIndices(c)
		if err != nil {
			return nil, 0, err
		}
		return &ConstantInterfaceMethodref{constantBase: base, ClassIndex: classIdx, NameAndTypeIndex: natIdx}, 1, nil
	case tagNameAndType:
		nameIdx, descIdx, err := readTwoIndices(c)
		if err != nil {
			return nil, 0, err
		}
		return &ConstantNameAndType{constantBase: base, NameIndex: nameIdx, DescriptorIndex: descIdx}, 1, nil
	case tagMethodHandle:
		kindByte, err := c.ReadU8()
		if err != nil {
			return nil, 0, err
		}
		if kindByte < 1 || kindByte > 9 {
			return nil, 0, errMalformedTag(offset, "method handle reference_kind out of range 1..9")
		}
		refIdx, err := c.ReadU16()
		if err != nil {
			return nil, 0, err
		}
		return &ConstantMethodHandle{constantBase: base, ReferenceKind: ReferenceKind(kindByte), ReferenceIndex: int(refIdx)}, 1, nil
	case tagMethodType:
		descIdx, err := c.ReadU16()
		if err != nil {
			return nil, 0, err
		}
		return &ConstantMethodType{constantBase: base, DescriptorIndex: int(descIdx)}, 1, nil
	case tagDynamic:
		bootIdx, natIdx, err := readTwoIndices(c)
		if err != nil {
			return nil, 0, err
		}
		return &ConstantDynamic{constantBase: base, BootstrapMethodAttrIndex: bootIdx, NameAndTypeIndex: natIdx}, 1, nil
	case tagInvokeDynamic:
		bootIdx, natIdx, err := readTwoIndices(c)
		if err != nil {
			return nil, 0, err
		}
		return &ConstantInvokeDynamic{constantBase: base, BootstrapMethodAttrIndex: bootIdx, NameAndTypeIndex: natIdx}, 1, nil
	case tagModule:
		nameIdx, err := c.ReadU16()
		if err != nil {
			return nil, 0, err
		}
		return &ConstantModule{constantBase: base, NameIndex: int(nameIdx)}, 1, nil
	case tagPackage:
		nameIdx, err := c.ReadU16()
		if err != nil {
			return nil, 0, err
		}
		return &ConstantPackage{constantBase: base, NameIndex: int(nameIdx)}, 1, nil
	default:
		return nil, 0, errMalformedTag(offset, "unrecognized constant pool tag")
	}
}

func readTwoIndices(c *Cursor) (int, int, error) {
	a, err := c.ReadU16()
	if err != nil {
		return 0, 0, err
	}
	b, err := c.ReadU16()
	if err != nil {
		return 0, 0, err
	}
	return int(a), int(b), nil
}
