// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import (
	"os"

	"github.com/go-kratos/kratos/v2/log"
)

// classMagic is the fixed 32-bit signature every class file begins with
// (spec §4.7, §8 scenario 1).
const classMagic = 0xCAFEBABE

// defaultMaxConstantPoolEntries and defaultMaxAttributeLength are safety
// caps a caller can tighten or loosen through Options; they exist so a
// hostile or corrupt constant_pool_count/attribute_length can't make the
// decoder allocate wildly before the cursor's own bounds checks kick in.
const (
	defaultMaxConstantPoolEntries = 1 << 16
	defaultMaxAttributeLength     = 1 << 24
)

// Options configures a Parse call. The zero value is usable: Logger
// defaults to a kratos standard logger filtered at LevelError, and the
// two limits default to generous caps.
type Options struct {
	// Logger receives Warn-level diagnostics (e.g. a modified-UTF-8
	// fallback to U+FFFD) and Debug-level decode milestones. Defaults to
	// log.NewStdLogger(os.Stdout) filtered at log.LevelError if nil.
	Logger log.Logger

	// MaxConstantPoolEntries caps constant_pool_count. Zero means the
	// package default.
	MaxConstantPoolEntries int

	// MaxAttributeLength caps any single attribute_length. Zero means
	// the package default.
	MaxAttributeLength int
}

func (o *Options) logger() *log.Helper {
	logger := o.Logger
	if logger == nil {
		logger = log.NewFilter(log.NewStdLogger(os.Stdout), log.FilterLevel(log.LevelError))
	}
	return log.NewHelper(logger)
}

func (o *Options) maxConstantPoolEntries() int {
	if o.MaxConstantPoolEntries > 0 {
		return o.MaxConstantPoolEntries
	}
	return defaultMaxConstantPoolEntries
}

func (o *Options) maxAttributeLength() int {
	if o.MaxAttributeLength > 0 {
		return o.MaxAttributeLength
	}
	return defaultMaxAttributeLength
}

// decodeState carries the context a single Parse call threads through the
// field/method/attribute decoders once the constant pool exists: the pool
// itself, the diagnostics logger, and the configured attribute_length cap
// (MaxAttributeLength, enforced in decodeAttribute). It exists so the
// recursive attribute decoders (Code, Record) don't need their own
// copies of this context passed down a second, parallel parameter.
type decodeState struct {
	pool               *ConstantPool
	logger             *log.Helper
	maxAttributeLength int
}

// ClassFile is the fully decoded, cross-referenced model of one compiled
// class (spec §3). Every slice preserves file order; the constant pool is
// the single source of truth every other field's indices point into.
type ClassFile struct {
	MinorVersion int
	MajorVersion int
	Pool         *ConstantPool
	AccessFlags  []ClassFlag
	ThisClass    *ConstantClass
	SuperClass   *ConstantClass // nil iff the file's super_class index was 0
	Interfaces   []*ConstantClass
	Fields       []*FieldInfo
	Methods      []*MethodInfo
	Attributes   []Attribute
}

// Parse decodes data as a class file per spec §4.7's non-negotiable
// field order: magic, versions, constant pool, access flags, this/super/
// interfaces, fields, methods, class-level attributes, then a
// reachability check over every pool reference the assembled model holds.
// opts may be nil to take all defaults.
func Parse(data []byte, opts *Options) (*ClassFile, error) {
	if opts == nil {
		opts = &Options{}
	}
	helper := opts.logger()
	c := NewCursor(data)

	magicOffset := c.Position()
	magic, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	if magic != classMagic {
		return nil, errBadMagic(magicOffset, magic)
	}

	minor, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	major, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	helper.Debugf("class file version %d.%d", major, minor)

	poolCountOffset := c.Position()
	poolCount, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	if int(poolCount) > opts.maxConstantPoolEntries() {
		return nil, errUnexpectedEOF(poolCountOffset, "constant_pool_count exceeds configured limit")
	}
	pool, err := decodeConstantPool(c, int(poolCount), helper)
	if err != nil {
		return nil, err
	}
	st := &decodeState{pool: pool, logger: helper, maxAttributeLength: opts.maxAttributeLength()}

	accessFlagsMask, err := c.ReadU16()
	if err != nil {
		return nil, err
	}

	thisOffset := c.Position()
	thisIdx, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	thisClass, ok := pool.AsClass(int(thisIdx))
	if !ok {
		return nil, errBadPoolRef(thisOffset, "this_class does not resolve to a Class constant")
	}

	superOffset := c.Position()
	superIdx, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	var superClass *ConstantClass
	if superIdx != 0 {
		superClass, ok = pool.AsClass(int(superIdx))
		if !ok {
			return nil, errBadPoolRef(superOffset, "super_class does not resolve to a Class constant")
		}
	}

	interfacesCount, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	interfaces := make([]*ConstantClass, interfacesCount)
	for i := range interfaces {
		ifaceOffset := c.Position()
		ifaceIdx, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		iface, ok := pool.AsClass(int(ifaceIdx))
		if !ok {
			return nil, errBadPoolRef(ifaceOffset, "interface entry does not resolve to a Class constant")
		}
		interfaces[i] = iface
	}

	fields, err := decodeFields(c, st)
	if err != nil {
		return nil, err
	}
	methods, err := decodeMethods(c, st)
	if err != nil {
		return nil, err
	}
	attrs, err := decodeAttributes(c, st)
	if err != nil {
		return nil, err
	}

	cf := &ClassFile{
		MinorVersion: int(minor),
		MajorVersion: int(major),
		Pool:         pool,
		AccessFlags:  DecodeClassFlags(accessFlagsMask),
		ThisClass:    thisClass,
		SuperClass:   superClass,
		Interfaces:   interfaces,
		Fields:       fields,
		Methods:      methods,
		Attributes:   attrs,
	}

	if err := checkReachability(cf); err != nil {
		return nil, err
	}

	if name, ok := pool.ClassName(thisClass.Index()); ok {
		helper.Debugf("decoded class %s: %d fields, %d methods", name, len(fields), len(methods))
	}
	return cf, nil
}
