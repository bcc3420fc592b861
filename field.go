// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// FieldInfo is one entry of a class's fields table: its access flags, its
// name and descriptor (both resolved through the constant pool), and its
// attribute list (spec §3, §4.6).
type FieldInfo struct {
	AccessFlags     []FieldFlag
	NameIndex       int
	DescriptorIndex int
	Attributes      []Attribute
}

// Name resolves the field's name_index to its Utf8 string.
func (f *FieldInfo) Name(pool *ConstantPool) (string, bool) {
	return pool.Utf8String(f.NameIndex)
}

// Descriptor resolves the field's descriptor_index to its Utf8 string.
func (f *FieldInfo) Descriptor(pool *ConstantPool) (string, bool) {
	return pool.Utf8String(f.DescriptorIndex)
}

// ConstantValue returns the field's ConstantValue attribute, if present.
func (f *FieldInfo) ConstantValue() (*ConstantValueAttribute, bool) {
	for _, a := range f.Attributes {
		if cv, ok := a.(*ConstantValueAttribute); ok {
			return cv, true
		}
	}
	return nil, false
}

// Signature returns the field's generic Signature attribute, if present.
func (f *FieldInfo) Signature() (*SignatureAttribute, bool) {
	for _, a := range f.Attributes {
		if sig, ok := a.(*SignatureAttribute); ok {
			return sig, true
		}
	}
	return nil, false
}

func decodeFieldInfo(c *Cursor, st *decodeState) (*FieldInfo, error) {
	flags, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	nameIdx, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	descIdx, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	attrs, err := decodeAttributes(c, st)
	if err != nil {
		return nil, err
	}
	return &FieldInfo{
		AccessFlags:     DecodeFieldFlags(flags),
		NameIndex:       int(nameIdx),
		DescriptorIndex: int(descIdx),
		Attributes:      attrs,
	}, nil
}

func decodeFields(c *Cursor, st *decodeState) ([]*FieldInfo, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	fields := make([]*FieldInfo, count)
	for i := range fields {
		f, err := decodeFieldInfo(c, st)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return fields, nil
}
