// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// MethodInfo is one entry of a class's methods table: its access flags,
// name and descriptor (resolved through the constant pool), and
// attribute list, which for a non-abstract, non-native method carries
// its Code attribute (spec §3, §4.6).
type MethodInfo struct {
	AccessFlags     []MethodFlag
	NameIndex       int
	DescriptorIndex int
	Attributes      []Attribute
}

// Name resolves the method's name_index to its Utf8 string.
func (m *MethodInfo) Name(pool *ConstantPool) (string, bool) {
	return pool.Utf8String(m.NameIndex)
}

// Descriptor resolves the method's descriptor_index to its Utf8 string.
func (m *MethodInfo) Descriptor(pool *ConstantPool) (string, bool) {
	return pool.Utf8String(m.DescriptorIndex)
}

// Code returns the method's Code attribute, if present (absent for
// abstract and native methods).
func (m *MethodInfo) Code() (*CodeAttribute, bool) {
	for _, a := range m.Attributes {
		if code, ok := a.(*CodeAttribute); ok {
			return code, true
		}
	}
	return nil, false
}

// Exceptions returns the method's Exceptions attribute, if present.
func (m *MethodInfo) Exceptions() (*ExceptionsAttribute, bool) {
	for _, a := range m.Attributes {
		if exc, ok := a.(*ExceptionsAttribute); ok {
			return exc, true
		}
	}
	return nil, false
}

// Parameters returns the method's MethodParameters attribute, if present.
func (m *MethodInfo) Parameters() (*MethodParametersAttribute, bool) {
	for _, a := range m.Attributes {
		if p, ok := a.(*MethodParametersAttribute); ok {
			return p, true
		}
	}
	return nil, false
}

// Signature returns the method's generic Signature attribute, if present.
func (m *MethodInfo) Signature() (*SignatureAttribute, bool) {
	for _, a := range m.Attributes {
		if sig, ok := a.(*SignatureAttribute); ok {
			return sig, true
		}
	}
	return nil, false
}

func decodeMethodInfo(c *Cursor, st *decodeState) (*MethodInfo, error) {
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
	return &MethodInfo{
		AccessFlags:     DecodeMethodFlags(flags),
		NameIndex:       int(nameIdx),
		DescriptorIndex: int(descIdx),
		Attributes:      attrs,
	}, nil
}

func decodeMethods(c *Cursor, st *decodeState) ([]*MethodInfo, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	methods := make([]*MethodInfo, count)
	for i := range methods {
		m, err := decodeMethodInfo(c, st)
		if err != nil {
			return nil, err
		}
		methods[i] = m
	}
	return methods, nil
}
