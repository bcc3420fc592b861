// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// ConstantValueAttribute gives a static field its compile-time constant
// value, by pool index.
type ConstantValueAttribute struct {
	attributeBase
	ConstantValueIndex int
}

func decodeConstantValueAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	idx, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	return &ConstantValueAttribute{attributeBase: attributeBase{name: "ConstantValue"}, ConstantValueIndex: int(idx)}, nil
}

// InnerClassEntry is one row of an InnerClasses attribute.
type InnerClassEntry struct {
	InnerClassInfoIndex int
	OuterClassInfoIndex int
	InnerNameIndex      int
	InnerClassAccess    []NestedClassFlag
}

// InnerClassesAttribute records the nested/inner classes known to a
// class or interface.
type InnerClassesAttribute struct {
	attributeBase
	Classes []InnerClassEntry
}

func decodeInnerClassesAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	entries := make([]InnerClassEntry, count)
	for i := range entries {
		innerIdx, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		outerIdx, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		nameIdx, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		flags, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		entries[i] = InnerClassEntry{
			InnerClassInfoIndex: int(innerIdx),
			OuterClassInfoIndex: int(outerIdx),
			InnerNameIndex:      int(nameIdx),
			InnerClassAccess:    DecodeNestedClassFlags(flags),
		}
	}
	return &InnerClassesAttribute{attributeBase: attributeBase{name: "InnerClasses"}, Classes: entries}, nil
}

// EnclosingMethodAttribute identifies the innermost enclosing class and,
// if any, method of a local or anonymous class.
type EnclosingMethodAttribute struct {
	attributeBase
	ClassIndex  int
	MethodIndex int
}

func decodeEnclosingMethodAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	classIdx, methodIdx, err := readTwoIndices(c)
	if err != nil {
		return nil, err
	}
	return &EnclosingMethodAttribute{attributeBase: attributeBase{name: "EnclosingMethod"}, ClassIndex: classIdx, MethodIndex: methodIdx}, nil
}

// SyntheticAttribute marks a member as compiler-generated with no source
// correspondence. Its payload is empty.
type SyntheticAttribute struct{ attributeBase }

func decodeSyntheticAttribute(_ *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	return &SyntheticAttribute{attributeBase{name: "Synthetic"}}, nil
}

// DeprecatedAttribute marks a member as deprecated. Its payload is empty.
type DeprecatedAttribute struct{ attributeBase }

func decodeDeprecatedAttribute(_ *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	return &DeprecatedAttribute{attributeBase{name: "Deprecated"}}, nil
}

// SignatureAttribute carries a generic-aware signature string for a
// class, field, or method, distinct from its erased descriptor.
type SignatureAttribute struct {
	attributeBase
	SignatureIndex int
}

func decodeSignatureAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	idx, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	return &SignatureAttribute{attributeBase: attributeBase{name: "Signature"}, SignatureIndex: int(idx)}, nil
}

// SourceFileAttribute names the source file a class was compiled from.
type SourceFileAttribute struct {
	attributeBase
	SourceFileIndex int
}

func decodeSourceFileAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	idx, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	return &SourceFileAttribute{attributeBase: attributeBase{name: "SourceFile"}, SourceFileIndex: int(idx)}, nil
}

// SourceDebugExtensionAttribute carries implementation-defined debug
// information, preserved verbatim as modified-UTF-8 bytes rather than
// decoded to a string (spec §4.5: it is not length-prefixed the way a
// Utf8 constant is, so there is no reliable char count to decode against).
type SourceDebugExtensionAttribute struct {
	attributeBase
	DebugExtension []byte
}

func decodeSourceDebugExtensionAttribute(c *Cursor, _ *decodeState, length uint32) (Attribute, error) {
	raw, err := c.Take(int(length))
	if err != nil {
		return nil, err
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return &SourceDebugExtensionAttribute{attributeBase: attributeBase{name: "SourceDebugExtension"}, DebugExtension: cp}, nil
}

// BootstrapMethodEntry is one row of a BootstrapMethods attribute.
type BootstrapMethodEntry struct {
	BootstrapMethodRef int
	Arguments          []int
}

// BootstrapMethodsAttribute records the recipes used to resolve Dynamic
// and InvokeDynamic constants (spec §4.5, glossary).
type BootstrapMethodsAttribute struct {
	attributeBase
	Methods []BootstrapMethodEntry
}

func decodeBootstrapMethodsAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	methods := make([]BootstrapMethodEntry, count)
	for i := range methods {
		ref, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		numArgs, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		args, err := readU16Indices(c, int(numArgs))
		if err != nil {
			return nil, err
		}
		methods[i] = BootstrapMethodEntry{BootstrapMethodRef: int(ref), Arguments: args}
	}
	return &BootstrapMethodsAttribute{attributeBase: attributeBase{name: "BootstrapMethods"}, Methods: methods}, nil
}

// MethodParameterEntry is one row of a MethodParameters attribute.
type MethodParameterEntry struct {
	NameIndex   int
	AccessFlags []MethodParameterFlag
}

// MethodParametersAttribute records formal parameter metadata. Its count
// field is a single byte per the JVM specification (spec §9 open
// question — resolved to u8, not u16; see SPEC_FULL.md §4.1).
type MethodParametersAttribute struct {
	attributeBase
	Parameters []MethodParameterEntry
}

func decodeMethodParametersAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	count, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	params := make([]MethodParameterEntry, count)
	for i := range params {
		nameIdx, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		flags, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		params[i] = MethodParameterEntry{NameIndex: int(nameIdx), AccessFlags: DecodeMethodParameterFlags(flags)}
	}
	return &MethodParametersAttribute{attributeBase: attributeBase{name: "MethodParameters"}, Parameters: params}, nil
}

// NestHostAttribute names the nest host of a class that belongs to a nest
// it does not host itself.
type NestHostAttribute struct {
	attributeBase
	HostClassIndex int
}

func decodeNestHostAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	idx, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	return &NestHostAttribute{attributeBase: attributeBase{name: "NestHost"}, HostClassIndex: int(idx)}, nil
}

// NestMembersAttribute lists the classes and interfaces a nest host
// permits as members.
type NestMembersAttribute struct {
	attributeBase
	Classes []int
}

func decodeNestMembersAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	indices, err := readU16Indices(c, int(count))
	if err != nil {
		return nil, err
	}
	return &NestMembersAttribute{attributeBase: attributeBase{name: "NestMembers"}, Classes: indices}, nil
}

// PermittedSubclassesAttribute lists the classes and interfaces
// authorized to directly extend or implement a sealed class (spec §4.5).
type PermittedSubclassesAttribute struct {
	attributeBase
	Classes []int
}

func decodePermittedSubclassesAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	indices, err := readU16Indices(c, int(count))
	if err != nil {
		return nil, err
	}
	return &PermittedSubclassesAttribute{attributeBase: attributeBase{name: "PermittedSubclasses"}, Classes: indices}, nil
}

// RecordComponentEntry is one component of a Record attribute: a name,
// descriptor, and its own nested attribute sequence (for Signature and
// the annotation-family attributes attached to the component).
type RecordComponentEntry struct {
	NameIndex       int
	DescriptorIndex int
	Attributes      []Attribute
}

// RecordAttribute lists the components of a record class. It is the
// second of the two recursive attribute variants (spec §3, §4.5): each
// component owns its own attribute sequence, decoded through the same
// dispatch table as every other scope.
type RecordAttribute struct {
	attributeBase
	Components []RecordComponentEntry
}

func decodeRecordAttribute(c *Cursor, st *decodeState, _ uint32) (Attribute, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	components := make([]RecordComponentEntry, count)
	for i := range components {
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
		components[i] = RecordComponentEntry{
			NameIndex:       int(nameIdx),
			DescriptorIndex: int(descIdx),
			Attributes:      attrs,
		}
	}
	return &RecordAttribute{attributeBase: attributeBase{name: "Record"}, Components: components}, nil
}
