// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// This file has no teacher or pack precedent to generalize from (see
// DESIGN.md): a PE binary has nothing resembling a verification-type-info
// frame table or a type-annotation target_info union, so the shapes below
// are built directly from JVM SE 17 §4.7.4 and §4.7.16-§4.7.22, carrying
// forward the same error-propagation and cursor idioms used everywhere
// else in the attribute decoder.

// VerificationTypeInfo is one stack-map-frame local or stack entry
// (JVM §4.7.4, Table 4.7.4-A). Tag identifies which of the 9 variants
// this is; Index/Offset are only meaningful for the Object and
// Uninitialized variants respectively.
type VerificationTypeInfo struct {
	Tag    VerificationTag
	Index  int // cpool index, Object variant only
	Offset int // new-instruction offset, Uninitialized variant only
}

// VerificationTag is the tag byte of a VerificationTypeInfo.
type VerificationTag int

const (
	VerificationTop VerificationTag = iota
	VerificationInteger
	VerificationFloat
	VerificationDouble
	VerificationLong
	VerificationNull
	VerificationUninitializedThis
	VerificationObject
	VerificationUninitialized
)

func (t VerificationTag) String() string {
	switch t {
	case VerificationTop:
		return "Top"
	case VerificationInteger:
		return "Integer"
	case VerificationFloat:
		return "Float"
	case VerificationDouble:
		return "Double"
	case VerificationLong:
		return "Long"
	case VerificationNull:
		return "Null"
	case VerificationUninitializedThis:
		return "UninitializedThis"
	case VerificationObject:
		return "Object"
	case VerificationUninitialized:
		return "Uninitialized"
	default:
		return "Unknown"
	}
}

func decodeVerificationTypeInfo(c *Cursor) (VerificationTypeInfo, error) {
	tagOffset := c.Position()
	tagByte, err := c.ReadU8()
	if err != nil {
		return VerificationTypeInfo{}, err
	}
	if tagByte > uint8(VerificationUninitialized) {
		return VerificationTypeInfo{}, errMalformedTag(tagOffset, "unrecognized verification_type_info tag")
	}
	v := VerificationTypeInfo{Tag: VerificationTag(tagByte)}
	switch v.Tag {
	case VerificationObject:
		idx, err := c.ReadU16()
		if err != nil {
			return VerificationTypeInfo{}, err
		}
		v.Index = int(idx)
	case VerificationUninitialized:
		offset, err := c.ReadU16()
		if err != nil {
			return VerificationTypeInfo{}, err
		}
		v.Offset = int(offset)
	}
	return v, nil
}

// StackMapFrame is one entry of a StackMapTable attribute. FrameType
// carries the raw frame_type byte (JVM §4.7.4); the remaining fields are
// populated according to which of the six frame shapes that byte selects.
type StackMapFrame struct {
	FrameType   int
	OffsetDelta int
	Locals      []VerificationTypeInfo // append_frame, full_frame
	Stack       []VerificationTypeInfo // same_locals_1_stack_item_frame(_extended), full_frame
}

func decodeStackMapFrame(c *Cursor) (StackMapFrame, error) {
	frameType, err := c.ReadU8()
	if err != nil {
		return StackMapFrame{}, err
	}
	ft := int(frameType)
	frame := StackMapFrame{FrameType: ft}
	switch {
	case ft <= 63: // same_frame
		frame.OffsetDelta = ft
	case ft <= 127: // same_locals_1_stack_item_frame
		frame.OffsetDelta = ft - 64
		item, err := decodeVerificationTypeInfo(c)
		if err != nil {
			return StackMapFrame{}, err
		}
		frame.Stack = []VerificationTypeInfo{item}
	case ft == 247: // same_locals_1_stack_item_frame_extended
		delta, err := c.ReadU16()
		if err != nil {
			return StackMapFrame{}, err
		}
		frame.OffsetDelta = int(delta)
		item, err := decodeVerificationTypeInfo(c)
		if err != nil {
			return StackMapFrame{}, err
		}
		frame.Stack = []VerificationTypeInfo{item}
	case ft >= 248 && ft <= 250: // chop_frame
		delta, err := c.ReadU16()
		if err != nil {
			return StackMapFrame{}, err
		}
		frame.OffsetDelta = int(delta)
	case ft == 251: // same_frame_extended
		delta, err := c.ReadU16()
		if err != nil {
			return StackMapFrame{}, err
		}
		frame.OffsetDelta = int(delta)
	case ft >= 252 && ft <= 254: // append_frame
		delta, err := c.ReadU16()
		if err != nil {
			return StackMapFrame{}, err
		}
		frame.OffsetDelta = int(delta)
		numLocals := ft - 251
		locals := make([]VerificationTypeInfo, numLocals)
		for i := range locals {
			locals[i], err = decodeVerificationTypeInfo(c)
			if err != nil {
				return StackMapFrame{}, err
			}
		}
		frame.Locals = locals
	case ft == 255: // full_frame
		delta, err := c.ReadU16()
		if err != nil {
			return StackMapFrame{}, err
		}
		frame.OffsetDelta = int(delta)
		numLocals, err := c.ReadU16()
		if err != nil {
			return StackMapFrame{}, err
		}
		locals := make([]VerificationTypeInfo, numLocals)
		for i := range locals {
			locals[i], err = decodeVerificationTypeInfo(c)
			if err != nil {
				return StackMapFrame{}, err
			}
		}
		numStack, err := c.ReadU16()
		if err != nil {
			return StackMapFrame{}, err
		}
		stack := make([]VerificationTypeInfo, numStack)
		for i := range stack {
			stack[i], err = decodeVerificationTypeInfo(c)
			if err != nil {
				return StackMapFrame{}, err
			}
		}
		frame.Locals = locals
		frame.Stack = stack
	default: // 128..246 reserved for future use
		return StackMapFrame{}, errMalformedTag(c.Position(), "reserved stack_map_frame frame_type")
	}
	return frame, nil
}

// StackMapTableAttribute records the type-checker frames a Code attribute
// carries for the split-time verifier (JVM §4.7.4).
type StackMapTableAttribute struct {
	attributeBase
	Entries []StackMapFrame
}

func decodeStackMapTableAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	entries := make([]StackMapFrame, count)
	for i := range entries {
		entries[i], err = decodeStackMapFrame(c)
		if err != nil {
			return nil, err
		}
	}
	return &StackMapTableAttribute{attributeBase: attributeBase{name: "StackMapTable"}, Entries: entries}, nil
}

// ElementValueTag is the tag byte of an annotation element_value
// (JVM §4.7.16.1, Table 4.7.16.1-A).
type ElementValueTag byte

const (
	ElementValueByte       ElementValueTag = 'B'
	ElementValueChar       ElementValueTag = 'C'
	ElementValueDouble     ElementValueTag = 'D'
	ElementValueFloat      ElementValueTag = 'F'
	ElementValueInt        ElementValueTag = 'I'
	ElementValueLong       ElementValueTag = 'J'
	ElementValueShort      ElementValueTag = 'S'
	ElementValueBoolean    ElementValueTag = 'Z'
	ElementValueString     ElementValueTag = 's'
	ElementValueEnum       ElementValueTag = 'e'
	ElementValueClass      ElementValueTag = 'c'
	ElementValueAnnotation ElementValueTag = '@'
	ElementValueArray      ElementValueTag = '['
)

// ElementValue is an annotation's element_value union (JVM §4.7.16.1).
// Exactly one of the fields is meaningful, selected by Tag: ConstValueIndex
// for the primitive/String tags, TypeNameIndex+ConstNameIndex for an enum
// constant, ClassInfoIndex for a class literal, Annotation for a nested
// annotation, Values for an array.
type ElementValue struct {
	Tag             ElementValueTag
	ConstValueIndex int
	TypeNameIndex   int
	ConstNameIndex  int
	ClassInfoIndex  int
	Annotation      *AnnotationValue
	Values          []ElementValue
}

// ElementValuePair is one (name, value) entry of an annotation's
// element_value_pairs table.
type ElementValuePair struct {
	ElementNameIndex int
	Value            ElementValue
}

// AnnotationValue is a single annotation: its type and element-value
// pairs (JVM §4.7.16). Named distinctly from the RuntimeVisibleAnnotations
// et al. Attribute wrappers, since an annotation also appears nested
// inside another annotation's element_value ('@' tag).
type AnnotationValue struct {
	TypeIndex int
	Pairs     []ElementValuePair
}

func decodeElementValue(c *Cursor) (ElementValue, error) {
	tagOffset := c.Position()
	tagByte, err := c.ReadU8()
	if err != nil {
		return ElementValue{}, err
	}
	tag := ElementValueTag(tagByte)
	switch tag {
	case ElementValueByte, ElementValueChar, ElementValueDouble, ElementValueFloat,
		ElementValueInt, ElementValueLong, ElementValueShort, ElementValueBoolean, ElementValueString:
		idx, err := c.ReadU16()
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{Tag: tag, ConstValueIndex: int(idx)}, nil
	case ElementValueEnum:
		typeIdx, constIdx, err := readTwoIndices(c)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{Tag: tag, TypeNameIndex: typeIdx, ConstNameIndex: constIdx}, nil
	case ElementValueClass:
		idx, err := c.ReadU16()
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{Tag: tag, ClassInfoIndex: int(idx)}, nil
	case ElementValueAnnotation:
		ann, err := decodeAnnotationValue(c)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{Tag: tag, Annotation: &ann}, nil
	case ElementValueArray:
		count, err := c.ReadU16()
		if err != nil {
			return ElementValue{}, err
		}
		values := make([]ElementValue, count)
		for i := range values {
			values[i], err = decodeElementValue(c)
			if err != nil {
				return ElementValue{}, err
			}
		}
		return ElementValue{Tag: tag, Values: values}, nil
	default:
		return ElementValue{}, errMalformedTag(tagOffset, "unrecognized element_value tag")
	}
}

func decodeAnnotationValue(c *Cursor) (AnnotationValue, error) {
	typeIdx, err := c.ReadU16()
	if err != nil {
		return AnnotationValue{}, err
	}
	count, err := c.ReadU16()
	if err != nil {
		return AnnotationValue{}, err
	}
	pairs := make([]ElementValuePair, count)
	for i := range pairs {
		nameIdx, err := c.ReadU16()
		if err != nil {
			return AnnotationValue{}, err
		}
		val, err := decodeElementValue(c)
		if err != nil {
			return AnnotationValue{}, err
		}
		pairs[i] = ElementValuePair{ElementNameIndex: int(nameIdx), Value: val}
	}
	return AnnotationValue{TypeIndex: int(typeIdx), Pairs: pairs}, nil
}

func decodeAnnotationsList(c *Cursor) ([]AnnotationValue, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	anns := make([]AnnotationValue, count)
	for i := range anns {
		anns[i], err = decodeAnnotationValue(c)
		if err != nil {
			return nil, err
		}
	}
	return anns, nil
}

// RuntimeVisibleAnnotationsAttribute lists annotations visible to
// reflection at runtime (JVM §4.7.16).
type RuntimeVisibleAnnotationsAttribute struct {
	attributeBase
	Annotations []AnnotationValue
}

func decodeRuntimeVisibleAnnotationsAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	anns, err := decodeAnnotationsList(c)
	if err != nil {
		return nil, err
	}
	return &RuntimeVisibleAnnotationsAttribute{attributeBase: attributeBase{name: "RuntimeVisibleAnnotations"}, Annotations: anns}, nil
}

// RuntimeInvisibleAnnotationsAttribute lists annotations present in the
// class file but not visible to reflection (JVM §4.7.17).
type RuntimeInvisibleAnnotationsAttribute struct {
	attributeBase
	Annotations []AnnotationValue
}

func decodeRuntimeInvisibleAnnotationsAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	anns, err := decodeAnnotationsList(c)
	if err != nil {
		return nil, err
	}
	return &RuntimeInvisibleAnnotationsAttribute{attributeBase: attributeBase{name: "RuntimeInvisibleAnnotations"}, Annotations: anns}, nil
}

// ParameterAnnotationEntry is one formal parameter's annotation list, as
// carried by the two RuntimeXParameterAnnotations attributes.
type ParameterAnnotationEntry struct {
	Annotations []AnnotationValue
}

func decodeParameterAnnotations(c *Cursor) ([]ParameterAnnotationEntry, error) {
	count, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	params := make([]ParameterAnnotationEntry, count)
	for i := range params {
		anns, err := decodeAnnotationsList(c)
		if err != nil {
			return nil, err
		}
		params[i] = ParameterAnnotationEntry{Annotations: anns}
	}
	return params, nil
}

// RuntimeVisibleParameterAnnotationsAttribute lists, per formal
// parameter, the annotations visible to reflection (JVM §4.7.18).
type RuntimeVisibleParameterAnnotationsAttribute struct {
	attributeBase
	ParameterAnnotations []ParameterAnnotationEntry
}

func decodeRuntimeVisibleParameterAnnotationsAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	params, err := decodeParameterAnnotations(c)
	if err != nil {
		return nil, err
	}
	return &RuntimeVisibleParameterAnnotationsAttribute{attributeBase: attributeBase{name: "RuntimeVisibleParameterAnnotations"}, ParameterAnnotations: params}, nil
}

// RuntimeInvisibleParameterAnnotationsAttribute is
// RuntimeVisibleParameterAnnotations's not-visible-to-reflection sibling
// (JVM §4.7.19).
type RuntimeInvisibleParameterAnnotationsAttribute struct {
	attributeBase
	ParameterAnnotations []ParameterAnnotationEntry
}

func decodeRuntimeInvisibleParameterAnnotationsAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	params, err := decodeParameterAnnotations(c)
	if err != nil {
		return nil, err
	}
	return &RuntimeInvisibleParameterAnnotationsAttribute{attributeBase: attributeBase{name: "RuntimeInvisibleParameterAnnotations"}, ParameterAnnotations: params}, nil
}

// TypePathEntry is one segment of a type_annotation's type_path
// (JVM §4.7.20.2).
type TypePathEntry struct {
	TypePathKind      int
	TypeArgumentIndex int
}

// TypeAnnotationTargetKind classifies which target_info shape a
// type_annotation carries (JVM §4.7.20.1, Table 4.7.20-A/C).
type TypeAnnotationTargetKind int

const (
	TargetTypeParameter TypeAnnotationTargetKind = iota
	TargetSupertype
	TargetTypeParameterBound
	TargetEmpty
	TargetFormalParameter
	TargetThrows
	TargetLocalVar
	TargetCatch
	TargetOffset
	TargetTypeArgument
)

// TypeAnnotationValue is one entry of a RuntimeXTypeAnnotations
// attribute: a type_annotation (JVM §4.7.20).
type TypeAnnotationValue struct {
	TargetType TargetType
	TargetKind TypeAnnotationTargetKind

	TypeParameterIndex   int                            // TargetTypeParameter, TargetTypeParameterBound
	SupertypeIndex       int                            // TargetSupertype
	BoundIndex           int                            // TargetTypeParameterBound
	FormalParameterIndex int                            // TargetFormalParameter
	ThrowsTypeIndex      int                            // TargetThrows
	LocalVarTable        []TypeAnnotationLocalVarEntry  // TargetLocalVar
	ExceptionTableIndex  int                            // TargetCatch
	Offset               int                            // TargetOffset, TargetTypeArgument
	TypeArgumentIndex    int                            // TargetTypeArgument

	TypePath   []TypePathEntry
	Annotation AnnotationValue
}

// TargetType is the raw target_type byte of a type_annotation
// (JVM §4.7.20, Table 4.7.20-A).
type TargetType int

// TypeAnnotationLocalVarEntry is one row of a localvar_target
// (JVM §4.7.20.1).
type TypeAnnotationLocalVarEntry struct {
	StartPC int
	Length  int
	Index   int
}

func decodeTypeAnnotationValue(c *Cursor) (TypeAnnotationValue, error) {
	targetTypeOffset := c.Position()
	targetTypeByte, err := c.ReadU8()
	if err != nil {
		return TypeAnnotationValue{}, err
	}
	tt := TargetType(targetTypeByte)
	v := TypeAnnotationValue{TargetType: tt}

	switch targetTypeByte {
	case 0x00, 0x01:
		v.TargetKind = TargetTypeParameter
		idx, err := c.ReadU8()
		if err != nil {
			return TypeAnnotationValue{}, err
		}
		v.TypeParameterIndex = int(idx)
	case 0x10:
		v.TargetKind = TargetSupertype
		idx, err := c.ReadU16()
		if err != nil {
			return TypeAnnotationValue{}, err
		}
		v.SupertypeIndex = int(idx)
	case 0x11, 0x12:
		v.TargetKind = TargetTypeParameterBound
		paramIdx, err := c.ReadU8()
		if err != nil {
			return TypeAnnotationValue{}, err
		}
		boundIdx, err := c.ReadU8()
		if err != nil {
			return TypeAnnotationValue{}, err
		}
		v.TypeParameterIndex = int(paramIdx)
		v.BoundIndex = int(boundIdx)
	case 0x13, 0x14, 0x15:
		v.TargetKind = TargetEmpty
	case 0x16:
		v.TargetKind = TargetFormalParameter
		idx, err := c.ReadU8()
		if err != nil {
			return TypeAnnotationValue{}, err
		}
		v.FormalParameterIndex = int(idx)
	case 0x17:
		v.TargetKind = TargetThrows
		idx, err := c.ReadU16()
		if err != nil {
			return TypeAnnotationValue{}, err
		}
		v.ThrowsTypeIndex = int(idx)
	case 0x40, 0x41:
		v.TargetKind = TargetLocalVar
		count, err := c.ReadU16()
		if err != nil {
			return TypeAnnotationValue{}, err
		}
		table := make([]TypeAnnotationLocalVarEntry, count)
		for i := range table {
			startPC, err := c.ReadU16()
			if err != nil {
				return TypeAnnotationValue{}, err
			}
			length, err := c.ReadU16()
			if err != nil {
				return TypeAnnotationValue{}, err
			}
			index, err := c.ReadU16()
			if err != nil {
				return TypeAnnotationValue{}, err
			}
			table[i] = TypeAnnotationLocalVarEntry{StartPC: int(startPC), Length: int(length), Index: int(index)}
		}
		v.LocalVarTable = table
	case 0x42:
		v.TargetKind = TargetCatch
		idx, err := c.ReadU16()
		if err != nil {
			return TypeAnnotationValue{}, err
		}
		v.ExceptionTableIndex = int(idx)
	case 0x43, 0x44, 0x45, 0x46:
		v.TargetKind = TargetOffset
		offset, err := c.ReadU16()
		if err != nil {
			return TypeAnnotationValue{}, err
		}
		v.Offset = int(offset)
	case 0x47, 0x48, 0x49, 0x4A, 0x4B:
		v.TargetKind = TargetTypeArgument
		offset, err := c.ReadU16()
		if err != nil {
			return TypeAnnotationValue{}, err
		}
		idx, err := c.ReadU8()
		if err != nil {
			return TypeAnnotationValue{}, err
		}
		v.Offset = int(offset)
		v.TypeArgumentIndex = int(idx)
	default:
		return TypeAnnotationValue{}, errMalformedTag(targetTypeOffset, "unrecognized type_annotation target_type")
	}

	pathLength, err := c.ReadU8()
	if err != nil {
		return TypeAnnotationValue{}, err
	}
	path := make([]TypePathEntry, pathLength)
	for i := range path {
		kind, err := c.ReadU8()
		if err != nil {
			return TypeAnnotationValue{}, err
		}
		argIdx, err := c.ReadU8()
		if err != nil {
			return TypeAnnotationValue{}, err
		}
		path[i] = TypePathEntry{TypePathKind: int(kind), TypeArgumentIndex: int(argIdx)}
	}
	v.TypePath = path

	ann, err := decodeAnnotationValue(c)
	if err != nil {
		return TypeAnnotationValue{}, err
	}
	v.Annotation = ann
	return v, nil
}

func decodeTypeAnnotationsList(c *Cursor) ([]TypeAnnotationValue, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	anns := make([]TypeAnnotationValue, count)
	for i := range anns {
		anns[i], err = decodeTypeAnnotationValue(c)
		if err != nil {
			return nil, err
		}
	}
	return anns, nil
}

// RuntimeVisibleTypeAnnotationsAttribute lists type-use annotations
// visible to reflection (JVM §4.7.20).
type RuntimeVisibleTypeAnnotationsAttribute struct {
	attributeBase
	Annotations []TypeAnnotationValue
}

func decodeRuntimeVisibleTypeAnnotationsAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	anns, err := decodeTypeAnnotationsList(c)
	if err != nil {
		return nil, err
	}
	return &RuntimeVisibleTypeAnnotationsAttribute{attributeBase: attributeBase{name: "RuntimeVisibleTypeAnnotations"}, Annotations: anns}, nil
}

// RuntimeInvisibleTypeAnnotationsAttribute is
// RuntimeVisibleTypeAnnotations's not-visible-to-reflection sibling
// (JVM §4.7.21).
type RuntimeInvisibleTypeAnnotationsAttribute struct {
	attributeBase
	Annotations []TypeAnnotationValue
}

func decodeRuntimeInvisibleTypeAnnotationsAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	anns, err := decodeTypeAnnotationsList(c)
	if err != nil {
		return nil, err
	}
	return &RuntimeInvisibleTypeAnnotationsAttribute{attributeBase: attributeBase{name: "RuntimeInvisibleTypeAnnotations"}, Annotations: anns}, nil
}

// AnnotationDefaultAttribute carries an annotation interface method's
// default value (JVM §4.7.22).
type AnnotationDefaultAttribute struct {
	attributeBase
	DefaultValue ElementValue
}

func decodeAnnotationDefaultAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	val, err := decodeElementValue(c)
	if err != nil {
		return nil, err
	}
	return &AnnotationDefaultAttribute{attributeBase: attributeBase{name: "AnnotationDefault"}, DefaultValue: val}, nil
}
