// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// Attribute is the tagged-union interface implemented by every attribute
// variant. Name returns the exact JVM attribute-name string the variant
// was dispatched on (spec §6), so a caller doesn't need a type switch
// just to print which kind of attribute it's holding.
type Attribute interface {
	Name() string
}

type attributeBase struct {
	name string
}

func (a attributeBase) Name() string { return a.name }

// attributeDecoder decodes one attribute's payload, given the already-
// resolved name and the attribute_length the caller will check the
// consumed byte count against. st is threaded through because the
// recursive variants (Code, Record) need the pool and the length cap to
// dispatch their nested attributes; the other variants ignore it.
type attributeDecoder func(c *Cursor, st *decodeState, length uint32) (Attribute, error)

// attributeDecoders is the name-dispatch table (spec §4.5), the same
// shape as the teacher's map[ImageDirectoryEntry]func(...)error dispatch
// over data directories, keyed by attribute name instead of a directory
// index.
var attributeDecoders = map[string]attributeDecoder{
	"ConstantValue":                        decodeConstantValueAttribute,
	"Code":                                 decodeCodeAttribute,
	"StackMapTable":                        decodeStackMapTableAttribute,
	"Exceptions":                           decodeExceptionsAttribute,
	"InnerClasses":                         decodeInnerClassesAttribute,
	"EnclosingMethod":                      decodeEnclosingMethodAttribute,
	"Synthetic":                            decodeSyntheticAttribute,
	"Signature":                            decodeSignatureAttribute,
	"SourceFile":                           decodeSourceFileAttribute,
	"SourceDebugExtension":                 decodeSourceDebugExtensionAttribute,
	"LineNumberTable":                      decodeLineNumberTableAttribute,
	"LocalVariableTable":                   decodeLocalVariableTableAttribute,
	"LocalVariableTypeTable":               decodeLocalVariableTypeTableAttribute,
	"Deprecated":                           decodeDeprecatedAttribute,
	"RuntimeVisibleAnnotations":            decodeRuntimeVisibleAnnotationsAttribute,
	"RuntimeInvisibleAnnotations":          decodeRuntimeInvisibleAnnotationsAttribute,
	"RuntimeVisibleParameterAnnotations":   decodeRuntimeVisibleParameterAnnotationsAttribute,
	"RuntimeInvisibleParameterAnnotations": decodeRuntimeInvisibleParameterAnnotationsAttribute,
	"RuntimeVisibleTypeAnnotations":        decodeRuntimeVisibleTypeAnnotationsAttribute,
	"RuntimeInvisibleTypeAnnotations":      decodeRuntimeInvisibleTypeAnnotationsAttribute,
	"AnnotationDefault":                    decodeAnnotationDefaultAttribute,
	"BootstrapMethods":                     decodeBootstrapMethodsAttribute,
	"MethodParameters":                     decodeMethodParametersAttribute,
	"Module":                               decodeModuleAttribute,
	"ModulePackages":                       decodeModulePackagesAttribute,
	"ModuleMainClass":                      decodeModuleMainClassAttribute,
	"NestHost":                             decodeNestHostAttribute,
	"NestMembers":                          decodeNestMembersAttribute,
	"Record":                               decodeRecordAttribute,
	"PermittedSubclasses":                  decodePermittedSubclassesAttribute,
}

// decodeAttribute reads one attribute_name_index/attribute_length/payload
// triple (spec §4.5) and dispatches by the resolved name, then checks
// that the bytes the variant consumed equal attribute_length
// (LengthMismatch otherwise). attribute_length is also checked against st's
// configured cap before the payload is decoded, so a hostile length can't
// make a variant allocate or loop on the strength of the length field
// alone (SPEC_FULL.md §1 Configuration; mirrors MaxConstantPoolEntries'
// enforcement in Parse).
func decodeAttribute(c *Cursor, st *decodeState) (Attribute, error) {
	nameOffset := c.Position()
	nameIndex, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	lengthOffset := c.Position()
	length, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	if length > uint32(st.maxAttributeLength) {
		return nil, errUnexpectedEOF(lengthOffset, "attribute_length exceeds configured limit")
	}
	name, ok := st.pool.Utf8String(int(nameIndex))
	if !ok {
		return nil, errBadAttributeName(nameOffset, "attribute_name_index does not resolve to a Utf8 constant")
	}
	decode, ok := attributeDecoders[name]
	if !ok {
		return nil, errUnknownAttribute(nameOffset, name)
	}
	payloadStart := c.Position()
	attr, err := decode(c, st, length)
	if err != nil {
		return nil, err
	}
	consumed := uint32(c.Position() - payloadStart)
	if consumed != length {
		return nil, errLengthMismatch(payloadStart, name, length, consumed)
	}
	return attr, nil
}

// decodeAttributes reads a u16 attributes_count followed by that many
// attributes — the recurring shape used at class, field, method, Code,
// and Record scope (spec §4.5, §4.6, §4.7).
func decodeAttributes(c *Cursor, st *decodeState) ([]Attribute, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	attrs := make([]Attribute, 0, count)
	for i := uint16(0); i < count; i++ {
		a, err := decodeAttribute(c, st)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}

func readU16Indices(c *Cursor, count int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		out[i] = int(v)
	}
	return out, nil
}
