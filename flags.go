// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// Each flag domain is a distinct named integer type so a ClassFlag can
// never be mistaken for a MethodFlag at compile time, even though both
// are decoded from the same kind of 16-bit mask.

// ClassFlag is one bit of the class access_flags domain.
type ClassFlag int

const (
	AccPublic ClassFlag = iota
	AccFinalClass
	AccSuper
	AccInterface
	AccAbstractClass
	AccSyntheticClass
	AccAnnotationClass
	AccEnum
	AccModuleClass
)

func (f ClassFlag) String() string {
	switch f {
	case AccPublic:
		return "Public"
	case AccFinalClass:
		return "Final"
	case AccSuper:
		return "Super"
	case AccInterface:
		return "Interface"
	case AccAbstractClass:
		return "Abstract"
	case AccSyntheticClass:
		return "Synthetic"
	case AccAnnotationClass:
		return "Annotation"
	case AccEnum:
		return "Enum"
	case AccModuleClass:
		return "Module"
	default:
		return "Unknown"
	}
}

type classFlagBit struct {
	mask uint16
	flag ClassFlag
}

// classFlagTable is in ascending bit-value order; DecodeClassFlags walks
// it in this order so the result preserves that order (spec §4.3).
var classFlagTable = []classFlagBit{
	{0x0001, AccPublic},
	{0x0010, AccFinalClass},
	{0x0020, AccSuper},
	{0x0200, AccInterface},
	{0x0400, AccAbstractClass},
	{0x1000, AccSyntheticClass},
	{0x2000, AccAnnotationClass},
	{0x4000, AccEnum},
	{0x8000, AccModuleClass},
}

// DecodeClassFlags turns a class access_flags mask into the ordered list
// of recognized flags it sets. Unrecognized bits are silently skipped; an
// all-zero mask yields an empty, non-nil slice.
func DecodeClassFlags(mask uint16) []ClassFlag {
	out := make([]ClassFlag, 0, len(classFlagTable))
	for _, b := range classFlagTable {
		if mask&b.mask != 0 {
			out = append(out, b.flag)
		}
	}
	return out
}

// FieldFlag is one bit of the field access_flags domain.
type FieldFlag int

const (
	AccPublicField FieldFlag = iota
	AccPrivateField
	AccProtectedField
	AccStaticField
	AccFinalField
	AccVolatile
	AccTransient
	AccSyntheticField
	AccEnumField
)

func (f FieldFlag) String() string {
	switch f {
	case AccPublicField:
		return "Public"
	case AccPrivateField:
		return "Private"
	case AccProtectedField:
		return "Protected"
	case AccStaticField:
		return "Static"
	case AccFinalField:
		return "Final"
	case AccVolatile:
		return "Volatile"
	case AccTransient:
		return "Transient"
	case AccSyntheticField:
		return "Synthetic"
	case AccEnumField:
		return "Enum"
	default:
		return "Unknown"
	}
}

type fieldFlagBit struct {
	mask uint16
	flag FieldFlag
}

var fieldFlagTable = []fieldFlagBit{
	{0x0001, AccPublicField},
	{0x0002, AccPrivateField},
	{0x0004, AccProtectedField},
	{0x0008, AccStaticField},
	{0x0010, AccFinalField},
	{0x0040, AccVolatile},
	{0x0080, AccTransient},
	{0x1000, AccSyntheticField},
	{0x4000, AccEnumField},
}

// DecodeFieldFlags turns a field access_flags mask into its ordered set.
func DecodeFieldFlags(mask uint16) []FieldFlag {
	out := make([]FieldFlag, 0, len(fieldFlagTable))
	for _, b := range fieldFlagTable {
		if mask&b.mask != 0 {
			out = append(out, b.flag)
		}
	}
	return out
}

// MethodFlag is one bit of the method access_flags domain.
type MethodFlag int

const (
	AccPublicMethod MethodFlag = iota
	AccPrivateMethod
	AccProtectedMethod
	AccStaticMethod
	AccFinalMethod
	AccSynchronized
	AccBridge
	AccVarArgs
	AccNative
	AccAbstractMethod
	AccStrict
	AccSyntheticMethod
)

func (f MethodFlag) String() string {
	switch f {
	case AccPublicMethod:
		return "Public"
	case AccPrivateMethod:
		return "Private"
	case AccProtectedMethod:
		return "Protected"
	case AccStaticMethod:
		return "Static"
	case AccFinalMethod:
		return "Final"
	case AccSynchronized:
		return "Synchronized"
	case AccBridge:
		return "Bridge"
	case AccVarArgs:
		return "VarArgs"
	case AccNative:
		return "Native"
	case AccAbstractMethod:
		return "Abstract"
	case AccStrict:
		return "Strict"
	case AccSyntheticMethod:
		return "Synthetic"
	default:
		return "Unknown"
	}
}

type methodFlagBit struct {
	mask uint16
	flag MethodFlag
}

var methodFlagTable = []methodFlagBit{
	{0x0001, AccPublicMethod},
	{0x0002, AccPrivateMethod},
	{0x0004, AccProtectedMethod},
	{0x0008, AccStaticMethod},
	{0x0010, AccFinalMethod},
	{0x0020, AccSynchronized},
	{0x0040, AccBridge},
	{0x0080, AccVarArgs},
	{0x0100, AccNative},
	{0x0400, AccAbstractMethod},
	{0x0800, AccStrict},
	{0x1000, AccSyntheticMethod},
}

// DecodeMethodFlags turns a method access_flags mask into its ordered set.
func DecodeMethodFlags(mask uint16) []MethodFlag {
	out := make([]MethodFlag, 0, len(methodFlagTable))
	for _, b := range methodFlagTable {
		if mask&b.mask != 0 {
			out = append(out, b.flag)
		}
	}
	return out
}

// NestedClassFlag is one bit of the InnerClasses inner_class_access_flags
// domain.
type NestedClassFlag int

const (
	AccPublicNested NestedClassFlag = iota
	AccPrivateNested
	AccProtectedNested
	AccStaticNested
	AccFinalNested
	AccInterfaceNested
	AccAbstractNested
	AccSyntheticNested
	AccAnnotationNested
	AccEnumNested
)

func (f NestedClassFlag) String() string {
	switch f {
	case AccPublicNested:
		return "Public"
	case AccPrivateNested:
		return "Private"
	case AccProtectedNested:
		return "Protected"
	case AccStaticNested:
		return "Static"
	case AccFinalNested:
		return "Final"
	case AccInterfaceNested:
		return "Interface"
	case AccAbstractNested:
		return "Abstract"
	case AccSyntheticNested:
		return "Synthetic"
	case AccAnnotationNested:
		return "Annotation"
	case AccEnumNested:
		return "Enum"
	default:
		return "Unknown"
	}
}

type nestedClassFlagBit struct {
	mask uint16
	flag NestedClassFlag
}

var nestedClassFlagTable = []nestedClassFlagBit{
	{0x0001, AccPublicNested},
	{0x0002, AccPrivateNested},
	{0x0004, AccProtectedNested},
	{0x0008, AccStaticNested},
	{0x0010, AccFinalNested},
	{0x0200, AccInterfaceNested},
	{0x0400, AccAbstractNested},
	{0x1000, AccSyntheticNested},
	{0x2000, AccAnnotationNested},
	{0x4000, AccEnumNested},
}

// DecodeNestedClassFlags turns an InnerClasses entry's
// inner_class_access_flags mask into its ordered set.
func DecodeNestedClassFlags(mask uint16) []NestedClassFlag {
	out := make([]NestedClassFlag, 0, len(nestedClassFlagTable))
	for _, b := range nestedClassFlagTable {
		if mask&b.mask != 0 {
			out = append(out, b.flag)
		}
	}
	return out
}

// MethodParameterFlag is one bit of the MethodParameters access_flags
// domain.
type MethodParameterFlag int

const (
	AccFinalParam MethodParameterFlag = iota
	AccSyntheticParam
	AccMandatedParam
)

func (f MethodParameterFlag) String() string {
	switch f {
	case AccFinalParam:
		return "Final"
	case AccSyntheticParam:
		return "Synthetic"
	case AccMandatedParam:
		return "Mandated"
	default:
		return "Unknown"
	}
}

type methodParameterFlagBit struct {
	mask uint16
	flag MethodParameterFlag
}

var methodParameterFlagTable = []methodParameterFlagBit{
	{0x0010, AccFinalParam},
	{0x1000, AccSyntheticParam},
	{0x8000, AccMandatedParam},
}

// DecodeMethodParameterFlags turns a MethodParameters entry's access_flags
// mask into its ordered set.
func DecodeMethodParameterFlags(mask uint16) []MethodParameterFlag {
	out := make([]MethodParameterFlag, 0, len(methodParameterFlagTable))
	for _, b := range methodParameterFlagTable {
		if mask&b.mask != 0 {
			out = append(out, b.flag)
		}
	}
	return out
}

// ModuleFlag is one bit of the Module attribute's module_flags domain.
type ModuleFlag int

const (
	AccOpenModule ModuleFlag = iota
	AccSyntheticModule
	AccMandatedModule
)

func (f ModuleFlag) String() string {
	switch f {
	case AccOpenModule:
		return "Open"
	case AccSyntheticModule:
		return "Synthetic"
	case AccMandatedModule:
		return "Mandated"
	default:
		return "Unknown"
	}
}

type moduleFlagBit struct {
	mask uint16
	flag ModuleFlag
}

var moduleFlagTable = []moduleFlagBit{
	{0x0020, AccOpenModule},
	{0x1000, AccSyntheticModule},
	{0x8000, AccMandatedModule},
}

// DecodeModuleFlags turns a Module attribute's module_flags mask into its
// ordered set.
func DecodeModuleFlags(mask uint16) []ModuleFlag {
	out := make([]ModuleFlag, 0, len(moduleFlagTable))
	for _, b := range moduleFlagTable {
		if mask&b.mask != 0 {
			out = append(out, b.flag)
		}
	}
	return out
}

// ModuleRequiresFlag is one bit of a Module requires-entry's
// requires_flags domain.
type ModuleRequiresFlag int

const (
	AccTransitive ModuleRequiresFlag = iota
	AccStaticPhase
	AccSyntheticRequires
	AccMandatedRequires
)

func (f ModuleRequiresFlag) String() string {
	switch f {
	case AccTransitive:
		return "Transitive"
	case AccStaticPhase:
		return "StaticPhase"
	case AccSyntheticRequires:
		return "Synthetic"
	case AccMandatedRequires:
		return "Mandated"
	default:
		return "Unknown"
	}
}

type moduleRequiresFlagBit struct {
	mask uint16
	flag ModuleRequiresFlag
}

var moduleRequiresFlagTable = []moduleRequiresFlagBit{
	{0x0020, AccTransitive},
	{0x0040, AccStaticPhase},
	{0x1000, AccSyntheticRequires},
	{0x8000, AccMandatedRequires},
}

// DecodeModuleRequiresFlags turns a requires-entry's requires_flags mask
// into its ordered set.
func DecodeModuleRequiresFlags(mask uint16) []ModuleRequiresFlag {
	out := make([]ModuleRequiresFlag, 0, len(moduleRequiresFlagTable))
	for _, b := range moduleRequiresFlagTable {
		if mask&b.mask != 0 {
			out = append(out, b.flag)
		}
	}
	return out
}

// ModuleExportsFlag is one bit shared by exports_flags and opens_flags
// (spec §4.3 gives ModuleExports and ModuleOpens the identical table).
type ModuleExportsFlag int

const (
	AccSyntheticExports ModuleExportsFlag = iota
	AccMandatedExports
)

func (f ModuleExportsFlag) String() string {
	switch f {
	case AccSyntheticExports:
		return "Synthetic"
	case AccMandatedExports:
		return "Mandated"
	default:
		return "Unknown"
	}
}

type moduleExportsFlagBit struct {
	mask uint16
	flag ModuleExportsFlag
}

var moduleExportsFlagTable = []moduleExportsFlagBit{
	{0x1000, AccSyntheticExports},
	{0x8000, AccMandatedExports},
}

// DecodeModuleExportsFlags turns an exports-entry's exports_flags mask
// into its ordered set.
func DecodeModuleExportsFlags(mask uint16) []ModuleExportsFlag {
	return decodeModuleExportsLikeFlags(mask)
}

// DecodeModuleOpensFlags turns an opens-entry's opens_flags mask into its
// ordered set. ModuleOpens shares ModuleExports's table exactly, so this
// is the same decode under a name that matches the JVM attribute's field.
func DecodeModuleOpensFlags(mask uint16) []ModuleExportsFlag {
	return decodeModuleExportsLikeFlags(mask)
}

func decodeModuleExportsLikeFlags(mask uint16) []ModuleExportsFlag {
	out := make([]ModuleExportsFlag, 0, len(moduleExportsFlagTable))
	for _, b := range moduleExportsFlagTable {
		if mask&b.mask != 0 {
			out = append(out, b.flag)
		}
	}
	return out
}
