// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// This file is the package's public read-only query surface (spec §6):
// accessors a rendering collaborator (out of scope here, see doc.go)
// consumes to walk the decoded model without reaching into attribute
// slices and type-switching by hand.

// ThisClassName resolves the class's own binary name.
func (cf *ClassFile) ThisClassName() (string, bool) {
	return cf.Pool.ClassName(cf.ThisClass.Index())
}

// SuperClassName resolves the superclass's binary name. It returns
// ("", false) for java.lang.Object-less classes (the super_class index
// was 0, the only legal case for the Object class itself).
func (cf *ClassFile) SuperClassName() (string, bool) {
	if cf.SuperClass == nil {
		return "", false
	}
	return cf.Pool.ClassName(cf.SuperClass.Index())
}

// InterfaceNames resolves every implemented interface's binary name, in
// file order.
func (cf *ClassFile) InterfaceNames() []string {
	names := make([]string, 0, len(cf.Interfaces))
	for _, iface := range cf.Interfaces {
		if name, ok := cf.Pool.ClassName(iface.Index()); ok {
			names = append(names, name)
		}
	}
	return names
}

// SourceFile returns the class's SourceFile attribute, if present.
func (cf *ClassFile) SourceFile() (*SourceFileAttribute, bool) {
	for _, a := range cf.Attributes {
		if sf, ok := a.(*SourceFileAttribute); ok {
			return sf, true
		}
	}
	return nil, false
}

// Signature returns the class's generic Signature attribute, if present.
func (cf *ClassFile) Signature() (*SignatureAttribute, bool) {
	for _, a := range cf.Attributes {
		if sig, ok := a.(*SignatureAttribute); ok {
			return sig, true
		}
	}
	return nil, false
}

// Deprecated reports whether the class carries a Deprecated attribute.
func (cf *ClassFile) Deprecated() bool {
	for _, a := range cf.Attributes {
		if _, ok := a.(*DeprecatedAttribute); ok {
			return true
		}
	}
	return false
}

// InnerClasses returns the class's InnerClasses attribute, if present.
func (cf *ClassFile) InnerClasses() (*InnerClassesAttribute, bool) {
	for _, a := range cf.Attributes {
		if ic, ok := a.(*InnerClassesAttribute); ok {
			return ic, true
		}
	}
	return nil, false
}

// EnclosingMethod returns the class's EnclosingMethod attribute, if
// present (only local and anonymous classes carry one).
func (cf *ClassFile) EnclosingMethod() (*EnclosingMethodAttribute, bool) {
	for _, a := range cf.Attributes {
		if em, ok := a.(*EnclosingMethodAttribute); ok {
			return em, true
		}
	}
	return nil, false
}

// BootstrapMethods returns the class's BootstrapMethods attribute, if
// present (required whenever the pool holds a Dynamic or InvokeDynamic
// constant).
func (cf *ClassFile) BootstrapMethods() (*BootstrapMethodsAttribute, bool) {
	for _, a := range cf.Attributes {
		if bm, ok := a.(*BootstrapMethodsAttribute); ok {
			return bm, true
		}
	}
	return nil, false
}

// NestHost returns the class's NestHost attribute, if present.
func (cf *ClassFile) NestHost() (*NestHostAttribute, bool) {
	for _, a := range cf.Attributes {
		if nh, ok := a.(*NestHostAttribute); ok {
			return nh, true
		}
	}
	return nil, false
}

// NestMembers returns the class's NestMembers attribute, if present.
func (cf *ClassFile) NestMembers() (*NestMembersAttribute, bool) {
	for _, a := range cf.Attributes {
		if nm, ok := a.(*NestMembersAttribute); ok {
			return nm, true
		}
	}
	return nil, false
}

// PermittedSubclasses returns the class's PermittedSubclasses attribute,
// if present (only sealed classes/interfaces carry one).
func (cf *ClassFile) PermittedSubclasses() (*PermittedSubclassesAttribute, bool) {
	for _, a := range cf.Attributes {
		if ps, ok := a.(*PermittedSubclassesAttribute); ok {
			return ps, true
		}
	}
	return nil, false
}

// Record returns the class's Record attribute, if present (only record
// classes carry one).
func (cf *ClassFile) Record() (*RecordAttribute, bool) {
	for _, a := range cf.Attributes {
		if r, ok := a.(*RecordAttribute); ok {
			return r, true
		}
	}
	return nil, false
}

// Module returns the class's Module attribute, if present (only
// module-info.class carries one).
func (cf *ClassFile) Module() (*ModuleAttribute, bool) {
	for _, a := range cf.Attributes {
		if mod, ok := a.(*ModuleAttribute); ok {
			return mod, true
		}
	}
	return nil, false
}

// RuntimeVisibleAnnotations returns the class's RuntimeVisibleAnnotations
// attribute, if present.
func (cf *ClassFile) RuntimeVisibleAnnotations() (*RuntimeVisibleAnnotationsAttribute, bool) {
	for _, a := range cf.Attributes {
		if rva, ok := a.(*RuntimeVisibleAnnotationsAttribute); ok {
			return rva, true
		}
	}
	return nil, false
}
