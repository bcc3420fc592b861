// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import "testing"

func TestDecodeModuleAttributeFullTable(t *testing.T) {
	pool := buildPoolWithAttributeNames(t, "Module")

	payload := newByteBuilder()
	payload.u16(10)     // module_name_index
	payload.u16(0x0020) // module_flags: ACC_OPEN
	payload.u16(0)      // module_version_index: none

	payload.u16(1)      // requires_count
	payload.u16(11)     // requires_index
	payload.u16(0x8000) // requires_flags: ACC_MANDATED
	payload.u16(0)      // requires_version_index

	payload.u16(1)  // exports_count
	payload.u16(12) // exports_index
	payload.u16(0)  // exports_flags
	payload.u16(1)  // exports_to_count
	payload.u16(13) // exports_to_index[0]

	payload.u16(0) // opens_count
	payload.u16(0) // uses_count

	payload.u16(1)  // provides_count
	payload.u16(14) // provides_index
	payload.u16(1)  // provides_with_count
	payload.u16(15) // provides_with_index[0]

	b := newByteBuilder().u16(1).u32(uint32(len(payload.bytesOut()))).bytes(payload.bytesOut()...)

	attr, err := decodeAttribute(NewCursor(b.bytesOut()), testState(pool))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mod, ok := attr.(*ModuleAttribute)
	if !ok {
		t.Fatalf("got %T, want *ModuleAttribute", attr)
	}
	if mod.ModuleNameIndex != 10 {
		t.Fatalf("module_name_index = %d, want 10", mod.ModuleNameIndex)
	}
	if len(mod.ModuleFlags) != 1 || mod.ModuleFlags[0] != AccOpenModule {
		t.Fatalf("module_flags = %v, want [AccOpenModule]", mod.ModuleFlags)
	}
	if len(mod.Requires) != 1 || mod.Requires[0].RequiresIndex != 11 {
		t.Fatalf("requires = %+v", mod.Requires)
	}
	if len(mod.Requires[0].RequiresFlags) != 1 || mod.Requires[0].RequiresFlags[0] != AccMandatedRequires {
		t.Fatalf("requires_flags = %v", mod.Requires[0].RequiresFlags)
	}
	if len(mod.Exports) != 1 || mod.Exports[0].ExportsIndex != 12 {
		t.Fatalf("exports = %+v", mod.Exports)
	}
	if len(mod.Exports[0].ExportsTo) != 1 || mod.Exports[0].ExportsTo[0] != 13 {
		t.Fatalf("exports_to = %v", mod.Exports[0].ExportsTo)
	}
	if len(mod.Opens) != 0 {
		t.Fatalf("opens = %+v, want empty", mod.Opens)
	}
	if len(mod.Uses) != 0 {
		t.Fatalf("uses = %v, want empty", mod.Uses)
	}
	if len(mod.Provides) != 1 || mod.Provides[0].ProvidesIndex != 14 {
		t.Fatalf("provides = %+v", mod.Provides)
	}
	if len(mod.Provides[0].ProvidesWith) != 1 || mod.Provides[0].ProvidesWith[0] != 15 {
		t.Fatalf("provides_with = %v", mod.Provides[0].ProvidesWith)
	}
}

func TestDecodeModulePackagesAndMainClass(t *testing.T) {
	pool := buildPoolWithAttributeNames(t, "ModulePackages", "ModuleMainClass")

	pkgPayload := newByteBuilder().u16(2).u16(21).u16(22)
	pkgAttr := newByteBuilder().u16(1).u32(uint32(len(pkgPayload.bytesOut()))).bytes(pkgPayload.bytesOut()...)

	attr, err := decodeAttribute(NewCursor(pkgAttr.bytesOut()), testState(pool))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pkgs, ok := attr.(*ModulePackagesAttribute)
	if !ok {
		t.Fatalf("got %T, want *ModulePackagesAttribute", attr)
	}
	if len(pkgs.Packages) != 2 || pkgs.Packages[0] != 21 || pkgs.Packages[1] != 22 {
		t.Fatalf("packages = %v", pkgs.Packages)
	}

	mainAttr := newByteBuilder().u16(2).u32(2).u16(30)
	attr, err = decodeAttribute(NewCursor(mainAttr.bytesOut()), testState(pool))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	main, ok := attr.(*ModuleMainClassAttribute)
	if !ok {
		t.Fatalf("got %T, want *ModuleMainClassAttribute", attr)
	}
	if main.MainClassIndex != 30 {
		t.Fatalf("main_class_index = %d, want 30", main.MainClassIndex)
	}
}

func TestModelModuleAccessor(t *testing.T) {
	payload := newByteBuilder()
	payload.u16(1).u16(0).u16(0) // module_name_index, flags, version
	payload.u16(0)               // requires_count
	payload.u16(0)               // exports_count
	payload.u16(0)               // opens_count
	payload.u16(0)               // uses_count
	payload.u16(0)               // provides_count

	full := newByteBuilder()
	full.u32(classMagic)
	full.u16(0).u16(61)
	full.u16(4) // pool: 1 utf8 name, 2 class, 3 utf8 "Module"
	full.utf8Constant("ModuleInfo")
	full.classConstant(1)
	full.utf8Constant("Module")
	full.u16(0x8000)
	full.u16(2)
	full.u16(0)
	full.u16(0).u16(0).u16(0)

	moduleAttr := newByteBuilder().u16(3).u32(uint32(len(payload.bytesOut()))).bytes(payload.bytesOut()...)
	full.u16(1) // attributes_count
	full.bytes(moduleAttr.bytesOut()...)

	cf, err := Parse(full.bytesOut(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mod, ok := cf.Module()
	if !ok {
		t.Fatal("expected Module attribute")
	}
	if mod.ModuleNameIndex != 1 {
		t.Fatalf("module_name_index = %d, want 1", mod.ModuleNameIndex)
	}
}
