// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import "testing"

func TestModelQuerySurface(t *testing.T) {
	b := newByteBuilder()
	b.u32(classMagic)
	b.u16(0).u16(61)
	b.u16(6) // pool: 1 utf8 name, 2 class, 3 utf8 sourcefile name, 4 utf8 "Deprecated", 5 utf8 "SourceFile"
	b.utf8Constant("Sample")
	b.classConstant(1)
	b.utf8Constant("Sample.java")
	b.utf8Constant("Deprecated")
	b.utf8Constant("SourceFile")
	b.u16(0x0021) // Public | Super
	b.u16(2)      // this_class
	b.u16(0)      // super_class
	b.u16(0)      // interfaces_count
	b.u16(0)      // fields_count
	b.u16(0)      // methods_count

	sourceFileAttr := newByteBuilder().u16(5).u32(2).u16(3)
	deprecatedAttr := newByteBuilder().u16(4).u32(0)

	b.u16(2) // attributes_count
	b.bytes(sourceFileAttr.bytesOut()...)
	b.bytes(deprecatedAttr.bytesOut()...)

	cf, err := Parse(b.bytesOut(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name, ok := cf.ThisClassName()
	if !ok || name != "Sample" {
		t.Fatalf("ThisClassName() = %q, %v", name, ok)
	}
	if _, ok := cf.SuperClassName(); ok {
		t.Fatal("expected no superclass name")
	}
	sf, ok := cf.SourceFile()
	if !ok {
		t.Fatal("expected SourceFile attribute")
	}
	if sfName, ok := cf.Pool.Utf8String(sf.SourceFileIndex); !ok || sfName != "Sample.java" {
		t.Fatalf("source file = %q, %v", sfName, ok)
	}
	if !cf.Deprecated() {
		t.Fatal("expected Deprecated() true")
	}
	if _, ok := cf.Module(); ok {
		t.Fatal("did not expect a Module attribute")
	}
}
