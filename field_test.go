// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import "testing"

func TestDecodeFieldInfo(t *testing.T) {
	pool := buildPoolWithAttributeNames(t, "count", "I")

	b := newByteBuilder()
	b.u16(0x0009) // Public | Static
	b.u16(1)      // name_index -> "count"
	b.u16(2)      // descriptor_index -> "I"
	b.u16(0)      // attributes_count

	f, err := decodeFieldInfo(NewCursor(b.bytesOut()), testState(pool))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.AccessFlags) != 2 || f.AccessFlags[0] != AccPublicField || f.AccessFlags[1] != AccStaticField {
		t.Fatalf("flags = %v", f.AccessFlags)
	}
	name, ok := f.Name(pool)
	if !ok || name != "count" {
		t.Fatalf("Name() = %q, %v", name, ok)
	}
	desc, ok := f.Descriptor(pool)
	if !ok || desc != "I" {
		t.Fatalf("Descriptor() = %q, %v", desc, ok)
	}
}

func TestDecodeFieldsEmptyTable(t *testing.T) {
	b := newByteBuilder().u16(0)
	fields, err := decodeFields(NewCursor(b.bytesOut()), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fields) != 0 {
		t.Fatalf("got %d fields, want 0", len(fields))
	}
}
