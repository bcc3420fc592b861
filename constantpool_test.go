// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import (
	"errors"
	"testing"
)

// TestDecodeConstantPoolLongHole reproduces spec §8 scenario 5: a pool
// declared count=4 holding a Long at index 1 (which reserves index 2)
// followed by a Utf8 at index 3.
func TestDecodeConstantPoolLongHole(t *testing.T) {
	b := newByteBuilder()
	b.u8(tagLong).i64(123456789)
	b.u8(tagUtf8).u16(0) // empty string

	pool, err := decodeConstantPool(NewCursor(b.bytesOut()), 4, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := pool.Get(1); !ok {
		t.Fatal("expected entry at index 1")
	}
	if _, ok := pool.Get(2); ok {
		t.Fatal("expected index 2 to be absent (Long hole)")
	}
	if _, ok := pool.Get(3); !ok {
		t.Fatal("expected entry at index 3")
	}

	long, ok := pool.Get(1)
	if !ok {
		t.Fatal("index 1 missing")
	}
	if l, ok := long.(*ConstantLong); !ok || l.Value != 123456789 {
		t.Fatalf("index 1 = %#v, want ConstantLong(123456789)", long)
	}
}

func TestDecodeConstantPoolEmptyPool(t *testing.T) {
	pool, err := decodeConstantPool(NewCursor(nil), 1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := pool.Get(0); ok {
		t.Fatal("index 0 must always be absent")
	}
	if _, ok := pool.Get(1); ok {
		t.Fatal("empty pool must have no entries")
	}
}

func TestDecodeConstantPoolUnknownTagFails(t *testing.T) {
	b := newByteBuilder().u8(2) // tag 2 is reserved, never assigned
	_, err := decodeConstantPool(NewCursor(b.bytesOut()), 2, nil)
	var de *DecodeError
	if !errors.As(err, &de) || de.Kind != MalformedTag {
		t.Fatalf("expected MalformedTag, got %v", err)
	}
}

func TestConstantPoolAccessors(t *testing.T) {
	b := newByteBuilder()
	b.utf8Constant("Hello")
	b.classConstant(1)

	pool, err := decodeConstantPool(NewCursor(b.bytesOut()), 3, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, ok := pool.Utf8String(1)
	if !ok || s != "Hello" {
		t.Fatalf("Utf8String(1) = %q, %v, want \"Hello\", true", s, ok)
	}

	cls, ok := pool.AsClass(2)
	if !ok || cls.NameIndex != 1 {
		t.Fatalf("AsClass(2) = %#v, %v", cls, ok)
	}

	name, ok := pool.ClassName(2)
	if !ok || name != "Hello" {
		t.Fatalf("ClassName(2) = %q, %v, want \"Hello\", true", name, ok)
	}

	if _, ok := pool.AsClass(1); ok {
		t.Fatal("index 1 is a Utf8 constant, AsClass should fail")
	}
	if _, ok := pool.Get(99); ok {
		t.Fatal("out-of-range index should be absent, not panic")
	}
}

func TestMethodHandleBadReferenceKind(t *testing.T) {
	b := newByteBuilder().u8(tagMethodHandle).u8(0).u16(1)
	_, err := decodeConstantPool(NewCursor(b.bytesOut()), 2, nil)
	var de *DecodeError
	if !errors.As(err, &de) || de.Kind != MalformedTag {
		t.Fatalf("expected MalformedTag for reference_kind 0, got %v", err)
	}
}
