// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import (
	"errors"
	"testing"
)

func TestCursorTakeAdvancesAndBounds(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5})

	b, err := c.Take(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b) != 2 || b[0] != 1 || b[1] != 2 {
		t.Fatalf("unexpected window: %v", b)
	}
	if c.Position() != 2 {
		t.Fatalf("position = %d, want 2", c.Position())
	}
	if c.Remaining() != 3 {
		t.Fatalf("remaining = %d, want 3", c.Remaining())
	}

	if _, err := c.Take(10); err == nil {
		t.Fatal("expected UnexpectedEOF, got nil")
	} else {
		var de *DecodeError
		if !errors.As(err, &de) || de.Kind != UnexpectedEOF {
			t.Fatalf("expected UnexpectedEOF DecodeError, got %v", err)
		}
	}
}

func TestCursorReadHelpers(t *testing.T) {
	c := NewCursor([]byte{0x00, 0x2A, 0xFF, 0xFF, 0xFF, 0xFF})

	u16, err := c.ReadU16()
	if err != nil {
		t.Fatalf("ReadU16: %v", err)
	}
	if u16 != 42 {
		t.Fatalf("ReadU16 = %d, want 42", u16)
	}

	i32, err := c.ReadI32()
	if err != nil {
		t.Fatalf("ReadI32: %v", err)
	}
	if i32 != -1 {
		t.Fatalf("ReadI32 = %d, want -1", i32)
	}
}

func TestCursorEmptyTakeAtEnd(t *testing.T) {
	c := NewCursor([]byte{1})
	if _, err := c.Take(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := c.Take(0)
	if err != nil {
		t.Fatalf("zero-length take at end should succeed: %v", err)
	}
	if len(b) != 0 {
		t.Fatalf("expected empty slice, got %v", b)
	}
}
