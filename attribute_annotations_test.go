// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import "testing"

func TestDecodeStackMapFrameSameFrame(t *testing.T) {
	c := NewCursor([]byte{10}) // frame_type 10: same_frame, offset_delta=10
	frame, err := decodeStackMapFrame(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frame.OffsetDelta != 10 || len(frame.Locals) != 0 || len(frame.Stack) != 0 {
		t.Fatalf("got %+v", frame)
	}
}

func TestDecodeStackMapFrameSameLocals1StackItem(t *testing.T) {
	// frame_type 68 (64 + 4) -> offset_delta 4, one stack item: Integer
	b := newByteBuilder().u8(68).u8(uint8(VerificationInteger))
	frame, err := decodeStackMapFrame(NewCursor(b.bytesOut()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frame.OffsetDelta != 4 {
		t.Fatalf("offset_delta = %d, want 4", frame.OffsetDelta)
	}
	if len(frame.Stack) != 1 || frame.Stack[0].Tag != VerificationInteger {
		t.Fatalf("stack = %+v", frame.Stack)
	}
}

func TestDecodeStackMapFrameFullFrame(t *testing.T) {
	b := newByteBuilder()
	b.u8(255) // full_frame
	b.u16(5)  // offset_delta
	b.u16(1)  // number_of_locals
	b.u8(uint8(VerificationObject)).u16(7) // local 0: Object, cpool index 7
	b.u16(1)                               // number_of_stack_items
	b.u8(uint8(VerificationTop))           // stack 0: Top

	frame, err := decodeStackMapFrame(NewCursor(b.bytesOut()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frame.OffsetDelta != 5 {
		t.Fatalf("offset_delta = %d, want 5", frame.OffsetDelta)
	}
	if len(frame.Locals) != 1 || frame.Locals[0].Tag != VerificationObject || frame.Locals[0].Index != 7 {
		t.Fatalf("locals = %+v", frame.Locals)
	}
	if len(frame.Stack) != 1 || frame.Stack[0].Tag != VerificationTop {
		t.Fatalf("stack = %+v", frame.Stack)
	}
}

func TestDecodeStackMapTableAttribute(t *testing.T) {
	pool := buildPoolWithAttributeNames(t, "StackMapTable")
	payload := newByteBuilder()
	payload.u16(1) // number_of_entries
	payload.u8(0)  // same_frame, offset_delta=0

	b := newByteBuilder().u16(1).u32(uint32(len(payload.bytesOut()))).bytes(payload.bytesOut()...)
	attr, err := decodeAttribute(NewCursor(b.bytesOut()), testState(pool))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	smt := attr.(*StackMapTableAttribute)
	if len(smt.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(smt.Entries))
	}
}

func TestDecodeSimpleAnnotation(t *testing.T) {
	b := newByteBuilder()
	b.u16(5) // type_index
	b.u16(1) // num_element_value_pairs
	b.u16(6) // element_name_index
	b.u8(byte(ElementValueInt)).u16(9) // element_value: int, const_value_index=9

	ann, err := decodeAnnotationValue(NewCursor(b.bytesOut()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ann.TypeIndex != 5 {
		t.Fatalf("type_index = %d, want 5", ann.TypeIndex)
	}
	if len(ann.Pairs) != 1 || ann.Pairs[0].ElementNameIndex != 6 {
		t.Fatalf("pairs = %+v", ann.Pairs)
	}
	v := ann.Pairs[0].Value
	if v.Tag != ElementValueInt || v.ConstValueIndex != 9 {
		t.Fatalf("value = %+v", v)
	}
}

func TestDecodeNestedAnnotationElementValue(t *testing.T) {
	nested := newByteBuilder().u16(1).u16(0) // type_index=1, no pairs
	b := newByteBuilder()
	b.u8(byte(ElementValueAnnotation))
	b.bytes(nested.bytesOut()...)

	val, err := decodeElementValue(NewCursor(b.bytesOut()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val.Tag != ElementValueAnnotation || val.Annotation == nil {
		t.Fatalf("got %+v", val)
	}
	if val.Annotation.TypeIndex != 1 {
		t.Fatalf("nested type_index = %d, want 1", val.Annotation.TypeIndex)
	}
}

func TestDecodeArrayElementValue(t *testing.T) {
	b := newByteBuilder()
	b.u8(byte(ElementValueArray))
	b.u16(2) // num_values
	b.u8(byte(ElementValueInt)).u16(1)
	b.u8(byte(ElementValueInt)).u16(2)

	val, err := decodeElementValue(NewCursor(b.bytesOut()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val.Tag != ElementValueArray || len(val.Values) != 2 {
		t.Fatalf("got %+v", val)
	}
	if val.Values[0].ConstValueIndex != 1 || val.Values[1].ConstValueIndex != 2 {
		t.Fatalf("values = %+v", val.Values)
	}
}

func TestDecodeAnnotationDefaultAttribute(t *testing.T) {
	pool := buildPoolWithAttributeNames(t, "AnnotationDefault")
	payload := newByteBuilder().u8(byte(ElementValueBoolean)).u16(3)
	b := newByteBuilder().u16(1).u32(uint32(len(payload.bytesOut()))).bytes(payload.bytesOut()...)

	attr, err := decodeAttribute(NewCursor(b.bytesOut()), testState(pool))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ad := attr.(*AnnotationDefaultAttribute)
	if ad.DefaultValue.Tag != ElementValueBoolean || ad.DefaultValue.ConstValueIndex != 3 {
		t.Fatalf("got %+v", ad.DefaultValue)
	}
}

func TestDecodeTypeAnnotationEmptyTarget(t *testing.T) {
	b := newByteBuilder()
	b.u8(0x13) // empty_target
	b.u8(0)    // type_path path_length=0
	b.u16(1).u16(0) // annotation: type_index=1, no pairs

	ta, err := decodeTypeAnnotationValue(NewCursor(b.bytesOut()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ta.TargetKind != TargetEmpty {
		t.Fatalf("target kind = %v, want TargetEmpty", ta.TargetKind)
	}
	if ta.Annotation.TypeIndex != 1 {
		t.Fatalf("annotation type_index = %d, want 1", ta.Annotation.TypeIndex)
	}
}
