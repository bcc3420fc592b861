// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import "fmt"

// ErrorKind identifies which of the fixed decode-failure modes a
// DecodeError represents. All decode failures are fatal to the current
// decode (spec §7) — the cursor has no well-defined resynchronization
// point in the middle of a variable-length table, so there is no partial
// result to salvage.
type ErrorKind int

const (
	// UnexpectedEOF is returned when a read would advance the cursor
	// past the end of the buffer.
	UnexpectedEOF ErrorKind = iota

	// BadMagic is returned when the first four bytes of the input are
	// not 0xCAFEBABE.
	BadMagic

	// MalformedTag is returned for an unrecognized constant-pool tag
	// byte or method-handle reference_kind, and for an unrecognized tag
	// inside an attribute payload (verification_type_info tag, reserved
	// stack_map_frame frame_type, element_value tag, type_annotation
	// target_type).
	MalformedTag

	// BadPoolRef is returned when a pool index is zero where zero is
	// disallowed, out of range, or resolves to a constant of the wrong
	// variant (a Class reference expected, a UTF-8 reference expected,
	// and so on).
	BadPoolRef

	// UnknownAttribute is returned when an attribute_name_index resolves
	// to a string outside the fixed JVM attribute-name table.
	UnknownAttribute

	// BadAttributeName is returned when attribute_name_index is absent
	// from the pool or does not resolve to a UTF-8 constant.
	BadAttributeName

	// LengthMismatch is returned when the bytes consumed decoding an
	// attribute's payload differ from its declared attribute_length.
	LengthMismatch

	// DanglingRef is returned when the post-assembly reachability check
	// finds a pool reference that does not resolve.
	DanglingRef
)

// String names an ErrorKind the way the JVM specification names the
// failure mode; it is also the value's %v / %s formatting.
func (k ErrorKind) String() string {
	switch k {
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case BadMagic:
		return "BadMagic"
	case MalformedTag:
		return "MalformedTag"
	case BadPoolRef:
		return "BadPoolRef"
	case UnknownAttribute:
		return "UnknownAttribute"
	case BadAttributeName:
		return "BadAttributeName"
	case LengthMismatch:
		return "LengthMismatch"
	case DanglingRef:
		return "DanglingRef"
	default:
		return "UnknownErrorKind"
	}
}

// DecodeError is the single error type returned from every decode
// failure. It carries the byte offset the cursor was at when the
// failure was detected, so a caller can point a user at the exact spot
// in the input. Errors from the post-assembly reachability check have no
// cursor position and carry Offset 0.
type DecodeError struct {
	Kind   ErrorKind
	Offset int
	Msg    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("class format error: %s at offset %d: %s", e.Kind, e.Offset, e.Msg)
}

// Is reports whether target is a *DecodeError with the same Kind,
// letting callers write errors.Is(err, classfile.ErrBadMagic) style
// checks against the sentinel-shaped Err* values below.
func (e *DecodeError) Is(target error) bool {
	other, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Sentinel-shaped errors for errors.Is comparisons against a Kind alone;
// their Offset/Msg fields are not meaningful and should not be read.
var (
	ErrUnexpectedEOF    = &DecodeError{Kind: UnexpectedEOF}
	ErrBadMagic         = &DecodeError{Kind: BadMagic}
	ErrMalformedTag     = &DecodeError{Kind: MalformedTag}
	ErrBadPoolRef       = &DecodeError{Kind: BadPoolRef}
	ErrUnknownAttribute = &DecodeError{Kind: UnknownAttribute}
	ErrBadAttributeName = &DecodeError{Kind: BadAttributeName}
	ErrLengthMismatch   = &DecodeError{Kind: LengthMismatch}
	ErrDanglingRef      = &DecodeError{Kind: DanglingRef}
)

func errUnexpectedEOF(offset int, msg string) error {
	return &DecodeError{Kind: UnexpectedEOF, Offset: offset, Msg: msg}
}

func errBadMagic(offset int, got uint32) error {
	return &DecodeError{Kind: BadMagic, Offset: offset,
		Msg: fmt.Sprintf("expected magic 0xCAFEBABE, got 0x%08X", got)}
}

func errMalformedTag(offset int, msg string) error {
	return &DecodeError{Kind: MalformedTag, Offset: offset, Msg: msg}
}

func errBadPoolRef(offset int, msg string) error {
	return &DecodeError{Kind: BadPoolRef, Offset: offset, Msg: msg}
}

func errUnknownAttribute(offset int, name string) error {
	return &DecodeError{Kind: UnknownAttribute, Offset: offset,
		Msg: fmt.Sprintf("unrecognized attribute name %q", name)}
}

func errBadAttributeName(offset int, msg string) error {
	return &DecodeError{Kind: BadAttributeName, Offset: offset, Msg: msg}
}

func errLengthMismatch(offset int, attrName string, want, got uint32) error {
	return &DecodeError{Kind: LengthMismatch, Offset: offset,
		Msg: fmt.Sprintf("attribute %q declared length %d but decode consumed %d", attrName, want, got)}
}

func errDanglingRef(offset int, msg string) error {
	return &DecodeError{Kind: DanglingRef, Offset: offset, Msg: msg}
}
