// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// ExceptionTableEntry is one row of a Code attribute's exception_table
// (spec §4.5).
type ExceptionTableEntry struct {
	StartPC   int
	EndPC     int
	HandlerPC int
	CatchType int // 0 means catch-all (finally)
}

// LineNumberEntry is one row of a LineNumberTable attribute.
type LineNumberEntry struct {
	StartPC    int
	LineNumber int
}

// LocalVariableEntry is one row of a LocalVariableTable attribute.
type LocalVariableEntry struct {
	StartPC         int
	Length          int
	NameIndex       int
	DescriptorIndex int
	Index           int
}

// LocalVariableTypeEntry is one row of a LocalVariableTypeTable
// attribute; identical shape to LocalVariableEntry but the fourth field
// is a signature_index rather than a descriptor_index (spec §4.5).
type LocalVariableTypeEntry struct {
	StartPC        int
	Length         int
	NameIndex      int
	SignatureIndex int
	Index          int
}

// CodeAttribute carries the method's bytecode, its operand-stack/local-
// variable limits, the exception handler table, and the nested attribute
// sequence (LineNumberTable, LocalVariableTable, StackMapTable, ...).
// This is one of two recursive attribute variants (spec §3, §4.5).
type CodeAttribute struct {
	attributeBase
	MaxStack       int
	MaxLocals      int
	Code           []byte
	ExceptionTable []ExceptionTableEntry
	Attributes     []Attribute
}

// LineNumberTable returns the nested LineNumberTable attribute, if Code
// was compiled with debug line info.
func (c *CodeAttribute) LineNumberTable() (*LineNumberTableAttribute, bool) {
	for _, a := range c.Attributes {
		if lnt, ok := a.(*LineNumberTableAttribute); ok {
			return lnt, true
		}
	}
	return nil, false
}

// StackMapTable returns the nested StackMapTable attribute, if present.
func (c *CodeAttribute) StackMapTable() (*StackMapTableAttribute, bool) {
	for _, a := range c.Attributes {
		if smt, ok := a.(*StackMapTableAttribute); ok {
			return smt, true
		}
	}
	return nil, false
}

func decodeCodeAttribute(c *Cursor, st *decodeState, length uint32) (Attribute, error) {
	maxStack, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	maxLocals, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	codeLength, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	code, err := c.Take(int(codeLength))
	if err != nil {
		return nil, err
	}
	codeCopy := make([]byte, len(code))
	copy(codeCopy, code)

	excCount, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	excTable := make([]ExceptionTableEntry, excCount)
	for i := range excTable {
		startPC, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		endPC, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		handlerPC, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		catchType, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		excTable[i] = ExceptionTableEntry{
			StartPC:   int(startPC),
			EndPC:     int(endPC),
			HandlerPC: int(handlerPC),
			CatchType: int(catchType),
		}
	}

	attrs, err := decodeAttributes(c, st)
	if err != nil {
		return nil, err
	}

	return &CodeAttribute{
		attributeBase:  attributeBase{name: "Code"},
		MaxStack:       int(maxStack),
		MaxLocals:      int(maxLocals),
		Code:           codeCopy,
		ExceptionTable: excTable,
		Attributes:     attrs,
	}, nil
}

// ExceptionsAttribute lists the checked exception types a method declares
// it may throw.
type ExceptionsAttribute struct {
	attributeBase
	ExceptionIndexTable []int
}

func decodeExceptionsAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	indices, err := readU16Indices(c, int(count))
	if err != nil {
		return nil, err
	}
	return &ExceptionsAttribute{attributeBase: attributeBase{name: "Exceptions"}, ExceptionIndexTable: indices}, nil
}

// LineNumberTableAttribute maps bytecode offsets to source line numbers.
type LineNumberTableAttribute struct {
	attributeBase
	Entries []LineNumberEntry
}

func decodeLineNumberTableAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	entries := make([]LineNumberEntry, count)
	for i := range entries {
		startPC, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		line, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		entries[i] = LineNumberEntry{StartPC: int(startPC), LineNumber: int(line)}
	}
	return &LineNumberTableAttribute{attributeBase: attributeBase{name: "LineNumberTable"}, Entries: entries}, nil
}

// LocalVariableTableAttribute maps bytecode ranges to local-variable
// slots, names, and descriptors, used by debuggers.
type LocalVariableTableAttribute struct {
	attributeBase
	Entries []LocalVariableEntry
}

func decodeLocalVariableTableAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	entries := make([]LocalVariableEntry, count)
	for i := range entries {
		startPC, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		length, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		nameIdx, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		descIdx, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		index, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		entries[i] = LocalVariableEntry{
			StartPC:         int(startPC),
			Length:          int(length),
			NameIndex:       int(nameIdx),
			DescriptorIndex: int(descIdx),
			Index:           int(index),
		}
	}
	return &LocalVariableTableAttribute{attributeBase: attributeBase{name: "LocalVariableTable"}, Entries: entries}, nil
}

// LocalVariableTypeTableAttribute is LocalVariableTable's generic-aware
// sibling: the fourth field of each entry is a signature_index rather
// than a plain descriptor_index (spec §4.5).
type LocalVariableTypeTableAttribute struct {
	attributeBase
	Entries []LocalVariableTypeEntry
}

func decodeLocalVariableTypeTableAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	entries := make([]LocalVariableTypeEntry, count)
	for i := range entries {
		startPC, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		length, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		nameIdx, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		sigIdx, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		index, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		entries[i] = LocalVariableTypeEntry{
			StartPC:        int(startPC),
			Length:         int(length),
			NameIndex:      int(nameIdx),
			SignatureIndex: int(sigIdx),
			Index:          int(index),
		}
	}
	return &LocalVariableTypeTableAttribute{attributeBase: attributeBase{name: "LocalVariableTypeTable"}, Entries: entries}, nil
}
