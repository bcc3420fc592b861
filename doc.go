// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package classfile decodes a compiled class file for a stack-based
// managed runtime conforming to the Java Virtual Machine Specification,
// SE 17 (JSR 17), §4, into a fully typed, cross-referenced in-memory
// model: the constant pool, access flag sets, fields, methods, and the
// recursive attribute tree (including the bytecode and exception tables
// carried inside Code attributes).
//
// The package consumes an in-memory byte slice and produces a ClassFile;
// it does not read files, render text, verify bytecode semantics, or
// execute anything. Those concerns belong to callers — see cmd/classdump
// for a minimal CLI built on top of this package.
package classfile
