// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// Fuzz is the go-fuzz harness entry point: build a ClassFile from raw
// bytes, return 1 on a clean parse so the corpus is steered toward
// inputs that make it further into the grammar, 0 otherwise.
func Fuzz(data []byte) int {
	if _, err := Parse(data, nil); err != nil {
		return 0
	}
	return 1
}
