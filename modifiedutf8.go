// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import (
	"unicode/utf8"

	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// surrogatePairDecoder recombines a CESU-8 surrogate pair into its
// supplementary-plane rune by handing the two UTF-16 code units to a real
// UTF-16 decoder rather than hand-rolling the (high-0xD800)*0x400 +
// (low-0xDC00) + 0x10000 arithmetic.
var surrogatePairDecoder = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()

// decodeModifiedUTF8 decodes the JVM's modified-UTF-8 encoding (JVM spec
// §4.4.7) to a native Go string. It differs from standard UTF-8 in two
// ways: the NUL character is encoded as the two-byte sequence 0xC0 0x80
// instead of a single zero byte, and characters outside the Basic
// Multilingual Plane are encoded as a surrogate pair, each half encoded
// as its own three-byte sequence (CESU-8), rather than as one four-byte
// sequence.
//
// Any byte sequence that isn't valid modified UTF-8 is decoded on a
// best-effort basis: invalid bytes are replaced with U+FFFD, matching
// the fallback the source's from_utf8_lossy leans on (see SPEC_FULL.md
// §4.2) — but only as a fallback, not the primary path. If the fallback
// is taken and logger is non-nil, a Warn diagnostic is emitted naming
// offset (the Utf8 constant's start offset in the class file) so a
// caller can locate the malformed entry.
func decodeModifiedUTF8(b []byte, logger *log.Helper, offset int) string {
	var out []rune
	var fallback bool
	i := 0
	n := len(b)
	for i < n {
		c0 := b[i]
		switch {
		case c0 < 0x80 && c0 != 0x00:
			out = append(out, rune(c0))
			i++
		case c0&0xE0 == 0xC0 && i+1 < n:
			c1 := b[i+1]
			if c1&0xC0 != 0x80 {
				out = append(out, utf8.RuneError)
				fallback = true
				i++
				continue
			}
			r := (rune(c0&0x1F) << 6) | rune(c1&0x3F)
			out = append(out, r)
			i += 2
		case c0&0xF0 == 0xE0 && i+2 < n:
			c1, c2 := b[i+1], b[i+2]
			if c1&0xC0 != 0x80 || c2&0xC0 != 0x80 {
				out = append(out, utf8.RuneError)
				fallback = true
				i++
				continue
			}
			r := (rune(c0&0x0F) << 12) | (rune(c1&0x3F) << 6) | rune(c2&0x3F)
			if isHighSurrogate(r) && i+5 < n && b[i+3]&0xF0 == 0xE0 {
				c3, c4, c5 := b[i+3], b[i+4], b[i+5]
				if c4&0xC0 == 0x80 && c5&0xC0 == 0x80 {
					r2 := (rune(c3&0x0F) << 12) | (rune(c4&0x3F) << 6) | rune(c5&0x3F)
					if combined, ok := recombineSurrogates(r, r2); ok {
						out = append(out, combined)
						i += 6
						continue
					}
				}
			}
			out = append(out, r)
			i += 3
		default:
			out = append(out, utf8.RuneError)
			fallback = true
			i++
		}
	}
	if fallback && logger != nil {
		logger.Warnf("modified UTF-8 decode at offset %d fell back to U+FFFD replacement for one or more invalid byte sequences", offset)
	}
	return string(out)
}

func isHighSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDBFF
}

// recombineSurrogates feeds a high/low surrogate pair through the same
// UTF-16 decoder construction the teacher uses for wide-string fields
// (helper.go's DecodeUTF16String), rather than inlining the bit math a
// second time.
func recombineSurrogates(high, low rune) (rune, bool) {
	units := []byte{
		byte(high >> 8), byte(high),
		byte(low >> 8), byte(low),
	}
	decoded, _, err := transform.Bytes(surrogatePairDecoder, units)
	if err != nil {
		return 0, false
	}
	r, size := utf8.DecodeRune(decoded)
	if r == utf8.RuneError && size <= 1 {
		return 0, false
	}
	return r, true
}
