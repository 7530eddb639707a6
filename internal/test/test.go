// Copyright 2023 Pete Isensee. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package test provides shared helpers for generating the randomized
// inputs used by the strutil fuzz and property tests.
package test

import (
	"math/rand"
	"strings"
	"unicode/utf8"
)

// Characters that exercise every classification and replacement rule:
// plain ASCII, controls, reserved file-name characters, wildcards, XML
// metacharacters, and multi byte runes.
var interesting = []rune{
	'a', 'b', 'z', 'A', 'Z', '0', '9', ' ', '.', '-', '_',
	'\t', '\n', '\x00', '\x1f', '\x7f',
	':', '"', '<', '>', '|', '/',
	'*', '?',
	'&', '\'',
	'é', 'ß', 'ÿ', 'Δ', '日', ' ', '\U0001F600',
	utf8.RuneError,
}

// RandText returns a string of n characters drawn from the interesting
// character set.
func RandText(rr *rand.Rand, n int) string {
	var b strings.Builder
	b.Grow(n * 2)
	for i := 0; i < n; i++ {
		b.WriteRune(interesting[rr.Intn(len(interesting))])
	}
	return b.String()
}

// RandCharset returns a short trim charset, sometimes empty.
func RandCharset(rr *rand.Rand) string {
	n := rr.Intn(4)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(interesting[rr.Intn(len(interesting))])
	}
	return b.String()
}
