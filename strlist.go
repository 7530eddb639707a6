// Copyright 2023 Pete Isensee. All rights reserved.
// Use of this source code is governed by the MIT license.

package strutil

import (
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// StrList is an ordered list of strings. Insertion order is preserved
// and duplicate elements are permitted.
type StrList []string

// Append adds vals to the end of the list.
func (l *StrList) Append(vals ...string) {
	*l = append(*l, vals...)
}

// Insert inserts vals at position i, shifting later elements up. Like
// slices.Insert, it panics if i is out of range.
func (l *StrList) Insert(i int, vals ...string) {
	*l = slices.Insert(*l, i, vals...)
}

// Contains reports whether some element of the list equals s exactly,
// case sensitive, whole string.
func (l StrList) Contains(s string) bool {
	return slices.Contains(l, s)
}

// ContainsEmptyStrings reports whether any element is the empty string.
func (l StrList) ContainsEmptyStrings() bool {
	return slices.Contains(l, "")
}

// CharCount returns the total number of characters across all elements.
// An empty list counts zero.
func (l StrList) CharCount() int {
	n := 0
	for _, s := range l {
		n += utf8.RuneCountInString(s)
	}
	return n
}

// Equal reports whether l and other have the same length and equal
// elements in the same order.
func (l StrList) Equal(other StrList) bool {
	return slices.Equal(l, other)
}
