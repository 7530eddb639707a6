// Copyright 2023 Pete Isensee. All rights reserved.
// Use of this source code is governed by the MIT license.

package strutil

import (
	"log"
	"strings"

	"github.com/pkisensee/strutil/charutil"
)

// inCharset reports whether c is one of the characters in set.
// Membership only; order within set is irrelevant.
func inCharset[C charutil.Char](c C, set []C) bool {
	for _, t := range set {
		if c == t {
			return true
		}
	}
	return false
}

// ToTrimmedLeading returns s with every leading character that belongs
// to trimCharset removed. The result is a reslice of s. If every
// character of s is in trimCharset the result is empty.
//
// For example, to trim leading white space:
//
//	s = ToTrimmedLeading(s, []byte(" \t"))
func ToTrimmedLeading[C charutil.Char](s, trimCharset []C) []C {
	first := 0
	for first < len(s) && inCharset(s[first], trimCharset) {
		first++
	}
	return s[first:]
}

// ToTrimmedTrailing returns s with every trailing character that
// belongs to trimCharset removed. The result is a reslice of s.
func ToTrimmedTrailing[C charutil.Char](s, trimCharset []C) []C {
	last := len(s)
	for last > 0 && inCharset(s[last-1], trimCharset) {
		last--
	}
	return s[:last]
}

// ToTrimmed returns s with leading and trailing characters that belong
// to trimCharset removed. The result is a reslice of s.
func ToTrimmed[C charutil.Char](s, trimCharset []C) []C {
	s = ToTrimmedLeading(s, trimCharset)
	if len(s) == 0 {
		return s
	}
	t := ToTrimmedTrailing(s, trimCharset)
	if debug && len(t) == 0 {
		// The first character survived the leading trim, so it cannot
		// be eligible for the trailing trim.
		log.Panicf("strutil: trailing trim removed all of %q", s)
	}
	return t
}

// GetTrimmedLeading returns s with leading characters in trimCharset
// removed.
func GetTrimmedLeading(s, trimCharset string) string {
	return strings.TrimLeft(s, trimCharset)
}

// GetTrimmedTrailing returns s with trailing characters in trimCharset
// removed.
func GetTrimmedTrailing(s, trimCharset string) string {
	return strings.TrimRight(s, trimCharset)
}

// GetTrimmed returns s with leading and trailing characters in
// trimCharset removed.
func GetTrimmed(s, trimCharset string) string {
	return strings.Trim(s, trimCharset)
}
