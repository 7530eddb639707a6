// Copyright 2023 Pete Isensee. All rights reserved.
// Use of this source code is governed by the MIT license.

package strutil

import (
	"github.com/pkisensee/strutil/charutil"
)

// IsGoodFileName reports whether every character of s is valid in a
// portable file name. Control characters and the reserved characters
// : " < > | / always disqualify; wildcards disqualify unless
// allowWildcards says otherwise.
func IsGoodFileName(s string, allowWildcards AllowWildcards) bool {
	for _, r := range s {
		if !charutil.IsGoodFileCharEx(r, allowWildcards) {
			return false
		}
	}
	return true
}

// ContainsWildcard reports whether s contains '*' or '?'.
func ContainsWildcard(s string) bool {
	for _, r := range s {
		if charutil.IsWildcardFileChar(r) {
			return true
		}
	}
	return false
}

// ToGoodFileName repairs every character of s for use in a file name,
// in place, and returns the adjusted slice. Control characters become
// '!' and reserved characters become their fixed replacements. The
// wildcard characters '*' and '?' pass through, are replaced, or are
// removed outright per convertWildcards; removal shortens the slice.
func ToGoodFileName[C charutil.Char](s []C, convertWildcards ConvertWildcards) []C {
	switch convertWildcards {
	case ReplaceWildcards:
		for i, c := range s {
			s[i] = charutil.ToGoodFileCharConvertWildcards(c)
		}
	case RemoveWildcards:
		for i, c := range s {
			s[i] = charutil.ToGoodFileChar(c)
		}
		kept := s[:0]
		for _, c := range s {
			if !charutil.IsWildcardFileChar(c) {
				kept = append(kept, c)
			}
		}
		s = kept
	default:
		for i, c := range s {
			s[i] = charutil.ToGoodFileChar(c)
		}
	}
	return s
}

// GetGoodFileName returns s with every character repaired for use in a
// file name. See [ToGoodFileName].
func GetGoodFileName(s string, convertWildcards ConvertWildcards) string {
	return string(ToGoodFileName([]rune(s), convertWildcards))
}
