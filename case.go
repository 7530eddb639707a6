// Copyright 2023 Pete Isensee. All rights reserved.
// Use of this source code is governed by the MIT license.

package strutil

import (
	"strings"

	"github.com/pkisensee/strutil/charutil"
)

// ToUpper maps every character of s to upper case in place. At narrow
// width a mapping that would not fit in a byte leaves the character
// unchanged.
func ToUpper[C charutil.Char](s []C) {
	for i, c := range s {
		s[i] = charutil.ToUpper(c)
	}
}

// ToLower maps every character of s to lower case in place. At narrow
// width a mapping that would not fit in a byte leaves the character
// unchanged.
func ToLower[C charutil.Char](s []C) {
	for i, c := range s {
		s[i] = charutil.ToLower(c)
	}
}

// GetUpper returns s with every character mapped to upper case.
func GetUpper(s string) string {
	return strings.ToUpper(s)
}

// GetLower returns s with every character mapped to lower case.
func GetLower(s string) string {
	return strings.ToLower(s)
}
