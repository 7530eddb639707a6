// Copyright 2023 Pete Isensee. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package charutil classifies and transforms single characters using a
// fixed, locale-independent rule set.
//
// The package is generic over the two character widths it understands:
// narrow (byte) and wide (rune). Characters in the ASCII range are
// classified by lookup tables matching the classic "C" locale; characters
// above 0x7F are classified by the [unicode] package. Neither is ever
// affected by the process or user locale.
package charutil

import "unicode"

// Char is the set of character widths understood by this package.
type Char interface {
	~byte | ~rune
}

// AllowWildcards selects whether the file-name predicates accept the
// wildcard characters '*' and '?'.
type AllowWildcards uint8

const (
	NoWildcards AllowWildcards = iota
	WildcardsOK
)

// ConvertWildcards selects how file-name repair treats wildcards:
// left alone, replaced via the wildcard table, or removed outright.
// Removal is a sequence-level operation; the single-character
// [ToGoodFileCharEx] treats RemoveWildcards like KeepWildcards.
type ConvertWildcards uint8

const (
	KeepWildcards ConvertWildcards = iota
	ReplaceWildcards
	RemoveWildcards
)

// fileCharMap pairs a special file-name character with its replacement.
type fileCharMap struct {
	special     byte
	replacement byte
}

// Reserved file-name characters and reasonable replacement values.
var badFileChars = [...]fileCharMap{
	{':', '-'},
	{'"', '\''},
	{'<', '('},
	{'>', ')'},
	{'|', '.'},
	{'/', '\\'},
}

// Wildcards and replacements.
var wildcardChars = [...]fileCharMap{
	{'*', '+'},
	{'?', ' '},
}

// IsUpper reports whether c is an upper case letter.
func IsUpper[C Char](c C) bool {
	// The lower bound only matters at rune width; a byte is never negative.
	if 0 <= c && c < 0x80 {
		return _ctype[c]&ctUpper != 0
	}
	return unicode.IsUpper(rune(c))
}

// IsLower reports whether c is a lower case letter.
func IsLower[C Char](c C) bool {
	if 0 <= c && c < 0x80 {
		return _ctype[c]&ctLower != 0
	}
	return unicode.IsLower(rune(c))
}

// IsDigit reports whether c is a decimal digit.
func IsDigit[C Char](c C) bool {
	if 0 <= c && c < 0x80 {
		return _ctype[c]&ctDigit != 0
	}
	return unicode.IsDigit(rune(c))
}

// IsNumeric reports whether c is a decimal digit or the decimal point '.'.
func IsNumeric[C Char](c C) bool {
	return IsDigit(c) || c == C('.')
}

// IsAlpha reports whether c is a letter.
func IsAlpha[C Char](c C) bool {
	if 0 <= c && c < 0x80 {
		return _ctype[c]&(ctUpper|ctLower) != 0
	}
	return unicode.IsLetter(rune(c))
}

// IsAlphaNum reports whether c is a letter or a decimal digit.
func IsAlphaNum[C Char](c C) bool {
	if 0 <= c && c < 0x80 {
		return _ctype[c]&(ctUpper|ctLower|ctDigit) != 0
	}
	return unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c))
}

// IsPrintable reports whether c is printable, space included.
func IsPrintable[C Char](c C) bool {
	if 0 <= c && c < 0x80 {
		return _ctype[c]&ctPrint != 0
	}
	return unicode.IsPrint(rune(c))
}

// IsWhitespace reports whether c is a white space character.
func IsWhitespace[C Char](c C) bool {
	if 0 <= c && c < 0x80 {
		return _ctype[c]&ctSpace != 0
	}
	return unicode.IsSpace(rune(c))
}

// IsControlChar reports whether c is a control character.
func IsControlChar[C Char](c C) bool {
	if 0 <= c && c < 0x80 {
		return _ctype[c]&ctCntrl != 0
	}
	return unicode.IsControl(rune(c))
}

// IsExtendedASCII reports whether c lies outside the 7-bit ASCII range.
func IsExtendedASCII[C Char](c C) bool {
	return c < 0 || c > 0x7F
}

// ToUpper maps c to upper case. Characters with no case mapping, and
// mappings that do not fit the character width, return c unchanged.
func ToUpper[C Char](c C) C {
	if 0 <= c && c < 0x80 {
		return C(_upper[c])
	}
	r := unicode.ToUpper(rune(c))
	if u := C(r); rune(u) == r {
		return u
	}
	return c
}

// ToLower maps c to lower case. Characters with no case mapping, and
// mappings that do not fit the character width, return c unchanged.
func ToLower[C Char](c C) C {
	if 0 <= c && c < 0x80 {
		return C(_lower[c])
	}
	r := unicode.ToLower(rune(c))
	if l := C(r); rune(l) == r {
		return l
	}
	return c
}

// ForwardSlashToBackslash returns '\' if c is '/', otherwise c.
func ForwardSlashToBackslash[C Char](c C) C {
	if c == C('/') {
		return C('\\')
	}
	return c
}

// IsWildcardFileChar reports whether c is one of the wildcard
// characters '*' or '?'.
func IsWildcardFileChar[C Char](c C) bool {
	for _, m := range wildcardChars {
		if c == C(m.special) {
			return true
		}
	}
	return false
}

// IsGoodFileChar reports whether c is valid in a portable file name.
// Wildcards are rejected.
func IsGoodFileChar[C Char](c C) bool {
	return IsGoodFileCharEx(c, NoWildcards)
}

// IsGoodFileCharWildcardsOK is like [IsGoodFileChar] but accepts the
// wildcard characters '*' and '?'.
func IsGoodFileCharWildcardsOK[C Char](c C) bool {
	return IsGoodFileCharEx(c, WildcardsOK)
}

// IsGoodFileCharEx reports whether c is valid in a portable file name.
// Control characters and the reserved characters : " < > | / are always
// rejected; wildcards are rejected unless allowWildcards says otherwise.
func IsGoodFileCharEx[C Char](c C, allowWildcards AllowWildcards) bool {
	if IsControlChar(c) {
		return false
	}
	for _, m := range badFileChars {
		if c == C(m.special) {
			return false
		}
	}
	if allowWildcards == NoWildcards && IsWildcardFileChar(c) {
		return false
	}
	return true
}

// ToGoodFileChar repairs c for use in a file name, leaving wildcards
// unchanged.
func ToGoodFileChar[C Char](c C) C {
	return ToGoodFileCharEx(c, KeepWildcards)
}

// ToGoodFileCharConvertWildcards repairs c for use in a file name,
// replacing wildcards as well.
func ToGoodFileCharConvertWildcards[C Char](c C) C {
	return ToGoodFileCharEx(c, ReplaceWildcards)
}

// ToGoodFileCharEx repairs c for use in a file name. Control characters
// map to '!', reserved characters map to their fixed replacements, and
// wildcards map to theirs when convertWildcards is ReplaceWildcards.
// Exactly one rule fires; every other character is returned unchanged.
func ToGoodFileCharEx[C Char](c C, convertWildcards ConvertWildcards) C {
	// Convert any control characters
	if IsControlChar(c) {
		return C('!')
	}

	// Convert any invalid chars
	for _, m := range badFileChars {
		if c == C(m.special) {
			return C(m.replacement)
		}
	}

	// If converting wildcards, check them too
	if convertWildcards == ReplaceWildcards {
		for _, m := range wildcardChars {
			if c == C(m.special) {
				return C(m.replacement)
			}
		}
	}

	// Character requires no conversion
	return c
}
