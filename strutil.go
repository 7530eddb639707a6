package strutil

// gen.go is package main behind the gen tag, so it must run in file mode.
//go:generate go run -tags=gen gen.go

import (
	"io"
	"log"
	"os"

	"github.com/pkisensee/strutil/charutil"
)

// debug enables the internal consistency checks and their log output.
const debug = false

func init() {
	log.SetFlags(log.Lshortfile)
	if debug {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}
}

// Wildcard mode selectors, re-exported from charutil so that callers of
// the sequence-level API need only this package.
type (
	AllowWildcards   = charutil.AllowWildcards
	ConvertWildcards = charutil.ConvertWildcards
)

const (
	NoWildcards = charutil.NoWildcards
	WildcardsOK = charutil.WildcardsOK

	KeepWildcards    = charutil.KeepWildcards
	ReplaceWildcards = charutil.ReplaceWildcards
	RemoveWildcards  = charutil.RemoveWildcards
)

// IsDigit reports whether s is non-empty and every character is a
// decimal digit.
func IsDigit(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !charutil.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsNumeric reports whether s is non-empty and every character is a
// decimal digit or the decimal point, with an optional single leading
// minus sign. A lone "-" is numeric: the characters after the sign are
// vacuously all numeric, matching the original CharUtil library.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	// allow leading minus sign
	if s[0] == '-' {
		s = s[1:]
	}
	for _, r := range s {
		if !charutil.IsNumeric(r) {
			return false
		}
	}
	return true
}

// IsAlphaNum reports whether s is non-empty and every character is a
// letter or a decimal digit.
func IsAlphaNum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !charutil.IsAlphaNum(r) {
			return false
		}
	}
	return true
}

// IsPrintable reports whether s is non-empty and every character is
// printable, space included.
func IsPrintable(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !charutil.IsPrintable(r) {
			return false
		}
	}
	return true
}

// IsExtendedASCII reports whether s is non-empty and every character
// lies outside the 7-bit ASCII range.
func IsExtendedASCII(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !charutil.IsExtendedASCII(r) {
			return false
		}
	}
	return true
}
