// Copyright 2023 Pete Isensee. All rights reserved.
// Use of this source code is governed by the MIT license.

package strutil

import (
	"strings"
	"testing"
)

type trimTest struct {
	s        string
	charset  string
	leading  string
	trailing string
	both     string
}

var trimTests = []trimTest{
	{"", " ", "", "", ""},
	{"  hi  ", " ", "hi  ", "  hi", "hi"},
	{"   ", " ", "", "", ""},
	{"hi", " ", "hi", "hi", "hi"},
	{"\t hi \t", " \t", "hi \t", "\t hi", "hi"},
	{"xxyyhixy", "xy", "hixy", "xxyyhi", "hi"},
	{"hi there", " ", "hi there", "hi there", "hi there"},
	{"aaa", "a", "", "", ""},
	{" h ", "h", " h ", " h ", " h "},
}

func TestGetTrimmed(t *testing.T) {
	for _, test := range trimTests {
		if got := GetTrimmedLeading(test.s, test.charset); got != test.leading {
			t.Errorf("GetTrimmedLeading(%q, %q) = %q; want: %q",
				test.s, test.charset, got, test.leading)
		}
		if got := GetTrimmedTrailing(test.s, test.charset); got != test.trailing {
			t.Errorf("GetTrimmedTrailing(%q, %q) = %q; want: %q",
				test.s, test.charset, got, test.trailing)
		}
		if got := GetTrimmed(test.s, test.charset); got != test.both {
			t.Errorf("GetTrimmed(%q, %q) = %q; want: %q",
				test.s, test.charset, got, test.both)
		}
	}
}

// The generic forms must agree with the string forms at both widths.
func TestToTrimmed(t *testing.T) {
	for _, test := range trimTests {
		if got := string(ToTrimmed([]byte(test.s), []byte(test.charset))); got != test.both {
			t.Errorf("ToTrimmed([]byte(%q), %q) = %q; want: %q",
				test.s, test.charset, got, test.both)
		}
		if got := string(ToTrimmed([]rune(test.s), []rune(test.charset))); got != test.both {
			t.Errorf("ToTrimmed([]rune(%q), %q) = %q; want: %q",
				test.s, test.charset, got, test.both)
		}
		if got := string(ToTrimmedLeading([]rune(test.s), []rune(test.charset))); got != test.leading {
			t.Errorf("ToTrimmedLeading([]rune(%q), %q) = %q; want: %q",
				test.s, test.charset, got, test.leading)
		}
		if got := string(ToTrimmedTrailing([]rune(test.s), []rune(test.charset))); got != test.trailing {
			t.Errorf("ToTrimmedTrailing([]rune(%q), %q) = %q; want: %q",
				test.s, test.charset, got, test.trailing)
		}
	}
}

// Membership semantics match strings.Trim exactly.
func TestTrimParity(t *testing.T) {
	inputs := []string{"", " x ", "zzabczz", "\t\n mixed \n\t", "----", "a-b-c"}
	charsets := []string{" ", " \t\n", "z", "-", "abc"}
	for _, s := range inputs {
		for _, set := range charsets {
			if got, want := GetTrimmed(s, set), strings.Trim(s, set); got != want {
				t.Errorf("GetTrimmed(%q, %q) = %q; strings.Trim: %q", s, set, got, want)
			}
		}
	}
}
