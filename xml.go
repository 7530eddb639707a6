// Copyright 2023 Pete Isensee. All rights reserved.
// Use of this source code is governed by the MIT license.

package strutil

import (
	"strings"

	"github.com/pkisensee/strutil/charutil"
)

// xmlMarkup pairs an XML metacharacter with its named entity.
type xmlMarkup struct {
	symbol byte
	entity string
}

// XML metacharacters in replacement order. '&' comes first so that the
// ampersands introduced by later replacements are never re-escaped.
var xmlReplace = [...]xmlMarkup{
	{'&', "&amp;"},
	{'<', "&lt;"},
	{'>', "&gt;"},
	{'"', "&quot;"},
	{'\'', "&apos;"},
}

// xmlSpecial collects the table's symbols for strings.ContainsAny.
var xmlSpecial = func() string {
	b := make([]byte, 0, len(xmlReplace))
	for _, m := range xmlReplace {
		b = append(b, m.symbol)
	}
	return string(b)
}()

func xmlEntity[C charutil.Char](c C) string {
	for _, m := range xmlReplace {
		if c == C(m.symbol) {
			return m.entity
		}
	}
	return ""
}

// ToXMLSafe replaces every XML metacharacter in s with its named entity
// and returns the adjusted slice. The replacement is a single pass:
// entities in the output are never escaped again. If s contains no
// metacharacter it is returned unchanged.
func ToXMLSafe[C charutil.Char](s []C) []C {
	i := 0
	for ; i < len(s); i++ {
		if xmlEntity(s[i]) != "" {
			break
		}
	}
	if i == len(s) {
		return s
	}

	out := make([]C, 0, len(s)+4*len("&amp;"))
	out = append(out, s[:i]...)
	for ; i < len(s); i++ {
		e := xmlEntity(s[i])
		if e == "" {
			out = append(out, s[i])
			continue
		}
		for j := 0; j < len(e); j++ {
			out = append(out, C(e[j]))
		}
	}
	return out
}

// GetXMLSafe returns s with every XML metacharacter replaced by its
// named entity:
//
//	&  -->  &amp;
//	<  -->  &lt;
//	>  -->  &gt;
//	"  -->  &quot;
//	'  -->  &apos;
func GetXMLSafe(s string) string {
	if !strings.ContainsAny(s, xmlSpecial) {
		return s
	}

	// The metacharacters are plain ASCII so a byte scan is UTF-8 safe.
	var b strings.Builder
	b.Grow(len(s) + 4*len("&amp;"))
	for i := 0; i < len(s); i++ {
		if e := xmlEntity(s[i]); e != "" {
			b.WriteString(e)
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
