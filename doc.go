// Copyright 2023 Pete Isensee. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package strutil provides locale-independent character and string
// classification and transformation utilities: whole-sequence predicates,
// file-name sanitization, XML text escaping, edge trimming, case
// conversion, duration formatting, and a small ordered string list.
//
// Sequence operations come in two forms. The Get* functions take and
// return strings. The To* functions are generic over the two character
// widths ([]byte and []rune) and edit the caller's buffer, returning the
// adjusted slice when the length may change.
//
// Per-character classification lives in the [charutil] subpackage and is
// never affected by the process or user locale.
//
// [charutil]: https://pkg.go.dev/github.com/pkisensee/strutil/charutil
package strutil
