// Copyright 2023 Pete Isensee. All rights reserved.
// Use of this source code is governed by the MIT license.

package strutil_test

import (
	"fmt"

	"github.com/pkisensee/strutil"
)

func ExampleGetXMLSafe() {
	fmt.Println(strutil.GetXMLSafe("a & b < c"))
	fmt.Println(strutil.GetXMLSafe(`say "hello"`))
	// Output:
	// a &amp; b &lt; c
	// say &quot;hello&quot;
}

func ExampleGetTrimmed() {
	fmt.Printf("%q\n", strutil.GetTrimmed("  hi  ", " "))
	fmt.Printf("%q\n", strutil.GetTrimmed("   ", " "))
	fmt.Printf("%q\n", strutil.GetTrimmed("xxhixx", "x"))
	// Output:
	// "hi"
	// ""
	// "hi"
}

func ExampleIsNumeric() {
	fmt.Println(strutil.IsNumeric("-3.5"))
	fmt.Println(strutil.IsNumeric("123"))
	fmt.Println(strutil.IsNumeric("12a"))
	fmt.Println(strutil.IsNumeric(""))
	// Output:
	// true
	// true
	// false
	// false
}

func ExampleGetGoodFileName() {
	fmt.Println(strutil.GetGoodFileName("time: 3 < 4?", strutil.KeepWildcards))
	fmt.Println(strutil.GetGoodFileName("*.txt", strutil.ReplaceWildcards))
	fmt.Println(strutil.GetGoodFileName("*.txt", strutil.RemoveWildcards))
	// Output:
	// time- 3 ( 4?
	// +.txt
	// .txt
}

func ExampleGetDurationStr() {
	fmt.Println(strutil.GetDurationStr(45))
	fmt.Println(strutil.GetDurationStr(3661))
	fmt.Println(strutil.GetDurationStr(259200))
	// Output:
	// 00m:45s
	// 01h:01m:01s
	// 3d:00h:00m:00s
}

func ExampleStrList() {
	var l strutil.StrList
	l.Append("a", "", "b")
	fmt.Println(l.ContainsEmptyStrings())
	fmt.Println(l.CharCount())
	fmt.Println(l.Contains("b"))
	// Output:
	// true
	// 2
	// true
}

func ExampleToGoodFileName() {
	name := []byte("report: draft?")
	name = strutil.ToGoodFileName(name, strutil.ReplaceWildcards)
	fmt.Println(string(name))
	// Output:
	// report- draft
}

func ExampleGetUpper() {
	fmt.Println(strutil.GetUpper("café"))
	fmt.Println(strutil.GetLower("ΑΒΔ"))
	// Output:
	// CAFÉ
	// αβδ
}

func ExampleIsExtendedASCII() {
	fmt.Println(strutil.IsExtendedASCII("éàü"))
	fmt.Println(strutil.IsExtendedASCII("héllo"))
	// Output:
	// true
	// false
}

func ExampleToXMLSafe() {
	s := []rune("1 < 2 & 2 > 1")
	fmt.Println(string(strutil.ToXMLSafe(s)))
	// Output:
	// 1 &lt; 2 &amp; 2 &gt; 1
}
