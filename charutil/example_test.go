// Copyright 2023 Pete Isensee. All rights reserved.
// Use of this source code is governed by the MIT license.

package charutil_test

import (
	"fmt"

	"github.com/pkisensee/strutil/charutil"
)

func ExampleToGoodFileChar() {
	fmt.Printf("%c\n", charutil.ToGoodFileChar(':'))
	fmt.Printf("%c\n", charutil.ToGoodFileChar('/'))
	fmt.Printf("%c\n", charutil.ToGoodFileChar('a'))
	// Output:
	// -
	// \
	// a
}

func ExampleIsGoodFileChar() {
	fmt.Println(charutil.IsGoodFileChar('a'))
	fmt.Println(charutil.IsGoodFileChar('|'))
	fmt.Println(charutil.IsGoodFileChar('*'))
	fmt.Println(charutil.IsGoodFileCharWildcardsOK('*'))
	// Output:
	// true
	// false
	// false
	// true
}

func ExampleToUpper() {
	fmt.Printf("%c\n", charutil.ToUpper('a'))
	fmt.Printf("%c\n", charutil.ToUpper('é'))
	// 'ÿ' (0xFF) upper cases outside the byte range, so the narrow
	// width leaves it unchanged.
	fmt.Printf("%#x\n", charutil.ToUpper(byte(0xFF)))
	// Output:
	// A
	// É
	// 0xff
}

func ExampleIsExtendedASCII() {
	fmt.Println(charutil.IsExtendedASCII('a'))
	fmt.Println(charutil.IsExtendedASCII('é'))
	// Output:
	// false
	// true
}
