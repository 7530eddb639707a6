// Copyright 2023 Pete Isensee. All rights reserved.
// Use of this source code is governed by the MIT license.

// gentables generates the classic-locale ASCII lookup tables used by the
// charutil package. The tables must be regenerated if this code is
// changed (`go generate` at the repository root).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"unicode"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/term"
	"golang.org/x/text/unicode/rangetable"
)

func init() {
	log.SetPrefix("gentables: ")
	log.SetFlags(log.Lshortfile)
	log.SetOutput(os.Stdout)
}

// Classification bits, mirrored in the generated file.
const (
	ctUpper uint8 = 1 << iota
	ctLower
	ctDigit
	ctSpace
	ctPunct
	ctCntrl
	ctPrint
)

// The classic "C" locale rules over the ASCII range. These are the
// source of truth for the generated tables; buildCtype cross-checks
// them against the unicode package before anything is written.
func classicUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
func classicLower(c byte) bool { return 'a' <= c && c <= 'z' }
func classicDigit(c byte) bool { return '0' <= c && c <= '9' }
func classicCntrl(c byte) bool { return c <= 0x1F || c == 0x7F }
func classicPrint(c byte) bool { return 0x20 <= c && c <= 0x7E }

func classicSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func classicPunct(c byte) bool {
	return classicPrint(c) && c != ' ' &&
		!classicUpper(c) && !classicLower(c) && !classicDigit(c)
}

func buildCtype() ([256]uint8, error) {
	var tab [256]uint8
	for c := 0; c < 0x80; c++ {
		b := byte(c)
		var v uint8
		if classicUpper(b) {
			v |= ctUpper
		}
		if classicLower(b) {
			v |= ctLower
		}
		if classicDigit(b) {
			v |= ctDigit
		}
		if classicSpace(b) {
			v |= ctSpace
		}
		if classicPunct(b) {
			v |= ctPunct
		}
		if classicCntrl(b) {
			v |= ctCntrl
		}
		if classicPrint(b) {
			v |= ctPrint
		}
		tab[c] = v
	}
	// Entries above 0x7F stay zero: the unicode package classifies
	// those characters at runtime.
	if err := verifyCtype(&tab); err != nil {
		return tab, err
	}
	return tab, nil
}

// verifyCtype cross-checks the classic rules against the unicode
// package over the ASCII range, where the two rule sets coincide.
func verifyCtype(tab *[256]uint8) error {
	letters := rangetable.Merge(unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo)
	checks := map[string]struct {
		bit uint8
		ref func(rune) bool
	}{
		"upper": {ctUpper, unicode.IsUpper},
		"lower": {ctLower, unicode.IsLower},
		"digit": {ctDigit, unicode.IsDigit},
		"space": {ctSpace, unicode.IsSpace},
		"cntrl": {ctCntrl, unicode.IsControl},
		"print": {ctPrint, unicode.IsPrint},
		"alpha": {ctUpper | ctLower, func(r rune) bool { return unicode.Is(letters, r) }},
	}
	names := maps.Keys(checks)
	slices.Sort(names)
	for _, name := range names {
		check := checks[name]
		for c := rune(0); c < 0x80; c++ {
			if got, want := tab[c]&check.bit != 0, check.ref(c); got != want {
				return fmt.Errorf("ctype table %s mismatch at %q: table %v, unicode %v",
					name, c, got, want)
			}
		}
	}
	return nil
}

func buildCaseTables() (upper, lower [256]byte) {
	for c := 0; c < 256; c++ {
		upper[c] = byte(c)
		lower[c] = byte(c)
		if classicLower(byte(c)) {
			upper[c] = byte(c) &^ 0x20
		}
		if classicUpper(byte(c)) {
			lower[c] = byte(c) | 0x20
		}
	}
	return upper, lower
}

// verifyCaseMapping sweeps the whole rune range validating the
// assumptions charutil makes about the unicode package's simple case
// mappings: repairing case is stable, and any mapping that leaves the
// Latin-1 range is detectable by a conversion round trip.
func verifyCaseMapping() error {
	var bar *progressbar.ProgressBar
	if term.IsTerminal(int(os.Stdout.Fd())) {
		bar = progressbar.Default(int64(unicode.MaxRune))
	} else {
		bar = progressbar.DefaultSilent(int64(unicode.MaxRune))
	}
	narrowOverflows := 0
	for r := rune(0); r <= unicode.MaxRune; r++ {
		bar.Add(1)
		u := unicode.ToUpper(r)
		if uu := unicode.ToUpper(u); uu != u {
			return fmt.Errorf("unicode.ToUpper not stable at %q: %q -> %q", r, u, uu)
		}
		l := unicode.ToLower(r)
		if ll := unicode.ToLower(l); ll != l {
			return fmt.Errorf("unicode.ToLower not stable at %q: %q -> %q", r, l, ll)
		}
		if r < 0x100 && (u > 0xFF || l > 0xFF) {
			narrowOverflows++
		}
	}
	// 'ÿ' (0xFF -> 0x178) and 'µ' (0xB5 -> 0x39C) escape the byte range.
	log.Printf("case mappings leaving the narrow width: %d", narrowOverflows)
	return nil
}

func writeByteRows(w *bytes.Buffer, vals []int) {
	line := "\t"
	for _, v := range vals {
		tok := fmt.Sprintf("%d, ", v)
		if len(line)+len(tok) > 78 && line != "\t" {
			w.WriteString(line[:len(line)-1] + "\n")
			line = "\t"
		}
		line += tok
	}
	w.WriteString(line[:len(line)-1] + "\n")
}

func render(ctype [256]uint8, upper, lower [256]byte) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(`// Code generated by running "go generate" in github.com/pkisensee/strutil.
// DO NOT EDIT.

package charutil

// Classification bits for the classic "C" locale ASCII table below.
const (
	ctUpper uint8 = 1 << iota
	ctLower
	ctDigit
	ctSpace
	ctPunct
	ctCntrl
	ctPrint
)

// _ctype classifies the ASCII range per the classic "C" locale.
// Entries above 0x7F are zero: classification of those characters is
// deferred to the unicode package.
var _ctype = [256]uint8{
`)
	vals := make([]int, 256)
	for i, v := range ctype {
		vals[i] = int(v)
	}
	writeByteRows(&b, vals)
	b.WriteString(`}

// _upper maps ASCII lower case letters to upper case and leaves every
// other entry unchanged.
var _upper = [256]byte{
`)
	for i, v := range upper {
		vals[i] = int(v)
	}
	writeByteRows(&b, vals)
	b.WriteString(`}

// _lower maps ASCII upper case letters to lower case and leaves every
// other entry unchanged.
var _lower = [256]byte{
`)
	for i, v := range lower {
		vals[i] = int(v)
	}
	writeByteRows(&b, vals)
	b.WriteString("}\n")

	return format.Source(b.Bytes())
}

func realMain() error {
	dir := flag.String("dir", "charutil", "write the generated table file to this directory")
	dryRun := flag.Bool("dry-run", false, "print the generated tables instead of writing them")
	skipVerify := flag.Bool("skip-verify", false, "skip the full-range case mapping sweep")
	flag.Parse()

	ctype, err := buildCtype()
	if err != nil {
		return err
	}
	upper, lower := buildCaseTables()

	if !*skipVerify {
		if err := verifyCaseMapping(); err != nil {
			return err
		}
	}

	src, err := render(ctype, upper, lower)
	if err != nil {
		return err
	}
	if *dryRun {
		_, err := os.Stdout.Write(src)
		return err
	}

	path := filepath.Join(*dir, "tables.go")
	if prev, err := os.ReadFile(path); err == nil && bytes.Equal(prev, src) {
		log.Printf("%s: up to date", path)
		return nil
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	return nil
}

func main() {
	if err := realMain(); err != nil {
		log.Fatal(err)
	}
}
