/*
Package niqqud removes Hebrew diacritics ("niqqud", נִקּוּד) from text.

Removal works on codepoints: every codepoint in the range U+0590..U+05CF is
dropped, everything else is kept in order. The range holds the vowel points,
the cantillation accents and a few punctuation marks local to the Hebrew
block (maqaf, paseq, sof pasuq); all of them are removed. The thorough
variant additionally drops U+05EB..U+05FF, which holds the Hebrew quotation
marks geresh (׳) and gershayim (״).

	quoted := niqqud.Remove("״שָׁלוֹם עוֹלָם״")           // "״שלום עולם״"
	unquoted := niqqud.RemoveThorough("״שָׁלוֹם עוֹלָם״") // "שלום עולם"

Text is neither normalized nor validated. Input is expected to be valid
UTF-8; all functions are safe for concurrent use.

Reference: https://www.unicode.org/charts/PDF/U0590.pdf

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package niqqud

import (
	"strings"
	"unicode"

	"github.com/npillmayer/niqqud/hebrew"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// isDiacritic reports whether c lies in U+0590..U+05CF.
func isDiacritic(c rune) bool {
	return unicode.Is(hebrew.Diacritics, c)
}

// isSpecial reports whether c lies in U+05EB..U+05FF.
func isSpecial(c rune) bool {
	return unicode.Is(hebrew.Specials, c)
}

func isDiacriticOrSpecial(c rune) bool {
	return isDiacritic(c) || isSpecial(c)
}

// Transformers are created per call; a transform.Transformer must not be
// shared between goroutines.
func diacriticRemover() transform.Transformer {
	return runes.Remove(runes.Predicate(isDiacritic))
}

func thoroughRemover() transform.Transformer {
	return runes.Remove(runes.Predicate(isDiacriticOrSpecial))
}

// Remove returns s with all Hebrew diacritics removed.
// Hebrew quotes ('״', '׳') are kept.
//
//	niqqud.Remove("נִקּוּד") == "נקוד"
//
// If s contains no diacritics, s is returned as is.
func Remove(s string) string {
	return removeString(diacriticRemover(), s)
}

// RemoveThorough returns s with all Hebrew diacritics and the Hebrew
// punctuation marks of U+05EB..U+05FF removed, among them geresh ('׳') and
// gershayim ('״').
//
//	niqqud.RemoveThorough("״גֵּרְשַׁיִם״") == "גרשים"
func RemoveThorough(s string) string {
	return removeString(thoroughRemover(), s)
}

func removeString(t transform.Transformer, s string) string {
	// runes.Remove never reports an error once the whole input is at hand,
	// and transform.String returns s itself if nothing has been removed.
	out, _, _ := transform.String(t, s)
	return out
}

// RemoveBytes is like Remove for UTF-8 encoded bytes. The result is always
// a new slice.
func RemoveBytes(b []byte) []byte {
	out, _, _ := transform.Bytes(diacriticRemover(), b)
	return out
}

// RemoveThoroughBytes is like RemoveThorough for UTF-8 encoded bytes. The
// result is always a new slice.
func RemoveThoroughBytes(b []byte) []byte {
	out, _, _ := transform.Bytes(thoroughRemover(), b)
	return out
}

// RemoveRunes is like Remove for a sequence of codepoints. The result is
// always a new slice.
func RemoveRunes(r []rune) []rune {
	return filterRunes(r, isDiacritic)
}

// RemoveThoroughRunes is like RemoveThorough for a sequence of codepoints.
// The result is always a new slice.
func RemoveThoroughRunes(r []rune) []rune {
	return filterRunes(r, isDiacriticOrSpecial)
}

func filterRunes(r []rune, drop func(rune) bool) []rune {
	out := make([]rune, 0, len(r))
	for _, c := range r {
		if !drop(c) {
			out = append(out, c)
		}
	}
	return out
}

// HasDiacritics reports whether Remove would change s.
func HasDiacritics(s string) bool {
	return strings.ContainsFunc(s, isDiacritic)
}

// HasSpecials reports whether s contains a codepoint of U+05EB..U+05FF.
func HasSpecials(s string) bool {
	return strings.ContainsFunc(s, isSpecial)
}
