package hebrew

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Diacritics covers the accents, points and block-local punctuation of the
// Hebrew block, U+0590..U+05CF. Membership is by range only; maqaf, paseq and
// sof pasuq fall inside it and are treated like every other mark.
var Diacritics = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0590, Hi: 0x05CF, Stride: 1},
	},
}

// Specials covers U+05EB..U+05FF, which holds the Yiddish ligatures, geresh
// and gershayim. Unassigned codepoints in this range are members as well.
var Specials = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x05EB, Hi: 0x05FF, Stride: 1},
	},
}

// Letters covers the consonants alef..tav, U+05D0..U+05EA.
var Letters = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x05D0, Hi: 0x05EA, Stride: 1},
	},
}

// PresentationForms covers the Hebrew part of the Alphabetic Presentation
// Forms block, U+FB1D..U+FB4F. These carry their points pre-composed and are
// not touched by filtering.
var PresentationForms = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0xFB1D, Hi: 0xFB4F, Stride: 1},
	},
}

// Class is the role a codepoint plays with respect to filtering.
type Class uint8

const (
	Other Class = iota
	Letter
	Diacritic
	Special
	PresentationForm
)

var classNames = [...]string{
	Other:            "other",
	Letter:           "letter",
	Diacritic:        "diacritic",
	Special:          "special",
	PresentationForm: "presentation-form",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "Class(?)"
}

// Classify returns the class of r. It is defined for every rune.
func Classify(r rune) Class {
	switch {
	case r < 0x0590:
		return Other
	case unicode.Is(Diacritics, r):
		return Diacritic
	case unicode.Is(Letters, r):
		return Letter
	case unicode.Is(Specials, r):
		return Special
	case unicode.Is(PresentationForms, r):
		return PresentationForm
	}
	return Other
}

// CombiningClass returns the canonical combining class of r, as recorded in
// the Unicode character database. Spacing characters have class 0.
func CombiningClass(r rune) uint8 {
	if !isEncodable(r) {
		return 0
	}
	return norm.NFD.PropertiesString(string(r)).CCC()
}

func isEncodable(r rune) bool {
	return r >= 0 && r <= unicode.MaxRune && (r < 0xD800 || r > 0xDFFF)
}
