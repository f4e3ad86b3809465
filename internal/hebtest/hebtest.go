/*
Package hebtest generates random text for tests of niqqud: Hebrew letters
interspersed with points, accents, quotes and non-Hebrew runes of all UTF-8
encoding lengths.
*/
package hebtest

import (
	"math/rand"
	"strings"

	"cloudeng.io/text/testing/testtext"
)

// Generator produces random test strings. It is not safe for concurrent use.
type Generator struct {
	rnd   *rand.Rand
	other *testtext.Random
}

// New returns a Generator. Runes from the Hebrew block are drawn
// deterministically from seed. Non-Hebrew runes come from testtext, which
// seeds itself from the clock, so tests must report the generated input on
// failure.
func New(seed int64) *Generator {
	return &Generator{
		rnd:   rand.New(rand.NewSource(seed)),
		other: testtext.NewRandom(),
	}
}

// Letter returns a random consonant U+05D0..U+05EA.
func (g *Generator) Letter() rune {
	return 0x05D0 + rune(g.rnd.Intn(0x05EA-0x05D0+1))
}

// Diacritic returns a random codepoint of U+0590..U+05CF, assigned or not.
func (g *Generator) Diacritic() rune {
	return 0x0590 + rune(g.rnd.Intn(0x05CF-0x0590+1))
}

// Special returns a random codepoint of U+05EB..U+05FF, assigned or not.
func (g *Generator) Special() rune {
	return 0x05EB + rune(g.rnd.Intn(0x05FF-0x05EB+1))
}

// Gap returns a codepoint just outside the Hebrew block, U+058F or one of
// U+0600..U+060F.
func (g *Generator) Gap() rune {
	if g.rnd.Intn(2) == 0 {
		return 0x058F
	}
	return 0x0600 + rune(g.rnd.Intn(0x10))
}

// Mixed returns a string of n runes. Roughly a third are letters, a third
// diacritics, and the rest split between specials, neighbours of the Hebrew
// ranges and non-Hebrew runes.
func (g *Generator) Mixed(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		switch k := g.rnd.Intn(12); {
		case k < 4:
			sb.WriteRune(g.Letter())
		case k < 8:
			sb.WriteRune(g.Diacritic())
		case k < 10:
			sb.WriteRune(g.Special())
		case k < 11:
			sb.WriteRune(g.Gap())
		default:
			sb.WriteString(g.other.AllRuneLens(1))
		}
	}
	return sb.String()
}

// Diacritics returns a string of n diacritics.
func (g *Generator) Diacritics(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteRune(g.Diacritic())
	}
	return sb.String()
}

// Foreign returns a string of n runes none of which is Hebrew.
func (g *Generator) Foreign(n int) string {
	return g.other.AllRuneLens(n)
}
