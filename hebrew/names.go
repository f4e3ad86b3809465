package hebrew

// Names for U+0591..U+05C7. Unassigned slots are empty.
var markNames = [0x05C7 - 0x0591 + 1]string{
	"ETNAHTA",                 // 0591
	"SEGOL",                   // 0592 accent
	"SHALSHELET",              // 0593
	"ZAQEF QATAN",             // 0594
	"ZAQEF GADOL",             // 0595
	"TIPEHA",                  // 0596
	"REVIA",                   // 0597
	"ZARQA",                   // 0598
	"PASHTA",                  // 0599
	"YETIV",                   // 059A
	"TEVIR",                   // 059B
	"GERESH",                  // 059C accent
	"GERESH MUQDAM",           // 059D
	"GERSHAYIM",               // 059E accent
	"QARNEY PARA",             // 059F
	"TELISHA GEDOLA",          // 05A0
	"PAZER",                   // 05A1
	"ATNAH HAFUKH",            // 05A2
	"MUNAH",                   // 05A3
	"MAHAPAKH",                // 05A4
	"MERKHA",                  // 05A5
	"MERKHA KEFULA",           // 05A6
	"DARGA",                   // 05A7
	"QADMA",                   // 05A8
	"TELISHA QETANA",          // 05A9
	"YERAH BEN YOMO",          // 05AA
	"OLE",                     // 05AB
	"ILUY",                    // 05AC
	"DEHI",                    // 05AD
	"ZINOR",                   // 05AE
	"MASORA CIRCLE",           // 05AF
	"SHEVA",                   // 05B0
	"HATAF SEGOL",             // 05B1
	"HATAF PATAH",             // 05B2
	"HATAF QAMATS",            // 05B3
	"HIRIQ",                   // 05B4
	"TSERE",                   // 05B5
	"SEGOL",                   // 05B6 point
	"PATAH",                   // 05B7
	"QAMATS",                  // 05B8
	"HOLAM",                   // 05B9
	"HOLAM HASER FOR VAV",     // 05BA
	"QUBUTS",                  // 05BB
	"DAGESH OR MAPIQ",         // 05BC
	"METEG",                   // 05BD
	"PUNCTUATION MAQAF",       // 05BE
	"RAFE",                    // 05BF
	"PUNCTUATION PASEQ",       // 05C0
	"SHIN DOT",                // 05C1
	"SIN DOT",                 // 05C2
	"PUNCTUATION SOF PASUQ",   // 05C3
	"UPPER DOT",               // 05C4
	"LOWER DOT",               // 05C5
	"PUNCTUATION NUN HAFUKHA", // 05C6
	"QAMATS QATAN",            // 05C7
}

var letterNames = [0x05EA - 0x05D0 + 1]string{
	"ALEF",
	"BET",
	"GIMEL",
	"DALET",
	"HE",
	"VAV",
	"ZAYIN",
	"HET",
	"TET",
	"YOD",
	"FINAL KAF",
	"KAF",
	"LAMED",
	"FINAL MEM",
	"MEM",
	"FINAL NUN",
	"NUN",
	"SAMEKH",
	"AYIN",
	"FINAL PE",
	"PE",
	"FINAL TSADI",
	"TSADI",
	"QOF",
	"RESH",
	"SHIN",
	"TAV",
}

var specialNames = map[rune]string{
	0x05EF: "YOD TRIANGLE",
	0x05F0: "LIGATURE YIDDISH DOUBLE VAV",
	0x05F1: "LIGATURE YIDDISH VAV YOD",
	0x05F2: "LIGATURE YIDDISH DOUBLE YOD",
	0x05F3: "PUNCTUATION GERESH",
	0x05F4: "PUNCTUATION GERSHAYIM",
}

// Presentation forms, mostly letters with dagesh. Some letters have no
// encoded form with dagesh; U+FB37, U+FB3D, U+FB3F, U+FB42 and U+FB45 are
// unassigned.
var presentationNames = map[rune]string{
	0xFB1D: "YOD WITH HIRIQ",
	0xFB1E: "JUDEO-SPANISH VARIKA",
	0xFB1F: "LIGATURE YIDDISH YOD YOD PATAH",
	0xFB20: "ALTERNATIVE AYIN",
	0xFB21: "WIDE ALEF",
	0xFB22: "WIDE DALET",
	0xFB23: "WIDE HE",
	0xFB24: "WIDE KAF",
	0xFB25: "WIDE LAMED",
	0xFB26: "WIDE FINAL MEM",
	0xFB27: "WIDE RESH",
	0xFB28: "WIDE TAV",
	0xFB29: "ALTERNATIVE PLUS SIGN",
	0xFB2A: "SHIN WITH SHIN DOT",
	0xFB2B: "SHIN WITH SIN DOT",
	0xFB2C: "SHIN WITH DAGESH AND SHIN DOT",
	0xFB2D: "SHIN WITH DAGESH AND SIN DOT",
	0xFB2E: "ALEF WITH PATAH",
	0xFB2F: "ALEF WITH QAMATS",
	0xFB30: "ALEF WITH MAPIQ",
	0xFB31: "BET WITH DAGESH",
	0xFB32: "GIMEL WITH DAGESH",
	0xFB33: "DALET WITH DAGESH",
	0xFB34: "HE WITH MAPIQ",
	0xFB35: "VAV WITH DAGESH",
	0xFB36: "ZAYIN WITH DAGESH",
	0xFB38: "TET WITH DAGESH",
	0xFB39: "YOD WITH DAGESH",
	0xFB3A: "FINAL KAF WITH DAGESH",
	0xFB3B: "KAF WITH DAGESH",
	0xFB3C: "LAMED WITH DAGESH",
	0xFB3E: "MEM WITH DAGESH",
	0xFB40: "NUN WITH DAGESH",
	0xFB41: "SAMEKH WITH DAGESH",
	0xFB43: "FINAL PE WITH DAGESH",
	0xFB44: "PE WITH DAGESH",
	0xFB46: "TSADI WITH DAGESH",
	0xFB47: "QOF WITH DAGESH",
	0xFB48: "RESH WITH DAGESH",
	0xFB49: "SHIN WITH DAGESH",
	0xFB4A: "TAV WITH DAGESH",
	0xFB4B: "VAV WITH HOLAM",
	0xFB4C: "BET WITH RAFE",
	0xFB4D: "KAF WITH RAFE",
	0xFB4E: "PE WITH RAFE",
	0xFB4F: "LIGATURE ALEF LAMED",
}

// Name returns the Unicode name of r with the leading "HEBREW" and the group
// word (LETTER, POINT, ACCENT) dropped, e.g. "QAMATS" for U+05B8. It returns
// "" for unassigned codepoints and for anything outside the Hebrew block and
// its presentation forms.
func Name(r rune) string {
	switch {
	case r >= 0x0591 && r <= 0x05C7:
		return markNames[r-0x0591]
	case r >= 0x05D0 && r <= 0x05EA:
		return letterNames[r-0x05D0]
	case r >= 0x05EB && r <= 0x05FF:
		return specialNames[r]
	case r >= 0xFB1D && r <= 0xFB4F:
		return presentationNames[r]
	}
	return ""
}
