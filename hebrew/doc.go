/*
Package hebrew describes the layout of the Unicode Hebrew block as far as
package niqqud needs it.

It provides range tables for the regions niqqud filters on, a per-codepoint
classification, and character names for diagnostic output. Nothing in this
package changes text.

Reference: https://www.unicode.org/charts/PDF/U0590.pdf
*/
package hebrew
