package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/niqqud"
	"github.com/npillmayer/niqqud/hebrew"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runExplainCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags["trace"])
	input, err := parseExplainInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	if input == "" {
		fatalf("text or --codepoints is required")
	}
	if err := renderExplanation(input); err != nil {
		fatalf("%v", err)
	}
}

func renderExplanation(text string) error {
	return pterm.DefaultTable.WithHasHeader().WithData(explainRows(text)).Render()
}

var explainHeader = []string{"Codepoint", "Char", "Class", "Name", "CCC", "Plain", "Thorough"}

// explainRows returns a header row followed by one row per codepoint of text.
func explainRows(text string) [][]string {
	rows := [][]string{explainHeader}
	for _, r := range text {
		ccc := hebrew.CombiningClass(r)
		rows = append(rows, []string{
			fmt.Sprintf("U+%04X", r),
			displayRune(r, ccc),
			hebrew.Classify(r).String(),
			hebrew.Name(r),
			strconv.Itoa(int(ccc)),
			removedMark(niqqud.Remove(string(r)) == ""),
			removedMark(niqqud.RemoveThorough(string(r)) == ""),
		})
	}
	return rows
}

// displayRune puts combining marks on a dotted circle, so they have
// something to sit on in a table cell.
func displayRune(r rune, ccc uint8) string {
	if ccc > 0 {
		return "◌" + string(r)
	}
	if !strconv.IsPrint(r) {
		return ""
	}
	return string(r)
}

func removedMark(removed bool) string {
	if removed {
		return "x"
	}
	return ""
}

func parseExplainInput(textArg commando.ArgValue, cpFlag commando.FlagValue) (string, error) {
	cp, err := cpFlag.GetString()
	if err != nil {
		return "", fmt.Errorf("invalid --codepoints flag: %w", err)
	}
	cp = strings.TrimSpace(cp)
	if cp == "-" {
		cp = ""
	}
	if cp != "" {
		runes, err := parseCodepoints(cp)
		if err != nil {
			return "", err
		}
		return string(runes), nil
	}
	return textArg.Value, nil
}

func parseCodepoints(spec string) ([]rune, error) {
	parts := splitCSVSpace(spec)
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		r, err := parseCodepointToken(p)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parseCodepointToken(token string) (rune, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errors.New("empty codepoint token")
	}
	hex := token
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", token, err)
	}
	if u > 0x10FFFF || (u >= 0xD800 && u <= 0xDFFF) {
		return 0, fmt.Errorf("not a Unicode scalar value: %q", token)
	}
	return rune(u), nil
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
