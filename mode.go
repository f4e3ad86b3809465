package niqqud

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects what Strip removes.
type Mode uint8

const (
	Plain    Mode = iota // diacritics only, as Remove
	Thorough             // diacritics and Hebrew quotes, as RemoveThorough
)

// ErrUnknownMode is returned by ParseMode for names other than "plain" and
// "thorough".
var ErrUnknownMode = errors.New("unknown removal mode")

func (m Mode) String() string {
	switch m {
	case Plain:
		return "plain"
	case Thorough:
		return "thorough"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode returns the mode named by s, ignoring case and surrounding space.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain":
		return Plain, nil
	case "thorough":
		return Thorough, nil
	}
	return Plain, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Strip removes from s what m selects. Modes other than Thorough behave as
// Plain.
func Strip(s string, m Mode) string {
	if m == Thorough {
		return RemoveThorough(s)
	}
	return Remove(s)
}

// Has reports whether Strip(s, m) would change s.
func (m Mode) Has(s string) bool {
	if m == Thorough {
		return strings.ContainsFunc(s, isDiacriticOrSpecial)
	}
	return HasDiacritics(s)
}
