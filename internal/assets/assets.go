// The assets package decodes the game's proprietary data files into typed,
// read-only in-memory tables: keyed template text, the character creation
// quiz, class generation and definition tables, dungeon descriptions,
// artifact and trade dialogue, name chunks, spell records, and the world map
// masks and terrain. It also implements the rule-driven name synthesis that
// composes NPC names from the decoded chunk table.
//
// The formats are fixed and undocumented, so every decoder reproduces the
// original layouts byte for byte. A Library is populated once by a Loader and
// is read-only afterward; it can be shared freely between goroutines.
package assets

import (
	"errors"
	"strings"
)

// ErrFormat is returned when a data file does not match its expected layout.
// The formats are frozen, so a mismatch means the wrong game version or
// corrupted data, and initialization fails rather than degrading.
var ErrFormat = errors.New("malformed game data")

// Random is the source of randomness consumed by name synthesis. One value
// is drawn per weighted decision; no statistical property is required beyond
// uniformity over the modulus applied at each call site. Callers that need
// reproducible names must supply identically seeded generators and must not
// interleave unrelated draws.
type Random interface {
	Next() uint32
}

// RandomFunc adapts a plain function to the Random interface.
type RandomFunc func() uint32

func (f RandomFunc) Next() uint32 { return f() }

// ClassCategory is the broad group a character class belongs to.
type ClassCategory int

const (
	CategoryMage ClassCategory = iota
	CategoryThief
	CategoryWarrior
)

func (c ClassCategory) String() string {
	switch c {
	case CategoryMage:
		return "Mage"
	case CategoryThief:
		return "Thief"
	case CategoryWarrior:
		return "Warrior"
	default:
		return "Unknown"
	}
}

// splitLines splits text on bare newlines, keeping any carriage returns as
// part of the line content. A trailing newline at the end of input does not
// produce a phantom empty final line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// stripChars removes every occurrence of the characters in cutset from s.
func stripChars(s, cutset string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(cutset, r) {
			return -1
		}
		return r
	}, s)
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
