// Package config holds the interpreter's ambient settings: the free-variable
// alphabet, reduction limits, and the optional on-disk config file used by
// cmd/church.
package config

import "strings"

// Alphabet is the ordered 60-glyph alphabet used both to print a variable
// id and to parse a free-variable identifier back into one: 24 Greek
// letters, then a-z, then 0-9.
var Alphabet = []rune{
	'α', 'β', 'γ', 'δ', 'ε', 'ζ', 'η', 'θ', 'ι', 'κ',
	'μ', 'ν', 'ξ', 'ο', 'π', 'ρ', 'σ', 'ς', 'τ', 'υ', 'φ', 'χ', 'ψ', 'ω',
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
	'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
}

var alphabetIndex = func() map[rune]int {
	m := make(map[rune]int, len(Alphabet))
	for i, r := range Alphabet {
		m[r] = i
	}
	return m
}()

// PrintIndex renders a non-negative variable id in the base-Alphabet
// encoding: repeatedly append Alphabet[n%60], then n /= 60, until n == 0.
func PrintIndex(n int) string {
	base := len(Alphabet)
	var b strings.Builder
	for {
		b.WriteRune(Alphabet[n%base])
		n /= base
		if n == 0 {
			break
		}
	}
	return b.String()
}

// ParseIndex parses an identifier back into the variable id it encodes,
// reversing PrintIndex: read the glyphs from last to first, accumulating
// in base 60. Returns false if s contains a glyph outside the alphabet.
func ParseIndex(s string) (int, bool) {
	base := len(Alphabet)
	runes := []rune(s)
	counter := 0
	for i := len(runes) - 1; i >= 0; i-- {
		idx, ok := alphabetIndex[runes[i]]
		if !ok {
			return 0, false
		}
		counter = counter*base + idx
	}
	return counter, true
}
