// Package textcase converts identifiers between naming conventions with the
// word boundaries module authors expect.
//
// Words are separated by any character that is neither a letter nor a digit,
// by a lower case letter followed by an upper case one, and before the last
// capital of an upper case run that continues in lower case ("XMLFile" is
// "XML" and "File"). Digits continue the current word and never start a
// new one, so "ticks2seconds" is one word.
package textcase

import (
	"strings"
	"unicode"
)

type wordMode int

const (
	boundary wordMode = iota
	lower
	upper
)

// Words splits s into words.
func Words(s string) []string {
	var words []string
	for _, field := range strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		words = appendWords(words, []rune(field))
	}
	return words
}

func appendWords(words []string, field []rune) []string {
	start, mode := 0, boundary
	for i := 0; i < len(field)-1; i++ {
		c, next := field[i], field[i+1]
		nextMode := mode
		switch {
		case unicode.IsLower(c):
			nextMode = lower
		case unicode.IsUpper(c):
			nextMode = upper
		}

		switch {
		case nextMode == lower && unicode.IsUpper(next):
			words = append(words, string(field[start:i+1]))
			start, mode = i+1, boundary
		case mode == upper && unicode.IsUpper(c) && unicode.IsLower(next):
			words = append(words, string(field[start:i]))
			start, mode = i, boundary
		default:
			mode = nextMode
		}
	}
	return append(words, string(field[start:]))
}

// Snake returns s as lower case words joined by underscores.
func Snake(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// UpperCamel returns s as words that each start with a capital followed by
// lower case, with no separator.
func UpperCamel(s string) string {
	var b strings.Builder
	for _, w := range Words(s) {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}
