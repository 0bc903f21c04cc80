package parser

import (
	"unicode"
	"unicode/utf8"
)

// Item consumes the first character of the input.
// It fails on empty input.
func Item() Parser[rune] {
	return func(input string) (Result[rune], bool) {
		if input == "" {
			return Result[rune]{}, false
		}
		r, size := utf8.DecodeRuneInString(input)
		return Result[rune]{Value: r, Remaining: input[size:]}, true
	}
}

// Sat consumes one character if it satisfies pred.
func Sat(pred func(rune) bool) Parser[rune] {
	return Then(Item(), func(c rune) Parser[rune] {
		if pred(c) {
			return Return(c)
		}
		return Fail[rune]()
	})
}

// Char consumes exactly the character c.
func Char(c rune) Parser[rune] {
	return Sat(func(r rune) bool { return r == c })
}

// Literal matches word verbatim and yields value.
func Literal[T any](word string, value T) Parser[T] {
	if word == "" {
		return Return(value)
	}
	first, size := utf8.DecodeRuneInString(word)
	return Next(Char(first), Literal(word[size:], value))
}

var (
	// Letter consumes one Unicode letter.
	Letter = Sat(unicode.IsLetter)
	// Digit consumes one decimal digit.
	Digit = Sat(unicode.IsDigit)
	// Space consumes one whitespace character.
	Space = Sat(unicode.IsSpace)
)
