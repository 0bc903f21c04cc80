// Package english parses English number words such as
// "one hundred forty-six thousand five hundred twenty-two" into integers.
//
// The grammar is assembled entirely from the combinators in package parser
// and inherits their left-biased, non-backtracking alternation. Because
// OneToNine is tried before TenToNineteen, "seventeen" parses as 7 with
// "teen" left over, and "eighty" parses as 8 with "y" left over.
package english

import (
	"github.com/dhamidi/numerals/parser"
)

// OneToNine matches the digit words "one" to "nine".
var OneToNine = parser.Choice(
	parser.Literal("one", 1),
	parser.Literal("two", 2),
	parser.Literal("three", 3),
	parser.Literal("four", 4),
	parser.Literal("five", 5),
	parser.Literal("six", 6),
	parser.Literal("seven", 7),
	parser.Literal("eight", 8),
	parser.Literal("nine", 9),
)

// TenToNineteen matches "ten" to "nineteen".
var TenToNineteen = parser.Choice(
	parser.Literal("ten", 10),
	parser.Literal("eleven", 11),
	parser.Literal("twelve", 12),
	parser.Literal("thirteen", 13),
	parser.Literal("fourteen", 14),
	parser.Literal("fifteen", 15),
	parser.Literal("sixteen", 16),
	parser.Literal("seventeen", 17),
	parser.Literal("eighteen", 18),
	parser.Literal("nineteen", 19),
)

// HigherTens matches a tens word, optionally followed by a hyphen and a
// digit word: "thirty" is 30, "thirty-two" is 32.
func HigherTens(name string, value int) parser.Parser[int] {
	return parser.Then(parser.Literal(name, value), func(tens int) parser.Parser[int] {
		return parser.Or(
			parser.Next(parser.Char('-'),
				parser.Then(OneToNine, func(ones int) parser.Parser[int] {
					return parser.Return(tens + ones)
				})),
			parser.Return(tens),
		)
	})
}

// OneToNinetyNine matches 1 to 99, trying the digit words first.
var OneToNinetyNine = parser.Choice(
	OneToNine,
	TenToNineteen,
	HigherTens("twenty", 20),
	HigherTens("thirty", 30),
	HigherTens("forty", 40),
	HigherTens("fifty", 50),
	HigherTens("sixty", 60),
	HigherTens("seventy", 70),
	HigherTens("eighty", 80),
	HigherTens("ninety", 90),
)

// OneHundredTo999 matches "<1-9> hundred <1-99>". A bare "two hundred"
// does not match.
var OneHundredTo999 = scaled(OneToNine, "hundred", 100, OneToNinetyNine)

// OneTo999 matches a hundreds phrase or falls back to OneToNinetyNine.
var OneTo999 = parser.Or(OneHundredTo999, OneToNinetyNine)

// OneTo999999 matches "<1-999> thousand <1-999>" or falls back to OneTo999.
var OneTo999999 = parser.Or(scaled(OneTo999, "thousand", 1000, OneTo999), OneTo999)

// Number is the grammar's entry point.
var Number = OneTo999999

// scaled matches "<lead> <word> <rest>" with single whitespace characters
// between the parts and yields lead*multiplier + rest.
func scaled(lead parser.Parser[int], word string, multiplier int, rest parser.Parser[int]) parser.Parser[int] {
	return parser.Then(lead, func(n int) parser.Parser[int] {
		return parser.Next(parser.Space,
			parser.Next(parser.Literal(word, 0),
				parser.Next(parser.Space,
					parser.Then(rest, func(m int) parser.Parser[int] {
						return parser.Return(n*multiplier + m)
					}))))
	})
}

// Parse reads an English number between one and 999,999 from the start of
// input.
func Parse(input string) (value int, remaining string, ok bool) {
	res, ok := Number.Parse(input)
	if !ok {
		return 0, "", false
	}
	return res.Value, res.Remaining, true
}
