// Package parser provides a minimal monadic parser-combinator engine.
//
// # Overview
//
// A Parser is a pure function from an input string to either failure or a
// value paired with the input it did not consume. Larger parsers are built
// from a handful of primitives by function composition:
//
//	Fail    always fails                      (zero)
//	Return  succeeds without consuming        (unit)
//	Item    consumes one character
//	Then    sequences two parsers             (bind)
//	Or      left-biased choice                (plus)
//
// Everything else (Sat, Char, Literal, Choice, Next) is derived from these.
//
// # Failure
//
// Failure carries no diagnostic information. A parser reports it through
// the boolean result, never through an error value or a zero Result:
//
//	res, ok := parser.Item().Parse("")
//	// ok == false
//
// # Alternation
//
// Or commits to the first alternative that succeeds. There is no
// backtracking into an Or that has already produced a result, so the order
// of alternatives matters: Or(Literal("seven", 7), Literal("seventeen", 17))
// applied to "seventeen" yields 7 with "teen" left over.
//
// # Concurrency
//
// Parsers hold no mutable state. A parser value may be built once, stored in
// a package-level variable and applied concurrently from any number of
// goroutines.
package parser

import "fmt"

// Result is the outcome of a successful parse.
type Result[T any] struct {
	Value     T
	Remaining string
}

// String formats r as {value, "remaining"}. Rune values print quoted.
func (r Result[T]) String() string {
	if c, ok := any(r.Value).(rune); ok {
		return fmt.Sprintf("{%q, %q}", c, r.Remaining)
	}
	return fmt.Sprintf("{%v, %q}", r.Value, r.Remaining)
}

// Parser consumes a prefix of input. On success the returned Result holds
// the parsed value and the unconsumed suffix of input, and ok is true.
type Parser[T any] func(input string) (res Result[T], ok bool)

// Parse applies p to input.
func (p Parser[T]) Parse(input string) (Result[T], bool) {
	return p(input)
}

// Fail returns a parser that fails on every input.
func Fail[T any]() Parser[T] {
	return func(string) (Result[T], bool) {
		return Result[T]{}, false
	}
}

// Return returns a parser that always succeeds with x and consumes nothing.
func Return[T any](x T) Parser[T] {
	return func(input string) (Result[T], bool) {
		return Result[T]{Value: x, Remaining: input}, true
	}
}

// Then runs p and feeds its value to f, then runs the parser f returns on
// whatever p left over. If p fails, f is not called.
func Then[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return func(input string) (Result[U], bool) {
		res, ok := p(input)
		if !ok {
			return Result[U]{}, false
		}
		return f(res.Value)(res.Remaining)
	}
}

// Next runs p and then q, discarding the value of p.
func Next[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return Then(p, func(T) Parser[U] { return q })
}

// Or tries p and, only if p fails, tries q on the same input.
func Or[T any](p, q Parser[T]) Parser[T] {
	return func(input string) (Result[T], bool) {
		if res, ok := p(input); ok {
			return res, true
		}
		return q(input)
	}
}

// Choice folds alternatives with Or, trying them left to right.
// Choice() is Fail.
func Choice[T any](alternatives ...Parser[T]) Parser[T] {
	if len(alternatives) == 0 {
		return Fail[T]()
	}
	if len(alternatives) == 1 {
		return alternatives[0]
	}
	return Or(alternatives[0], Choice(alternatives[1:]...))
}
