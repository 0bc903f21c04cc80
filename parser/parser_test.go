package parser

import (
	"strings"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
)

type outcome[T any] struct {
	Res Result[T]
	OK  bool
}

func run[T any](p Parser[T], input string) outcome[T] {
	res, ok := p.Parse(input)
	return outcome[T]{Res: res, OK: ok}
}

func some[T any](value T, rest string) outcome[T] {
	return outcome[T]{Res: Result[T]{Value: value, Remaining: rest}, OK: true}
}

func none[T any]() outcome[T] {
	return outcome[T]{}
}

var inputs = []string{"", "a", "foo", "123", " x", ";x%", "twenty-five!", "héllo", "日本"}

func TestFail(t *testing.T) {
	for _, in := range inputs {
		if diff := cmp.Diff(none[int](), run(Fail[int](), in)); diff != "" {
			t.Errorf("Fail(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestReturn(t *testing.T) {
	for _, in := range inputs {
		if diff := cmp.Diff(some("x", in), run(Return("x"), in)); diff != "" {
			t.Errorf("Return(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestItem(t *testing.T) {
	tests := []struct {
		input string
		want  outcome[rune]
	}{
		{"", none[rune]()},
		{"foo", some('f', "oo")},
		{"f", some('f', "")},
		{"héllo", some('h', "éllo")},
		{"éa", some('é', "a")},
		{"日本", some('日', "本")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, run(Item(), tt.input)); diff != "" {
				t.Errorf("Item mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSat(t *testing.T) {
	tests := []struct {
		name  string
		p     Parser[rune]
		input string
		want  outcome[rune]
	}{
		{"letter", Sat(unicode.IsLetter), "foo", some('f', "oo")},
		{"digit on letters", Sat(unicode.IsDigit), "foo", none[rune]()},
		{"digit", Digit, "123", some('1', "23")},
		{"empty", Letter, "", none[rune]()},
		{"space", Space, " x", some(' ', "x")},
		{"newline", Space, "\nx", some('\n', "x")},
		{"char", Char('-'), "-six", some('-', "six")},
		{"char mismatch", Char('-'), "six", none[rune]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, run(tt.p, tt.input)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSatConsumption(t *testing.T) {
	preds := []func(rune) bool{unicode.IsLetter, unicode.IsDigit, unicode.IsSpace, unicode.IsPunct}
	for _, pred := range preds {
		for _, in := range inputs {
			item, itemOK := Item().Parse(in)
			res, ok := Sat(pred).Parse(in)
			wantOK := itemOK && pred(item.Value)
			if ok != wantOK {
				t.Errorf("Sat(%q) ok = %v, want %v", in, ok, wantOK)
				continue
			}
			if ok && res != item {
				t.Errorf("Sat(%q) = %v, want %v", in, res, item)
			}
		}
	}
}

func TestOr(t *testing.T) {
	letterOrDigit := Or(Letter, Digit)

	tests := []struct {
		input string
		want  outcome[rune]
	}{
		{"foo", some('f', "oo")},
		{"123", some('1', "23")},
		{";x%", none[rune]()},
		{"", none[rune]()},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, run(letterOrDigit, tt.input)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOrRetriesOriginalInput(t *testing.T) {
	// p consumes "ab" before failing on the third character.
	p := Next(Char('a'), Next(Char('b'), Char('x')))
	q := Literal("abc", 'q')

	for _, in := range inputs {
		want := run(p, in)
		if !want.OK {
			want = run(q, in)
		}
		if diff := cmp.Diff(want, run(Or(p, q), in)); diff != "" {
			t.Errorf("Or(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}

	if diff := cmp.Diff(some('q', "!"), run(Or(p, q), "abc!")); diff != "" {
		t.Errorf("Or(abc!) mismatch (-want +got):\n%s", diff)
	}
}

func TestOrIsLeftBiased(t *testing.T) {
	p := Or(Literal("seven", 7), Literal("seventeen", 17))
	if diff := cmp.Diff(some(7, "teen"), run(p, "seventeen")); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestChoice(t *testing.T) {
	tests := []struct {
		name  string
		p     Parser[int]
		input string
		want  outcome[int]
	}{
		{"empty", Choice[int](), "one", none[int]()},
		{"single", Choice(Literal("one", 1)), "one", some(1, "")},
		{"second", Choice(Literal("one", 1), Literal("two", 2)), "two!", some(2, "!")},
		{"first wins", Choice(Literal("t", 0), Literal("two", 2)), "two", some(0, "wo")},
		{"none", Choice(Literal("one", 1), Literal("two", 2)), "three", none[int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, run(tt.p, tt.input)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestThenSequencing(t *testing.T) {
	two := Next(Char('t'), Next(Char('w'), Next(Char('o'), Return(2))))

	if diff := cmp.Diff(some(2, " bits"), run(two, "two bits")); diff != "" {
		t.Errorf("two(two bits) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(none[int](), run(two, "four")); diff != "" {
		t.Errorf("two(four) mismatch (-want +got):\n%s", diff)
	}
}

func TestThenContextSensitive(t *testing.T) {
	// A digit n followed by exactly n letters.
	counted := Then(Digit, func(d rune) Parser[string] {
		var rec func(n int, acc string) Parser[string]
		rec = func(n int, acc string) Parser[string] {
			if n == 0 {
				return Return(acc)
			}
			return Then(Letter, func(c rune) Parser[string] {
				return rec(n-1, acc+string(c))
			})
		}
		return rec(int(d-'0'), "")
	})

	if diff := cmp.Diff(some("abc", "de"), run(counted, "3abcde")); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(none[string](), run(counted, "3ab")); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestThenDoesNotCallContinuationOnFailure(t *testing.T) {
	called := false
	p := Then(Fail[rune](), func(rune) Parser[rune] {
		called = true
		return Item()
	})
	if _, ok := p.Parse("foo"); ok {
		t.Error("expected failure")
	}
	if called {
		t.Error("continuation called after failure")
	}
}

func TestMonadLaws(t *testing.T) {
	parsers := map[string]Parser[rune]{
		"item":   Item(),
		"letter": Letter,
		"digit":  Digit,
		"fail":   Fail[rune](),
		"return": Return('z'),
		"or":     Or(Digit, Char(';')),
	}
	conts := map[string]func(rune) Parser[rune]{
		"return": Return[rune],
		"item":   func(rune) Parser[rune] { return Item() },
		"same": func(c rune) Parser[rune] {
			return Char(c)
		},
		"upper": func(c rune) Parser[rune] {
			if unicode.IsLetter(c) {
				return Return(unicode.ToUpper(c))
			}
			return Fail[rune]()
		},
	}
	all := append(inputs, "ffoo", "11", ";;", "aab")

	t.Run("left identity", func(t *testing.T) {
		for _, x := range []rune{'a', '1', ';', 'é'} {
			for name, f := range conts {
				for _, in := range all {
					if diff := cmp.Diff(run(f(x), in), run(Then(Return(x), f), in)); diff != "" {
						t.Errorf("%s(%q) on %q mismatch (-want +got):\n%s", name, x, in, diff)
					}
				}
			}
		}
	})

	t.Run("right identity", func(t *testing.T) {
		for name, p := range parsers {
			for _, in := range all {
				if diff := cmp.Diff(run(p, in), run(Then(p, Return[rune]), in)); diff != "" {
					t.Errorf("%s on %q mismatch (-want +got):\n%s", name, in, diff)
				}
			}
		}
	})

	t.Run("associativity", func(t *testing.T) {
		for pname, p := range parsers {
			for fname, f := range conts {
				for gname, g := range conts {
					lhs := Then(Then(p, f), g)
					rhs := Then(p, func(v rune) Parser[rune] { return Then(f(v), g) })
					for _, in := range all {
						if diff := cmp.Diff(run(lhs, in), run(rhs, in)); diff != "" {
							t.Errorf("(%s >>= %s) >>= %s on %q mismatch (-lhs +rhs):\n%s", pname, fname, gname, in, diff)
						}
					}
				}
			}
		}
	})
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		word  string
		value int
		input string
		want  outcome[int]
	}{
		{"three", 3, "three!", some(3, "!")},
		{"three", 3, "three", some(3, "")},
		{"three", 3, "thre", none[int]()},
		{"three", 3, "thrice", none[int]()},
		{"", 9, "anything", some(9, "anything")},
		{"héllo", 5, "héllo world", some(5, " world")},
	}

	for _, tt := range tests {
		t.Run(tt.word+"/"+tt.input, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, run(Literal(tt.word, tt.value), tt.input)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRemainingIsSuffix(t *testing.T) {
	ps := []Parser[rune]{Item(), Letter, Digit, Space, Or(Letter, Digit), Next(Item(), Item())}
	for _, p := range ps {
		for _, in := range inputs {
			res, ok := p.Parse(in)
			if ok && !strings.HasSuffix(in, res.Remaining) {
				t.Errorf("Remaining %q is not a suffix of %q", res.Remaining, in)
			}
		}
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"rune", Result[rune]{Value: 'f', Remaining: "oo"}.String(), `{'f', "oo"}`},
		{"non-ascii rune", Result[rune]{Value: 'é', Remaining: ""}.String(), `{'é', ""}`},
		{"int", Result[int]{Value: 17, Remaining: " apples"}.String(), `{17, " apples"}`},
		{"string", Result[string]{Value: "ab", Remaining: "c"}.String(), `{ab, "c"}`},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: String() = %s, want %s", tt.name, tt.got, tt.want)
		}
	}
}
