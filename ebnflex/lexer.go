// Package ebnflex splits text into tokens described by an EBNF grammar.
//
// Productions whose name starts with an uppercase letter are token
// productions, except for the start production, which describes the whole
// input and only serves as the root for Verify. At each offset the lexer
// tries every token production and keeps the longest match; equal-length
// matches go to the production whose name sorts first. A byte that no token
// production matches becomes a one-byte ERROR token.
package ebnflex

import (
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/exp/ebnf"
)

const (
	KindEOF   = "EOF"
	KindError = "ERROR"
)

// Position is a location in the input. Line and Column are 1-based;
// Column counts bytes.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a lexical token with its position.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

type memoKey struct {
	name   string
	offset int
}

// Lexer tokenizes input with the token productions of an EBNF grammar.
type Lexer struct {
	grammar  ebnf.Grammar
	tokens   []string // token production names, sorted
	input    []byte
	filename string
	pos      int
	line     int
	column   int
	memo     map[memoKey]int // match length, -1 for no match
	visiting map[memoKey]bool
}

// NewLexer creates a lexer for input. The start production is not a token.
func NewLexer(grammar ebnf.Grammar, start string, input []byte, filename string) *Lexer {
	return &Lexer{
		grammar:  grammar,
		tokens:   tokenProductions(grammar, start),
		input:    input,
		filename: filename,
		line:     1,
		column:   1,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

func tokenProductions(grammar ebnf.Grammar, start string) []string {
	var names []string
	for name, prod := range grammar {
		if prod.Expr == nil || name == start || name == "" || name[0] < 'A' || name[0] > 'Z' {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseGrammar reads an EBNF grammar from r. The name is used in error
// positions.
func ParseGrammar(name string, r io.Reader) (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return grammar, nil
}

// LoadGrammar reads an EBNF grammar from a file.
func LoadGrammar(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return ParseGrammar(filename, f)
}

// Verify checks that every production is defined and reachable from start.
func Verify(grammar ebnf.Grammar, start string) error {
	if err := ebnf.Verify(grammar, start); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}

// Position returns the current position of the lexer.
func (l *Lexer) Position() Position {
	return Position{
		Filename: l.filename,
		Offset:   l.pos,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// NextToken returns the next token. At the end of input it returns an EOF
// token together with io.EOF.
func (l *Lexer) NextToken() (Token, error) {
	if l.pos >= len(l.input) {
		return Token{Kind: KindEOF, Position: l.Position()}, io.EOF
	}

	start := l.Position()

	// Offsets behind the lexer are never looked up again.
	clear(l.memo)

	var bestKind string
	var bestLen int
	for _, name := range l.tokens {
		clear(l.visiting)
		// Zero-length matches never produce a token.
		n := l.match(l.grammar[name].Expr, start.Offset)
		if n > bestLen {
			bestLen = n
			bestKind = name
		}
	}

	if bestLen == 0 {
		bestKind = KindError
		bestLen = 1
	}

	for i := 0; i < bestLen; i++ {
		l.advance()
	}

	return Token{
		Kind:     bestKind,
		Literal:  string(l.input[start.Offset:l.pos]),
		Position: start,
	}, nil
}

// match returns the length of the longest prefix of the input at offset
// that expr matches, or -1 if it does not match. Options and repetitions
// always match, possibly with length 0.
func (l *Lexer) match(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case *ebnf.Token:
		return l.matchToken(e.String, offset)

	case *ebnf.Range:
		return l.matchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := l.match(item, offset+total)
			if n < 0 {
				return -1
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := -1
		for _, alt := range e {
			if n := l.match(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			// An empty match would repeat forever.
			n := l.match(e.Body, offset+total)
			if n <= 0 {
				return total
			}
			total += n
		}

	case *ebnf.Option:
		if n := l.match(e.Body, offset); n > 0 {
			return n
		}
		return 0

	case *ebnf.Group:
		return l.match(e.Body, offset)

	case *ebnf.Name:
		return l.matchName(e.String, offset)

	default:
		return -1
	}
}

func (l *Lexer) matchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}

	if n, ok := l.memo[key]; ok {
		return n
	}

	// Left recursion.
	if l.visiting[key] {
		return -1
	}

	prod, ok := l.grammar[name]
	if !ok || prod.Expr == nil {
		l.memo[key] = -1
		return -1
	}

	l.visiting[key] = true
	n := l.match(prod.Expr, offset)
	delete(l.visiting, key)

	l.memo[key] = n
	return n
}

func (l *Lexer) matchToken(lit string, offset int) int {
	// ebnf.Token holds the unquoted literal.
	if offset+len(lit) > len(l.input) {
		return -1
	}
	if string(l.input[offset:offset+len(lit)]) == lit {
		return len(lit)
	}
	return -1
}

// matchRange matches a single-byte range such as "a" … "z".
func (l *Lexer) matchRange(begin, end string, offset int) int {
	if offset >= len(l.input) {
		return -1
	}
	if len(begin) != 1 || len(end) != 1 {
		return -1
	}
	ch := l.input[offset]
	if ch >= begin[0] && ch <= end[0] {
		return 1
	}
	return -1
}

// Tokenize reads all tokens, ending with EOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		tokens = append(tokens, tok)
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
	}
}
