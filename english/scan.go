package english

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/dhamidi/numerals/ebnflex"
	"github.com/tliron/commonlog"
	"golang.org/x/exp/ebnf"
)

// WordsGrammarStart is the start production of WordsGrammarSource.
const WordsGrammarStart = "Text"

// WordsGrammarSource is the EBNF grammar Scan uses to find word
// boundaries.
//
//go:embed words.ebnf
var WordsGrammarSource []byte

var wordsGrammar = sync.OnceValues(func() (ebnf.Grammar, error) {
	g, err := ebnflex.ParseGrammar("words.ebnf", bytes.NewReader(WordsGrammarSource))
	if err != nil {
		return nil, err
	}
	if err := ebnflex.Verify(g, WordsGrammarStart); err != nil {
		return nil, err
	}
	return g, nil
})

// Match is a number phrase found by Scan.
type Match struct {
	Value int
	Text  string
	// Start and End are byte offsets; Text is input[Start:End].
	Start    int
	End      int
	Position ebnflex.Position
}

func (m Match) String() string {
	return fmt.Sprintf("%s %d %q", m.Position, m.Value, m.Text)
}

// Scan finds the number phrases in text. A phrase may only begin at the
// start of a word, and phrases never overlap. The name is recorded in the
// returned positions.
func Scan(name, text string) ([]Match, error) {
	g, err := wordsGrammar()
	if err != nil {
		return nil, fmt.Errorf("load words grammar: %w", err)
	}

	tokens, err := ebnflex.NewLexer(g, WordsGrammarStart, []byte(text), name).Tokenize()
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	var matches []Match
	end := 0
	for _, tok := range tokens {
		start := tok.Position.Offset
		if tok.Kind != "Word" || start < end {
			continue
		}
		value, rest, ok := Parse(text[start:])
		if !ok {
			continue
		}
		end = len(text) - len(rest)
		matches = append(matches, Match{
			Value:    value,
			Text:     text[start:end],
			Start:    start,
			End:      end,
			Position: tok.Position,
		})
	}

	commonlog.GetLogger("numerals.english").Debugf("scanned %s: %d tokens, %d numbers", name, len(tokens), len(matches))
	return matches, nil
}
