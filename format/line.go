package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/numerals/english"
)

// LineEncoder writes one tab-separated line per match:
// position, value and the matched text.
type LineEncoder struct {
	w       io.Writer
	matches []english.Match
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(matches []english.Match) error {
	e.matches = matches
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, m := range e.matches {
		fmt.Fprintf(&sb, "%s\t%d\t%q\n", m.Position, m.Value, m.Text)
	}
	return []byte(sb.String()), nil
}
