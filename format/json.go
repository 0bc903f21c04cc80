package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/numerals/english"
)

type JSONEncoder struct {
	w       io.Writer
	matches []english.Match
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(matches []english.Match) error {
	e.matches = matches
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildMatches(), "", "  ")
}

type jsonMatch struct {
	Value    int          `json:"value"`
	Text     string       `json:"text"`
	Start    int          `json:"start"`
	End      int          `json:"end"`
	Position jsonPosition `json:"position"`
}

type jsonPosition struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (e *JSONEncoder) buildMatches() []jsonMatch {
	result := make([]jsonMatch, len(e.matches))
	for i, m := range e.matches {
		result[i] = jsonMatch{
			Value: m.Value,
			Text:  m.Text,
			Start: m.Start,
			End:   m.End,
			Position: jsonPosition{
				File:   m.Position.Filename,
				Line:   m.Position.Line,
				Column: m.Position.Column,
			},
		}
	}
	return result
}
