// Package format renders number phrases found by english.Scan.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/numerals/english"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(matches []english.Match) error
}

// NewEncoder returns the encoder registered under name: "line" or "json".
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "line":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}
