package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/dhamidi/numerals/english"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var errNoMatch = errors.New("no match")

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>...",
		Short: "Parse a number from the start of each argument",
		Long: `Parse reads an English number between one and 999,999 from the start
of each argument and prints its value and the unconsumed rest of the text.`,
		Example:      `  numerals parse "one hundred forty-six thousand five hundred twenty-two widgets"`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.OutOrStdout(), args)
		},
	}
}

func runParse(w io.Writer, inputs []string) error {
	log := commonlog.GetLogger("numerals.parse")

	failed := 0
	for _, input := range inputs {
		value, rest, ok := english.Parse(input)
		if !ok {
			log.Debugf("no match: %q", input)
			fmt.Fprintf(w, "%q\tno match\n", input)
			failed++
			continue
		}
		fmt.Fprintf(w, "%d\t%q\n", value, rest)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs: %w", failed, len(inputs), errNoMatch)
	}
	return nil
}
