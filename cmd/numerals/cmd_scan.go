package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/numerals/english"
	"github.com/dhamidi/numerals/format"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:          "scan <file>",
		Short:        "Find English number phrases in a file (- for stdin)",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.InOrStdin(), cmd.OutOrStdout(), args[0], outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")

	return cmd
}

func runScan(stdin io.Reader, w io.Writer, filename, outputFormat string) error {
	encoder, err := format.NewEncoder(outputFormat, w)
	if err != nil {
		return err
	}

	var data []byte
	if filename == "-" {
		data, err = io.ReadAll(stdin)
		filename = "<stdin>"
	} else {
		data, err = os.ReadFile(filename)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	matches, err := english.Scan(filename, string(data))
	if err != nil {
		return fmt.Errorf("scan %s: %w", filename, err)
	}

	if err := encoder.Encode(matches); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
