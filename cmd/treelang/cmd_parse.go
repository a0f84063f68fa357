package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dhamidi/treelang/tree"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var indentFlag string
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and dump the resulting tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			indent, err := indentFromFlag(indentFlag)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}
			content := string(data)

			parsed, err := tree.Parse(content, indent)
			if err != nil {
				return renderParseError(args[0], content, err)
			}

			switch outputFormat {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(parsed); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "text":
				fmt.Print(parsed.Render(indent))
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&indentFlag, "indent", "i", "2", `indentation unit ("tabs" or a number of spaces)`)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")

	return cmd
}

// renderParseError prints the diagnostic snippet for a parse failure and
// returns a short error for cobra to report.
func renderParseError(filename, content string, err error) error {
	var parseErr *tree.Error
	if !errors.As(err, &parseErr) {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s:%d: %s\n", filename, parseErr.Location().Line, parseErr)
	fmt.Fprint(os.Stderr, parseErr.Section(content))
	return fmt.Errorf("parse %s: %w", filename, err)
}
