package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/treelang/tree"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var indentFlag string
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Re-render a file in canonical form",
		Long: `Parse a file and print it back in canonical form: one space
between items, comments dropped, indentation normalized to the configured
unit.

If no file is provided, reads from stdin.
Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			indent, err := indentFromFlag(indentFlag)
			if err != nil {
				return err
			}

			var data []byte
			var filename string
			if len(args) == 0 {
				if fmtOverwrite {
					return fmt.Errorf("-w requires a file argument")
				}
				data, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				filename = "<stdin>"
			} else {
				filename = args[0]
				data, err = os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}
			content := string(data)

			parsed, err := tree.Parse(content, indent)
			if err != nil {
				return renderParseError(filename, content, err)
			}
			output := parsed.Render(indent)

			if fmtOverwrite {
				return os.WriteFile(filename, []byte(output), 0644)
			}
			fmt.Print(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&indentFlag, "indent", "i", "2", `indentation unit ("tabs" or a number of spaces)`)
	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file instead of printing")

	return cmd
}
