package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dhamidi/treelang/tree"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// checkStyles groups the color styles used by check output.
type checkStyles struct {
	path    *color.Color
	failure *color.Color
	success *color.Color
}

func newCheckStyles() *checkStyles {
	return &checkStyles{
		path:    color.New(color.Bold, color.FgHiWhite),
		failure: color.New(color.Bold, color.FgRed),
		success: color.New(color.FgGreen),
	}
}

func newCheckCmd() *cobra.Command {
	var indentFlag string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse files and report syntax errors with source snippets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}

			indent, err := indentFromFlag(indentFlag)
			if err != nil {
				return err
			}

			styles := newCheckStyles()
			failed := 0
			for _, filename := range args {
				if err := checkFile(filename, indent, styles); err != nil {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&indentFlag, "indent", "i", "2", `indentation unit ("tabs" or a number of spaces)`)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

func checkFile(filename string, indent tree.Indent, styles *checkStyles) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", styles.path.Sprint(filename), styles.failure.Sprint(err))
		return err
	}
	content := string(data)

	if _, err := tree.Parse(content, indent); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", styles.path.Sprint(filename), styles.failure.Sprint(err))
		var parseErr *tree.Error
		if errors.As(err, &parseErr) {
			fmt.Fprint(os.Stderr, parseErr.Section(content))
		}
		return err
	}

	fmt.Printf("%s: %s\n", styles.path.Sprint(filename), styles.success.Sprint("ok"))
	return nil
}
