package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dhamidi/treelang/tree"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "treelang",
		Short: "Tooling for the treelang indentation-structured markup language",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// indentFromFlag turns the shared --indent flag value into an Indent:
// "tabs", or a positive number of spaces.
func indentFromFlag(value string) (tree.Indent, error) {
	if value == "tabs" {
		return tree.Tabs(), nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return tree.Indent{}, fmt.Errorf("invalid indent %q: expected \"tabs\" or a number of spaces", value)
	}
	return tree.Spaces(n)
}
