package main

import (
	"github.com/dhamidi/treelang/langserver"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newLSPCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			server := langserver.NewServer(version)
			return server.RunStdio()
		},
	}

	cmd.Flags().IntVar(&verbosity, "verbose", 0, "log verbosity (0-2)")

	return cmd
}
