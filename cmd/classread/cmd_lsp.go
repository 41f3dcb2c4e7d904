package main

import (
	"github.com/dhamidi/classread/outline"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the class file outline language server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := outline.NewServer(version)
			return server.RunStdio()
		},
	}
}
