package main

import (
	"fmt"

	"github.com/dhamidi/classread/format"
	"github.com/dhamidi/classread/source"
	"github.com/spf13/cobra"
)

func newPoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pool <location>",
		Short: "Print the constant pool of each class file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := source.Load(cmd.Context(), args, 1)
			if err != nil {
				return err
			}

			enc := format.NewPoolEncoder(cmd.OutOrStdout())
			for _, r := range results {
				if err := enc.Encode(format.NewDocument(r.Name, r.File)); err != nil {
					return fmt.Errorf("encode %s: %w", r.Name, err)
				}
			}
			return nil
		},
	}
}
