package main

import (
	"fmt"
	"runtime"

	"github.com/dhamidi/classread/format"
	"github.com/dhamidi/classread/source"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var dumpFormat string
	var workers int

	cmd := &cobra.Command{
		Use:   "dump <location>...",
		Short: "Decode class files and print their structure",
		Long: `Decode class files and print their structure.

A location is a .class file, a directory, a .jar or .zip archive,
a file: URL or a jar:file:<archive>!/<entry> URL.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.NewEncoder(dumpFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			results, err := source.Load(cmd.Context(), args, workers)
			if err != nil {
				return err
			}

			for _, r := range results {
				if err := enc.Encode(format.NewDocument(r.Name, r.File)); err != nil {
					return fmt.Errorf("encode %s: %w", r.Name, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "line", fmt.Sprintf("output format %v", format.Formats))
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "number of class files decoded in parallel")

	return cmd
}
