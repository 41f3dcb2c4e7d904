package main

import (
	"fmt"
	"runtime"

	"github.com/dhamidi/classread/source"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "check <location>...",
		Short: "Report which class files decode",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var classes []source.Class
			for _, location := range args {
				found, err := source.Open(location)
				if err != nil {
					return err
				}
				classes = append(classes, found...)
			}

			results, err := source.Decode(cmd.Context(), classes, workers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(out, "fail\t%s\n", r.Err)
					continue
				}
				fmt.Fprintf(out, "ok\t%s\t%s\n", r.Name, r.File.ClassName())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d class files failed to decode", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "number of class files decoded in parallel")

	return cmd
}
