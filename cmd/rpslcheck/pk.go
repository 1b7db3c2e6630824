package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pkCmd = &cobra.Command{
	Use:   "pk [files...]",
	Short: "Print the class and primary key of each object",
	RunE:  runPK,
}

func init() {
	rootCmd.AddCommand(pkCmd)
}

func runPK(cmd *cobra.Command, args []string) error {
	sources, err := readSources(cmd.Context(), cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	for _, src := range sources {
		for _, r := range src.results {
			if r.Object == nil {
				continue
			}

			fmt.Fprintf(out, "%s\t%s\n", r.Object.Class(), r.Object.PK())
		}
	}

	return nil
}
