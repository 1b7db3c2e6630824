package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [files...]",
	Short: "Print objects in canonical RPSL text",
	Long: `Parse objects and print them re-rendered: values start at column 16,
continuation lines keep their fold markers, and cleaned values (such as AS
numbers without leading zeros) replace the originals where possible.

Objects with unknown classes are skipped with a warning.`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	sources, err := readSources(cmd.Context(), cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	first := true

	for _, src := range sources {
		for _, r := range src.results {
			if r.Object == nil {
				logger.Warn().Str("source", src.name).Int("line", r.StartLine).Err(r.Err).Msg("skipping object")
				continue
			}

			if !first {
				fmt.Fprintln(out)
			}

			first = false

			fmt.Fprint(out, r.Object.Render())
		}
	}

	if dump {
		dumpResults(out, sources)
	}

	return nil
}
