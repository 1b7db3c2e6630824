package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errRejected = errors.New("objects rejected")

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate RPSL objects",
	Long: `Validate every object in the given files, or stdin.

Checks:
  - Attribute lines are well formed
  - Mandatory attributes are present, unknown ones absent (strict mode)
  - Attributes occur at most once unless allowed multiple times (strict mode)
  - Attribute values pass their field checks

Exits non-zero when any object is rejected.

Examples:
  rpslcheck validate ripe.db.route
  cat objects.txt | rpslcheck validate --format yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	sources, err := readSources(cmd.Context(), cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := writeReports(out, sources); err != nil {
		return err
	}

	if dump {
		dumpResults(out, sources)
	}

	var objects, rejected int

	for _, src := range sources {
		objects += src.summary.Objects
		rejected += src.summary.Invalid

		if cfg.FailOnWarnings {
			rejected += src.summary.WithWarnings
		}
	}

	if rejected > 0 {
		return fmt.Errorf("%w: %d of %d", errRejected, rejected, objects)
	}

	return nil
}
