package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rpslkit/internal/schemafile"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List the known object classes",
	Long: `List every registered class with its primary key and mandatory attributes.

With --format yaml the full declarations are printed, in the same format
accepted by --schema.`,
	Args: cobra.NoArgs,
	RunE: runClasses,
}

func init() {
	rootCmd.AddCommand(classesCmd)
}

func runClasses(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if outputFormat == formatYAML {
		merged := &schemafile.File{Version: "1"}
		for _, f := range decls {
			merged.Classes = append(merged.Classes, f.Classes...)
		}

		data, err := schemafile.Marshal(merged)
		if err != nil {
			return fmt.Errorf("marshal schemas: %w", err)
		}

		_, err = out.Write(data)

		return err
	}

	for _, class := range registry.Classes() {
		s, _ := registry.Lookup(class)
		fmt.Fprintf(out, "%-16s pk=%s required=%s\n",
			class,
			strings.Join(s.PKFields(), ","),
			strings.Join(s.AttrsRequired(), ","))
	}

	return nil
}
