package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"rpslkit/internal/config"
	"rpslkit/internal/fields"
	"rpslkit/internal/schema"
	"rpslkit/internal/schemafile"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

var (
	// Global flags
	cfgFile      string
	schemaFile   string
	relaxed      bool
	outputFormat string
	dump         bool

	// Set up by loadApp before any subcommand runs.
	cfg      *config.Config
	logger   zerolog.Logger
	registry *schema.Registry
	decls    []*schemafile.File
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rpslcheck",
	Short: "Parse, validate and render RPSL registry objects",
	Long: `rpslcheck reads RPSL objects separated by blank lines from files or stdin.

Examples:
  rpslcheck validate dump.db           # report errors per object
  rpslcheck validate --relaxed dump.db # only check primary and lookup keys
  rpslcheck render < objects.txt       # print canonical text
  rpslcheck pk dump.db                 # print class and primary key
  rpslcheck classes                    # list known classes`,
	SilenceUsage:      true,
	PersistentPreRunE: loadApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "rpslcheck.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&schemaFile, "schema", "", "additional schema declaration file")
	rootCmd.PersistentFlags().BoolVar(&relaxed, "relaxed", false, "only validate primary and lookup keys")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", formatText, "output format: text or yaml")
	rootCmd.PersistentFlags().BoolVar(&dump, "dump", false, "dump parsed attribute lines for debugging")
}

func loadApp(cmd *cobra.Command, _ []string) error {
	var err error

	cfg, err = config.LoadWithFallback(cfgFile)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("relaxed") {
		cfg.Strict = !relaxed
	}

	if schemaFile != "" {
		cfg.SchemaFile = schemaFile
	}

	if outputFormat != formatText && outputFormat != formatYAML {
		return fmt.Errorf("unknown output format %q", outputFormat)
	}

	logger = cfg.Logger(os.Stderr)

	builtin, err := schemafile.Builtin()
	if err != nil {
		return fmt.Errorf("built-in schemas: %w", err)
	}

	decls = []*schemafile.File{builtin}

	if cfg.SchemaFile == "" {
		registry, err = schemafile.Default()
	} else {
		var extra *schemafile.File

		extra, err = schemafile.LoadFile(cfg.SchemaFile)
		if err != nil {
			return err
		}

		decls = append(decls, extra)
		registry, err = schemafile.BuildRegistry(fields.DefaultCatalog(), decls...)
	}

	if err != nil {
		return fmt.Errorf("build schemas: %w", err)
	}

	logger.Debug().
		Int("classes", registry.Len()).
		Bool("strict", cfg.Strict).
		Str("schema_file", cfg.SchemaFile).
		Msg("schemas loaded")

	return nil
}
