package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/SEEK-Jobs/repoinv/pkg/build"
	"github.com/SEEK-Jobs/repoinv/pkg/cmd"
)

var (
	debug      = false
	printer    cmd.ResultPrinter
	fileConfig = &cmd.FileConfig{}
)

// NewRootCommand returns the root cobra.Command for repoinv.
func NewRootCommand(ctx context.Context) *cobra.Command {
	var format, configFile string
	rootCmd := &cobra.Command{
		Use:     "repoinv",
		Version: build.Version,
		Short:   "Command line tool for exporting an inventory of a GitHub organisation's repositories",
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			// Don't print usage if the command or child command produces an error as it's
			// confusing. We should only print usage if the CLI syntax is bad.
			c.SilenceUsage = true

			// Enable debug logging if requested
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			// Initialise the ResultPrinter
			if err := initResultPrinter(format); err != nil {
				return err
			}

			return initFileConfig(configFile)
		},
	}

	// Flags that apply to root command and all sub-commands
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&format, "format", "yaml", "Output format (must be one of 'yaml', 'json', 'table' or 'quiet')")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML file with default values for flags")

	// Add sub-commands
	rootCmd.AddCommand(
		newExportCommand(ctx),
		newVersionCommand())

	// We'll take care of logging errors
	rootCmd.SilenceErrors = true

	return rootCmd
}

// initResultPrinter initialises the global ResultPrinter based on the specified format
func initResultPrinter(format string) error {
	switch strings.ToLower(format) {
	case "yaml":
		printer = cmd.NewYAMLResultPrinter(os.Stdout)
	case "json":
		printer = cmd.NewJSONResultPrinter(os.Stdout)
	case "table":
		printer = cmd.NewTableResultPrinter(os.Stdout)
	case "quiet":
		printer = cmd.NewNoOpResultPrinter()
	default:
		return fmt.Errorf("unknown output format '%s'", format)
	}
	return nil
}

// initFileConfig loads the global FileConfig from path, or resets it when path is empty.
func initFileConfig(path string) error {
	if path == "" {
		fileConfig = &cmd.FileConfig{}
		return nil
	}

	c, err := cmd.LoadFileConfig(path)
	if err != nil {
		return err
	}
	fileConfig = c
	return nil
}
