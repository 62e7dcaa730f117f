package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/SEEK-Jobs/repoinv/pkg/cli"
	"github.com/SEEK-Jobs/repoinv/pkg/inventory"
)

// log is the configured zerolog Logger instance that gets injected into the Context.
var log zerolog.Logger

func init() {
	// Default to info level logging unless --debug is provided
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logWriter.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	logWriter.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	logWriter.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}
	logWriter.FormatFieldValue = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}

	log = zerolog.New(logWriter).With().Timestamp().Logger()
}

// This main runs repoinv as a command line tool. The exit code reflects the category of
// any error that occurred.
func main() {
	ctx := log.WithContext(context.Background())
	os.Exit(run(ctx, os.Args[1:]))
}

// run executes the root command with args and returns the process exit code.
func run(ctx context.Context, args []string) int {
	rootCmd := cli.NewRootCommand(ctx)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Str("category", string(inventory.Category(err))).
			Msg("Command failed")
		return inventory.ExitCode(err)
	}
	return inventory.ExitOK
}
