package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"zdq/internal/config"
	"zdq/internal/dispatch"
	"zdq/internal/execx"
	"zdq/internal/invoke"
	"zdq/internal/logger"
	"zdq/internal/present"
)

// errFailed marks per-configuration failures whose detail already reached the
// user through the child processes' inherited streams; Execute maps it to
// exit status 1 without printing anything further.
var errFailed = errors.New("one or more configurations failed")

// rootCmd is the whole CLI. Flag parsing is disabled on purpose: zdq's
// grammar routes every token, `-` flags included, through the token
// classifier so that leftovers reach the compiler verbatim instead of being
// eaten by the flag parser.
var rootCmd = &cobra.Command{
	Use:                "zdq [config] <command> [file] [extras...]",
	Short:              "Build Zig sources and run them in per-target containers",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,

	// PersistentPreRun is a hook that runs before the command body.
	// Here, we initialize the logger; debug output is driven by the ZDQ_DEBUG
	// environment variable because a --debug flag would be forwarded to zig
	// like any other flag token.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(os.Getenv("ZDQ_DEBUG") == "1")
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args, config.Load(), execx.StdRunner{})
	},
}

// run resolves the raw arguments against the store and drives the
// dispatcher. It is split from RunE so tests can substitute the store and
// the runner.
func run(args []string, store *config.Store, r execx.Runner) error {
	inv, err := invoke.Resolve(args, store)
	if err != nil {
		// Usage errors abort before any external process starts. Which
		// rendering accompanies the error line depends on its kind: an
		// unknown selector gets the listing, a missing or unknown command
		// gets the usage text, a missing filename gets the bare line.
		var unknownConfig *invoke.UnknownConfigError
		var unknownCommand *invoke.UnknownCommandError
		switch {
		case errors.As(err, &unknownConfig):
			present.List(os.Stdout, store)
		case errors.Is(err, invoke.ErrMissingCommand), errors.As(err, &unknownCommand):
			present.Usage(os.Stdout)
		}
		logger.Error("error: %v\n", err)
		return err
	}

	if failures := dispatch.Dispatch(inv, store, r, os.Stdout); failures > 0 {
		logger.Debug("[DEBUG] %d configuration(s) failed\n", failures)
		return errFailed
	}
	return nil
}

// Execute runs the CLI and returns the process exit status: 0 when every
// selected configuration succeeded (and for list/help), 1 for usage errors
// or any per-configuration failure.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
