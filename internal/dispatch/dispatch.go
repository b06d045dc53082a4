// Package dispatch drives the per-configuration build and run loop.
package dispatch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"zdq/internal/config"
	"zdq/internal/execx"
	"zdq/internal/invoke"
	"zdq/internal/logger"
	"zdq/internal/present"
)

// containerDir is the fixed path the scratch directory is mounted at inside
// the container; it doubles as the container working directory.
const containerDir = "/zdq"

// Dispatch executes the resolved invocation against the store and returns the
// number of configurations that failed. list and help render once to out and
// never touch the runner; test and run iterate the selected configurations
// strictly in order, one compile-then-run attempt each, and keep going past
// failures.
func Dispatch(inv *invoke.Invocation, store *config.Store, r execx.Runner, out io.Writer) int {
	switch inv.Command {
	case invoke.CommandList:
		present.List(out, store)
		return 0
	case invoke.CommandHelp:
		present.Usage(out)
		return 0
	}

	names := store.Names()
	if inv.Config != "" {
		names = []string{inv.Config}
	}

	failures := 0
	for _, name := range names {
		cfg, ok := store.Get(name)
		if !ok {
			// The classifier validated any selector, so this only happens on
			// a broken store; count it like any other failed configuration.
			failures++
			continue
		}
		if err := execute(inv, cfg, r); err != nil {
			// The child already printed its own diagnostics to the inherited
			// streams; the failure just counts toward the exit status.
			logger.Debug("[DEBUG] Configuration %s failed: %v\n", name, err)
			failures++
		}
	}
	return failures
}

// execute performs the compile step for one configuration and, only when it
// succeeds, the container run step.
func execute(inv *invoke.Invocation, cfg config.Configuration, r execx.Runner) error {
	dir := scratchDir(cfg.Zig)
	// MkdirAll succeeds when the directory already exists, which makes
	// scratch creation idempotent across invocations.
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create scratch dir %s: %w", dir, err)
	}

	bin := stem(inv.File)
	sub := "build"
	if inv.Command == invoke.CommandTest {
		sub = "test"
	}
	zigArgs := []string{
		sub,
		"-target", cfg.Zig.Arch + "-" + cfg.Zig.Platform,
		"-emit-bin=" + filepath.Join(dir, bin),
		inv.File,
	}
	zigArgs = append(zigArgs, inv.Extras...)
	if err := r.Run("zig", zigArgs...); err != nil {
		return err
	}

	dockerArgs := []string{
		"run",
		"--platform", cfg.Docker.Platform + "/" + cfg.Docker.Arch,
		"-v", dir + ":" + containerDir,
		"-w", containerDir,
		"--rm", "-t",
	}
	if inv.Command == invoke.CommandTest {
		// test runs quietly to keep pull/run noise out of automated output;
		// run stays verbose.
		dockerArgs = append(dockerArgs, "-q")
	}
	dockerArgs = append(dockerArgs, cfg.Docker.Image, "./"+bin)
	return r.Run("docker", dockerArgs...)
}

// scratchDir is keyed by compile target so different targets never share
// build output.
func scratchDir(t config.ZigTarget) string {
	return filepath.Join(os.TempDir(), "zdq", t.Arch+"-"+t.Platform)
}

// stem names the emitted binary after the source file, extension stripped;
// the container executes "./<stem>" from the mounted scratch directory.
func stem(file string) string {
	base := filepath.Base(file)
	if s := strings.TrimSuffix(base, filepath.Ext(base)); s != "" {
		return s
	}
	return base
}
