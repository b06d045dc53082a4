package main

import (
	"os"

	"zdq/cmd" // Import the cmd package which contains the CLI wiring and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument resolution and
// execution, and turns the aggregated outcome into the process exit status.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI pipeline.
//
// The zdq project is a cross-compile-and-run front end that:
//   - Reads a JSON configuration file (~/.zdq.json) naming one or more configurations,
//     each pairing a Zig compile target with the Docker runtime able to execute it
//   - Falls back to a single host-derived default configuration when the file is
//     absent or unreadable, so the tool works out of the box
//   - Classifies the raw command line into an optional configuration selector, a
//     command (test, run, list, help), an optional source file, and leftover tokens
//     that are forwarded verbatim to the compiler
//   - Builds the source for each selected configuration's target into a per-target
//     scratch directory, then runs the produced binary inside the matching container
//     with the scratch directory mounted in
//   - Aggregates per-configuration failures into a single exit status
//
// Error handling strategy:
//   - Usage errors (unknown configuration, missing command or filename) are reported
//     before any external process starts and terminate the run with status 1
//   - Build and container failures are counted per configuration and the remaining
//     configurations still get their turn; the child processes' own output on the
//     inherited streams is the only per-failure detail
//
// Integration points:
//   - Invokes the `zig` compiler for cross-compilation and `docker run` for
//     execution, both through a single inherit-the-streams process runner
//   - Shares build output with the container via a bind mount of the scratch
//     directory, keyed by compile target so different targets never collide
func main() {
	os.Exit(cmd.Execute())
}
