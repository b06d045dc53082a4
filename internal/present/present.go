// Package present renders the user-facing listing and usage text.
package present

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"zdq/internal/config"
)

var (
	headerf = color.New(color.FgCyan).FprintfFunc()
	namef   = color.New(color.FgGreen, color.Bold).FprintfFunc()
)

// List renders every configuration in store order: name, zig target triple,
// and docker platform/image.
func List(w io.Writer, store *config.Store) {
	headerf(w, "configurations:\n")
	for _, name := range store.Names() {
		cfg, ok := store.Get(name)
		if !ok {
			continue
		}
		namef(w, "  %s", name)
		fmt.Fprintf(w, "  zig %s-%s  docker %s/%s %s\n",
			cfg.Zig.Arch, cfg.Zig.Platform,
			cfg.Docker.Platform, cfg.Docker.Arch, cfg.Docker.Image)
	}
}

// Usage renders the command grammar and the four commands.
func Usage(w io.Writer) {
	fmt.Fprint(w, `usage: zdq [config] <command> [file] [extras...]

commands:
  test <file>   build the file's tests for each configuration and run them
                in the matching container
  run <file>    build the file and run it in the matching container
  list          show the known configurations
  help          show this text

Without a leading config name the command applies to every configuration in
~/.zdq.json (or to the built-in default when that file is absent). Any token
not consumed as config, command, or file is passed to zig verbatim.
`)
}
