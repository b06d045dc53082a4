// Package invoke classifies raw command line tokens into a resolved
// invocation: an optional configuration selector, one of the four zdq
// commands, an optional source file, and the leftover tokens forwarded to
// the compiler.
package invoke

import (
	"errors"
	"fmt"
	"strings"

	"zdq/internal/config"
	"zdq/internal/logger"
)

// Command is one of the operations zdq understands.
type Command string

const (
	CommandTest Command = "test"
	CommandRun  Command = "run"
	CommandList Command = "list"
	CommandHelp Command = "help"
)

// Invocation is the fully resolved form of a command line. Resolve builds it
// once; it is never mutated afterwards.
type Invocation struct {
	Config  string   // Selected configuration name; empty means every configuration in the store
	Command Command  // The operation to perform
	File    string   // Source file for test/run; empty for list/help
	Extras  []string // Unconsumed tokens in original order, forwarded verbatim to the compiler
}

// Usage errors detected during classification. They terminate the run with
// exit status 1 before any external process is started.
var (
	// ErrMissingCommand reports a selector with no command after it.
	ErrMissingCommand = errors.New("expected command argument")

	// ErrMissingFile reports a test/run command with no filename after it.
	ErrMissingFile = errors.New("expected filename")
)

// UnknownConfigError reports a selector that names no configuration in the
// store. The caller renders the configuration listing alongside it.
type UnknownConfigError struct {
	Name string
}

func (e *UnknownConfigError) Error() string {
	return fmt.Sprintf("configuration %q not found", e.Name)
}

// UnknownCommandError reports a command token outside the known set.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// scanState drives the positional-token walk: the first positional may be a
// configuration selector or a command; once a selector has been consumed only
// a command is acceptable.
type scanState int

const (
	expectSelectorOrCommand scanState = iota
	expectCommand
)

// isCommand reports whether s is one of the four known command names.
func isCommand(s string) bool {
	switch Command(s) {
	case CommandTest, CommandRun, CommandList, CommandHelp:
		return true
	}
	return false
}

// Resolve classifies args (the raw arguments, program name excluded) against
// the store. Tokens beginning with "-" are never candidates for the selector,
// command, or file roles. Positional tokens are consumed at most once; every
// token left unconsumed at the end, flag or positional, lands in Extras in
// its original position. An empty positional sequence resolves to the help
// invocation rather than an error.
func Resolve(args []string, store *config.Store) (*Invocation, error) {
	consumed := make([]bool, len(args))

	// nextPositional returns the index of the first unconsumed token that is
	// not flag-like, or -1 when none remains.
	nextPositional := func() int {
		for i, a := range args {
			if !consumed[i] && !strings.HasPrefix(a, "-") {
				return i
			}
		}
		return -1
	}

	inv := &Invocation{}
	state := expectSelectorOrCommand
scan:
	for {
		i := nextPositional()
		switch state {
		case expectSelectorOrCommand:
			if i < 0 {
				// Nothing positional at all: show help, succeed.
				inv.Command = CommandHelp
				return inv, nil
			}
			if isCommand(args[i]) {
				inv.Command = Command(args[i])
				consumed[i] = true
				break scan
			}
			// Not a command name, so it selects a configuration.
			if _, ok := store.Get(args[i]); !ok {
				return nil, &UnknownConfigError{Name: args[i]}
			}
			logger.Debug("[DEBUG] Selected configuration %q\n", args[i])
			inv.Config = args[i]
			consumed[i] = true
			state = expectCommand
		case expectCommand:
			if i < 0 {
				return nil, ErrMissingCommand
			}
			if !isCommand(args[i]) {
				return nil, &UnknownCommandError{Name: args[i]}
			}
			inv.Command = Command(args[i])
			consumed[i] = true
			break scan
		}
	}

	if inv.Command == CommandTest || inv.Command == CommandRun {
		i := nextPositional()
		if i < 0 {
			return nil, ErrMissingFile
		}
		inv.File = args[i]
		consumed[i] = true
	}

	for i, a := range args {
		if !consumed[i] {
			inv.Extras = append(inv.Extras, a)
		}
	}
	logger.Debug("[DEBUG] Resolved command %s, file %q, %d extra token(s)\n",
		inv.Command, inv.File, len(inv.Extras))
	return inv, nil
}
