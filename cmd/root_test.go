package cmd

import (
	"errors"
	"testing"

	"zdq/internal/config"
	"zdq/internal/execx"
	"zdq/internal/invoke"
)

type recordingRunner struct {
	calls int
	fail  map[string]error
}

func (r *recordingRunner) Run(name string, args ...string) error {
	r.calls++
	return r.fail[name]
}

func stubStore() *config.Store {
	st := config.NewStore()
	st.Add("arm64", config.Configuration{
		Zig:    config.ZigTarget{Arch: "aarch64", Platform: "linux"},
		Docker: config.DockerTarget{Arch: "arm64", Platform: "linux", Image: "alpine"},
	})
	return st
}

func TestRunNoArgsShowsHelpAndSucceeds(t *testing.T) {
	r := &recordingRunner{}
	if err := run(nil, stubStore(), r); err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.calls != 0 {
		t.Fatalf("help must not spawn processes, got %d calls", r.calls)
	}
}

func TestRunUnknownSelectorFailsBeforeAnyProcess(t *testing.T) {
	r := &recordingRunner{}
	err := run([]string{"badconfig", "run", "a.zig"}, stubStore(), r)
	var unknown *invoke.UnknownConfigError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want UnknownConfigError", err)
	}
	if r.calls != 0 {
		t.Fatalf("usage errors must not spawn processes, got %d calls", r.calls)
	}
}

func TestRunMissingFilenameFails(t *testing.T) {
	err := run([]string{"test"}, stubStore(), &recordingRunner{})
	if !errors.Is(err, invoke.ErrMissingFile) {
		t.Fatalf("error = %v, want ErrMissingFile", err)
	}
}

func TestRunMapsFailuresToErrFailed(t *testing.T) {
	r := &recordingRunner{fail: map[string]error{"zig": &execx.ExitError{Code: 2}}}
	err := run([]string{"run", "a.zig"}, stubStore(), r)
	if !errors.Is(err, errFailed) {
		t.Fatalf("error = %v, want errFailed", err)
	}
}

func TestRunSuccessReturnsNil(t *testing.T) {
	r := &recordingRunner{}
	if err := run([]string{"run", "a.zig", "--release"}, stubStore(), r); err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.calls != 2 {
		t.Fatalf("got %d runner calls, want compile+run", r.calls)
	}
}
