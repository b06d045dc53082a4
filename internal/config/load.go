package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"zdq/internal/logger"
)

// storeFile is the name of the persisted configuration store under the user's
// home directory.
const storeFile = ".zdq.json"

// defaultImage is the container image used by the synthesized configuration.
const defaultImage = "alpine"

// Load returns the configuration store for this run. It reads ~/.zdq.json and,
// if the file is missing or cannot be parsed, falls back to the single
// host-derived default configuration. Load never fails; a broken store file is
// a recoverable condition, not an error the user has to deal with.
func Load() *Store {
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Debug("[DEBUG] No home directory (%v), using the default configuration\n", err)
		return Default()
	}

	path := filepath.Join(home, storeFile)
	st, err := LoadFile(path)
	if err != nil {
		logger.Debug("[DEBUG] Could not load %s (%v), using the default configuration\n", path, err)
		return Default()
	}

	logger.Debug("[DEBUG] Loaded %d configuration(s) from %s\n", st.Len(), path)
	return st
}

// LoadFile parses a persisted store document: a single JSON object mapping
// configuration names to configurations. The object keys are walked with a
// json.Decoder rather than unmarshalled into a map so the document's key
// order is preserved in the store.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("parse %s: expected a JSON object", path)
	}

	st := NewStore()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		name := tok.(string) // inside an object the decoder only yields string keys

		var c Configuration
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("parse %s: configuration %q: %w", path, name, err)
		}
		st.Add(name, c)
	}

	return st, nil
}

// Default synthesizes the store used when no persisted file is available:
// exactly one configuration derived from the host architecture.
func Default() *Store {
	return defaultFor(runtime.GOARCH)
}

// defaultFor maps a host architecture to its companion configuration. An
// x86-64 host gets an ARM64 compile/container pair; any other host gets an
// x86_64 compile target with an amd64 container. The single store key is the
// container architecture string.
func defaultFor(goarch string) *Store {
	zig := ZigTarget{Arch: "x86_64", Platform: "linux"}
	docker := DockerTarget{Arch: "amd64", Platform: "linux", Image: defaultImage}
	if goarch == "amd64" {
		zig = ZigTarget{Arch: "aarch64", Platform: "linux"}
		docker = DockerTarget{Arch: "arm64", Platform: "linux", Image: defaultImage}
	}

	st := NewStore()
	st.Add(docker.Arch, Configuration{Zig: zig, Docker: docker})
	return st
}
