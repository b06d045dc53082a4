package config

// ZigTarget identifies a cross-compilation target. It is handed to the
// compiler as the triple-like string "<arch>-<platform>", e.g. "aarch64-linux".
type ZigTarget struct {
	Arch     string `json:"arch"`     // Target CPU architecture in zig's naming, e.g. "aarch64", "x86_64"
	Platform string `json:"platform"` // Target OS/platform in zig's naming, e.g. "linux"
}

// DockerTarget identifies the container runtime able to execute binaries built
// for the paired ZigTarget. Platform and Arch form docker's platform selector
// "<platform>/<arch>", e.g. "linux/arm64".
type DockerTarget struct {
	Arch     string `json:"arch"`     // Container architecture in docker's naming, e.g. "arm64", "amd64"
	Platform string `json:"platform"` // Container platform, e.g. "linux"
	Image    string `json:"image"`    // Image reference the binary is executed in, e.g. "alpine"
}

// Configuration pairs a compile target with the container runtime that can run
// its output. Every configuration has both halves populated.
type Configuration struct {
	Zig    ZigTarget    `json:"zig"`
	Docker DockerTarget `json:"docker"`
}

// Store maps configuration names to configurations while remembering the order
// in which names were first added, so "run against all configurations" walks
// the persisted document top to bottom. The store is built once by the loaders
// and treated as read-only afterwards.
type Store struct {
	names   []string
	configs map[string]Configuration
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{configs: make(map[string]Configuration)}
}

// Add records a configuration under name. A repeated name overwrites the
// configuration but keeps the name's original position. Add is meant for the
// loaders (and tests); nothing mutates a store after loading.
func (s *Store) Add(name string, c Configuration) {
	if _, ok := s.configs[name]; !ok {
		s.names = append(s.names, name)
	}
	s.configs[name] = c
}

// Get returns the configuration registered under name and whether it exists.
func (s *Store) Get(name string) (Configuration, bool) {
	c, ok := s.configs[name]
	return c, ok
}

// Names returns the configuration names in insertion order.
func (s *Store) Names() []string {
	return s.names
}

// Len returns the number of configurations in the store.
func (s *Store) Len() int {
	return len(s.names)
}
