package registry

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment overrides. WLD_DEFAULT_DEVICE
// overrides the persisted default for a single invocation.
const EnvPrefix = "WLD_"

// DefaultPath returns the registry file path under the user's home directory.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".wld.toml")
}

// Store loads and saves a Registry at a fixed file path.
type Store struct {
	path string
}

// NewStore creates a store for the given path. An empty path selects
// DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// Path returns the registry file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the registry file. A missing file yields an empty registry; a
// present but unreadable or unparsable file yields a ConfigError.
//
// Load never consults the environment. Mutating commands follow
// load-mutate-save, so anything layered in here would be written back to
// disk; transient overrides belong to LoadWithOverrides.
func (s *Store) Load() (*Registry, error) {
	return s.load(false)
}

// LoadWithOverrides reads the registry file and applies WLD_ environment
// overrides on top, so WLD_DEFAULT_DEVICE can redirect a single invocation.
// The result must never be passed to Save.
func (s *Store) LoadWithOverrides() (*Registry, error) {
	return s.load(true)
}

func (s *Store) load(withEnv bool) (*Registry, error) {
	k := koanf.New(".")

	if _, err := os.Stat(s.path); err == nil {
		if err := k.Load(file.Provider(s.path), toml.Parser()); err != nil {
			return nil, &ConfigError{Op: "load", Path: s.path, Err: err}
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, &ConfigError{Op: "load", Path: s.path, Err: err}
	}

	if withEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, &ConfigError{Op: "load", Path: s.path, Err: err}
		}
	}

	reg := New()
	if err := k.Unmarshal("", reg); err != nil {
		return nil, &ConfigError{Op: "load", Path: s.path, Err: err}
	}
	if reg.Devices == nil {
		reg.Devices = make(map[string]string)
	}
	return reg, nil
}

// envKey maps WLD_DEFAULT_DEVICE to the default_device key.
func envKey(key string) string {
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
}

// fileDoc is the on-disk TOML layout.
type fileDoc struct {
	DefaultDevice string            `toml:"default_device,omitempty"`
	Devices       map[string]string `toml:"devices"`
}

// Save serializes the registry and replaces the file contents. The write
// goes through a temp file in the same directory followed by a rename, so a
// failed write leaves the previous file intact.
func (s *Store) Save(reg *Registry) error {
	data, err := gotoml.Marshal(fileDoc{
		DefaultDevice: reg.DefaultDevice,
		Devices:       reg.Devices,
	})
	if err != nil {
		return &ConfigError{Op: "save", Path: s.path, Err: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &ConfigError{Op: "save", Path: s.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".wld-*.toml")
	if err != nil {
		return &ConfigError{Op: "save", Path: s.path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &ConfigError{Op: "save", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &ConfigError{Op: "save", Path: s.path, Err: err}
	}
	// The file is hand-editable config, not a secret.
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return &ConfigError{Op: "save", Path: s.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return &ConfigError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}
