// Package config loads depview settings from TOML or YAML files.
//
// The format is chosen by file extension. Values absent from the file keep
// their defaults from [Default]; command-line flags are applied on top by
// the CLI. When no path is given, [Find] looks for depview.toml,
// depview.yaml or depview.yml in the working directory.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/depview/pkg/cache"
	"github.com/matzehuels/depview/pkg/errors"
)

// Config is the top-level configuration.
type Config struct {
	Title    string         `toml:"title" yaml:"title"`
	Data     string         `toml:"data" yaml:"data"` // dataset path; empty means the bundled file
	Panes    PanesConfig    `toml:"panes" yaml:"panes"`
	Scripts  ScriptsConfig  `toml:"scripts" yaml:"scripts"`
	Server   ServerConfig   `toml:"server" yaml:"server"`
	Snapshot SnapshotConfig `toml:"snapshot" yaml:"snapshot"`
}

// PanesConfig toggles the page sections. A disabled pane's container is
// left out of the markup.
type PanesConfig struct {
	Graph2D bool `toml:"graph2d" yaml:"graph2d"`
	Graph3D bool `toml:"graph3d" yaml:"graph3d"`
}

// ScriptsConfig holds the library script URLs.
type ScriptsConfig struct {
	ForceGraph   string `toml:"force_graph" yaml:"force_graph"`
	ForceGraph3D string `toml:"force_graph_3d" yaml:"force_graph_3d"`
}

// ServerConfig configures `depview serve`.
type ServerConfig struct {
	Addr            string        `toml:"addr" yaml:"addr"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`

	// Rendered snapshots and exports are cached by dataset and options.
	Cache    string        `toml:"cache" yaml:"cache"` // memory, file, none
	CacheDir string        `toml:"cache_dir" yaml:"cache_dir"`
	CacheTTL time.Duration `toml:"cache_ttl" yaml:"cache_ttl"`
}

// SnapshotConfig sets the headless render size and format.
type SnapshotConfig struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Format string `toml:"format" yaml:"format"`
}

// Default library script URLs.
const (
	DefaultForceGraphURL   = "https://unpkg.com/force-graph"
	DefaultForceGraph3DURL = "https://unpkg.com/3d-force-graph"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Panes: PanesConfig{Graph2D: true, Graph3D: true},
		Scripts: ScriptsConfig{
			ForceGraph:   DefaultForceGraphURL,
			ForceGraph3D: DefaultForceGraph3DURL,
		},
		Server: ServerConfig{
			Addr:            "localhost:8080",
			ShutdownTimeout: 5 * time.Second,
			Cache:           cache.BackendMemory,
			CacheTTL:        10 * time.Minute,
		},
		Snapshot: SnapshotConfig{Width: 800, Height: 600, Format: "png"},
	}
}

// Names lists the file names [Find] looks for, in order.
var Names = []string{"depview.toml", "depview.yaml", "depview.yml"}

// Find returns the first config file in dir, or "" if there is none.
func Find(dir string) string {
	for _, name := range Names {
		p := filepath.Join(dir, name)
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}
	return ""
}

// Load reads the file at path over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Decode(data, filepath.Ext(path))
}

// Decode parses data in the format named by ext (".toml", ".yaml", ".yml").
func Decode(data []byte, ext string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse toml")
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse yaml")
		}
	default:
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q (want toml or yaml)", ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Snapshot.Width <= 0 || c.Snapshot.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "snapshot size must be positive, got %dx%d", c.Snapshot.Width, c.Snapshot.Height)
	}
	if _, err := errors.ValidateFormat(c.Snapshot.Format, "png", "svg"); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "snapshot.format")
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	if c.Server.ShutdownTimeout < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.shutdown_timeout must not be negative")
	}
	if _, err := errors.ValidateFormat(c.Server.Cache, cache.Backends...); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "server.cache")
	}
	if c.Server.CacheTTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.cache_ttl must not be negative")
	}
	return nil
}

// Encode writes c as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return buf.Bytes(), nil
}
