// Package config loads the cstv CLI and server's TOML configuration file,
// following the same decode-and-warn-on-unknown-keys shape used throughout
// the rest of the pack's CLI tooling.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/pbvote/cstv/internal/applog"
)

// Config is the on-disk shape of a cstv config file (cstv.toml).
type Config struct {
	// Combination is the default rule combination name (EWT, EWTC, EWTS,
	// MT, MTC, MTS) used when a run doesn't specify one explicitly.
	Combination string `toml:"combination"`

	// NumericMode selects the process-wide numeric backend: "exact" (the
	// default) or "float".
	NumericMode string `toml:"numeric_mode"`

	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
}

// ServerConfig configures the optional HTTP/websocket server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DatabaseConfig configures the optional Postgres run store.
type DatabaseConfig struct {
	URL string `toml:"url"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Combination: "EWTS",
		NumericMode: "exact",
		Server:      ServerConfig{Addr: ":8080"},
	}
}

// LoadFromFile reads and decodes a TOML configuration file at path. Unknown
// keys are logged as warnings rather than treated as errors, so older
// config files keep working across schema additions.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	warnUndecodedKeys(meta, path)
	return cfg, nil
}

// LoadFromString decodes TOML configuration from an in-memory string. name
// is used only in log messages and error text.
func LoadFromString(data, name string) (*Config, error) {
	cfg := Default()
	meta, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", name, err)
	}
	warnUndecodedKeys(meta, name)
	return cfg, nil
}

func warnUndecodedKeys(meta toml.MetaData, source string) {
	undecoded := meta.Undecoded()
	if len(undecoded) == 0 {
		return
	}
	keys := make([]string, 0, len(undecoded))
	for _, k := range undecoded {
		keys = append(keys, k.String())
	}
	applog.For("config").Warn("unknown config keys will be ignored", "source", source, "keys", keys)
}
