package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/goliatone/go-formbuilder/pkg/store"
)

// DefaultConfigFile is read from the working directory when --config is not
// given.
const DefaultConfigFile = "formbuilder.toml"

// Config is the formbuilder.toml document.
type Config struct {
	Store  store.Config `toml:"store"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig stores records under .formbuilder and serves on :8080.
func DefaultConfig() Config {
	return Config{
		Store:  store.DefaultConfig(),
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info"},
	}
}

// LoadConfig decodes path over DefaultConfig. A missing file is only an
// error when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return cfg, fmt.Errorf("parse config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func parseLevel(raw string) (log.Level, error) {
	if strings.TrimSpace(raw) == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
}
