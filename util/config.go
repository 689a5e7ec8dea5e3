package util

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/BurntSushi/toml"
)

// Config holds the signed deltas applied by the bup and bdown commands.
// The values are not range checked: an increment larger than the
// brightness range simply makes every bup/bdown a no-op.
type Config struct {
	PositiveIncrement int16 `toml:"positive_increment"`
	NegativeIncrement int16 `toml:"negative_increment"`
}

func DefaultConfig() Config {
	return Config{PositiveIncrement: 15, NegativeIncrement: -15}
}

// ConfigPath locates the persisted config under the user's home.
func ConfigPath() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", errors.New("Config error: HOME environment variable is not set")
	}
	return path.Join(home, ".config", "screenpadctl", "config.toml"), nil
}

// LoadConfig reads the config at pth. A missing file is not an error:
// it is created with defaults, which are returned.
func LoadConfig(pth string) (Config, error) {
	ex, err := PathExists(pth)
	if err != nil {
		return Config{}, fmt.Errorf("Config error: %w", err)
	}
	if !ex {
		cfg := DefaultConfig()
		if err := StoreConfig(pth, cfg); err != nil {
			return Config{}, fmt.Errorf("Config error: %w", err)
		}
		return cfg, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(pth, &cfg); err != nil {
		return Config{}, fmt.Errorf("Config error: %w", err)
	}
	return cfg, nil
}

// StoreConfig writes cfg to pth, creating parent directories as needed.
// Callers treat persistence as best-effort and may ignore the error.
func StoreConfig(pth string, cfg Config) error {
	if err := os.MkdirAll(path.Dir(pth), 0755); err != nil {
		return err
	}

	f, err := os.Create(pth)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
