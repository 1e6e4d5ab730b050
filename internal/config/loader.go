package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	pathEnv     = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load reads the YAML file named by CONFIG_PATH and overlays the
// environment. Environment values win over the file, the file wins over
// env-default tags.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv(pathEnv))
}

// LoadFrom is Load with an explicit file. An empty path means ./config.yaml
// if it exists and the environment alone otherwise. A non-empty path must
// exist.
func LoadFrom(path string) (*Config, error) {
	file, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if file == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(file, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", describe(file), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// resolvePath returns the file to read, or "" when only the environment
// should be used.
func resolvePath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", err
		}
		return path, nil
	}

	_, err := os.Stat(defaultPath)
	switch {
	case err == nil:
		return defaultPath, nil
	case errors.Is(err, fs.ErrNotExist):
		return "", nil
	default:
		return "", err
	}
}

func describe(file string) string {
	if file == "" {
		return "environment"
	}
	return file
}
