// Package paths resolves the configuration directory and database file
// location for the larder CLI.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative defaults.
const (
	DefaultConfigDirName = ".larder"
	DefaultDBName        = "larder.db"
)

// Environment variable names for overrides.
const (
	EnvConfigDir = "LARDER_CONFIG_DIR"
	EnvDBPath    = "LARDER_DB"
)

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > LARDER_CONFIG_DIR env > $(CWD)/.larder.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultConfigDirName), nil
}

// ResolveDBPath returns the database file path following the precedence
// chain: flag > config.yaml db_path > LARDER_DB env > $(CWD)/larder.db.
func ResolveDBPath(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDBPath); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDBName), nil
}
