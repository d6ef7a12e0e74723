// Config loading for the larder CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyDBPath = "db_path"
)

// loadConfig reads config.yaml from the given directory. A missing file is
// fine; the returned viper just holds no values.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return v, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return v, nil
}

// writeConfig creates the config directory and writes config.yaml with the
// given database path.
func writeConfig(configDir, dbPath string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	v := viper.New()
	v.Set(cfgKeyDBPath, dbPath)
	if err := v.WriteConfigAs(filepath.Join(configDir, configFileName+"."+configFileType)); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
