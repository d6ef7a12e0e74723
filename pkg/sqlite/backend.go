// Package sqlite provides the public API for the embedded SQLite backend.
// It exposes the configuration and factory function while keeping the
// implementation internal.
package sqlite

import (
	"github.com/mesh-intelligence/larder/internal/sqlite"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// Config configures the SQLite backend.
type Config = sqlite.Config

// Open opens the embedded SQLite database described by cfg.
//
// Example:
//
//	backend, err := sqlite.Open(sqlite.Config{Path: "larder.db"})
//	if err != nil {
//	    return err
//	}
//	defer backend.Close()
func Open(cfg Config) (types.Backend, error) {
	return sqlite.Open(cfg)
}
