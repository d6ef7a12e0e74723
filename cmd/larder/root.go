// Root command and shared setup for the larder CLI.
package main

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/paths"
	"github.com/mesh-intelligence/larder/pkg/larder"
	"github.com/mesh-intelligence/larder/pkg/sqlite"
)

// errBadArgument marks command-line arguments the user got wrong.
var errBadArgument = errors.New("bad argument")

// Global flag values.
var (
	flagConfigDir string
	flagDB        string
	flagJSON      bool
)

// db and items are opened by PersistentPreRunE for every subcommand except
// version.
var (
	db    *larder.DB
	items *larder.Table
)

var rootCmd = &cobra.Command{
	Use:     "larder",
	Short:   "Larder is a small inventory notebook over embedded SQLite",
	Version: larder.Version,

	// Errors are reported once, by main, with the proper exit code.
	SilenceErrors: true,
	SilenceUsage:  true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		// A .env file in the working directory may set LARDER_DB or
		// LARDER_CONFIG_DIR; absence is not an error.
		_ = godotenv.Load()

		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		dbPath, err := paths.ResolveDBPath(flagDB, cfg.GetString(cfgKeyDBPath))
		if err != nil {
			return err
		}

		db, err = larder.Open(sqlite.Config{Path: dbPath})
		if err != nil {
			return err
		}
		items, err = db.Table(itemSchema)
		if err != nil {
			db.Close()
			return err
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.larder)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database file (default: $(CWD)/larder.db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(dumpCmd)
}
