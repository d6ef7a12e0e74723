// larder init: write the config file and create the database.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/paths"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the larder configuration and database",
	Long: `Init writes config.yaml into the configuration directory and creates
the database file. Both locations follow the usual precedence: flags, then
config, then LARDER_* environment variables, then the working directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The database itself was already created by the shared setup.
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}
		dbPath, err := paths.ResolveDBPath(flagDB, "")
		if err != nil {
			return err
		}
		if err := writeConfig(configDir, dbPath); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized larder: config %s, database %s\n", configDir, dbPath)
		return nil
	},
}
