// larder delete: remove one item by id, or every item with --all.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteAll bool

var deleteCmd = &cobra.Command{
	Use:   "delete [ID]",
	Short: "Delete one item by id, or all items with --all",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if deleteAll {
			n, err := items.Delete(nil)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d items\n", n)
			return nil
		}

		if len(args) != 1 {
			return fmt.Errorf("%w: an id argument or --all is required", errBadArgument)
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: id %q is not an integer", errBadArgument, args[0])
		}

		rec, err := items.Get(id)
		if err != nil {
			return err
		}
		if err := rec.Delete(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %d\n", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteAll, "all", false, "delete every item")
}
