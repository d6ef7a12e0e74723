// larder get: look up one item by id or SKU.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/larder"
)

var getSKU string

var getCmd = &cobra.Command{
	Use:   "get [ID]",
	Short: "Get one item by id or by --sku",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var rec *larder.Record
		var err error

		switch {
		case getSKU != "":
			rec, err = items.GetBy(map[string]any{"sku": getSKU})
		case len(args) == 1:
			var id int64
			id, err = strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: id %q is not an integer", errBadArgument, args[0])
			}
			rec, err = items.Get(id)
		default:
			return fmt.Errorf("%w: an id argument or --sku is required", errBadArgument)
		}
		if err != nil {
			return err
		}
		return printItem(cmd.OutOrStdout(), rec)
	},
}

func init() {
	getCmd.Flags().StringVar(&getSKU, "sku", "", "look up by SKU instead of id")
}
