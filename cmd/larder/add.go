// larder add: create one item.
package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	addPrice   float64
	addInStock bool
)

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add an item to the larder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := items.Create(map[string]any{
			"sku":      generateSKU(),
			"name":     args[0],
			"price":    addPrice,
			"in_stock": addInStock,
		})
		if err != nil {
			return err
		}
		return printItem(cmd.OutOrStdout(), rec)
	},
}

func init() {
	addCmd.Flags().Float64Var(&addPrice, "price", 0, "item price")
	addCmd.Flags().BoolVar(&addInStock, "in-stock", true, "item is in stock")
}

// generateSKU returns a UUID v7 string, falling back to v4 if v7
// generation fails.
func generateSKU() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
