// larder list: list items, optionally filtered and sorted.
package main

import (
	"github.com/spf13/cobra"
)

var (
	listInStock bool
	listSortBy  string
	listDesc    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List items in insertion order",
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria := map[string]any{}
		if cmd.Flags().Changed("in-stock") {
			criteria["in_stock"] = listInStock
		}

		cur, err := items.FilterSorted(criteria, listSortBy, listDesc)
		if err != nil {
			return err
		}
		defer cur.Close()

		for cur.Next() {
			if err := printItem(cmd.OutOrStdout(), cur.Record()); err != nil {
				return err
			}
		}
		return cur.Err()
	},
}

func init() {
	listCmd.Flags().BoolVar(&listInStock, "in-stock", true, "only items with the given stock state")
	listCmd.Flags().StringVar(&listSortBy, "sort", "", "sort by field (default: insertion order)")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")
}
