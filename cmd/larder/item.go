// The item model and output helpers for the larder CLI.
package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mesh-intelligence/larder/pkg/larder"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// itemSchema declares the one record type the CLI manages. The key is
// implicit; sku gets a generated UUID on add.
var itemSchema = types.Schema{
	Name: "Item",
	Fields: []types.Field{
		{Name: "sku", Type: types.Text, Unique: true, NotNull: true},
		{Name: "name", Type: types.Text, NotNull: true},
		{Name: "price", Type: types.Real},
		{Name: "in_stock", Type: types.Boolean, NotNull: true, Default: true},
		{Name: "added_at", Type: types.DateTime, AutoCreate: true},
		{Name: "updated_at", Type: types.DateTime, AutoUpdate: true},
	},
}

// printItem writes one item, human-readable or as a JSON object depending
// on the --json flag.
func printItem(w io.Writer, rec *larder.Record) error {
	if flagJSON {
		return writeItemJSON(w, rec)
	}
	key, _ := rec.Key()
	_, err := fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\tin_stock=%t\n",
		key, rec.Text("sku"), rec.Text("name"), rec.Real("price"), rec.Bool("in_stock"))
	return err
}

// writeItemJSON writes one item as a single JSON line.
func writeItemJSON(w io.Writer, rec *larder.Record) error {
	enc := json.NewEncoder(w)
	return enc.Encode(rec.Values())
}
