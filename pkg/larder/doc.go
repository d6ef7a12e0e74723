// Package larder maps declared record types onto tables in an embedded SQL
// engine. A caller describes a record type as an ordered set of typed fields
// (types.Schema), registers it with DB.Table, and gets back a handle with
// create, get, filter, and delete operations plus per-record save, refresh,
// and delete. Schema creation and all statements are derived from the
// declaration; no hand-written SQL is involved.
//
// Example:
//
//	db, err := larder.Open(sqlite.Config{Path: "larder.db"})
//	defer db.Close()
//
//	cars, err := db.Table(types.Schema{
//	    Name: "Car",
//	    Fields: []types.Field{
//	        {Name: "make", Type: types.Text, NotNull: true},
//	    },
//	})
//	rec, err := cars.Create(map[string]any{"make": "Opel"})
//
// A DB wraps a single backend connection and assumes single-goroutine use.
// Callers that need concurrent access must serialize it externally, for
// example one DB per worker.
package larder
