// larder dump: stream the item table as JSON lines.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var dumpOut string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump all items as JSON lines",
	Long: `Dump writes every item as one JSON object per line, to stdout or,
with --out, atomically to a file (temp file then rename).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dumpOut == "" {
			return dumpItems(cmd.OutOrStdout())
		}
		return dumpItemsToFile(dumpOut)
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpOut, "out", "", "write to file instead of stdout")
}

// dumpItems streams every item to w as JSON lines.
func dumpItems(w io.Writer) error {
	cur, err := items.Filter(nil)
	if err != nil {
		return err
	}
	defer cur.Close()

	for cur.Next() {
		if err := writeItemJSON(w, cur.Record()); err != nil {
			return fmt.Errorf("writing item: %w", err)
		}
	}
	return cur.Err()
}

// dumpItemsToFile writes the dump atomically: temp file, flush, fsync, then
// rename over the target.
func dumpItemsToFile(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".dump-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if err := dumpItems(w); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
