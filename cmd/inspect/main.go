// Command inspect dumps database records as a table for debugging.
// Opens the store read-only so it can run next to the live server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "./data/badger", "Path to the database")
	prefix := flag.String("prefix", "msg:", "Key prefix to scan (msg:, unread:, user:, freq:, song:, album:)")
	limit := flag.Int("limit", 100, "Maximum rows to print")
	flag.Parse()

	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening database: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Value"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	rows := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes) && rows < *limit; it.Next() {
			item := it.Item()
			err := item.Value(func(value []byte) error {
				table.Append([]string{string(item.Key()), summarize(value)})
				rows++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
	fmt.Printf("\n%d row(s)\n", rows)
}

// summarize renders JSON values compactly; index entries hold a raw
// reference key and are printed as-is.
func summarize(value []byte) string {
	var decoded map[string]any
	if err := json.Unmarshal(value, &decoded); err != nil {
		return string(value)
	}
	parts := make([]string, 0, len(decoded))
	for k, v := range decoded {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	summary := strings.Join(parts, " ")
	if len(summary) > 120 {
		summary = summary[:120] + "…"
	}
	return summary
}
