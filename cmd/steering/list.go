package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	listJSON bool
)

// listRow is the JSON shape of one catalog entry in list output.
type listRow struct {
	ID       string   `json:"id"`
	Keywords []string `json:"keywords,omitempty"`
	Patterns []string `json:"patterns,omitempty"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all guidance documents and their triggers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		if err != nil {
			fatal("Error initializing steering", err)
		}

		registry := svc.Registry()
		rows := make([]listRow, 0, registry.Len())
		for _, id := range registry.IDs() {
			entry, _ := registry.Entry(id)
			rows = append(rows, listRow{
				ID:       id,
				Keywords: entry.Keywords(),
				Patterns: entry.Patterns(),
			})
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(rows); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		for _, row := range rows {
			fmt.Println(row.ID)
			if len(row.Keywords) > 0 {
				fmt.Printf("  keywords: %s\n", strings.Join(row.Keywords, ", "))
			}
			if len(row.Patterns) > 0 {
				fmt.Printf("  patterns: %s\n", strings.Join(row.Patterns, ", "))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
