package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a guidance document's payload",
	Long:  `Show fetches a document by its id and prints the opaque payload as-is.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		svc, err := newService()
		if err != nil {
			fatal("Error initializing steering", err)
		}

		content, err := svc.Load(context.Background(), id)
		if err != nil {
			fatal("Error loading document", err)
		}
		fmt.Print(content)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
