package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/steering"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the steering version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("steering %s\n", strings.TrimSpace(steering.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
