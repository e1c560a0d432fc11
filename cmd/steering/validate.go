package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/steering/pkg/adapters/fs"
	"github.com/aretw0/steering/pkg/core"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog for configuration and pattern errors",
	Long: `Validate loads the catalog and constructs the trigger registry without
starting a service. Duplicate ids, trigger-less documents and malformed glob
patterns are reported with the offending document id.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		catalog := fs.NewCatalog(fs.Config{
			Root:      catalogDir,
			MustExist: true,
			Logger:    slog.Default(),
		})
		if err := catalog.Initialize(ctx); err != nil {
			fatal("Error opening catalog", err)
		}
		entries, err := catalog.Entries(ctx)
		if err != nil {
			fatal("Error reading catalog", err)
		}

		registry, err := core.NewRegistry(entries)
		if err != nil {
			var cfgErr *core.ConfigError
			var patErr *core.PatternError
			switch {
			case errors.As(err, &patErr):
				fmt.Fprintf(os.Stderr, "invalid pattern in %q: %s (%v)\n", patErr.ID, patErr.Pattern, patErr.Err)
			case errors.As(err, &cfgErr):
				fmt.Fprintf(os.Stderr, "invalid document %q: %v\n", cfgErr.ID, cfgErr.Rule)
			default:
				fmt.Fprintf(os.Stderr, "invalid catalog: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("catalog OK: %d documents, %d keywords\n", registry.Len(), len(registry.Vocabulary()))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
