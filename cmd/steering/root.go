package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose      bool
	catalogDir   string
	workspaceDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "steering",
	Short: "A trigger-driven loader for AI guidance documents",
	Long: `Steering decides which guidance documents to load into an assistant's
context: keywords in the request select documents manually, file patterns in
the workspace select them automatically. Nothing loads twice in a session,
and nothing loads without a positive match.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&catalogDir, "catalog", "c", ".", "Path to the guidance catalog directory")
	rootCmd.PersistentFlags().StringVarP(&workspaceDir, "workspace", "w", "", "Path to the workspace to scan for auto triggers")
}
