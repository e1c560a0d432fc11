package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/steering"
	"github.com/aretw0/steering/pkg/core"
	"github.com/spf13/cobra"
)

var (
	resolveJSON    bool
	resolveContent bool
	resolveDryRun  bool
	resolvePaths   []string
	sessionName    string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [signal...]",
	Short: "Decide which guidance documents to load for a request",
	Long: `Resolve matches the request signal against keyword triggers and the
workspace against path triggers, then prints the ordered load set.
Documents already loaded in the session are suppressed. With --dry-run the
session state is left untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		signal := strings.Join(args, " ")
		ctx := context.Background()

		svc, err := newService()
		if err != nil {
			fatal("Error initializing steering", err)
		}

		loaded, err := svc.Session(ctx, sessionName)
		if err != nil {
			fatal("Error loading session", err)
		}

		rctx, err := svc.Context(ctx, signal)
		if err != nil {
			fatal("Error building request context", err)
		}
		if len(resolvePaths) > 0 {
			rctx.WorkspacePaths = append(rctx.WorkspacePaths, resolvePaths...)
		}

		if !resolveContent {
			ids := svc.Resolve(rctx, loaded)
			if !resolveDryRun {
				loaded.MarkLoaded(ids...)
				if err := svc.SaveSession(ctx, sessionName, loaded); err != nil {
					fatal("Error saving session", err)
				}
			}
			printIDs(ids)
			return
		}

		activations, err := svc.Activate(ctx, rctx, loaded)
		if err != nil {
			fatal("Error activating documents", err)
		}
		if !resolveDryRun {
			if err := svc.SaveSession(ctx, sessionName, loaded); err != nil {
				fatal("Error saving session", err)
			}
		}
		printActivations(activations)
	},
}

func printIDs(ids []string) {
	if resolveJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(ids); err != nil {
			fatal("Error encoding JSON", err)
		}
		return
	}
	for _, id := range ids {
		fmt.Println(id)
	}
}

func printActivations(activations []core.Activation) {
	if resolveJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(activations); err != nil {
			fatal("Error encoding JSON", err)
		}
		return
	}
	for _, a := range activations {
		fmt.Printf("--- %s ---\n", a.ID)
		fmt.Println(a.Content)
	}
}

// newService builds the service from the persistent CLI flags.
func newService() (*steering.Service, error) {
	opts := []steering.Option{
		steering.WithMustExist(true),
		steering.WithLogger(slog.Default()),
	}
	if workspaceDir != "" {
		opts = append(opts, steering.WithWorkspaceDir(workspaceDir))
	}
	return steering.New(catalogDir, opts...)
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Output in JSON format")
	resolveCmd.Flags().BoolVar(&resolveContent, "content", false, "Print document payloads, not just ids")
	resolveCmd.Flags().BoolVar(&resolveDryRun, "dry-run", false, "Do not update the session state")
	resolveCmd.Flags().StringSliceVar(&resolvePaths, "path", nil, "Additional workspace paths (repeatable)")
	resolveCmd.Flags().StringVarP(&sessionName, "session", "s", "default", "Session name for already-loaded tracking")
}
