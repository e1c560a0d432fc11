package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var watchSession string

var watchCmd = &cobra.Command{
	Use:   "watch [signal...]",
	Short: "Watch the workspace and print newly activated documents",
	Long: `Watch resolves once against the current workspace, then keeps observing
it. Whenever files change, the request is re-resolved and any documents that
newly match a path trigger are printed. Press Ctrl+C to stop.`,
	Run: func(cmd *cobra.Command, args []string) {
		if workspaceDir == "" {
			fatal("Error starting watch", errors.New("--workspace is required"))
		}
		requestSignal := strings.Join(args, " ")

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc, err := newService()
		if err != nil {
			fatal("Error initializing steering", err)
		}

		loaded, err := svc.Session(ctx, watchSession)
		if err != nil {
			fatal("Error loading session", err)
		}

		resolveAndPrint := func() {
			rctx, err := svc.Context(ctx, requestSignal)
			if err != nil {
				slog.Warn("failed to snapshot workspace", "error", err)
				return
			}
			ids := svc.Resolve(rctx, loaded)
			if len(ids) == 0 {
				return
			}
			loaded.MarkLoaded(ids...)
			if err := svc.SaveSession(ctx, watchSession, loaded); err != nil {
				slog.Warn("failed to save session", "error", err)
			}
			for _, id := range ids {
				fmt.Println(id)
			}
		}

		resolveAndPrint()

		events, err := svc.Watch(ctx)
		if err != nil {
			fatal("Error starting watch", err)
		}
		slog.Info("watching workspace", "path", workspaceDir)

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				slog.Debug("workspace changed", "event", event.String())
				resolveAndPrint()
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchSession, "session", "s", "default", "Session name for already-loaded tracking")
}
