package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/steering/pkg/adapters/fs"
	"github.com/spf13/cobra"
)

var sessionCmdName string

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect or reset session state",
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List the documents already loaded in a session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store := newSessionStore()
		set, err := store.Load(context.Background(), sessionCmdName)
		if err != nil {
			fatal("Error loading session", err)
		}
		for _, id := range set.IDs() {
			fmt.Println(id)
		}
	},
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget everything loaded in a session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store := newSessionStore()
		if err := store.Clear(context.Background(), sessionCmdName); err != nil {
			fatal("Error clearing session", err)
		}
		fmt.Printf("session %q cleared\n", sessionCmdName)
	},
}

// newSessionStore points at the same state directory the service factory
// uses: the workspace when one is set, the catalog otherwise.
func newSessionStore() *fs.SessionStore {
	stateRoot := catalogDir
	if workspaceDir != "" {
		stateRoot = workspaceDir
	}
	return fs.NewSessionStore(filepath.Join(stateRoot, fs.DefaultSystemDir))
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionClearCmd)
	sessionCmd.PersistentFlags().StringVarP(&sessionCmdName, "session", "s", "default", "Session name")
}
