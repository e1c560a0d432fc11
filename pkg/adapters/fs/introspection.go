package fs

import (
	"github.com/aretw0/introspection"
)

// CatalogState exposes internal state for observability.
type CatalogState struct {
	Root      string `json:"root"`
	SystemDir string `json:"system_dir"`
	Documents int    `json:"documents"`
}

// State implements introspection.Introspectable.
func (c *Catalog) State() any {
	return CatalogState{
		Root:      c.Root,
		SystemDir: c.config.SystemDir,
		Documents: c.Len(),
	}
}

// ComponentType implements introspection.Component.
func (c *Catalog) ComponentType() string {
	return "fs-catalog"
}

var _ introspection.Introspectable = (*Catalog)(nil)
var _ introspection.Component = (*Catalog)(nil)

// WorkspaceState exposes internal state for observability.
type WorkspaceState struct {
	Root          string `json:"root"`
	SystemDir     string `json:"system_dir"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (w *Workspace) State() any {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return WorkspaceState{
		Root:          w.Root,
		SystemDir:     w.config.SystemDir,
		WatcherActive: w.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (w *Workspace) ComponentType() string {
	return "fs-workspace"
}

var _ introspection.Introspectable = (*Workspace)(nil)
var _ introspection.Component = (*Workspace)(nil)
