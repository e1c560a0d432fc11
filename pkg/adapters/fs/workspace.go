package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/steering/pkg/core"
)

// WorkspaceConfig holds the configuration for the workspace scanner.
type WorkspaceConfig struct {
	Root         string
	SystemDir    string
	Logger       *slog.Logger
	EventBuffer  int // Watch channel buffer size. Zero means default (100).
	ErrorHandler func(error)
}

// Workspace implements core.Workspace (and core.Watchable) over a directory.
// The snapshot is the set of relative, slash-normalized file paths the auto
// triggers are matched against.
type Workspace struct {
	Root   string
	config WorkspaceConfig

	mu            sync.RWMutex
	watcherActive bool
}

// NewWorkspace creates a workspace scanner rooted at the given path.
func NewWorkspace(config WorkspaceConfig) *Workspace {
	if config.SystemDir == "" {
		config.SystemDir = DefaultSystemDir
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = 100
	}
	return &Workspace{
		Root:   config.Root,
		config: config,
	}
}

// Snapshot walks the workspace and returns its file paths, sorted.
// System directories (.git and the steering state dir) are skipped.
func (w *Workspace) Snapshot(ctx context.Context) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(w.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == w.config.SystemDir {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(w.Root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(relPath))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan workspace: %w", err)
	}

	sort.Strings(paths)
	return paths, nil
}

// Watch starts a filesystem watcher and emits workspace events until ctx is
// cancelled. Events are debounced; the channel is closed when the worker
// stops.
func (w *Workspace) Watch(ctx context.Context) (<-chan core.Event, error) {
	events := make(chan core.Event, w.config.EventBuffer)
	worker := newWatchWorker(w, events)

	if err := worker.Start(ctx); err != nil {
		return nil, err
	}

	return events, nil
}

// shouldIgnore filters watcher events for paths the snapshot would not
// contain either.
func (w *Workspace) shouldIgnore(path string) bool {
	rel, err := filepath.Rel(w.Root, path)
	if err != nil {
		return true
	}
	rel = filepath.ToSlash(rel)

	for _, segment := range strings.Split(rel, "/") {
		if segment == ".git" || segment == w.config.SystemDir {
			return true
		}
	}
	return strings.HasPrefix(filepath.Base(rel), TempFilePrefix)
}

// relPath converts an absolute event path into snapshot form.
func (w *Workspace) relPath(path string) (string, error) {
	rel, err := filepath.Rel(w.Root, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

func (w *Workspace) setWatcherActive(active bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.watcherActive = active
}

var _ core.Workspace = (*Workspace)(nil)
var _ core.Watchable = (*Workspace)(nil)
