package steering

import (
	"log/slog"

	"github.com/aretw0/steering/internal/platform"
	"github.com/aretw0/steering/pkg/core"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Entry is a public alias for a catalog entry.
type Entry = core.Entry

// Trigger is a public alias for a trigger definition.
type Trigger = core.Trigger

// RequestContext is a public alias for the per-call resolution input.
type RequestContext = core.RequestContext

// LoadedSet is a public alias for the session-scoped loaded set.
type LoadedSet = core.LoadedSet

// Activation is a public alias for a loaded document payload.
type Activation = core.Activation

// Service is a public alias for the steering service.
type Service = core.Service

// Registry is a public alias for the trigger registry.
type Registry = core.Registry

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = platform.Option

// WithLogger sets the logger for the service and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithEntries injects catalog entries directly, skipping the filesystem scan.
func WithEntries(entries []core.Entry) Option {
	return platform.WithEntries(entries)
}

// WithContentLoader allows injecting a custom content loader.
func WithContentLoader(loader core.ContentLoader) Option {
	return platform.WithContentLoader(loader)
}

// WithSessionStore allows injecting a custom session store.
func WithSessionStore(store core.SessionStore) Option {
	return platform.WithSessionStore(store)
}

// WithWorkspace allows injecting a custom workspace implementation.
func WithWorkspace(workspace core.Workspace) Option {
	return platform.WithWorkspace(workspace)
}

// WithWorkspaceDir points the service at a workspace directory to scan for
// auto triggers.
func WithWorkspaceDir(dir string) Option {
	return platform.WithWorkspaceDir(dir)
}

// WithSystemDir allows specifying the hidden state directory name (e.g. ".steering").
func WithSystemDir(name string) Option {
	return platform.WithSystemDir(name)
}

// WithMustExist ensures the catalog directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithEventBuffer allows specifying the size of the workspace watch buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithWatcherErrorHandler registers a callback for workspace watch errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a new steering Service over a catalog directory.
func New(catalogPath string, opts ...Option) (*core.Service, error) {
	return platform.New(catalogPath, opts...)
}

// NewRegistry builds a trigger registry directly from catalog entries.
func NewRegistry(entries []core.Entry) (*core.Registry, error) {
	return core.NewRegistry(entries)
}

// NewEntry builds a catalog entry from keyword and pattern lists.
func NewEntry(id, contentRef string, keywords, patterns []string) core.Entry {
	return core.NewEntry(id, contentRef, keywords, patterns)
}

// NewLoadedSet creates a loaded set seeded with the given ids.
func NewLoadedSet(ids ...string) *core.LoadedSet {
	return core.NewLoadedSet(ids...)
}

// --- Operations ---

// Resolve is the pure resolution call:
// (signal, workspacePaths, alreadyLoaded) -> ordered document ids.
func Resolve(registry *core.Registry, signal string, workspacePaths, alreadyLoaded []string) []string {
	return core.Resolve(registry, signal, workspacePaths, alreadyLoaded)
}
