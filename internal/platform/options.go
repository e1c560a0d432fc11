package platform

import (
	"log/slog"

	"github.com/aretw0/steering/pkg/core"
)

// options holds the internal configuration for the steering service.
type options struct {
	logger       *slog.Logger
	entries      []core.Entry
	loader       core.ContentLoader
	sessions     core.SessionStore
	workspace    core.Workspace
	workspaceDir string
	systemDir    string
	mustExist    bool
	eventBuffer  int
	errorHandler func(error)
}

// Option defines a functional option for configuring the steering service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		systemDir: "",
	}
}

// WithLogger sets the logger for the service and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEntries injects catalog entries directly, skipping the filesystem
// catalog scan. The content loader must then be provided too (or documents
// cannot be activated, only resolved).
func WithEntries(entries []core.Entry) Option {
	return func(o *options) {
		o.entries = entries
	}
}

// WithContentLoader injects a custom content loader.
func WithContentLoader(loader core.ContentLoader) Option {
	return func(o *options) {
		o.loader = loader
	}
}

// WithSessionStore injects a custom session store (e.g. in-memory for tests).
func WithSessionStore(store core.SessionStore) Option {
	return func(o *options) {
		o.sessions = store
	}
}

// WithWorkspace injects a custom workspace implementation.
func WithWorkspace(workspace core.Workspace) Option {
	return func(o *options) {
		o.workspace = workspace
	}
}

// WithWorkspaceDir points the service at a workspace directory to scan for
// auto triggers. Ignored if WithWorkspace is also given.
func WithWorkspaceDir(dir string) Option {
	return func(o *options) {
		o.workspaceDir = dir
	}
}

// WithSystemDir allows specifying the hidden state directory name
// (e.g. ".steering").
func WithSystemDir(name string) Option {
	return func(o *options) {
		o.systemDir = name
	}
}

// WithMustExist ensures the catalog directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithEventBuffer allows specifying the size of the workspace watch buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithWatcherErrorHandler registers a callback for errors occurring during
// the workspace watch loop, which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
