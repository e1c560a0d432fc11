package core

import "context"

// ContentLoader fetches the opaque payload of a guidance document.
// The core never inspects the payload.
type ContentLoader interface {
	// Load returns the payload for a document id.
	Load(ctx context.Context, id string) (string, error)
}

// CatalogSource supplies the catalog entries the registry is built from.
type CatalogSource interface {
	// Entries returns the catalog in declaration order.
	Entries(ctx context.Context) ([]Entry, error)
}

// SessionStore persists a session's loaded set between resolution calls
// within one conversation.
type SessionStore interface {
	// Load returns the loaded set for a session name, empty if unknown.
	Load(ctx context.Context, session string) (*LoadedSet, error)

	// Save persists the loaded set for a session name.
	Save(ctx context.Context, session string, set *LoadedSet) error
}

// Workspace supplies the set of paths currently visible in the workspace.
type Workspace interface {
	// Snapshot returns a read-only snapshot of known workspace paths.
	Snapshot(ctx context.Context) ([]string, error)
}

// Watchable is implemented by workspaces that can report changes.
type Watchable interface {
	// Watch emits workspace events until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}
