package core

import (
	"context"
	"errors"
	"fmt"
)

// Service handles the business logic of steering: deciding which guidance
// documents to load and fetching their payloads through the ports.
type Service struct {
	registry  *Registry
	resolver  *Resolver
	loader    ContentLoader
	sessions  SessionStore
	workspace Workspace
}

// NewService creates a new Service. loader, sessions and workspace may be
// nil; the corresponding operations then return an error or empty data.
func NewService(registry *Registry, loader ContentLoader, sessions SessionStore, workspace Workspace) *Service {
	return &Service{
		registry:  registry,
		resolver:  NewResolver(registry),
		loader:    loader,
		sessions:  sessions,
		workspace: workspace,
	}
}

// Registry exposes the underlying trigger registry.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Resolve computes the load decision for a request context without fetching
// content or touching session state.
func (s *Service) Resolve(rctx RequestContext, loaded *LoadedSet) []string {
	return s.resolver.Resolve(rctx, loaded)
}

// Context builds a RequestContext from a signal plus the current workspace
// snapshot. With no workspace configured the path set is empty.
func (s *Service) Context(ctx context.Context, signal string) (RequestContext, error) {
	rctx := RequestContext{Signal: signal}
	if s.workspace == nil {
		return rctx, nil
	}
	paths, err := s.workspace.Snapshot(ctx)
	if err != nil {
		return rctx, fmt.Errorf("failed to snapshot workspace: %w", err)
	}
	rctx.WorkspacePaths = paths
	return rctx, nil
}

// Activate resolves the request and fetches the payload of every selected
// document. Each id is marked on loaded only after its content was fetched,
// honoring the contract that alreadyLoaded is updated by the caller of
// Resolve, not by the resolver itself.
//
// On a loader failure the activations fetched so far are returned along with
// the error; their ids are already marked as loaded.
func (s *Service) Activate(ctx context.Context, rctx RequestContext, loaded *LoadedSet) ([]Activation, error) {
	ids := s.resolver.Resolve(rctx, loaded)
	if len(ids) == 0 {
		return nil, nil
	}
	if s.loader == nil {
		return nil, errors.New("service has no content loader")
	}

	acts := make([]Activation, 0, len(ids))
	for _, id := range ids {
		content, err := s.loader.Load(ctx, id)
		if err != nil {
			return acts, fmt.Errorf("failed to load document %s: %w", id, err)
		}
		acts = append(acts, Activation{ID: id, Content: content})
		loaded.MarkLoaded(id)
	}
	return acts, nil
}

// Load fetches a single document's payload by id, bypassing triggers. The id
// must exist in the registry.
func (s *Service) Load(ctx context.Context, id string) (string, error) {
	if _, ok := s.registry.Entry(id); !ok {
		return "", fmt.Errorf("document %s: %w", id, ErrNotFound)
	}
	if s.loader == nil {
		return "", errors.New("service has no content loader")
	}
	return s.loader.Load(ctx, id)
}

// Session loads the named session's loaded set from the store.
func (s *Service) Session(ctx context.Context, name string) (*LoadedSet, error) {
	if s.sessions == nil {
		return nil, errors.New("service has no session store")
	}
	return s.sessions.Load(ctx, name)
}

// SaveSession persists the named session's loaded set.
func (s *Service) SaveSession(ctx context.Context, name string, set *LoadedSet) error {
	if s.sessions == nil {
		return errors.New("service has no session store")
	}
	return s.sessions.Save(ctx, name, set)
}

// Watch observes workspace changes if the workspace supports it.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.workspace.(Watchable)
	if !ok {
		return nil, errors.New("workspace does not support watching")
	}
	return w.Watch(ctx)
}
