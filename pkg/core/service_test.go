package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/steering/pkg/core"
)

// MockLoader implements core.ContentLoader in memory.
type MockLoader struct {
	payloads map[string]string
	calls    []string
}

func NewMockLoader(payloads map[string]string) *MockLoader {
	return &MockLoader{payloads: payloads}
}

func (m *MockLoader) Load(ctx context.Context, id string) (string, error) {
	m.calls = append(m.calls, id)
	content, ok := m.payloads[id]
	if !ok {
		return "", core.ErrNotFound
	}
	return content, nil
}

// MockSessionStore implements core.SessionStore in memory.
type MockSessionStore struct {
	sets map[string][]string
}

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{sets: make(map[string][]string)}
}

func (m *MockSessionStore) Load(ctx context.Context, session string) (*core.LoadedSet, error) {
	return core.NewLoadedSet(m.sets[session]...), nil
}

func (m *MockSessionStore) Save(ctx context.Context, session string, set *core.LoadedSet) error {
	m.sets[session] = set.IDs()
	return nil
}

// staticWorkspace implements core.Workspace over a fixed path set.
type staticWorkspace []string

func (w staticWorkspace) Snapshot(ctx context.Context) ([]string, error) {
	return w, nil
}

func newTestService(t *testing.T, workspace core.Workspace) (*core.Service, *MockLoader) {
	t.Helper()
	registry, err := core.NewRegistry([]core.Entry{blocEntry(), routerEntry()})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	loader := NewMockLoader(map[string]string{
		"bloc-state":          "# Bloc & State Management\n...",
		"gorouter-navigation": "# Navigation\n...",
	})
	return core.NewService(registry, loader, NewMockSessionStore(), workspace), loader
}

func TestService_Activate(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.TODO()
	loaded := core.NewLoadedSet()

	acts, err := svc.Activate(ctx, core.RequestContext{Signal: "emit a state"}, loaded)
	if err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if len(acts) != 1 || acts[0].ID != "bloc-state" {
		t.Fatalf("expected one bloc-state activation, got %v", acts)
	}
	if acts[0].Content == "" {
		t.Error("expected payload content")
	}
	if !loaded.Has("bloc-state") {
		t.Error("Activate must mark loaded ids")
	}

	// Second call with the same signal: suppressed by the session.
	acts, err = svc.Activate(ctx, core.RequestContext{Signal: "emit a state"}, loaded)
	if err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if len(acts) != 0 {
		t.Errorf("expected no re-activation, got %v", acts)
	}
}

func TestService_ActivateLoaderFailure(t *testing.T) {
	registry, err := core.NewRegistry([]core.Entry{blocEntry()})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	loader := NewMockLoader(nil) // knows no payloads
	svc := core.NewService(registry, loader, nil, nil)

	loaded := core.NewLoadedSet()
	_, err = svc.Activate(context.TODO(), core.RequestContext{Signal: "cubit"}, loaded)
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if loaded.Has("bloc-state") {
		t.Error("failed load must not mark the id as loaded")
	}
}

func TestService_ActivateNoLoader(t *testing.T) {
	registry, err := core.NewRegistry([]core.Entry{blocEntry()})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	svc := core.NewService(registry, nil, nil, nil)

	if _, err := svc.Activate(context.TODO(), core.RequestContext{Signal: "cubit"}, core.NewLoadedSet()); err == nil {
		t.Fatal("expected error without a content loader")
	}
}

func TestService_Context(t *testing.T) {
	svc, _ := newTestService(t, staticWorkspace{"lib/features/auth/auth_cubit.dart"})

	rctx, err := svc.Context(context.TODO(), "anything")
	if err != nil {
		t.Fatalf("Context failed: %v", err)
	}
	if len(rctx.WorkspacePaths) != 1 {
		t.Errorf("expected workspace snapshot in context, got %v", rctx.WorkspacePaths)
	}

	ids := svc.Resolve(rctx, core.NewLoadedSet())
	if len(ids) != 1 || ids[0] != "bloc-state" {
		t.Errorf("expected auto-trigger through service context, got %v", ids)
	}
}

func TestService_SessionRoundTrip(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.TODO()

	loaded, err := svc.Session(ctx, "conversation-1")
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	loaded.MarkLoaded("bloc-state")
	if err := svc.SaveSession(ctx, "conversation-1", loaded); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	again, err := svc.Session(ctx, "conversation-1")
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	if !again.Has("bloc-state") {
		t.Error("session store did not persist the loaded set")
	}
}

func TestService_Load(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.TODO()

	content, err := svc.Load(ctx, "gorouter-navigation")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if content == "" {
		t.Error("expected payload content")
	}

	// An id outside the catalog is rejected before the loader is consulted.
	if _, err := svc.Load(ctx, "ghost"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestService_WatchUnsupported(t *testing.T) {
	svc, _ := newTestService(t, staticWorkspace{})

	if _, err := svc.Watch(context.TODO()); err == nil {
		t.Fatal("expected error for non-watchable workspace")
	}
}
