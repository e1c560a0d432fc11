package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"log/slog"

	"github.com/aretw0/steering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prepareCatalog writes a small guidance catalog in directory-scan layout.
func prepareCatalog(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	write("bloc-state.md", `---
id: bloc-state
keywords: [state, cubit, bloc, emit]
patterns: ["*cubit*.dart", "*bloc*.dart", "*state*.dart"]
---
Use Cubit for simple state, Bloc for event-driven flows.
`)
	write("gorouter-navigation.md", `---
id: gorouter-navigation
keywords: [routes, navigation, gorouter]
---
Declare routes centrally and navigate by name.
`)
	write("testing-conventions.md", `---
id: testing-conventions
keywords: [test]
patterns: ["*_test.dart"]
---
One behavior per test. Name tests after the behavior.
`)
	return dir
}

// prepareWorkspace creates project files whose paths drive the auto triggers.
func prepareWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := []string{
		"lib/features/auth/auth_cubit.dart",
		"lib/main.dart",
		"pubspec.yaml",
	}
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("// "+f), 0644))
	}
	return dir
}

func TestEndToEnd_ResolveAndActivate(t *testing.T) {
	catalogDir := prepareCatalog(t)
	workspaceDir := prepareWorkspace(t)
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc, err := steering.New(catalogDir,
		steering.WithWorkspaceDir(workspaceDir),
		steering.WithLogger(logger),
	)
	require.NoError(t, err)

	loaded, err := svc.Session(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len(), "a fresh session starts empty")

	// The workspace contains auth_cubit.dart, so bloc-state activates
	// automatically; the signal mentions navigation, so gorouter-navigation
	// activates manually. Auto-triggered documents come first.
	rctx, err := svc.Context(ctx, "set up navigation for the app")
	require.NoError(t, err)

	activations, err := svc.Activate(ctx, rctx, loaded)
	require.NoError(t, err)
	require.Len(t, activations, 2)
	assert.Equal(t, "bloc-state", activations[0].ID)
	assert.Equal(t, "gorouter-navigation", activations[1].ID)
	assert.Contains(t, activations[0].Content, "Cubit")
	assert.NotContains(t, activations[0].Content, "---", "frontmatter must be stripped")

	require.NoError(t, svc.SaveSession(ctx, "default", loaded))

	// Second request in the same session: everything relevant is already
	// loaded, nothing comes back even though the triggers still match.
	rctx2, err := svc.Context(ctx, "more navigation work")
	require.NoError(t, err)
	again, err := svc.Activate(ctx, rctx2, loaded)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestEndToEnd_SessionPersistsAcrossServices(t *testing.T) {
	catalogDir := prepareCatalog(t)
	workspaceDir := prepareWorkspace(t)
	ctx := context.Background()

	svc, err := steering.New(catalogDir, steering.WithWorkspaceDir(workspaceDir))
	require.NoError(t, err)

	loaded, err := svc.Session(ctx, "feature-x")
	require.NoError(t, err)

	rctx, err := svc.Context(ctx, "help with routes")
	require.NoError(t, err)
	_, err = svc.Activate(ctx, rctx, loaded)
	require.NoError(t, err)
	require.NoError(t, svc.SaveSession(ctx, "feature-x", loaded))

	// A brand new service over the same directories sees the same session.
	svc2, err := steering.New(catalogDir, steering.WithWorkspaceDir(workspaceDir))
	require.NoError(t, err)

	restored, err := svc2.Session(ctx, "feature-x")
	require.NoError(t, err)
	assert.Equal(t, loaded.IDs(), restored.IDs())

	rctx2, err := svc2.Context(ctx, "help with routes")
	require.NoError(t, err)
	ids := svc2.Resolve(rctx2, restored)
	assert.Empty(t, ids, "restored session suppresses everything already loaded")

	// Sessions are isolated by name.
	other, err := svc2.Session(ctx, "feature-y")
	require.NoError(t, err)
	assert.Equal(t, 0, other.Len())
}

func TestEndToEnd_NoWorkspace(t *testing.T) {
	catalogDir := prepareCatalog(t)
	ctx := context.Background()

	svc, err := steering.New(catalogDir)
	require.NoError(t, err)

	// Without a workspace only keyword triggers can fire.
	rctx, err := svc.Context(ctx, "how do I emit state from a cubit")
	require.NoError(t, err)
	assert.Empty(t, rctx.WorkspacePaths)

	ids := svc.Resolve(rctx, steering.NewLoadedSet())
	assert.Equal(t, []string{"bloc-state"}, ids)
}

func TestEndToEnd_InjectedEntries(t *testing.T) {
	entries := []steering.Entry{
		steering.NewEntry("style-guide", "style.md", []string{"style", "lint"}, nil),
	}

	svc, err := steering.New(t.TempDir(), steering.WithEntries(entries))
	require.NoError(t, err)

	ids := svc.Resolve(steering.RequestContext{Signal: "fix lint warnings"}, nil)
	assert.Equal(t, []string{"style-guide"}, ids)
}

func TestEndToEnd_MustExist(t *testing.T) {
	_, err := steering.New(filepath.Join(t.TempDir(), "missing"), steering.WithMustExist(true))
	assert.Error(t, err)
}
