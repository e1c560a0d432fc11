// Package steering is the Composition Root for the steering engine.
//
// It connects the core resolution logic (Domain Layer) with the
// infrastructure adapters (Catalog, Workspace, Session persistence) using
// the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Steering decides which guidance documents an AI assistant should load
// into context for a given request, without ever interpreting the documents
// themselves. Each document declares its own triggers: keywords that select
// it when a request mentions a topic, and path globs that select it when
// matching files exist in the workspace. The engine computes the minimal
// load set; fetching and injecting content stays with the caller.
//
// Features:
//
//   - **Hexagonal Architecture**: Core resolution is isolated from catalog and workspace details.
//   - **Two Trigger Kinds**: Manual keyword triggers and automatic path-glob triggers, evaluated uniformly.
//   - **Session Dedup**: Documents already loaded in a session are never re-selected.
//   - **Pure Resolver**: Resolution is a deterministic in-memory computation with no I/O.
//   - **Default Adapter (FS)**: Out-of-the-box support for a directory of Markdown steering files or a catalog.yaml manifest.
//   - **Reactive**: Optional fsnotify-backed workspace watching to re-resolve as files appear.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := steering.New("./steering",
//		steering.WithWorkspaceDir("."),
//		steering.WithLogger(logger),
//	)
//
//	// Decide and load for one request
//	rctx, _ := svc.Context(ctx, "how do I emit a new state")
//	activations, err := svc.Activate(ctx, rctx, loaded)
package steering
