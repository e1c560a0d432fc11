package core

import "sort"

// Resolver computes which guidance documents to load for a request.
type Resolver struct {
	registry *Registry
}

// NewResolver creates a Resolver over a registry.
func NewResolver(registry *Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve produces the ordered list of document ids to load this turn.
//
// Candidates are the union of keyword matches over the signal's tokens and
// pattern matches over the workspace paths, minus everything the session has
// already loaded. Auto-triggered documents come first (file evidence is a
// stronger signal than free text), then manually-requested ones; ties break
// by lexical id order. A document matched both ways counts once and sorts
// with the auto group.
//
// Pure: never fails, never mutates loaded. An empty result is valid and
// means "use the base profile only". The full catalog is only ever returned
// if every document has a positive match; there is no "load everything".
func (rv *Resolver) Resolve(rctx RequestContext, loaded *LoadedSet) []string {
	auto := make(map[string]bool)
	for _, id := range rv.registry.DocumentsMatchingPaths(rctx.WorkspacePaths) {
		auto[id] = true
	}

	manual := make(map[string]bool)
	for _, tok := range Tokenize(rctx.Signal) {
		for _, id := range rv.registry.DocumentsMatchingKeyword(tok) {
			manual[id] = true
		}
	}

	var autoIDs, manualIDs []string
	for id := range auto {
		if loaded.Has(id) {
			continue
		}
		autoIDs = append(autoIDs, id)
	}
	for id := range manual {
		if auto[id] || loaded.Has(id) {
			continue
		}
		manualIDs = append(manualIDs, id)
	}

	sort.Strings(autoIDs)
	sort.Strings(manualIDs)
	return append(autoIDs, manualIDs...)
}

// Resolve is the standalone form of the resolution call:
// (signal, workspacePaths, alreadyLoaded) -> ordered document ids.
func Resolve(registry *Registry, signal string, workspacePaths, alreadyLoaded []string) []string {
	rv := NewResolver(registry)
	return rv.Resolve(
		RequestContext{Signal: signal, WorkspacePaths: workspacePaths},
		NewLoadedSet(alreadyLoaded...),
	)
}
