package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	CatalogSize    int    `json:"catalog_size"`
	VocabularySize int    `json:"vocabulary_size"`
	WorkspaceType  string `json:"workspace_type"`
	HasLoader      bool   `json:"has_loader"`
	HasSessions    bool   `json:"has_sessions"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	workspaceType := "none"
	if s.workspace != nil {
		workspaceType = "workspace"
		if comp, ok := s.workspace.(introspection.Component); ok {
			workspaceType = comp.ComponentType()
		}
	}

	return ServiceState{
		CatalogSize:    s.registry.Len(),
		VocabularySize: len(s.registry.Vocabulary()),
		WorkspaceType:  workspaceType,
		HasLoader:      s.loader != nil,
		HasSessions:    s.sessions != nil,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
