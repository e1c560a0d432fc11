package platform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/steering/pkg/adapters/fs"
	"github.com/aretw0/steering/pkg/core"
)

// New wires the steering service: catalog -> registry -> service with the
// filesystem adapters, honoring any injected replacements.
//
//	svc, err := steering.New("./steering", steering.WithWorkspaceDir("."))
//
// Construction is fatal on an invalid catalog (ConfigError/PatternError);
// the system cannot run with invalid configuration.
func New(catalogPath string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	systemDir := o.systemDir
	if systemDir == "" {
		systemDir = fs.DefaultSystemDir
	}

	entries := o.entries
	loader := o.loader

	if entries == nil {
		catalog := fs.NewCatalog(fs.Config{
			Root:      catalogPath,
			SystemDir: systemDir,
			MustExist: o.mustExist,
			Logger:    o.logger,
		})
		if err := catalog.Initialize(context.Background()); err != nil {
			return nil, err
		}

		var err error
		entries, err = catalog.Entries(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		if loader == nil {
			loader = catalog
		}
	}

	registry, err := core.NewRegistry(entries)
	if err != nil {
		return nil, err
	}

	workspace := o.workspace
	if workspace == nil && o.workspaceDir != "" {
		workspace = fs.NewWorkspace(fs.WorkspaceConfig{
			Root:         o.workspaceDir,
			SystemDir:    systemDir,
			Logger:       o.logger,
			EventBuffer:  o.eventBuffer,
			ErrorHandler: o.errorHandler,
		})
	}

	sessions := o.sessions
	if sessions == nil {
		// Session state lives next to the workspace when there is one,
		// otherwise next to the catalog.
		stateRoot := catalogPath
		if o.workspaceDir != "" {
			stateRoot = o.workspaceDir
		}
		sessions = fs.NewSessionStore(filepath.Join(stateRoot, systemDir))
	}

	return core.NewService(registry, loader, sessions, workspace), nil
}
