package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/steering/pkg/core"
)

// DefaultSystemDir is the hidden directory holding steering state files.
const DefaultSystemDir = ".steering"

// sessionFile is the persistent state of one session.
type sessionFile struct {
	Version int      `json:"version"`
	Loaded  []string `json:"loaded"`
}

// SessionStore persists loaded sets as JSON files under a directory,
// one file per session name.
type SessionStore struct {
	Dir string
	mu  sync.Mutex
}

// NewSessionStore initializes a session store at the given directory
// (typically {root}/.steering).
func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{Dir: dir}
}

// Load reads the loaded set for a session. A missing or corrupted file
// yields a fresh empty set (self-healing), never an error.
func (s *SessionStore) Load(ctx context.Context, session string) (*core.LoadedSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(session))
	if os.IsNotExist(err) {
		return core.NewLoadedSet(), nil // Start fresh
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var sf sessionFile
	if err := json.Unmarshal(data, &sf); err != nil {
		// Treat corruption as an empty session to self-heal.
		return core.NewLoadedSet(), nil
	}

	return core.NewLoadedSet(sf.Loaded...), nil
}

// Save persists the loaded set for a session atomically.
func (s *SessionStore) Save(ctx context.Context, session string, set *core.LoadedSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(sessionFile{Version: 1, Loaded: set.IDs()}, "", "  ")
	if err != nil {
		return err
	}

	return writeFileAtomic(s.path(session), data, 0644)
}

// Clear removes a session's persisted state. Clearing an unknown session is
// not an error.
func (s *SessionStore) Clear(ctx context.Context, session string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(session))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *SessionStore) path(session string) string {
	return filepath.Join(s.Dir, "session-"+sanitizeSessionName(session)+".json")
}

// sanitizeSessionName keeps session file names flat and filesystem-safe.
func sanitizeSessionName(name string) string {
	if name == "" {
		return "default"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
}

var _ core.SessionStore = (*SessionStore)(nil)
