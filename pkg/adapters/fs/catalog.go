package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/steering/pkg/core"
)

// CatalogFile is the explicit catalog manifest recognized at the root.
// When present it takes precedence over the directory scan.
const CatalogFile = "catalog.yaml"

// Config holds the configuration for the filesystem catalog.
type Config struct {
	Root      string
	SystemDir string // e.g. ".steering"
	MustExist bool
	Logger    *slog.Logger
}

// Catalog implements core.CatalogSource and core.ContentLoader over a
// directory of steering files.
//
// Two layouts are supported:
//  1. A catalog.yaml manifest at the root: an ordered list of entries with
//     id, keywords, patterns and contentRef (path to the payload file).
//  2. A directory scan: every *.md file (outside .git and the system dir) is
//     a steering file whose frontmatter declares keywords and patterns. The
//     id defaults to the relative path without the .md extension.
type Catalog struct {
	Root   string
	config Config

	mu   sync.RWMutex
	refs map[string]contentRef
}

// contentRef records where a document's payload lives and whether its
// frontmatter must be stripped on load.
type contentRef struct {
	path        string
	frontmatter bool
}

// catalogEntry is one row of catalog.yaml.
type catalogEntry struct {
	ID         string   `yaml:"id"`
	Keywords   []string `yaml:"keywords"`
	Patterns   []string `yaml:"patterns"`
	ContentRef string   `yaml:"contentRef"`
}

// NewCatalog creates a filesystem-backed catalog.
func NewCatalog(config Config) *Catalog {
	if config.SystemDir == "" {
		config.SystemDir = DefaultSystemDir
	}
	return &Catalog{
		Root:   config.Root,
		config: config,
		refs:   make(map[string]contentRef),
	}
}

// Initialize verifies the catalog directory is usable.
func (c *Catalog) Initialize(ctx context.Context) error {
	info, err := os.Stat(c.Root)
	if os.IsNotExist(err) {
		if c.config.MustExist {
			return fmt.Errorf("catalog path does not exist: %s", c.Root)
		}
		if err := os.MkdirAll(c.Root, 0755); err != nil {
			return fmt.Errorf("failed to create catalog directory: %w", err)
		}
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("catalog path is not a directory: %s", c.Root)
	}
	return nil
}

// Entries loads the catalog in declaration order.
//
// Workflow:
//  1. If catalog.yaml exists, decode it and resolve each contentRef.
//  2. Otherwise walk the tree for steering files and read their frontmatter.
//  3. Remember where each payload lives for later Load calls.
func (c *Catalog) Entries(ctx context.Context) ([]core.Entry, error) {
	manifest := filepath.Join(c.Root, CatalogFile)
	if _, err := os.Stat(manifest); err == nil {
		return c.entriesFromManifest(manifest)
	}
	return c.entriesFromScan()
}

func (c *Catalog) entriesFromManifest(manifest string) ([]core.Entry, error) {
	data, err := os.ReadFile(manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", CatalogFile, err)
	}

	var rows []catalogEntry
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", CatalogFile, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.refs = make(map[string]contentRef, len(rows))

	entries := make([]core.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, core.NewEntry(row.ID, row.ContentRef, row.Keywords, row.Patterns))
		c.refs[row.ID] = contentRef{
			path: filepath.Join(c.Root, filepath.FromSlash(row.ContentRef)),
		}
		if c.config.Logger != nil {
			c.config.Logger.Debug("catalog entry", "id", row.ID, "source", CatalogFile)
		}
	}
	return entries, nil
}

func (c *Catalog) entriesFromScan() ([]core.Entry, error) {
	var entries []core.Entry
	refs := make(map[string]contentRef)

	err := filepath.WalkDir(c.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip system directories
			if d.Name() == ".git" || d.Name() == c.config.SystemDir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(d.Name()) != ".md" {
			return nil
		}

		relPath, err := filepath.Rel(c.Root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		h, _, perr := parseSteeringFile(f)
		f.Close()
		if perr != nil {
			return fmt.Errorf("failed to parse steering file %s: %w", relPath, perr)
		}

		id := h.ID
		if id == "" {
			id = strings.TrimSuffix(relPath, ".md")
		}

		entries = append(entries, core.NewEntry(id, relPath, h.Keywords, h.Patterns))
		refs[id] = contentRef{path: path, frontmatter: true}

		if c.config.Logger != nil {
			c.config.Logger.Debug("catalog entry", "id", id, "source", relPath)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.refs = refs
	c.mu.Unlock()

	return entries, nil
}

// Load returns the opaque payload of a document. For scanned steering files
// the frontmatter is stripped; manifest payloads are returned verbatim.
func (c *Catalog) Load(ctx context.Context, id string) (string, error) {
	c.mu.RLock()
	ref, ok := c.refs[id]
	c.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}

	f, err := os.Open(ref.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", core.ErrNotFound, id)
		}
		return "", err
	}
	defer f.Close()

	if ref.frontmatter {
		_, body, err := parseSteeringFile(f)
		if err != nil {
			return "", fmt.Errorf("failed to parse steering file for %s: %w", id, err)
		}
		return body, nil
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Len returns the number of known content references.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.refs)
}

var _ core.CatalogSource = (*Catalog)(nil)
var _ core.ContentLoader = (*Catalog)(nil)
