package core

import (
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
)

// Registry is the immutable trigger index built once from the catalog.
// It holds, for each guidance document, its keyword triggers and its
// validated path patterns. Read-only after construction; safe to share
// across concurrent resolution calls without synchronization.
type Registry struct {
	entries  map[string]Entry
	order    []string            // catalog order, preserved for introspection
	keywords map[string][]string // normalized keyword -> document ids
	patterns map[string][]string // document id -> glob patterns
}

// NewRegistry parses a catalog into an in-memory index.
//
// Fails with *ConfigError if an entry has an empty id, a duplicate id, or no
// usable trigger at all (a document with no way to be selected is dead
// content). Fails with *PatternError if a path trigger is not a valid glob.
func NewRegistry(entries []Entry) (*Registry, error) {
	r := &Registry{
		entries:  make(map[string]Entry, len(entries)),
		keywords: make(map[string][]string),
		patterns: make(map[string][]string),
	}

	for _, e := range entries {
		if e.ID == "" {
			return nil, &ConfigError{ID: e.ID, Rule: ErrEmptyID}
		}
		if _, dup := r.entries[e.ID]; dup {
			return nil, &ConfigError{ID: e.ID, Rule: ErrDuplicateID}
		}

		var kws []string
		for _, k := range e.Keywords() {
			if nk := NormalizeToken(k); nk != "" {
				kws = append(kws, nk)
			}
		}
		pats := e.Patterns()

		if len(kws) == 0 && len(pats) == 0 {
			return nil, &ConfigError{ID: e.ID, Rule: ErrNoTriggers}
		}

		for _, p := range pats {
			if !doublestar.ValidatePattern(p) {
				return nil, &PatternError{ID: e.ID, Pattern: p, Err: doublestar.ErrBadPattern}
			}
		}

		for _, k := range kws {
			r.keywords[k] = append(r.keywords[k], e.ID)
		}
		r.patterns[e.ID] = pats
		r.entries[e.ID] = e
		r.order = append(r.order, e.ID)
	}

	return r, nil
}

// DocumentsMatchingKeyword returns the ids of documents whose keyword
// triggers contain the token. Matching is a case-insensitive exact match on
// topic tokens, not substring search.
func (r *Registry) DocumentsMatchingKeyword(token string) []string {
	ids := r.keywords[NormalizeToken(token)]
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}

// DocumentsMatchingPaths returns the ids of documents where any path in
// paths matches any of the document's patterns.
func (r *Registry) DocumentsMatchingPaths(paths []string) []string {
	var out []string
	for _, id := range r.order {
		if r.anyPatternMatches(id, paths) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

func (r *Registry) anyPatternMatches(id string, paths []string) bool {
	for _, pattern := range r.patterns[id] {
		for _, path := range paths {
			if MatchPath(pattern, path) {
				return true
			}
		}
	}
	return false
}

// HasKeyword reports whether the token is part of the registry's keyword
// vocabulary. The resolver uses this to discard signal tokens that match no
// registered topic.
func (r *Registry) HasKeyword(token string) bool {
	_, ok := r.keywords[NormalizeToken(token)]
	return ok
}

// Vocabulary returns the union of all keyword triggers, sorted.
func (r *Registry) Vocabulary() []string {
	out := make([]string, 0, len(r.keywords))
	for k := range r.keywords {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// IDs returns all document ids in catalog order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Entry returns the catalog entry for a document id.
func (r *Registry) Entry(id string) (Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// Len returns the number of documents in the catalog.
func (r *Registry) Len() int {
	return len(r.order)
}

// MatchPath reports whether a workspace path matches an auto-trigger pattern.
//
// Patterns use doublestar glob semantics: '*' matches within a path segment,
// '**' matches across segments. A pattern containing no separator is also
// tried against the final path element, so "*cubit*.dart" matches
// "lib/features/auth/auth_cubit.dart".
func MatchPath(pattern, path string) bool {
	p := filepath.ToSlash(path)

	if ok, err := doublestar.Match(pattern, p); err == nil && ok {
		return true
	}
	if !strings.Contains(pattern, "/") {
		base := p
		if i := strings.LastIndex(p, "/"); i >= 0 {
			base = p[i+1:]
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// NormalizeToken canonicalizes a keyword or signal token for comparison.
func NormalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Tokenize splits a free-text signal into candidate topic tokens.
// Tokens are lowercased and split on any rune that is not a letter, digit,
// hyphen or underscore. No other NLP is applied; a token is only meaningful
// if it equals a registered keyword.
func Tokenize(signal string) []string {
	return strings.FieldsFunc(strings.ToLower(signal), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_'
	})
}
