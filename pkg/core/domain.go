// GuidanceDocument selection is the central concern of the domain.
package core

// TriggerKind discriminates the two ways a guidance document can be selected.
type TriggerKind string

const (
	// TriggerKeyword selects a document when a request mentions a registered topic.
	TriggerKeyword TriggerKind = "keyword"
	// TriggerPath selects a document when a workspace path matches a glob pattern.
	TriggerPath TriggerKind = "path"
)

// Trigger is one selection rule attached to a guidance document.
// Keyword triggers carry a topic token; path triggers carry a glob pattern.
type Trigger struct {
	Kind  TriggerKind
	Value string
}

// Entry is one catalog row: a guidance document identity, an opaque reference
// to its payload, and the triggers that can select it.
// The payload itself is never interpreted by the core.
type Entry struct {
	ID         string
	ContentRef string
	Triggers   []Trigger
}

// NewEntry builds an Entry from keyword and pattern lists, matching the
// external catalog format (id, keywords, patterns, contentRef).
func NewEntry(id, contentRef string, keywords, patterns []string) Entry {
	e := Entry{ID: id, ContentRef: contentRef}
	for _, k := range keywords {
		e.Triggers = append(e.Triggers, Trigger{Kind: TriggerKeyword, Value: k})
	}
	for _, p := range patterns {
		e.Triggers = append(e.Triggers, Trigger{Kind: TriggerPath, Value: p})
	}
	return e
}

// Keywords returns the values of the entry's keyword triggers.
func (e Entry) Keywords() []string {
	var out []string
	for _, t := range e.Triggers {
		if t.Kind == TriggerKeyword {
			out = append(out, t.Value)
		}
	}
	return out
}

// Patterns returns the values of the entry's path triggers.
func (e Entry) Patterns() []string {
	var out []string
	for _, t := range e.Triggers {
		if t.Kind == TriggerPath {
			out = append(out, t.Value)
		}
	}
	return out
}

// RequestContext is the ephemeral input of one resolution call.
// WorkspacePaths is a read-only snapshot; the core never mutates it.
type RequestContext struct {
	Signal         string
	WorkspacePaths []string
}

// Activation pairs a selected document id with its fetched payload.
type Activation struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// EventType represents the type of change in the workspace.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change in the workspace that may unlock new triggers.
// Loaded documents are never retroactively unloaded; an event only signals
// that a re-resolution could select something new.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}
