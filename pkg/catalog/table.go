package catalog

import (
	"strings"

	"github.com/samber/lo"

	"github.com/goliatone/go-valentine/pkg/content"
)

// Entry pairs a template record with the metadata the showcase index needs.
type Entry struct {
	Record      content.Record
	Title       string
	Description string
	Icon        string
	Path        string
	Hints       content.Hints
}

// Identity returns the identity of the wrapped record.
func (e Entry) Identity() string {
	if e.Record == nil {
		return ""
	}
	return e.Record.Identity()
}

// Kind returns the kind of the wrapped record.
func (e Entry) Kind() content.Kind {
	if e.Record == nil {
		return ""
	}
	return e.Record.Kind()
}

// Clone returns a deep copy of the entry.
func (e Entry) Clone() Entry {
	out := e
	out.Record = content.Clone(e.Record)
	out.Hints = content.CloneHints(e.Hints)
	return out
}

// Table is the immutable configuration set. It keeps declaration order for
// listings and a map for O(1) lookups. The zero value is an empty table.
type Table struct {
	order   []string
	entries map[string]Entry
}

// New validates and indexes entries in the supplied order. The table holds
// its own copies, so later changes to the arguments are not observed.
func New(entries ...Entry) (*Table, error) {
	table := &Table{
		order:   make([]string, 0, len(entries)),
		entries: make(map[string]Entry, len(entries)),
	}
	for _, entry := range entries {
		if err := table.add(entry); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// MustNew panics when entries fail validation. Intended for static
// configuration wired at start-up.
func MustNew(entries ...Entry) *Table {
	table, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return table
}

func (t *Table) add(entry Entry) error {
	if err := Validate(entry); err != nil {
		return err
	}
	id := entry.Identity()
	if _, exists := t.entries[id]; exists {
		return malformed(id, "id", "duplicate identity")
	}
	stored := entry.Clone()
	if strings.TrimSpace(stored.Path) == "" {
		stored.Path = "/" + id
	}
	t.entries[id] = stored
	t.order = append(t.order, id)
	return nil
}

// Lookup returns a copy of the entry for id.
func (t *Table) Lookup(id string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	entry, ok := t.entries[id]
	if !ok {
		return Entry{}, false
	}
	return entry.Clone(), true
}

// Has reports whether id is configured.
func (t *Table) Has(id string) bool {
	if t == nil {
		return false
	}
	_, ok := t.entries[id]
	return ok
}

// Identities returns every identity in declaration order. The slice is a
// fresh copy on each call.
func (t *Table) Identities() []string {
	if t == nil {
		return []string{}
	}
	return append([]string{}, t.order...)
}

// Entries returns copies of every entry in declaration order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return []Entry{}
	}
	return lo.Map(t.order, func(id string, _ int) Entry {
		return t.entries[id].Clone()
	})
}

// Len reports the number of configured templates.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Overlay layers per-client overrides on top of base. An override replaces
// the base entry with the same identity in place and must keep its kind;
// identities new to the base are appended in override order.
func Overlay(base *Table, overrides ...*Table) (*Table, error) {
	merged := base.Entries()
	index := make(map[string]int, len(merged))
	for idx, entry := range merged {
		index[entry.Identity()] = idx
	}

	for _, layer := range overrides {
		for _, entry := range layer.Entries() {
			id := entry.Identity()
			pos, exists := index[id]
			if !exists {
				index[id] = len(merged)
				merged = append(merged, entry)
				continue
			}
			if prev := merged[pos].Kind(); prev != entry.Kind() {
				return nil, malformed(id, "kind", "override kind %q does not match %q", entry.Kind(), prev)
			}
			merged[pos] = entry
		}
	}
	return New(merged...)
}
