// Package resolver maps template identities to immutable content records.
// A Resolver wraps an injected catalog.Table and hands out deep copies, so
// players may modify what they receive without affecting later lookups.
package resolver

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-valentine/pkg/catalog"
	"github.com/goliatone/go-valentine/pkg/content"
)

// Option customises a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// Resolver is a pure lookup over a static table. It holds no mutable state
// and is safe for concurrent use.
type Resolver struct {
	table  *catalog.Table
	logger zerolog.Logger
}

// New returns a Resolver over table. A nil table behaves as an empty one.
func New(table *catalog.Table, options ...Option) *Resolver {
	if table == nil {
		table = catalog.MustNew()
	}
	r := &Resolver{
		table:  table,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Resolve returns a copy of the record configured under id, or an
// *catalog.UnknownTemplateError when id is not configured.
func (r *Resolver) Resolve(id string) (content.Record, error) {
	entry, err := r.Entry(id)
	if err != nil {
		return nil, err
	}
	return entry.Record, nil
}

// Entry returns a copy of the catalog entry, including showcase metadata.
func (r *Resolver) Entry(id string) (catalog.Entry, error) {
	entry, ok := r.table.Lookup(id)
	if !ok {
		r.logger.Debug().Str("template", id).Msg("unknown template")
		return catalog.Entry{}, &catalog.UnknownTemplateError{Identity: id}
	}
	return entry, nil
}

// ListIdentities returns every configured identity in declaration order.
func (r *Resolver) ListIdentities() []string {
	return r.table.Identities()
}

// Entries returns copies of every entry in declaration order.
func (r *Resolver) Entries() []catalog.Entry {
	return r.table.Entries()
}

// ByKind returns the identities of the given kind in declaration order.
func (r *Resolver) ByKind(kind content.Kind) []string {
	out := []string{}
	for _, entry := range r.table.Entries() {
		if entry.Kind() == kind {
			out = append(out, entry.Identity())
		}
	}
	return out
}

// As resolves id and asserts the variant. A configured identity of another
// kind is reported as unknown for the requested kind.
func As[T content.Record](r *Resolver, id string) (T, error) {
	var zero T
	rec, err := r.Resolve(id)
	if err != nil {
		return zero, err
	}
	typed, ok := rec.(T)
	if !ok {
		r.logger.Debug().
			Str("template", id).
			Str("kind", rec.Kind().String()).
			Str("want", kindOf[T]().String()).
			Msg("template kind mismatch")
		return zero, &catalog.UnknownTemplateError{Identity: id, Kind: kindOf[T]()}
	}
	return typed, nil
}

// kindOf reads the kind from a nil T; every variant's Kind method ignores its
// receiver.
func kindOf[T content.Record]() content.Kind {
	var zero T
	if any(zero) == nil {
		return ""
	}
	return zero.Kind()
}
