// Package valentine resolves Valentine postcard and gallery templates by
// identity. The root package re-exports the common entry points; the pkg/
// packages hold the schema (content), the configuration table (catalog), the
// lookup (resolver) and the index page (showcase).
package valentine

import (
	"github.com/goliatone/go-valentine/pkg/catalog"
	"github.com/goliatone/go-valentine/pkg/content"
	"github.com/goliatone/go-valentine/pkg/resolver"
)

// Record is a resolved template; see content.Record.
type Record = content.Record

// Kind discriminates template variants.
type Kind = content.Kind

// Entry is a catalog record plus its showcase metadata.
type Entry = catalog.Entry

// Table is the immutable configuration set a Resolver reads from.
type Table = catalog.Table

// Resolver maps identities to records.
type Resolver = resolver.Resolver

// UnknownTemplateError is returned for identities that are not configured.
type UnknownTemplateError = catalog.UnknownTemplateError

// MalformedTemplateError is returned when configuration fails validation.
type MalformedTemplateError = catalog.MalformedTemplateError

var (
	// ErrUnknownTemplate matches every UnknownTemplateError.
	ErrUnknownTemplate = catalog.ErrUnknownTemplate
	// ErrMalformedTemplate matches every MalformedTemplateError.
	ErrMalformedTemplate = catalog.ErrMalformedTemplate
)

// NewResolver returns a resolver over table.
func NewResolver(table *Table, options ...resolver.Option) *Resolver {
	return resolver.New(table, options...)
}

// NewTable validates entries and builds a table in the supplied order.
func NewTable(entries ...Entry) (*Table, error) {
	return catalog.New(entries...)
}

// Default returns a resolver over the built-in templates.
func Default(options ...resolver.Option) (*Resolver, error) {
	table, err := catalog.Builtin()
	if err != nil {
		return nil, err
	}
	return resolver.New(table, options...), nil
}

// Resolve looks id up in r and asserts the variant.
func Resolve[T Record](r *Resolver, id string) (T, error) {
	return resolver.As[T](r, id)
}
