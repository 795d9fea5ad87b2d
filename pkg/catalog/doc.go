// Package catalog holds the static template configuration. A Table is built
// once at start-up, from the embedded documents or from client overrides, and
// injected into a resolver. Every entry is validated when the table is built,
// so lookups never see a malformed record.
package catalog
