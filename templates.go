package valentine

import (
	"io/fs"

	"github.com/goliatone/go-valentine/pkg/catalog"
	"github.com/goliatone/go-valentine/pkg/showcase"
)

// EmbeddedCatalog exposes the built-in catalog documents so callers can copy
// them as a starting point for their own overrides.
func EmbeddedCatalog() fs.FS {
	return catalog.EmbeddedFS()
}

// EmbeddedTemplates exposes the showcase index templates without importing
// the showcase package directly.
func EmbeddedTemplates() fs.FS {
	return showcase.TemplatesFS()
}
