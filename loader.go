package valentine

import (
	"io/fs"

	"github.com/goliatone/go-valentine/pkg/catalog"
)

// LoadCatalog parses every catalog document in fsys into a table.
func LoadCatalog(fsys fs.FS) (*Table, error) {
	return catalog.LoadFS(fsys)
}

// LoadLayers returns the built-in templates overlaid by the project and user
// override directories and then by extra.
func LoadLayers(projectDir string, extra ...string) (*Table, error) {
	return catalog.LoadLayers(projectDir, extra...)
}
