package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"
)

//go:embed builtin/*.yaml
var embeddedCatalog embed.FS

var builtinTable = sync.OnceValues(func() (*Table, error) {
	table, err := LoadFS(EmbeddedFS())
	if err != nil {
		return nil, fmt.Errorf("catalog: load builtin templates: %w", err)
	}
	return table, nil
})

// EmbeddedFS returns the bundled catalog documents. Callers may pass it to
// LoadFS or layer their own documents on top with Overlay.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedCatalog, "builtin")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Builtin returns the twelve bundled templates. The table is parsed once and
// shared; it is never mutated after construction.
func Builtin() (*Table, error) {
	return builtinTable()
}

// MustBuiltin panics if the bundled catalog fails validation.
func MustBuiltin() *Table {
	table, err := Builtin()
	if err != nil {
		panic(err)
	}
	return table
}
