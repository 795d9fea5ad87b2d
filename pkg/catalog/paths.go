package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-valentine/internal/logging"
)

// SearchPaths returns catalog override directories in precedence order.
func SearchPaths(projectDir string) []string {
	paths := make([]string, 0, 2)
	if strings.TrimSpace(projectDir) != "" {
		paths = append(paths, filepath.Join(projectDir, ".valentine", "templates"))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "valentine", "templates"))
	}
	return paths
}

// LoadPath loads a catalog directory or a single catalog document. A missing
// path yields an empty table.
func LoadPath(path string) (*Table, error) {
	if strings.TrimSpace(path) == "" {
		return New()
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New()
		}
		return nil, fmt.Errorf("catalog: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadFS(os.DirFS(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	entries, err := parseDocument(data, path)
	if err != nil {
		return nil, err
	}
	return New(entries...)
}

// LoadLayers builds the effective catalog: the builtin templates overlaid by
// the search path directories and then by extra, so that the first search
// path and the extra directories win over everything below them.
func LoadLayers(projectDir string, extra ...string) (*Table, error) {
	logger := logging.Component("catalog")

	base, err := Builtin()
	if err != nil {
		return nil, err
	}

	paths := SearchPaths(projectDir)
	dirs := make([]string, 0, len(paths)+len(extra))
	for i := len(paths) - 1; i >= 0; i-- {
		dirs = append(dirs, paths[i])
	}
	dirs = append(dirs, extra...)

	layers := make([]*Table, 0, len(dirs))
	for _, dir := range dirs {
		layer, err := LoadPath(dir)
		if err != nil {
			return nil, err
		}
		if layer.Len() == 0 {
			continue
		}
		logger.Debug().Str("dir", dir).Int("templates", layer.Len()).Msg("applying catalog layer")
		layers = append(layers, layer)
	}
	return Overlay(base, layers...)
}
