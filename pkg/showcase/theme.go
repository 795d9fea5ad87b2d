package showcase

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-valentine/pkg/catalog"
	"github.com/goliatone/go-valentine/pkg/content"
	"github.com/goliatone/go-valentine/pkg/resolver"
)

const (
	manifestVersion = "1.0.0"
	cssVarPrefix    = "--valentine-"
)

// Tokens merges the catalog hints of an entry with the style fields carried
// by its record. Record fields win on conflict.
func Tokens(entry catalog.Entry) map[string]string {
	out := make(map[string]string, len(entry.Hints))
	for key, value := range entry.Hints {
		out[key] = value
	}
	switch rec := entry.Record.(type) {
	case *content.LetterPostcard:
		for key, value := range rec.Style {
			out[key] = value
		}
	case *content.NotesPostcard:
		if rec.Theme != "" {
			out["theme"] = rec.Theme
		}
	}
	return out
}

// ThemeConfig builds the renderer-facing theme configuration for one entry.
func ThemeConfig(entry catalog.Entry) *theme.RendererConfig {
	tokens := Tokens(entry)
	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		if token := hintToken(value); token != "" {
			vars[cssVarPrefix+cssName(key)] = token
		}
	}
	return &theme.RendererConfig{
		Theme:   entry.Identity(),
		Tokens:  tokens,
		CSSVars: vars,
	}
}

// Themes registers one go-theme manifest per template, named after its
// identity, with the merged style tokens.
func Themes(r *resolver.Resolver) (theme.ThemeProvider, error) {
	registry := theme.NewRegistry()
	for _, entry := range r.Entries() {
		manifest := &theme.Manifest{
			Name:    entry.Identity(),
			Version: manifestVersion,
			Tokens:  Tokens(entry),
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("showcase: register theme %q: %w", entry.Identity(), err)
		}
	}
	return registry, nil
}

// cssName turns camelCase hint keys into kebab-case.
func cssName(key string) string {
	var b strings.Builder
	for i, r := range key {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func sortedKeys(in map[string]string) []string {
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
