package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-valentine/internal/logging"
	"github.com/goliatone/go-valentine/pkg/content"
)

type documentFile struct {
	Templates []entryFile `yaml:"templates"`
}

type entryFile struct {
	ID          string            `yaml:"id"`
	Kind        string            `yaml:"kind"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Icon        string            `yaml:"icon"`
	Path        string            `yaml:"path"`
	Hints       map[string]string `yaml:"hints"`
	Content     yaml.Node         `yaml:"content"`
}

// LoadFS walks fsys in lexical order and parses every JSON/YAML catalog
// document it finds. Entries keep the order of their files and of the
// templates list inside each file. When fsys is nil or holds no documents
// the returned table is empty.
func LoadFS(fsys fs.FS) (*Table, error) {
	entries, err := readFS(fsys)
	if err != nil {
		return nil, err
	}
	return New(entries...)
}

func readFS(fsys fs.FS) ([]Entry, error) {
	if fsys == nil {
		return nil, nil
	}
	logger := logging.Component("catalog")

	var entries []Entry
	sources := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		parsed, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for _, entry := range parsed {
			id := entry.Identity()
			if prev, exists := sources[id]; exists {
				dup := malformed(id, "id", "duplicate identity (also defined in %s)", prev)
				dup.Source = path
				return dup
			}
			sources[id] = path
			entries = append(entries, entry)
		}

		logger.Debug().Str("file", path).Int("templates", len(parsed)).Msg("loaded catalog document")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ParseDocument decodes a single catalog document. Malformed entries are
// reported as *MalformedTemplateError with Source set to source.
func ParseDocument(data []byte, source string) ([]Entry, error) {
	return parseDocument(data, source)
}

func parseDocument(data []byte, source string) ([]Entry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("catalog: file %s is empty", source)
	}

	var doc documentFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("catalog: parse %s: %w", source, err)
	}

	entries := make([]Entry, 0, len(doc.Templates))
	for idx, raw := range doc.Templates {
		entry, err := buildEntry(raw)
		if err != nil {
			var bad *MalformedTemplateError
			if errors.As(err, &bad) {
				bad.Source = source
				if bad.Identity == "" {
					bad.Identity = fmt.Sprintf("#%d", idx)
				}
			}
			return nil, err
		}
		if err := Validate(entry); err != nil {
			var bad *MalformedTemplateError
			if errors.As(err, &bad) {
				bad.Source = source
			}
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func buildEntry(raw entryFile) (Entry, error) {
	id := strings.TrimSpace(raw.ID)
	if id == "" {
		return Entry{}, malformed("", "id", "identity is required")
	}

	kind, err := content.ParseKind(raw.Kind)
	if err != nil {
		return Entry{}, malformed(id, "kind", "unknown kind %q", raw.Kind)
	}

	if raw.Content.Kind == 0 {
		return Entry{}, malformed(id, "content", "content is required")
	}
	if raw.Content.Kind != yaml.MappingNode {
		return Entry{}, malformed(id, "content", "content must be a mapping")
	}

	rec, err := content.New(kind, id)
	if err != nil {
		return Entry{}, malformed(id, "kind", "%v", err)
	}
	if err := decodeStrict(&raw.Content, rec); err != nil {
		return Entry{}, malformed(id, "content", "%v", err)
	}

	return Entry{
		Record:      rec,
		Title:       strings.TrimSpace(raw.Title),
		Description: strings.TrimSpace(raw.Description),
		Icon:        strings.TrimSpace(raw.Icon),
		Path:        strings.TrimSpace(raw.Path),
		Hints:       content.Hints(raw.Hints),
	}, nil
}

// decodeStrict re-encodes node so the decoder can reject unknown fields;
// yaml.Node.Decode has no strict mode.
func decodeStrict(node *yaml.Node, out content.Record) error {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(out)
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
