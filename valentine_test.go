package valentine_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"

	valentine "github.com/goliatone/go-valentine"
	"github.com/goliatone/go-valentine/pkg/content"
)

func TestDefaultResolver(t *testing.T) {
	r, err := valentine.Default()
	if err != nil {
		t.Fatalf("default resolver: %v", err)
	}

	grid, err := valentine.Resolve[*content.GridGallery](r, "gallery1")
	if err != nil {
		t.Fatalf("resolve gallery1: %v", err)
	}
	if grid.Title != "Our Beautiful Journey" {
		t.Fatalf("title = %q", grid.Title)
	}

	if _, err := r.Resolve(""); !errors.Is(err, valentine.ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate for empty identity, got %v", err)
	}
}

func TestEmbeddedCatalogRoundTrip(t *testing.T) {
	table, err := valentine.LoadCatalog(valentine.EmbeddedCatalog())
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	r := valentine.NewResolver(table)

	def, err := valentine.Default()
	if err != nil {
		t.Fatalf("default resolver: %v", err)
	}
	if diff := cmp.Diff(def.ListIdentities(), r.ListIdentities()); diff != "" {
		t.Fatalf("identities mismatch (-want +got):\n%s", diff)
	}
}

func TestEmbeddedTemplatesHoldIndex(t *testing.T) {
	if _, err := fs.Stat(valentine.EmbeddedTemplates(), "index.tpl"); err != nil {
		t.Fatalf("index template missing: %v", err)
	}
}

func TestNewTableRejectsMalformed(t *testing.T) {
	_, err := valentine.NewTable(valentine.Entry{
		Record: &content.StoryGallery{Base: content.Base{ID: "story"}},
	})
	var bad *valentine.MalformedTemplateError
	if !errors.As(err, &bad) || bad.Field != "title" {
		t.Fatalf("expected malformed title error, got %v", err)
	}
}
