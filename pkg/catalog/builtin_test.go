package catalog_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-valentine/pkg/catalog"
	"github.com/goliatone/go-valentine/pkg/content"
)

func TestBuiltinCatalog(t *testing.T) {
	t.Parallel()

	table, err := catalog.Builtin()
	if err != nil {
		t.Fatalf("builtin: %v", err)
	}

	got := map[string]content.Kind{}
	for _, entry := range table.Entries() {
		got[entry.Identity()] = entry.Kind()
		if entry.Title == "" || entry.Icon == "" || entry.Path == "" {
			t.Fatalf("%s is missing showcase metadata: %+v", entry.Identity(), entry)
		}
	}
	want := map[string]content.Kind{
		"postcard1": content.KindLetterPostcard,
		"postcard2": content.KindLetterPostcard,
		"postcard3": content.KindNotesPostcard,
		"postcard4": content.KindBookPostcard,
		"postcard5": content.KindBottlePostcard,
		"postcard6": content.KindSnowGlobePostcard,
		"gallery1":  content.KindGridGallery,
		"gallery2":  content.KindPolaroidGallery,
		"gallery3":  content.KindStoryGallery,
		"gallery4":  content.KindCarouselGallery,
		"gallery5":  content.KindFilmstripGallery,
		"gallery6":  content.KindConstellationGallery,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("builtin kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestBuiltinConstellationLinksStayOnLayout(t *testing.T) {
	t.Parallel()

	entry, ok := catalog.MustBuiltin().Lookup("gallery6")
	if !ok {
		t.Fatalf("gallery6 missing")
	}
	sky := entry.Record.(*content.ConstellationGallery)
	if len(sky.Layout) < len(sky.Stars) {
		t.Fatalf("layout has %d anchors for %d stars", len(sky.Layout), len(sky.Stars))
	}
	if got := len(sky.Placed()); got != len(sky.Stars) {
		t.Fatalf("placed %d stars, want %d", got, len(sky.Stars))
	}
	for _, link := range sky.Links {
		if link.From >= len(sky.Layout) || link.To >= len(sky.Layout) {
			t.Fatalf("link %+v leaves the layout", link)
		}
	}
}

func TestEmbeddedFSHoldsCatalogDocuments(t *testing.T) {
	t.Parallel()

	table, err := catalog.LoadFS(catalog.EmbeddedFS())
	if err != nil {
		t.Fatalf("load embedded fs: %v", err)
	}
	if diff := cmp.Diff(catalog.MustBuiltin().Identities(), table.Identities()); diff != "" {
		t.Fatalf("embedded identities mismatch (-want +got):\n%s", diff)
	}
}
