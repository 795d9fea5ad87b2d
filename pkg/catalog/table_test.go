package catalog_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-valentine/pkg/catalog"
	"github.com/goliatone/go-valentine/pkg/content"
)

func gridEntry(id, title string) catalog.Entry {
	return catalog.Entry{
		Record: &content.GridGallery{
			Base:   content.Base{ID: id},
			Title:  title,
			Images: []content.Media{{URL: "https://example.com/" + id + ".jpg", Caption: "First"}},
		},
		Title: title,
		Hints: content.Hints{"gradient": "from-pink-300"},
	}
}

func storyEntry(id string) catalog.Entry {
	return catalog.Entry{
		Record: &content.StoryGallery{
			Base:     content.Base{ID: id},
			Title:    "Story",
			Chapters: []content.Chapter{{Title: "Start", Text: "Once"}},
		},
	}
}

func TestNewKeepsDeclarationOrder(t *testing.T) {
	t.Parallel()

	table, err := catalog.New(gridEntry("zeta", "Z"), gridEntry("alpha", "A"), storyEntry("mid"))
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, table.Identities()); diff != "" {
		t.Fatalf("identities mismatch (-want +got):\n%s", diff)
	}
	if table.Len() != 3 || !table.Has("alpha") || table.Has("beta") {
		t.Fatalf("unexpected membership: len=%d", table.Len())
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	t.Parallel()

	_, err := catalog.New(gridEntry("same", "One"), gridEntry("same", "Two"))
	var bad *catalog.MalformedTemplateError
	if !errors.As(err, &bad) {
		t.Fatalf("expected MalformedTemplateError, got %v", err)
	}
	if bad.Identity != "same" || bad.Field != "id" {
		t.Fatalf("unexpected error details: %+v", bad)
	}
}

func TestTableIsolatesCallers(t *testing.T) {
	t.Parallel()

	source := gridEntry("grid", "Grid")
	table := catalog.MustNew(source)

	source.Record.(*content.GridGallery).Images[0].Caption = "changed before lookup"
	source.Hints["gradient"] = "changed"

	first, _ := table.Lookup("grid")
	grid := first.Record.(*content.GridGallery)
	if grid.Images[0].Caption != "First" || first.Hints["gradient"] != "from-pink-300" {
		t.Fatalf("table observed caller mutation: %+v", first)
	}

	grid.Images[0].Caption = "changed after lookup"
	grid.Images = append(grid.Images, content.Media{URL: "extra.jpg"})
	first.Hints["gradient"] = "changed"

	second, _ := table.Lookup("grid")
	if diff := cmp.Diff(gridEntry("grid", "Grid").Record, second.Record); diff != "" {
		t.Fatalf("lookup observed earlier mutation (-want +got):\n%s", diff)
	}

	ids := table.Identities()
	ids[0] = "mutated"
	if table.Identities()[0] != "grid" {
		t.Fatalf("identities slice shared with table")
	}
}

func TestZeroAndNilTables(t *testing.T) {
	t.Parallel()

	var nilTable *catalog.Table
	if nilTable.Len() != 0 || nilTable.Has("x") {
		t.Fatalf("nil table should be empty")
	}
	if _, ok := nilTable.Lookup("x"); ok {
		t.Fatalf("nil table lookup should miss")
	}
	if got := nilTable.Identities(); got == nil || len(got) != 0 {
		t.Fatalf("identities of nil table = %#v, want empty slice", got)
	}

	empty := catalog.MustNew()
	if got := empty.Entries(); len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}

func TestMustNewPanicsOnInvalid(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	catalog.MustNew(catalog.Entry{})
}

func TestOverlayReplacesInPlaceAndAppends(t *testing.T) {
	t.Parallel()

	base := catalog.MustNew(gridEntry("one", "One"), storyEntry("two"), gridEntry("three", "Three"))
	override := catalog.MustNew(gridEntry("extra", "Extra"), gridEntry("three", "Custom Three"))

	merged, err := catalog.Overlay(base, override)
	if err != nil {
		t.Fatalf("overlay: %v", err)
	}
	if diff := cmp.Diff([]string{"one", "two", "three", "extra"}, merged.Identities()); diff != "" {
		t.Fatalf("identities mismatch (-want +got):\n%s", diff)
	}
	three, _ := merged.Lookup("three")
	if three.Title != "Custom Three" {
		t.Fatalf("override not applied: %q", three.Title)
	}
	original, _ := base.Lookup("three")
	if original.Title != "Three" {
		t.Fatalf("overlay mutated base: %q", original.Title)
	}
}

func TestOverlayRejectsKindChange(t *testing.T) {
	t.Parallel()

	base := catalog.MustNew(storyEntry("story"))
	override := catalog.MustNew(gridEntry("story", "Now a grid"))

	_, err := catalog.Overlay(base, override)
	var bad *catalog.MalformedTemplateError
	if !errors.As(err, &bad) || bad.Field != "kind" {
		t.Fatalf("expected kind mismatch error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	sky := func(links ...content.Link) catalog.Entry {
		return catalog.Entry{Record: &content.ConstellationGallery{
			Base:   content.Base{ID: "sky"},
			Title:  "Sky",
			Stars:  []content.Star{{Image: "a.jpg"}},
			Layout: []content.Point{{X: 10, Y: 10}, {X: 50, Y: 50}},
			Links:  links,
		}}
	}

	cases := []struct {
		name  string
		entry catalog.Entry
		field string
	}{
		{name: "nil record", entry: catalog.Entry{}, field: "id"},
		{name: "whitespace id", entry: gridEntry("bad id", "Grid"), field: "id"},
		{name: "missing title", entry: gridEntry("grid", ""), field: "title"},
		{name: "self link", entry: sky(content.Link{From: 1, To: 1}), field: "links[0]"},
		{name: "link out of range", entry: sky(content.Link{From: 0, To: 2}), field: "links[0]"},
		{name: "negative link", entry: sky(content.Link{From: -1, To: 0}), field: "links[0].from"},
		{
			name: "point off canvas",
			entry: catalog.Entry{Record: &content.ConstellationGallery{
				Base:   content.Base{ID: "sky"},
				Title:  "Sky",
				Layout: []content.Point{{X: 101, Y: 10}},
			}},
			field: "layout[0].x",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := catalog.Validate(tc.entry)
			var bad *catalog.MalformedTemplateError
			if !errors.As(err, &bad) {
				t.Fatalf("expected MalformedTemplateError, got %v", err)
			}
			if bad.Field != tc.field {
				t.Fatalf("field = %q, want %q (%v)", bad.Field, tc.field, err)
			}
		})
	}

	if err := catalog.Validate(sky(content.Link{From: 0, To: 1})); err != nil {
		t.Fatalf("valid constellation rejected: %v", err)
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	unknown := &catalog.UnknownTemplateError{Identity: "postcard9"}
	if got, want := unknown.Error(), `catalog: unknown template "postcard9"`; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
	typed := &catalog.UnknownTemplateError{Identity: "postcard1", Kind: content.KindGridGallery}
	if got, want := typed.Error(), `catalog: unknown grid-gallery template "postcard1"`; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
	bad := &catalog.MalformedTemplateError{Identity: "g", Field: "title", Reason: "value is required", Source: "a.yaml"}
	if got, want := bad.Error(), `catalog: template "g" (file a.yaml) field title: value is required`; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
	if errors.Is(unknown, catalog.ErrMalformedTemplate) || !errors.Is(unknown, catalog.ErrUnknownTemplate) {
		t.Fatalf("unknown template error matched the wrong sentinel")
	}
}
