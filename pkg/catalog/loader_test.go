package catalog_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-valentine/pkg/catalog"
	"github.com/goliatone/go-valentine/pkg/content"
)

const letterDoc = `
templates:
  - id: anniversary
    kind: letter-postcard
    title: Anniversary Letter
    hints:
      gradient: from-rose-400 to-pink-500
    content:
      senderName: Sam
      recipientName: Alex
      message: |-
        Ten years.

        And counting.
      signature: Yours
`

func TestLoadFSParsesDocumentsInLexicalOrder(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"b/notes.yml": {Data: []byte(`
templates:
  - id: notes
    kind: notes-postcard
    content:
      senderName: Sam
      recipientName: Alex
      messages: ["one", "two"]
      finalMessage: three
      signature: Sam
`)},
		"a/letter.yaml": {Data: []byte(letterDoc)},
		"README.md":     {Data: []byte("ignored")},
		"c/grid.json": {Data: []byte(`{"templates":[{"id":"grid","kind":"grid-gallery","content":{"title":"Grid","images":[{"url":"a.jpg","caption":"A"}]}}]}`)},
	}

	table, err := catalog.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}

	if diff := cmp.Diff([]string{"anniversary", "notes", "grid"}, table.Identities()); diff != "" {
		t.Fatalf("identities mismatch (-want +got):\n%s", diff)
	}

	entry, ok := table.Lookup("anniversary")
	if !ok {
		t.Fatalf("expected anniversary entry")
	}
	letter, ok := entry.Record.(*content.LetterPostcard)
	if !ok {
		t.Fatalf("record type = %T, want *content.LetterPostcard", entry.Record)
	}
	if diff := cmp.Diff([]string{"Ten years.", "And counting."}, letter.Message.Paragraphs()); diff != "" {
		t.Fatalf("paragraphs mismatch (-want +got):\n%s", diff)
	}
	if entry.Path != "/anniversary" {
		t.Fatalf("default path = %q, want /anniversary", entry.Path)
	}
	if entry.Hints["gradient"] != "from-rose-400 to-pink-500" {
		t.Fatalf("hints not loaded: %#v", entry.Hints)
	}

	gridEntry, _ := table.Lookup("grid")
	grid := gridEntry.Record.(*content.GridGallery)
	if diff := cmp.Diff([]content.Media{{URL: "a.jpg", Caption: "A"}}, grid.Images); diff != "" {
		t.Fatalf("grid images mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFSNilIsEmpty(t *testing.T) {
	t.Parallel()

	table, err := catalog.LoadFS(nil)
	if err != nil {
		t.Fatalf("load nil fs: %v", err)
	}
	if table.Len() != 0 {
		t.Fatalf("expected empty table, got %d entries", table.Len())
	}
}

func TestLoadFSRejectsDuplicateAcrossFiles(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"one.yaml": {Data: []byte(letterDoc)},
		"two.yaml": {Data: []byte(letterDoc)},
	}

	_, err := catalog.LoadFS(fsys)
	var bad *catalog.MalformedTemplateError
	if !errors.As(err, &bad) {
		t.Fatalf("expected MalformedTemplateError, got %v", err)
	}
	if bad.Identity != "anniversary" || bad.Source != "two.yaml" || bad.Field != "id" {
		t.Fatalf("unexpected error details: %+v", bad)
	}
}

func TestParseDocumentMalformedEntries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		doc      string
		identity string
		field    string
	}{
		{
			name: "missing id",
			doc: `
templates:
  - kind: grid-gallery
    content: {title: Grid}
`,
			identity: "#0",
			field:    "id",
		},
		{
			name: "unknown kind",
			doc: `
templates:
  - id: odd
    kind: hologram
    content: {title: Odd}
`,
			identity: "odd",
			field:    "kind",
		},
		{
			name: "missing content",
			doc: `
templates:
  - id: empty
    kind: grid-gallery
`,
			identity: "empty",
			field:    "content",
		},
		{
			name: "content not a mapping",
			doc: `
templates:
  - id: listy
    kind: grid-gallery
    content: [1, 2]
`,
			identity: "listy",
			field:    "content",
		},
		{
			name: "unknown content field",
			doc: `
templates:
  - id: extra
    kind: grid-gallery
    content:
      title: Grid
      colour: red
`,
			identity: "extra",
			field:    "content",
		},
		{
			name: "required field missing",
			doc: `
templates:
  - id: untitled
    kind: grid-gallery
    content:
      subtitle: No title here
`,
			identity: "untitled",
			field:    "title",
		},
		{
			name: "nested required field missing",
			doc: `
templates:
  - id: book
    kind: book-postcard
    content:
      title: Book
      pages:
        - title: One
`,
			identity: "book",
			field:    "pages[0].text",
		},
		{
			name: "wrong scalar type",
			doc: `
templates:
  - id: wrongtype
    kind: notes-postcard
    content:
      senderName: [a, b]
`,
			identity: "wrongtype",
			field:    "content",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := catalog.ParseDocument([]byte(tc.doc), "client.yaml")
			if !errors.Is(err, catalog.ErrMalformedTemplate) {
				t.Fatalf("expected ErrMalformedTemplate, got %v", err)
			}
			var bad *catalog.MalformedTemplateError
			if !errors.As(err, &bad) {
				t.Fatalf("expected *MalformedTemplateError, got %T", err)
			}
			if bad.Identity != tc.identity {
				t.Fatalf("identity = %q, want %q", bad.Identity, tc.identity)
			}
			if bad.Field != tc.field {
				t.Fatalf("field = %q, want %q (%v)", bad.Field, tc.field, err)
			}
			if bad.Source != "client.yaml" {
				t.Fatalf("source = %q, want client.yaml", bad.Source)
			}
		})
	}
}

func TestParseDocumentRejectsEmptyAndInvalidYAML(t *testing.T) {
	t.Parallel()

	if _, err := catalog.ParseDocument([]byte("  \n"), "blank.yaml"); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := catalog.ParseDocument([]byte("templates: [unclosed"), "broken.yaml"); err == nil {
		t.Fatalf("expected error for invalid yaml")
	}
	if _, err := catalog.ParseDocument([]byte("widgets: []"), "other.yaml"); err == nil {
		t.Fatalf("expected error for unknown top-level key")
	}
}
