package showcase_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-valentine/pkg/catalog"
	"github.com/goliatone/go-valentine/pkg/content"
	"github.com/goliatone/go-valentine/pkg/resolver"
	"github.com/goliatone/go-valentine/pkg/showcase"
)

func TestTokensMergeRecordStyle(t *testing.T) {
	t.Parallel()

	entry := catalog.Entry{
		Record: &content.NotesPostcard{Base: content.Base{ID: "notes"}, Theme: "sunset"},
		Hints:  content.Hints{"gradient": "from-pink-300", "theme": "dawn"},
	}
	want := map[string]string{"gradient": "from-pink-300", "theme": "sunset"}
	if diff := cmp.Diff(want, showcase.Tokens(entry)); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestThemeConfigDerivesCSSVars(t *testing.T) {
	t.Parallel()

	entry := catalog.Entry{
		Record: &content.LetterPostcard{
			Base:  content.Base{ID: "letter"},
			Style: content.Hints{"accentColor": "rose", "bad": "url(javascript:x)"},
		},
	}
	cfg := showcase.ThemeConfig(entry)
	if cfg.Theme != "letter" {
		t.Fatalf("theme = %q", cfg.Theme)
	}
	want := map[string]string{"--valentine-accent-color": "rose"}
	if diff := cmp.Diff(want, cfg.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
}

func TestThemesRegistersEveryTemplate(t *testing.T) {
	t.Parallel()

	provider, err := showcase.Themes(resolver.New(catalog.MustBuiltin()))
	if err != nil {
		t.Fatalf("themes: %v", err)
	}
	if provider == nil {
		t.Fatalf("expected provider")
	}
}
