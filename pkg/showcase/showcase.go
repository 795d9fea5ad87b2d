// Package showcase renders the index page that lists every configured
// template as a card, postcards first and galleries second.
package showcase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-valentine/pkg/catalog"
	"github.com/goliatone/go-valentine/pkg/content"
	"github.com/goliatone/go-valentine/pkg/resolver"
)

// IndexTemplate is the embedded template RenderIndex executes.
const IndexTemplate = "index"

// Card is the index view of one template.
type Card struct {
	ID          string            `json:"id"`
	Kind        content.Kind      `json:"kind"`
	Family      content.Family    `json:"family"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Icon        string            `json:"icon,omitempty"`
	Path        string            `json:"path"`
	Gradient    string            `json:"gradient,omitempty"`
	Tokens      map[string]string `json:"tokens,omitempty"`
	Style       string            `json:"style,omitempty"`
}

// Cards returns one card per identity: postcards in declaration order, then
// galleries in declaration order.
func Cards(r *resolver.Resolver) []Card {
	entries := r.Entries()
	out := make([]Card, 0, len(entries))
	for _, family := range []content.Family{content.FamilyPostcard, content.FamilyGallery} {
		for _, entry := range entries {
			if entry.Kind().Family() != family {
				continue
			}
			out = append(out, newCard(entry))
		}
	}
	return out
}

func newCard(entry catalog.Entry) Card {
	cfg := ThemeConfig(entry)
	title := plainText(entry.Title)
	if title == "" {
		title = entry.Identity()
	}
	return Card{
		ID:          entry.Identity(),
		Kind:        entry.Kind(),
		Family:      entry.Kind().Family(),
		Title:       title,
		Description: plainText(entry.Description),
		Icon:        plainText(entry.Icon),
		Path:        entry.Path,
		Gradient:    hintToken(entry.Hints["gradient"]),
		Tokens:      cfg.Tokens,
		Style:       inlineStyle(cfg.CSSVars),
	}
}

func inlineStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	parts := make([]string, 0, len(vars))
	for _, key := range sortedKeys(vars) {
		parts = append(parts, key+": "+vars[key])
	}
	return strings.Join(parts, "; ")
}

// Option customises a Renderer.
type Option func(*Renderer)

// WithTemplateRenderer replaces the pongo2 engine.
func WithTemplateRenderer(tr TemplateRenderer) Option {
	return func(r *Renderer) {
		r.templates = tr
	}
}

// WithHeading overrides the page heading.
func WithHeading(title, subtitle string) Option {
	return func(r *Renderer) {
		r.heading = title
		r.subheading = subtitle
	}
}

// WithLogger sets the renderer logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// Renderer writes the showcase index page for a resolver.
type Renderer struct {
	resolver   *resolver.Resolver
	templates  TemplateRenderer
	heading    string
	subheading string
	logger     zerolog.Logger
}

// NewRenderer constructs a Renderer over res using the embedded templates
// unless WithTemplateRenderer is supplied.
func NewRenderer(res *resolver.Resolver, options ...Option) (*Renderer, error) {
	if res == nil {
		return nil, errors.New("showcase: resolver is required")
	}
	r := &Renderer{
		resolver:   res,
		heading:    "Valentine Templates",
		subheading: "Choose a postcard or a gallery to send to someone special",
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.templates == nil {
		engine, err := NewEngine()
		if err != nil {
			return nil, err
		}
		r.templates = engine
	}
	return r, nil
}

// RenderIndex writes the index HTML to w.
func (r *Renderer) RenderIndex(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cards := Cards(r.resolver)
	postcards, galleries := splitFamilies(cards)

	data := map[string]any{
		"heading":    plainText(r.heading),
		"subheading": plainText(r.subheading),
		"postcards":  postcards,
		"galleries":  galleries,
		"total":      len(cards),
	}
	if _, err := r.templates.RenderTemplate(IndexTemplate, data, w); err != nil {
		return fmt.Errorf("showcase: render index: %w", err)
	}
	r.logger.Debug().Int("cards", len(cards)).Msg("rendered showcase index")
	return nil
}

func splitFamilies(cards []Card) (postcards, galleries []Card) {
	postcards = []Card{}
	galleries = []Card{}
	for _, card := range cards {
		if card.Family == content.FamilyGallery {
			galleries = append(galleries, card)
			continue
		}
		postcards = append(postcards, card)
	}
	return postcards, galleries
}
