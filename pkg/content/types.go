package content

import "strings"

// Record is implemented by every template variant. The unexported method
// keeps the set closed to this package.
type Record interface {
	Identity() string
	Kind() Kind
	record()
}

// Base carries the identity shared by every variant. The loader sets it from
// the catalog entry rather than from the content block.
type Base struct {
	ID string `json:"id" yaml:"-" validate:"required"`
}

// Identity returns the template key.
func (b Base) Identity() string { return b.ID }

// Prose is long-form message text. Paragraphs are separated by blank lines.
type Prose string

// Paragraphs splits the text on blank lines, trimming each paragraph and
// dropping empty ones.
func (p Prose) Paragraphs() []string {
	normalised := strings.ReplaceAll(string(p), "\r\n", "\n")
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	var out []string
	for _, chunk := range strings.Split(normalised, "\n\n") {
		trimmed := strings.TrimSpace(chunk)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func (p Prose) String() string { return string(p) }

// Hints holds opaque style parameters (gradient stops, accent, theme name).
type Hints map[string]string

// Media references an external image. Only URL is required.
type Media struct {
	URL     string `json:"url" yaml:"url" validate:"required"`
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Date    string `json:"date,omitempty" yaml:"date,omitempty"`
	Note    string `json:"note,omitempty" yaml:"note,omitempty"`
}

// LetterPostcard is a single letter revealed from an envelope or a vintage
// card. Quote and BackgroundImage are only used by the vintage layout.
type LetterPostcard struct {
	Base            `yaml:",inline"`
	SenderName      string `json:"senderName" yaml:"senderName" validate:"required"`
	RecipientName   string `json:"recipientName" yaml:"recipientName" validate:"required"`
	Message         Prose  `json:"message" yaml:"message" validate:"required"`
	Signature       string `json:"signature" yaml:"signature" validate:"required"`
	Date            string `json:"date,omitempty" yaml:"date,omitempty"`
	Quote           string `json:"quote,omitempty" yaml:"quote,omitempty"`
	BackgroundImage string `json:"backgroundImage,omitempty" yaml:"backgroundImage,omitempty"`
	Style           Hints  `json:"style,omitempty" yaml:"style,omitempty"`
}

// NotesPostcard shows a sequence of short messages followed by a final one.
type NotesPostcard struct {
	Base          `yaml:",inline"`
	SenderName    string   `json:"senderName" yaml:"senderName" validate:"required"`
	RecipientName string   `json:"recipientName" yaml:"recipientName" validate:"required"`
	Messages      []string `json:"messages" yaml:"messages" validate:"dive,required"`
	FinalMessage  string   `json:"finalMessage" yaml:"finalMessage" validate:"required"`
	Signature     string   `json:"signature" yaml:"signature" validate:"required"`
	Theme         string   `json:"theme,omitempty" yaml:"theme,omitempty"`
}

// BookPage is one page of a BookPostcard. The last page usually carries the
// signature.
type BookPage struct {
	Title     string `json:"title" yaml:"title" validate:"required"`
	Text      string `json:"text" yaml:"text" validate:"required"`
	Image     string `json:"image,omitempty" yaml:"image,omitempty"`
	Signature string `json:"signature,omitempty" yaml:"signature,omitempty"`
}

// BookPostcard is a storybook whose pages turn in order.
type BookPostcard struct {
	Base       `yaml:",inline"`
	Title      string     `json:"title" yaml:"title" validate:"required"`
	Subtitle   string     `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	CoverImage string     `json:"coverImage,omitempty" yaml:"coverImage,omitempty"`
	Pages      []BookPage `json:"pages" yaml:"pages" validate:"dive"`
}

// BottleMessage is a note that floats up from the sea.
type BottleMessage struct {
	Text  string `json:"text" yaml:"text" validate:"required"`
	Emoji string `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}

// BottlePostcard reveals bottle messages one by one, then a final card.
type BottlePostcard struct {
	Base         `yaml:",inline"`
	Title        string          `json:"title" yaml:"title" validate:"required"`
	Subtitle     string          `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Messages     []BottleMessage `json:"messages" yaml:"messages" validate:"dive"`
	FinalTitle   string          `json:"finalTitle" yaml:"finalTitle" validate:"required"`
	FinalMessage string          `json:"finalMessage" yaml:"finalMessage" validate:"required"`
	FinalImage   string          `json:"finalImage,omitempty" yaml:"finalImage,omitempty"`
	Signature    string          `json:"signature" yaml:"signature" validate:"required"`
}

// SnowGlobePostcard is a globe that reveals its message once shaken.
type SnowGlobePostcard struct {
	Base      `yaml:",inline"`
	Title     string `json:"title" yaml:"title" validate:"required"`
	Image     string `json:"image,omitempty" yaml:"image,omitempty"`
	BaseText  string `json:"baseText,omitempty" yaml:"baseText,omitempty"`
	Message   Prose  `json:"message" yaml:"message" validate:"required"`
	Signature string `json:"signature" yaml:"signature" validate:"required"`
}

// GridGallery lays captioned photos out in a grid.
type GridGallery struct {
	Base      `yaml:",inline"`
	Title     string  `json:"title" yaml:"title" validate:"required"`
	Subtitle  string  `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Images    []Media `json:"images" yaml:"images" validate:"dive"`
	Message   Prose   `json:"message,omitempty" yaml:"message,omitempty"`
	Signature string  `json:"signature,omitempty" yaml:"signature,omitempty"`
}

// PolaroidGallery scatters photos with handwritten notes.
type PolaroidGallery struct {
	Base        `yaml:",inline"`
	Title       string  `json:"title" yaml:"title" validate:"required"`
	Subtitle    string  `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Images      []Media `json:"images" yaml:"images" validate:"dive"`
	ClosingNote Prose   `json:"closingNote,omitempty" yaml:"closingNote,omitempty"`
	From        string  `json:"from,omitempty" yaml:"from,omitempty"`
}

// Chapter is one scroll section of a StoryGallery.
type Chapter struct {
	Title string `json:"title" yaml:"title" validate:"required"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
	Text  string `json:"text" yaml:"text" validate:"required"`
}

// StoryGallery narrates chapters in order.
type StoryGallery struct {
	Base      `yaml:",inline"`
	Title     string    `json:"title" yaml:"title" validate:"required"`
	Chapters  []Chapter `json:"chapters" yaml:"chapters" validate:"dive"`
	Ending    string    `json:"ending,omitempty" yaml:"ending,omitempty"`
	Signature string    `json:"signature,omitempty" yaml:"signature,omitempty"`
}

// CarouselGallery rotates captioned photos.
type CarouselGallery struct {
	Base      `yaml:",inline"`
	Title     string  `json:"title" yaml:"title" validate:"required"`
	Subtitle  string  `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Images    []Media `json:"images" yaml:"images" validate:"dive"`
	Message   Prose   `json:"message,omitempty" yaml:"message,omitempty"`
	Signature string  `json:"signature,omitempty" yaml:"signature,omitempty"`
}

// Frame is one shot of a FilmstripGallery.
type Frame struct {
	URL       string `json:"url" yaml:"url" validate:"required"`
	Caption   string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// FilmstripGallery plays frames like a movie reel.
type FilmstripGallery struct {
	Base       `yaml:",inline"`
	Title      string  `json:"title" yaml:"title" validate:"required"`
	Subtitle   string  `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Frames     []Frame `json:"frames" yaml:"frames" validate:"dive"`
	EndMessage string  `json:"endMessage,omitempty" yaml:"endMessage,omitempty"`
	Signature  string  `json:"signature,omitempty" yaml:"signature,omitempty"`
}

// Point is a position on the sky canvas, in percent of width and height.
type Point struct {
	X float64 `json:"x" yaml:"x" validate:"gte=0,lte=100"`
	Y float64 `json:"y" yaml:"y" validate:"gte=0,lte=100"`
}

// Star is one photo point of a ConstellationGallery.
type Star struct {
	Image   string `json:"image" yaml:"image" validate:"required"`
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Date    string `json:"date,omitempty" yaml:"date,omitempty"`
	Note    string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Link joins two layout anchors by index.
type Link struct {
	From int `json:"from" yaml:"from" validate:"gte=0"`
	To   int `json:"to" yaml:"to" validate:"gte=0"`
}

// ConstellationGallery maps photos onto a fixed star chart. Star i sits on
// Layout[i]; stars beyond the layout are not drawn. Links join anchors, so a
// line may end on an anchor that carries no photo.
type ConstellationGallery struct {
	Base      `yaml:",inline"`
	Title     string  `json:"title" yaml:"title" validate:"required"`
	Subtitle  string  `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Stars     []Star  `json:"stars" yaml:"stars" validate:"dive"`
	Layout    []Point `json:"layout,omitempty" yaml:"layout,omitempty" validate:"dive"`
	Links     []Link  `json:"links,omitempty" yaml:"links,omitempty" validate:"dive"`
	Message   Prose   `json:"message,omitempty" yaml:"message,omitempty"`
	Signature string  `json:"signature,omitempty" yaml:"signature,omitempty"`
}

// PlacedStar is a star together with the anchor it is drawn on.
type PlacedStar struct {
	Index int
	Star  Star
	At    Point
}

// Placed returns the stars that have an anchor, in order.
func (g *ConstellationGallery) Placed() []PlacedStar {
	count := min(len(g.Stars), len(g.Layout))
	out := make([]PlacedStar, 0, count)
	for idx := 0; idx < count; idx++ {
		out = append(out, PlacedStar{Index: idx, Star: g.Stars[idx], At: g.Layout[idx]})
	}
	return out
}

func (*LetterPostcard) Kind() Kind       { return KindLetterPostcard }
func (*NotesPostcard) Kind() Kind        { return KindNotesPostcard }
func (*BookPostcard) Kind() Kind         { return KindBookPostcard }
func (*BottlePostcard) Kind() Kind       { return KindBottlePostcard }
func (*SnowGlobePostcard) Kind() Kind    { return KindSnowGlobePostcard }
func (*GridGallery) Kind() Kind          { return KindGridGallery }
func (*PolaroidGallery) Kind() Kind      { return KindPolaroidGallery }
func (*StoryGallery) Kind() Kind         { return KindStoryGallery }
func (*CarouselGallery) Kind() Kind      { return KindCarouselGallery }
func (*FilmstripGallery) Kind() Kind     { return KindFilmstripGallery }
func (*ConstellationGallery) Kind() Kind { return KindConstellationGallery }

func (*LetterPostcard) record()       {}
func (*NotesPostcard) record()        {}
func (*BookPostcard) record()         {}
func (*BottlePostcard) record()       {}
func (*SnowGlobePostcard) record()    {}
func (*GridGallery) record()          {}
func (*PolaroidGallery) record()      {}
func (*StoryGallery) record()         {}
func (*CarouselGallery) record()      {}
func (*FilmstripGallery) record()     {}
func (*ConstellationGallery) record() {}
