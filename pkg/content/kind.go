package content

import (
	"fmt"
	"strings"
)

// Kind tags a record with its variant.
type Kind string

const (
	KindLetterPostcard       Kind = "letter-postcard"
	KindNotesPostcard        Kind = "notes-postcard"
	KindBookPostcard         Kind = "book-postcard"
	KindBottlePostcard       Kind = "bottle-postcard"
	KindSnowGlobePostcard    Kind = "snow-globe-postcard"
	KindGridGallery          Kind = "grid-gallery"
	KindPolaroidGallery      Kind = "polaroid-gallery"
	KindStoryGallery         Kind = "story-gallery"
	KindCarouselGallery      Kind = "carousel-gallery"
	KindFilmstripGallery     Kind = "filmstrip-gallery"
	KindConstellationGallery Kind = "constellation-gallery"
)

// Family groups kinds the way the showcase presents them.
type Family string

const (
	FamilyPostcard Family = "postcard"
	FamilyGallery  Family = "gallery"
)

var kinds = []Kind{
	KindLetterPostcard,
	KindNotesPostcard,
	KindBookPostcard,
	KindBottlePostcard,
	KindSnowGlobePostcard,
	KindGridGallery,
	KindPolaroidGallery,
	KindStoryGallery,
	KindCarouselGallery,
	KindFilmstripGallery,
	KindConstellationGallery,
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// ParseKind normalises raw and reports whether it names a known kind.
func ParseKind(raw string) (Kind, error) {
	candidate := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", fmt.Errorf("content: unknown template kind %q", raw)
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	for _, known := range kinds {
		if known == k {
			return true
		}
	}
	return false
}

// Family returns the showcase family of the kind. Unknown kinds return "".
func (k Kind) Family() Family {
	switch k {
	case KindLetterPostcard, KindNotesPostcard, KindBookPostcard, KindBottlePostcard, KindSnowGlobePostcard:
		return FamilyPostcard
	case KindGridGallery, KindPolaroidGallery, KindStoryGallery, KindCarouselGallery, KindFilmstripGallery, KindConstellationGallery:
		return FamilyGallery
	default:
		return ""
	}
}

func (k Kind) String() string {
	return string(k)
}

// New returns an empty record of the supplied kind carrying id. Loaders use
// it to pick the decode target for a document entry.
func New(kind Kind, id string) (Record, error) {
	base := Base{ID: id}
	switch kind {
	case KindLetterPostcard:
		return &LetterPostcard{Base: base}, nil
	case KindNotesPostcard:
		return &NotesPostcard{Base: base}, nil
	case KindBookPostcard:
		return &BookPostcard{Base: base}, nil
	case KindBottlePostcard:
		return &BottlePostcard{Base: base}, nil
	case KindSnowGlobePostcard:
		return &SnowGlobePostcard{Base: base}, nil
	case KindGridGallery:
		return &GridGallery{Base: base}, nil
	case KindPolaroidGallery:
		return &PolaroidGallery{Base: base}, nil
	case KindStoryGallery:
		return &StoryGallery{Base: base}, nil
	case KindCarouselGallery:
		return &CarouselGallery{Base: base}, nil
	case KindFilmstripGallery:
		return &FilmstripGallery{Base: base}, nil
	case KindConstellationGallery:
		return &ConstellationGallery{Base: base}, nil
	default:
		return nil, fmt.Errorf("content: unknown template kind %q", kind)
	}
}
