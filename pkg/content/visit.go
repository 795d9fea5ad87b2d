package content

import "fmt"

// Visitor handles each template variant. Adding a variant adds a method here,
// so every player that implements Visitor fails to compile until it handles
// the new shape.
type Visitor interface {
	LetterPostcard(*LetterPostcard) error
	NotesPostcard(*NotesPostcard) error
	BookPostcard(*BookPostcard) error
	BottlePostcard(*BottlePostcard) error
	SnowGlobePostcard(*SnowGlobePostcard) error
	GridGallery(*GridGallery) error
	PolaroidGallery(*PolaroidGallery) error
	StoryGallery(*StoryGallery) error
	CarouselGallery(*CarouselGallery) error
	FilmstripGallery(*FilmstripGallery) error
	ConstellationGallery(*ConstellationGallery) error
}

// Visit dispatches rec to the matching Visitor method.
func Visit(rec Record, v Visitor) error {
	if v == nil {
		return fmt.Errorf("content: visitor is required")
	}
	switch r := rec.(type) {
	case *LetterPostcard:
		return v.LetterPostcard(r)
	case *NotesPostcard:
		return v.NotesPostcard(r)
	case *BookPostcard:
		return v.BookPostcard(r)
	case *BottlePostcard:
		return v.BottlePostcard(r)
	case *SnowGlobePostcard:
		return v.SnowGlobePostcard(r)
	case *GridGallery:
		return v.GridGallery(r)
	case *PolaroidGallery:
		return v.PolaroidGallery(r)
	case *StoryGallery:
		return v.StoryGallery(r)
	case *CarouselGallery:
		return v.CarouselGallery(r)
	case *FilmstripGallery:
		return v.FilmstripGallery(r)
	case *ConstellationGallery:
		return v.ConstellationGallery(r)
	default:
		return fmt.Errorf("content: unsupported record %T", rec)
	}
}

// MediaURLs returns every image locator referenced by rec, in display order.
// Players use it to preload assets; nothing here fetches them.
func MediaURLs(rec Record) []string {
	collector := &mediaCollector{}
	if err := Visit(rec, collector); err != nil {
		return nil
	}
	return collector.urls
}

type mediaCollector struct {
	urls []string
}

func (c *mediaCollector) add(values ...string) {
	for _, value := range values {
		if value != "" {
			c.urls = append(c.urls, value)
		}
	}
}

func (c *mediaCollector) addMedia(items []Media) {
	for _, item := range items {
		c.add(item.URL)
	}
}

func (c *mediaCollector) LetterPostcard(r *LetterPostcard) error {
	c.add(r.BackgroundImage)
	return nil
}

func (c *mediaCollector) NotesPostcard(*NotesPostcard) error { return nil }

func (c *mediaCollector) BookPostcard(r *BookPostcard) error {
	c.add(r.CoverImage)
	for _, page := range r.Pages {
		c.add(page.Image)
	}
	return nil
}

func (c *mediaCollector) BottlePostcard(r *BottlePostcard) error {
	for _, msg := range r.Messages {
		c.add(msg.Image)
	}
	c.add(r.FinalImage)
	return nil
}

func (c *mediaCollector) SnowGlobePostcard(r *SnowGlobePostcard) error {
	c.add(r.Image)
	return nil
}

func (c *mediaCollector) GridGallery(r *GridGallery) error {
	c.addMedia(r.Images)
	return nil
}

func (c *mediaCollector) PolaroidGallery(r *PolaroidGallery) error {
	c.addMedia(r.Images)
	return nil
}

func (c *mediaCollector) StoryGallery(r *StoryGallery) error {
	for _, chapter := range r.Chapters {
		c.add(chapter.Image)
	}
	return nil
}

func (c *mediaCollector) CarouselGallery(r *CarouselGallery) error {
	c.addMedia(r.Images)
	return nil
}

func (c *mediaCollector) FilmstripGallery(r *FilmstripGallery) error {
	for _, frame := range r.Frames {
		c.add(frame.URL)
	}
	return nil
}

func (c *mediaCollector) ConstellationGallery(r *ConstellationGallery) error {
	for _, star := range r.Stars {
		c.add(star.Image)
	}
	return nil
}
