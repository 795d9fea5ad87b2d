package content

// Clone returns a deep copy of rec so callers can modify the result without
// affecting the source. A nil record yields nil.
func Clone(rec Record) Record {
	switch v := rec.(type) {
	case nil:
		return nil
	case *LetterPostcard:
		if v == nil {
			return nil
		}
		out := *v
		out.Style = CloneHints(v.Style)
		return &out
	case *NotesPostcard:
		if v == nil {
			return nil
		}
		out := *v
		out.Messages = cloneSlice(v.Messages)
		return &out
	case *BookPostcard:
		if v == nil {
			return nil
		}
		out := *v
		out.Pages = cloneSlice(v.Pages)
		return &out
	case *BottlePostcard:
		if v == nil {
			return nil
		}
		out := *v
		out.Messages = cloneSlice(v.Messages)
		return &out
	case *SnowGlobePostcard:
		if v == nil {
			return nil
		}
		out := *v
		return &out
	case *GridGallery:
		if v == nil {
			return nil
		}
		out := *v
		out.Images = cloneSlice(v.Images)
		return &out
	case *PolaroidGallery:
		if v == nil {
			return nil
		}
		out := *v
		out.Images = cloneSlice(v.Images)
		return &out
	case *StoryGallery:
		if v == nil {
			return nil
		}
		out := *v
		out.Chapters = cloneSlice(v.Chapters)
		return &out
	case *CarouselGallery:
		if v == nil {
			return nil
		}
		out := *v
		out.Images = cloneSlice(v.Images)
		return &out
	case *FilmstripGallery:
		if v == nil {
			return nil
		}
		out := *v
		out.Frames = cloneSlice(v.Frames)
		return &out
	case *ConstellationGallery:
		if v == nil {
			return nil
		}
		out := *v
		out.Stars = cloneSlice(v.Stars)
		out.Layout = cloneSlice(v.Layout)
		out.Links = cloneSlice(v.Links)
		return &out
	default:
		return nil
	}
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// CloneHints returns a copy of in; nil stays nil.
func CloneHints(in Hints) Hints {
	if in == nil {
		return nil
	}
	out := make(Hints, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
