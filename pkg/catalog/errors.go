package catalog

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-valentine/pkg/content"
)

var (
	// ErrUnknownTemplate matches every *UnknownTemplateError via errors.Is.
	ErrUnknownTemplate = errors.New("unknown template")
	// ErrMalformedTemplate matches every *MalformedTemplateError via errors.Is.
	ErrMalformedTemplate = errors.New("malformed template")
)

// UnknownTemplateError reports a lookup for an identity that is not
// configured. Kind is set when the caller asked for a specific variant.
type UnknownTemplateError struct {
	Identity string
	Kind     content.Kind
}

func (e *UnknownTemplateError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("catalog: unknown %s template %q", e.Kind, e.Identity)
	}
	return fmt.Sprintf("catalog: unknown template %q", e.Identity)
}

// Is lets errors.Is match ErrUnknownTemplate.
func (e *UnknownTemplateError) Is(target error) bool {
	return target == ErrUnknownTemplate
}

// MalformedTemplateError reports a record that failed schema validation while
// the configuration was being loaded. Source names the file when known.
type MalformedTemplateError struct {
	Identity string
	Field    string
	Reason   string
	Source   string
}

func (e *MalformedTemplateError) Error() string {
	msg := fmt.Sprintf("catalog: template %q", e.Identity)
	if e.Source != "" {
		msg += fmt.Sprintf(" (file %s)", e.Source)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" field %s", e.Field)
	}
	return msg + ": " + e.Reason
}

// Is lets errors.Is match ErrMalformedTemplate.
func (e *MalformedTemplateError) Is(target error) bool {
	return target == ErrMalformedTemplate
}

func malformed(id, field, format string, args ...any) *MalformedTemplateError {
	return &MalformedTemplateError{
		Identity: id,
		Field:    field,
		Reason:   fmt.Sprintf(format, args...),
	}
}
