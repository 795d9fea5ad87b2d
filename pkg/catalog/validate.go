package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-valentine/pkg/content"
)

var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

// Validate checks a single entry against the schema of its variant and the
// cross-field rules validator tags cannot express. Failures are returned as
// *MalformedTemplateError.
func Validate(entry Entry) error {
	id := entry.Identity()
	if strings.TrimSpace(id) == "" {
		return malformed(id, "id", "identity is required")
	}
	if strings.IndexFunc(id, unicode.IsSpace) >= 0 {
		return malformed(id, "id", "identity must not contain whitespace")
	}
	if entry.Record == nil {
		return malformed(id, "content", "content is required")
	}
	if !entry.Record.Kind().Valid() {
		return malformed(id, "kind", "unknown kind %q", entry.Record.Kind())
	}

	if err := schemaValidator().Struct(entry.Record); err != nil {
		return translateValidationError(id, err)
	}

	if gallery, ok := entry.Record.(*content.ConstellationGallery); ok {
		if err := validateLinks(id, gallery); err != nil {
			return err
		}
	}
	return nil
}

func validateLinks(id string, gallery *content.ConstellationGallery) error {
	anchors := len(gallery.Layout)
	for idx, link := range gallery.Links {
		field := fmt.Sprintf("links[%d]", idx)
		if link.From == link.To {
			return malformed(id, field, "link joins anchor %d to itself", link.From)
		}
		if link.From >= anchors || link.To >= anchors {
			return malformed(id, field, "anchor out of range (%d anchors)", anchors)
		}
	}
	return nil
}

func translateValidationError(id string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return malformed(id, "", "%v", err)
	}
	first := fieldErrs[0]
	return malformed(id, fieldPath(first.Namespace()), "%s", describeRule(first))
}

// fieldPath drops the struct name validator prefixes to every namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "value is required"
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q rule", fe.Tag())
	}
}

func schemaValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			switch name {
			case "-":
				return "id"
			case "":
				return field.Name
			default:
				return name
			}
		})
		validate = v
	})
	return validate
}
