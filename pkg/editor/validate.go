package editor

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report errors by the form's lowercase field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("form")
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	return v
}

// fieldRules mirrors the gate of the original entry screen: four required
// fields, a minimum description length, a parseable release date, and a
// well-formed image URL when one is given.
type fieldRules struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required,min=50"`
	ReleaseDate string `form:"release_date" validate:"required,datetime=2006-01-02"`
	Author      string `form:"author" validate:"required"`
	Image       string `form:"image" validate:"omitempty,url"`
}

// ValidationErrors maps field name to a user-facing message.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + " " + e[f]
	}
	return strings.Join(parts, "; ")
}

// Validate runs the field gate. It applies to both create and update
// submissions. A nil return means the submit controls may be enabled.
func (f *Form) Validate() error {
	r := fieldRules{
		Title:       f.Title,
		Description: f.Description,
		ReleaseDate: f.ReleaseDate,
		Author:      f.Author,
		Image:       f.Image,
	}
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := ValidationErrors{}
	for _, e := range verrs {
		out[e.Field()] = friendlyMessage(e)
	}
	return out
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "datetime":
		return "must be a date like 2024-01-31"
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
