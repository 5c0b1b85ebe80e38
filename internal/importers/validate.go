package importers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists every problem found in a fixture.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid fixture: %s", strings.Join(e.Problems, "; "))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("date", dateValidator)
	return v
}

// dateValidator accepts the empty string or a YYYY-MM-DD calendar date.
func dateValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

// Validate checks field constraints and cross references.
// It returns a *ValidationError describing all problems, or nil.
func (f *Fixture) Validate() error {
	var problems []string

	if err := validate.Struct(f); err != nil {
		fieldProblems, err := fieldErrorProblems(err)
		if err != nil {
			return err
		}
		problems = append(problems, fieldProblems...)
	}

	problems = append(problems, f.referenceProblems()...)

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// fieldErrorProblems formats validator field errors, also when they arrive wrapped.
func fieldErrorProblems(err error) ([]string, error) {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return nil, fmt.Errorf("validate fixture: %w", err)
	}
	problems := make([]string, 0, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		problems = append(problems, formatFieldError(fieldErr))
	}
	return problems, nil
}

func (f *Fixture) referenceProblems() []string {
	var problems []string

	genres := make(map[string]bool, len(f.Genres))
	for _, name := range f.Genres {
		genres[name] = true
	}
	authors := make(map[string]bool, len(f.Authors))
	for _, a := range f.Authors {
		authors[a.Key] = true
	}
	books := make(map[string]bool, len(f.Books))
	for _, b := range f.Books {
		books[b.Key] = true
	}

	for i, b := range f.Books {
		if b.Author != "" && !authors[b.Author] {
			problems = append(problems, fmt.Sprintf("%q refers to unknown author %q", fmt.Sprintf("books[%d].author", i), b.Author))
		}
		for j, name := range b.Genres {
			if !genres[name] {
				problems = append(problems, fmt.Sprintf("%q refers to unknown genre %q", fmt.Sprintf("books[%d].genres[%d]", i, j), name))
			}
		}
	}

	ids := make(map[string]bool, len(f.Instances))
	for i, inst := range f.Instances {
		if inst.Book != "" && !books[inst.Book] {
			problems = append(problems, fmt.Sprintf("%q refers to unknown book %q", fmt.Sprintf("instances[%d].book", i), inst.Book))
		}
		if inst.ID == "" {
			continue
		}
		id := strings.ToLower(inst.ID)
		if ids[id] {
			problems = append(problems, fmt.Sprintf("%q duplicates id %s", fmt.Sprintf("instances[%d].id", i), inst.ID))
		}
		ids[id] = true
	}

	return problems
}

// formatFieldError renders a validator error with the YAML path of the field,
// e.g. "authors[0].first_name" is required.
func formatFieldError(err validator.FieldError) string {
	field := err.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters", field, err.Param())
	case "oneof":
		valids := []string{}
		for _, p := range strings.Fields(err.Param()) {
			valids = append(valids, fmt.Sprintf("%q", p))
		}
		return fmt.Sprintf("%q must be one of the following: %s", field, strings.Join(valids, ", "))
	case "date":
		return fmt.Sprintf("%q should be in the format of YYYY-MM-DD", field)
	case "uuid":
		return fmt.Sprintf("%q is not a valid UUID", field)
	case "unique":
		return fmt.Sprintf("%q must not contain duplicates", field)
	default:
		return fmt.Sprintf("%q failed the %q check", field, err.Tag())
	}
}
