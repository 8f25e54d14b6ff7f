// Package validation checks already-parsed input values before they reach the store.
// It wraps go-playground/validator with custom tags for the league's formats.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/YusovID/racing-league/internal/apperrors"
	"github.com/YusovID/racing-league/internal/domain"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

var (
	validate = validator.New()

	personNameRe = regexp.MustCompile(`^\p{Latin}+(?:\s+\p{Latin}+)*$`)
	dniRe        = regexp.MustCompile(`^[0-9]{7,8}$`)
	clockRe      = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

func init() {
	// Field names in messages come from the "label" tag.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}

		return f.Name
	})

	rules := map[string]validator.Func{
		"person_name": stringRule(isPersonName),
		"dni":         stringRule(isDNI),
		"clock":       stringRule(clockRe.MatchString),
		"civil_date":  stringRule(IsDate),
		"specialty":   stringRule(isSpecialty),
	}

	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("failed to register custom validation %q: %v", tag, err))
		}
	}
}

// stringRule leaves empty strings to the 'required' tag.
func stringRule(match func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		if v == "" {
			return true
		}

		return match(v)
	}
}

// isPersonName accepts Latin-script words separated by spaces. Input is
// composed first so a combining accent counts as part of its letter.
// Ordinal indicators (ª, º) and modifier letters are not name letters.
func isPersonName(v string) bool {
	v = norm.NFC.String(v)
	if !personNameRe.MatchString(v) {
		return false
	}

	for _, r := range v {
		if unicode.In(r, unicode.Lo, unicode.Lm) {
			return false
		}
	}

	return true
}

func isDNI(v string) bool {
	if !dniRe.MatchString(v) {
		return false
	}

	n, err := strconv.ParseInt(v, 10, 64)

	return err == nil && n > 0
}

func isSpecialty(v string) bool {
	return domain.Specialty(v).Valid()
}

// ValidationError describes the first field that failed validation.
type ValidationError struct {
	Field   string
	Tag     string
	Message string
}

func (v *ValidationError) Error() string {
	return v.Message
}

// Is maps the failed tag onto the apperrors categories.
func (v *ValidationError) Is(target error) bool {
	if v.Tag == "required" {
		return target == apperrors.ErrRequired
	}

	return target == apperrors.ErrMalformed
}

// ValidateStruct validates s by its struct tags and returns a *ValidationError
// for the first failing field in declaration order.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validation.ValidateStruct: %w", err)
	}

	fe := fieldErrs[0]

	return &ValidationError{
		Field:   fe.Field(),
		Tag:     fe.Tag(),
		Message: messageFor(fe),
	}
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "person_name":
		return fmt.Sprintf("%s must contain only letters and spaces", field)
	case "dni":
		return fmt.Sprintf("%s must have 7 or 8 digits and be greater than zero", field)
	case "clock":
		return fmt.Sprintf("%s must be HH:MM between 00:00 and 23:59", field)
	case "civil_date":
		return fmt.Sprintf("%s must be a valid date in dd-mm-yyyy format", field)
	case "specialty":
		return fmt.Sprintf("%s must be one of %v", field, domain.Specialties())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}

		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must not be lower than %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must not be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("field '%s' failed on the '%s' tag", field, fe.Tag())
	}
}

// Clean trims surrounding whitespace from user-entered text and stores it in
// composed (NFC) form.
func Clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
