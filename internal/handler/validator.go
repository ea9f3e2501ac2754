package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Armory_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

var loginIDPattern = regexp.MustCompile(domain.LoginIDPattern)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Report json names so field errors match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation(TagLoginID, validateLoginID)
	_ = v.RegisterValidation(TagItemType, validateItemType)
	_ = v.RegisterValidation(TagStatKeys, validateStatKeys)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(InitValidator)
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by json field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case TagLoginID:
			errs[field] = "Only lowercase letters and digits are allowed"
		case TagItemType:
			errs[field] = "Unknown item type"
		case TagStatKeys:
			errs[field] = "Unknown stat"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt", "gte":
			errs[field] = fmt.Sprintf("Must be greater than %s", lowerBound(e))
		case "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func lowerBound(e validator.FieldError) string {
	if e.Tag() == "gte" {
		return fmt.Sprintf("or equal to %s", e.Param())
	}
	return e.Param()
}

func validateLoginID(fl validator.FieldLevel) bool {
	return loginIDPattern.MatchString(fl.Field().String())
}

func validateItemType(fl validator.FieldLevel) bool {
	_, err := domain.ParseItemType(fl.Field().String())
	return err == nil
}

// validateStatKeys accepts a map[string]int whose keys are all known stats
func validateStatKeys(fl validator.FieldLevel) bool {
	m, ok := fl.Field().Interface().(map[string]int)
	if !ok {
		return false
	}
	_, err := domain.ParseStats(m)
	return err == nil
}
