package model

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Unit identifiers are a zone prefix plus a zero-padded two-digit index,
// e.g. A-01, C-03.
var unitIDRegex = regexp.MustCompile(`^[A-Z]+-\d{2}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("unit_id", validateUnitID); err != nil {
		panic(fmt.Sprintf("failed to register 'unit_id' validator: %v", err))
	}
	return v
}

func validateUnitID(fl validator.FieldLevel) bool {
	return unitIDRegex.MatchString(fl.Field().String())
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Validate checks struct tags on any model type and reports every failing
// field, not just the first.
func Validate(target any) error {
	err := validate.Struct(target)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var result ValidationErrors
	for _, fe := range fieldErrors {
		result = append(result, ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed '%s' validation", fe.Tag()),
		})
	}
	return result
}
