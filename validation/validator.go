// Package validation wraps go-playground/validator with the rules for picks
// and account credentials.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single failed rule on a request field
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// RequestValidationError collects the field errors for one request.
// It unwraps to the sentinel for the kind of request that failed, so
// callers can match it with errors.Is.
type RequestValidationError struct {
	kind   error
	fields []FieldError
}

func (ve *RequestValidationError) Error() string {
	if len(ve.fields) == 0 {
		return ve.kind.Error()
	}
	messages := make([]string, 0, len(ve.fields))
	for _, f := range ve.fields {
		messages = append(messages, f.Message)
	}
	return fmt.Sprintf("%s: %s", ve.kind, strings.Join(messages, "; "))
}

func (ve *RequestValidationError) Unwrap() error {
	return ve.kind
}

// Fields returns the failed rules
func (ve *RequestValidationError) Fields() []FieldError {
	return ve.fields
}

// Message returns the user-facing message for the first failed rule
func (ve *RequestValidationError) Message() string {
	if len(ve.fields) == 0 {
		return ve.kind.Error()
	}
	return ve.fields[0].Message
}

// GetValidator returns the shared validator instance
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their JSON names
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	})
	return validate
}

// validateStruct runs the validator and converts failures into a
// RequestValidationError of the given kind
func validateStruct(kind error, s any) error {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{
			kind:   kind,
			fields: []FieldError{{Field: "unknown", Tag: "unknown", Message: err.Error()}},
		}
	}

	fields := make([]FieldError, len(fieldErrs))
	for i, fe := range fieldErrs {
		fields[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: translateError(fe),
		}
	}
	return &RequestValidationError{kind: kind, fields: fields}
}

var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"unique":   "%s must not contain duplicates",
	"alphanum": "%s may only contain letters and digits",
}

func translateError(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()

	if template, ok := errorMessageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(template, field)
	}

	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "len":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain exactly %s numbers", field, param)
		}
		return fmt.Sprintf("%s must be %s characters", field, param)
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
