// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package validation checks request structs with go-playground/validator and
// turns failures into per-field messages keyed by JSON field name.
//
//	var req models.AddLetterRequest
//	if verr := validation.DecodeFields(raw, &req); verr != nil { ... }
//	if verr := validation.ValidateStruct(&req); verr != nil {
//		middleware.ValidationErrorResponse(w, verr)
//		return
//	}
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single failed field.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

func (e FieldError) Error() string {
	return e.Message
}

// RequestValidationError collects every failed field of one request.
type RequestValidationError struct {
	errors []FieldError
}

func (ve *RequestValidationError) Errors() []FieldError {
	return ve.errors
}

// Fields maps JSON field name to message.
func (ve *RequestValidationError) Fields() map[string]string {
	out := make(map[string]string, len(ve.errors))
	for _, e := range ve.errors {
		out[e.Field] = e.Message
	}
	return out
}

// Error joins the messages in field order.
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}

	messages := make([]string, len(ve.errors))
	for i, e := range ve.errors {
		messages[i] = e.Message
	}
	return strings.Join(messages, "; ")
}

// GetValidator returns the shared validator. Field names in errors are the
// JSON names, not the Go names.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
	})

	return validate
}

// ValidateStruct returns nil when s passes.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{errors: []FieldError{{
			Field:   "unknown",
			Tag:     "unknown",
			Message: err.Error(),
		}}}
	}

	fieldErrors := make([]FieldError, len(validationErrs))
	for i, fe := range validationErrs {
		fieldErrors[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: Message(fe.Field(), fe.Tag()),
		}
	}

	return &RequestValidationError{errors: fieldErrors}
}

// DecodeFields unmarshals each JSON member of raw into the field of dst
// (a pointer to struct) carrying the matching json tag. Members with the
// wrong JSON type become "type" errors on that field instead of failing the
// whole body. Unknown members are ignored.
func DecodeFields(raw map[string]json.RawMessage, dst interface{}) *RequestValidationError {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("validation: DecodeFields needs a pointer to struct, got %T", dst))
	}
	v = v.Elem()
	t := v.Type()

	var fieldErrors []FieldError
	for i := 0; i < t.NumField(); i++ {
		name := jsonFieldName(t.Field(i))
		if name == "" {
			continue
		}
		data, ok := raw[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(data, v.Field(i).Addr().Interface()); err != nil {
			fieldErrors = append(fieldErrors, FieldError{
				Field:   name,
				Tag:     "type",
				Message: Message(name, "type"),
			})
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	sort.Slice(fieldErrors, func(i, j int) bool { return fieldErrors[i].Field < fieldErrors[j].Field })
	return &RequestValidationError{errors: fieldErrors}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
