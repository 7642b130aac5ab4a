package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/carstorage/internal/common"
	"github.com/go-playground/validator/v10"
)

// ValidationError reports required fields that were left empty. It is raised
// before any request is sent.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "required: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == common.ErrorValidation
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type normalizer interface {
	normalize()
}

// Validate trims the draft in place and checks its required fields.
// d must be a pointer to one of the draft types in this package.
func Validate(d any) error {
	if n, ok := d.(normalizer); ok {
		n.normalize()
	}
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}
