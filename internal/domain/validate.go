package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// ValidateStruct runs the `validate` struct tags of s and converts failures
// into FieldErrors named after the json tag. It returns nil when s is valid.
func ValidateStruct(s any) []FieldError {
	err := structValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "input", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "required"
	case "max", "lte":
		if isString {
			return fmt.Sprintf("max %s characters", fe.Param())
		}
		return fmt.Sprintf("must be <= %s", fe.Param())
	case "min", "gte":
		if isString {
			return fmt.Sprintf("min %s characters", fe.Param())
		}
		return fmt.Sprintf("must be >= %s", fe.Param())
	default:
		return "invalid"
	}
}
