package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var _ Validator = (*GoPlaygroundValidator)(nil)

type GoPlaygroundValidator struct {
	v *validator.Validate
}

func NewGoPlaygroundValidator() *GoPlaygroundValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json field names instead of go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &GoPlaygroundValidator{
		v: v,
	}
}

// ValidateStruct returns a message per invalid field keyed by its json path,
// e.g. "items[1].quantity". A nil map means s is valid.
func (g *GoPlaygroundValidator) ValidateStruct(s any) map[string]string {
	err := g.v.Struct(s)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return map[string]string{"": err.Error()}
	}

	errMap := make(map[string]string, len(valErrs))
	for _, e := range valErrs {
		key := fieldPath(e)
		if _, exists := errMap[key]; !exists {
			errMap[key] = validationMessage(key, e)
		}
	}

	return errMap
}

// fieldPath drops the root struct name from the error namespace.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, found := strings.Cut(ns, "."); found {
		return rest
	}
	return e.Field()
}

func validationMessage(field string, e validator.FieldError) string {
	kind := e.Kind()
	if kind == reflect.Pointer {
		kind = e.Type().Elem().Kind()
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, e.Param(), unit(kind))
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, e.Param(), unit(kind))
	case "len":
		return fmt.Sprintf("%s must be exactly %s%s", field, e.Param(), unit(kind))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, e.Param())
	case "numeric":
		return fmt.Sprintf("%s must be a number", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func unit(kind reflect.Kind) string {
	switch kind {
	case reflect.String:
		return " characters long"
	case reflect.Slice, reflect.Array, reflect.Map:
		return " items"
	default:
		return ""
	}
}
