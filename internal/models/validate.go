package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError reports a single validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = validator.New()

func init() {
	// Report fields by their wire names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("category", vocabRule(IsValidCategory))
	validate.RegisterValidation("cuisine", vocabRule(IsValidCuisine))
	validate.RegisterValidation("dietary", vocabRule(IsValidDietary))
	validate.RegisterValidation("difficulty", vocabRule(IsValidDifficulty))
	validate.RegisterValidation("spicelevel", vocabRule(IsValidSpiceLevel))
}

func vocabRule(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return valid(fl.Field().String())
	}
}

// ValidateProductInput checks a create payload against the full rule set.
func ValidateProductInput(in *ProductInput) []FieldError {
	return validateStruct(in)
}

// ValidateProductUpdate checks only the fields present in a partial update.
func ValidateProductUpdate(u *ProductUpdate) []FieldError {
	return validateStruct(u)
}

func validateStruct(v interface{}) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	errs := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, FieldError{
			Field:   fieldPath(fe),
			Message: message(fe),
		})
	}
	return errs
}

// fieldPath strips the root struct name from the namespace, leaving the
// wire path, e.g. "availability.maxOrdersPerDay".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("cannot exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("cannot exceed %s", fe.Param())
	case "min":
		switch fe.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("must contain at least %s entry", fe.Param())
		default:
			return fmt.Sprintf("must be at least %s", fe.Param())
		}
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		if fe.Param() == "0" {
			return "cannot be negative"
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "category":
		return "is not a valid category"
	case "cuisine":
		return "is not a valid cuisine"
	case "dietary":
		return "is not a valid dietary option"
	case "difficulty":
		return "must be one of Easy, Medium, Hard"
	case "spicelevel":
		return "must be one of Mild, Medium, Hot, Very Hot"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
