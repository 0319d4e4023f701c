package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// clockPattern accepts 24h "HH:MM"
var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})
	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errs[field] = field + " is required"
			case "required_without":
				errs[field] = field + " is required when " + e.Param() + " is empty"
			case "email":
				errs[field] = field + " must be a valid email address"
			case "min":
				errs[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errs[field] = field + " must be at most " + e.Param() + " characters"
			case "gt":
				errs[field] = field + " must be greater than " + e.Param()
			case "gte":
				errs[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errs[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errs[field] = field + " must be one of: " + e.Param()
			case "datetime":
				errs[field] = field + " must match the format " + e.Param()
			case "clock":
				errs[field] = field + " must be a time in HH:MM format"
			case "hexcolor":
				errs[field] = field + " must be a hex color"
			case "uuid":
				errs[field] = field + " must be a valid UUID"
			default:
				errs[field] = field + " is invalid"
			}
		}
	}

	return errs
}
