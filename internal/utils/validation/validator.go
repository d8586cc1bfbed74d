package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"cardpay/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors is returned by Struct when one or more fields fail their rules.
type Errors []ValidationError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

type Validator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json name. The money
// tag accepts a positive decimal.Decimal with at most two decimal places.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && models.ValidAmount(d)
	})

	return &Validator{validate: v}
}

// Struct validates s and returns Errors, or nil.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(Errors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "len":
		return "must be " + fe.Param() + " characters long"
	case "money":
		return "must be a positive amount with at most two decimal places"
	case "numeric":
		return "must contain digits only"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
