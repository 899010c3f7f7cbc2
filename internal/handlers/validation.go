package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/exchange_audit_app/internal/apperrors"
	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const malformedRequestMessage = "request could not be parsed"

var registerValidatorOnce sync.Once

// registerValidation teaches gin's validator the decimal tags used by the DTOs and makes
// it report the json/form field names clients actually send.
func registerValidation() {
	registerValidatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// The decimal checks look at exponent and coefficient size only; converting an
		// unbounded decimal to float would expand it first.
		_ = v.RegisterValidation("exchange_amount", decimalValidator(domain.CheckAmount))
		_ = v.RegisterValidation("exchange_rate", decimalValidator(domain.CheckRate))
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
	})
}

func decimalValidator(check func(decimal.Decimal) string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && check(d) == ""
	}
}

// bindingError converts a ShouldBind* error into a ValidationError holding every
// violated field.
func bindingError(err error) *apperrors.ValidationError {
	verr := &apperrors.ValidationError{}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), fieldMessage(fe))
		}
		return verr
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		verr.Add(typeErr.Field, "has an invalid type")
		return verr
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		verr.Add("", "request body is not valid JSON")
		return verr
	}

	verr.Add("", malformedRequestMessage)
	return verr
}

func decimalMessage(fe validator.FieldError, check func(decimal.Decimal) string) string {
	if d, ok := fe.Value().(decimal.Decimal); ok {
		if msg := check(d); msg != "" {
			return msg
		}
	}
	return "is invalid"
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "alpha":
		return "must contain only letters"
	case "exchange_amount":
		return decimalMessage(fe, domain.CheckAmount)
	case "exchange_rate":
		return decimalMessage(fe, domain.CheckRate)
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return "is invalid"
	}
}
