// Package validator wraps go-playground/validator with chainpub's own tags and
// a uniform error format.
//
// Besides the built-in tags it understands:
//
//	chaincode   a crypto code such as "btc" or "LTC" (2 to 10 letters)
//	chaincodes  a non-empty list of chain codes; blank entries are ignored
package validator

import (
	"errors"
	"fmt"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned when a value
// breaks its validation tags.
var ErrValidationFailed = errors.New("validation failed")

var validator *gvalidator.Validate

// errStringFormat describes one failed rule.
//
// Example: "'ZMQ.PubPort': value '0' does not meet the requirements for the 'min' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation("chaincode", isChainCode); err != nil {
		panic(err)
	}
	validator.RegisterAlias("chaincodes", "min=1,dive,omitempty,chaincode")
}

func isChainCode(fl gvalidator.FieldLevel) bool {
	code := strings.TrimSpace(fl.Field().String())
	if len(code) < 2 || len(code) > 10 {
		return false
	}

	for _, r := range code {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}

	return true
}

// fieldName drops the root struct name from the namespace of a field error,
// so nested fields read as "ZMQ.PubPort".
func fieldName(fe gvalidator.FieldError) string {
	ns := fe.StructNamespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	if ns == "" {
		return fe.Field()
	}

	return ns
}

// formatError turns validator errors into ErrValidationFailed joined with one
// message per field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			fieldName(validationErr),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
//	if err := validator.Validate(cfg); errors.Is(err, validator.ErrValidationFailed) {
//	    // report the broken fields
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against tag, e.g. Var(endpoint, "required,url").
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
