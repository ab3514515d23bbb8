// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the built-in tags it registers ledger-specific rules:
//
//   - solana_pubkey: a base58 string decoding to a 32-byte public key
//   - solana_signature: a base58 string decoding to a 64-byte signature
//
// This package is initialized automatically and safe to use directly.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/mr-tron/base58"
)

const (
	// PublicKeySize is the decoded length of a ledger account address.
	PublicKeySize = 32

	// SignatureSize is the decoded length of a transaction signature.
	SignatureSize = 64
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
//
// This sentinel error allows callers to detect validation failures explicitly,
// even when multiple field errors are returned.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Address': value 'abc' does not meet the requirements for the 'solana_pubkey' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	_ = validator.RegisterValidation("solana_pubkey", func(fl gvalidator.FieldLevel) bool {
		return IsBase58Key(fl.Field().String(), PublicKeySize)
	})
	_ = validator.RegisterValidation("solana_signature", func(fl gvalidator.FieldLevel) bool {
		return IsBase58Key(fl.Field().String(), SignatureSize)
	})
}

// IsBase58Key reports whether s is a base58 string that decodes to exactly size bytes.
func IsBase58Key(s string, size int) bool {
	if s == "" {
		return false
	}

	decoded, err := base58.Decode(s)
	return err == nil && len(decoded) == size
}

// formatError transforms a raw validator error into a structured, human-readable multi-error chain.
//
// If the input is a set of validation errors, it returns a combined error with ErrValidationFailed as the root,
// followed by a formatted message for each field error. Otherwise, the original error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var validates a single value against the given tag expression, e.g. Var(addr, "solana_pubkey").
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
