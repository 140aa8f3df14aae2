// Package validator wraps go-playground/validator for declarative struct
// validation with a uniform error format. Besides the built-in tags (such as
// eth_addr for recipient addresses) it registers:
//
//   - privkey: a 32-byte secp256k1 private key in hex, with or without 0x.
package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

// errStringFormat describes a single field violation. Values of fields tagged
// privkey are masked.
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation("privkey", validatePrivateKey); err != nil {
		panic(err)
	}
}

// validatePrivateKey accepts strings that go-ethereum can load as an ECDSA key.
func validatePrivateKey(fl gvalidator.FieldLevel) bool {
	_, err := crypto.HexToECDSA(strings.TrimPrefix(fl.Field().String(), "0x"))
	return err == nil
}

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		value := validationErr.Value()
		if validationErr.Tag() == "privkey" {
			value = "***"
		}

		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			value,
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its validate tags. On failure the returned error
// matches ErrValidationFailed and lists one message per offending field.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
