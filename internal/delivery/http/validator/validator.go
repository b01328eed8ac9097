// Package validator adapts go-playground/validator to Echo's Validator
// interface so request DTO tags are enforced at bind time.
package validator

import (
	domainerrors "bazaar/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the validator installed on the Echo server.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks struct tags and translates failures into the shared
// validation error so clients always see a 400 with field details.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
