// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound input structs.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator wraps a shared validator instance.
type Validator struct {
	validate *validator.Validate
}

// New creates the echo request validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks struct tags on the bound input.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
