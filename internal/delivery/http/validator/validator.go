// Package validator plugs go-playground/validator into echo's request
// validation hook.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// EchoValidator implements echo.Validator over a shared validate instance.
type EchoValidator struct {
	validate *validator.Validate
}

// New builds the validator used by the HTTP server.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate checks the struct tags of the bound request payload.
func (v *EchoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
