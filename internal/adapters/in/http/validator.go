package http

import (
	"errors"
	"fmt"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"

	"marketplace/internal/pkg/errs"
)

// FormValidator plugs go-playground/validator into echo.
type FormValidator struct {
	v *validatorv10.Validate
}

// NewFormValidator creates a validator with required struct checks enabled.
func NewFormValidator() *FormValidator {
	return &FormValidator{v: validatorv10.New(validatorv10.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Field failures are reported as a single
// errs.ValueIsInvalidError listing every offending field.
func (f *FormValidator) Validate(i any) error {
	err := f.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validatorv10.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return errs.NewValueIsInvalidErrorWithCause("form", errors.New(strings.Join(fields, "; ")))
}
