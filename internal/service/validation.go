package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrValidation agrupa los errores de entrada de los servicios.
var ErrValidation = errors.New("validation failed")

// validateStruct traduce los errores de validator a ErrValidation con los campos fallidos.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, strings.ToLower(fe.Field())+" ("+fe.Tag()+")")
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(fields, ", "))
}
