package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida; los nombres de campo en los mensajes usan el
// tag json para que el cliente reconozca sus propios campos.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct aplica los tags `validate` del DTO y devuelve los errores por
// campo, o nil si la entrada es válida.
func validateStruct(in any) map[string]string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	fieldErrors := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fieldErrors[fe.Field()] = fieldMessage(fe)
		}
	} else {
		fieldErrors["_"] = err.Error()
	}
	return fieldErrors
}

// fieldMessage convierte un error de validación en un mensaje legible.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "debe ser un email válido"
	case "min":
		return fmt.Sprintf("debe tener al menos %s", fe.Param())
	case "max":
		return fmt.Sprintf("no puede exceder %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	default:
		return fmt.Sprintf("falló la validación (%s)", fe.Tag())
	}
}
