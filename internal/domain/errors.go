package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). La capa HTTP es la única
// responsable de mapearlos a códigos de estado.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	// ErrRoleSeedMissing indica que falta un rol canónico en la base de datos:
	// error de configuración del despliegue, no de validación del cliente.
	ErrRoleSeedMissing = errors.New("rol canónico no sembrado")
)

// NotFound construye un error con entidad/campo/valor que envuelve ErrNotFound,
// de modo que errors.Is(err, ErrNotFound) sigue funcionando.
func NotFound(entity, field string, value any) error {
	return fmt.Errorf("%w: %s con %s '%v' no existe", ErrNotFound, entity, field, value)
}

// AlreadyExists construye un error con entidad/campo/valor que envuelve ErrDuplicate.
func AlreadyExists(entity, field string, value any) error {
	return fmt.Errorf("%w: %s con %s '%v' ya existe", ErrDuplicate, entity, field, value)
}

// InvalidInput construye un error de validación de dominio con mensaje propio.
func InvalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
