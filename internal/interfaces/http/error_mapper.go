package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/domain"
)

// respondError mapea un error de dominio a código de estado y arma el cuerpo
// de error estándar. Es el único punto donde error -> status; los use cases
// solo devuelven errores tipados.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return respondStatus(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return respondStatus(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		return respondStatus(c, fiber.StatusBadRequest, "stock insuficiente: la cantidad resultante sería negativa")
	case errors.Is(err, domain.ErrInvalidInput):
		return respondStatus(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return respondStatus(c, fiber.StatusUnauthorized, "usuario o password inválidos")
	case errors.Is(err, domain.ErrForbidden):
		return respondStatus(c, fiber.StatusForbidden, "no tiene permiso para esta operación")
	default:
		// Detalle completo al log del servidor, mensaje genérico al cliente.
		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		return respondStatus(c, fiber.StatusInternalServerError, "ocurrió un error inesperado, intente más tarde")
	}
}

// respondStatus arma el cuerpo de error estándar {status, message, path, timestamp}.
func respondStatus(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Status:    status,
		Message:   message,
		Path:      c.Path(),
		Timestamp: time.Now(),
	})
}

// respondValidation arma el cuerpo 400 con mensajes por campo.
func respondValidation(c *fiber.Ctx, fieldErrors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
		Status:    fiber.StatusBadRequest,
		Message:   "Validación fallida",
		Errors:    fieldErrors,
		Timestamp: time.Now(),
	})
}
