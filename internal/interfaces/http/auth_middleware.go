package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	pkgjwt "github.com/jhoicas/store-api/pkg/jwt"
)

// Locals keys para la identidad del token en Fiber. El contexto de seguridad es
// explícito por request; no hay estado ambiente.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalEmail    = "email"
	LocalRoles    = "roles"
)

// AuthMiddleware valida el Bearer Token JWT y carga la identidad en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respondStatus(c, fiber.StatusUnauthorized, "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respondStatus(c, fiber.StatusUnauthorized, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respondStatus(c, fiber.StatusUnauthorized, "token vacío")
		}
		id, err := pkgjwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respondStatus(c, fiber.StatusUnauthorized, "token inválido o expirado")
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalUsername, id.Username)
		c.Locals(LocalEmail, id.Email)
		c.Locals(LocalRoles, id.Roles)
		return c.Next()
	}
}

// RequireRole devuelve un middleware que autoriza solo a usuarios con alguno de
// los roles permitidos. Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(allowedRoles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		roles := GetRoles(c)
		if len(roles) == 0 {
			return respondStatus(c, fiber.StatusUnauthorized, "identidad no encontrada en el token")
		}
		for _, r := range roles {
			if _, ok := allowed[r]; ok {
				return c.Next()
			}
		}
		return respondStatus(c, fiber.StatusForbidden, "no tiene permiso para esta operación")
	}
}

// GetUserID devuelve el ID de usuario del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetUsername devuelve el username del contexto.
func GetUsername(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalUsername).(string)
	return v
}

// GetRoles devuelve el set de roles del contexto.
func GetRoles(c *fiber.Ctx) []string {
	v, _ := c.Locals(LocalRoles).([]string)
	return v
}
