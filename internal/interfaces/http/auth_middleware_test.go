package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/store-api/pkg/jwt"
)

const testJWTSecret = "secreto-de-middleware-tests"

// buildTestApp monta una ruta protegida mínima: auth + gate de roles de escritura.
func buildTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/protected",
		AuthMiddleware(testJWTSecret),
		RequireRole(entity.RoleAdmin, entity.RoleManager),
	)
	protected.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId":   GetUserID(c),
			"username": GetUsername(c),
			"roles":    GetRoles(c),
		})
	})
	return app
}

func tokenForRoles(t *testing.T, roles ...string) string {
	t.Helper()
	token, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Identity{
		UserID:   7,
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Roles:    roles,
	}, "store-api-test", 60)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestAuthMiddleware_SinHeaderDevuelve401(t *testing.T) {
	app := buildTestApp()

	resp, body := doRequest(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var envelope dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, fiber.StatusUnauthorized, envelope.Status)
	assert.Equal(t, "/protected/", envelope.Path)
	assert.NotEmpty(t, envelope.Timestamp)
}

func TestAuthMiddleware_FormatoInvalidoDevuelve401(t *testing.T) {
	app := buildTestApp()

	resp, _ := doRequest(t, app, "Basic abc123")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalidoDevuelve401(t *testing.T) {
	app := buildTestApp()

	resp, _ := doRequest(t, app, "Bearer no-es-un-token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaDeOtroSecretoDevuelve401(t *testing.T) {
	app := buildTestApp()

	token, err := pkgjwt.Generate("otro-secreto", pkgjwt.Identity{
		UserID: 7, Username: "jdoe", Roles: []string{entity.RoleAdmin},
	}, "store-api-test", 60)
	require.NoError(t, err)

	resp, _ := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_RolInsuficienteDevuelve403(t *testing.T) {
	app := buildTestApp()

	resp, body := doRequest(t, app, "Bearer "+tokenForRoles(t, entity.RoleCustomer))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var envelope dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, fiber.StatusForbidden, envelope.Status)
}

func TestRequireRole_RolPermitidoPasaYCargaIdentidad(t *testing.T) {
	app := buildTestApp()

	resp, body := doRequest(t, app, "Bearer "+tokenForRoles(t, entity.RoleManager))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		UserID   int64    `json:"userId"`
		Username string   `json:"username"`
		Roles    []string `json:"roles"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, int64(7), payload.UserID)
	assert.Equal(t, "jdoe", payload.Username)
	assert.Equal(t, []string{entity.RoleManager}, payload.Roles)
}

func TestRequireRole_BastaConUnoDeVariosRoles(t *testing.T) {
	app := buildTestApp()

	resp, _ := doRequest(t, app, "Bearer "+tokenForRoles(t, entity.RoleCustomer, entity.RoleAdmin))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
