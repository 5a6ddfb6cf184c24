package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/catalogo-industrial/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ClaveCorrecta(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-store, max-age=0", resp.Header.Get(fiber.HeaderCacheControl))

	c := sessionCookie(resp)
	require.NotNil(t, c)
	assert.NotEmpty(t, c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "/", c.Path)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, map[string]any{"success": true}, body)
}

func TestLogin_ClaveIncorrecta(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"distinta", "otra-clave"},
		{"vacía", ""},
		{"prefijo", testPassword[:5]},
		{"con espacio", testPassword + " "},
		{"mayúsculas", strings.ToUpper(testPassword)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := buildTestApp(t)

			resp := env.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": tt.password})
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "no-store, max-age=0", resp.Header.Get(fiber.HeaderCacheControl))
			assert.Nil(t, sessionCookie(resp))

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"success":false}`, string(raw))
		})
	}
}

func TestLogin_SinSecretoConfiguradoSiempreFalla(t *testing.T) {
	env := buildTestApp(t, withPassword(""))

	for _, p := range []string{"", "cualquier-cosa"} {
		resp := env.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": p})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestLogin_CuerpoInvalido(t *testing.T) {
	env := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader("{password:"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_SinSecretoDeSesionRespondeQuinientos(t *testing.T) {
	env := buildTestApp(t, withSessionSecret(""))

	resp := env.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": testPassword})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "no-store, max-age=0", resp.Header.Get(fiber.HeaderCacheControl))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false}`, string(raw))
}

func TestLogin_GetNoPermitido(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodGet, "/api/admin/login", nil)
	assert.NotEqual(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión y RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAdmin_SinSesion(t *testing.T) {
	env := buildTestApp(t)

	for _, path := range []string{"/api/admin/session", "/api/admin/products", "/api/admin/categories"} {
		resp := env.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		assert.Equal(t, "no-store, max-age=0", resp.Header.Get(fiber.HeaderCacheControl), path)
	}
}

func TestRequireAdmin_ConCookie(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.login(t)

	resp := env.do(t, http.MethodGet, "/api/admin/session", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success   bool   `json:"success"`
		ExpiresAt string `json:"expires_at"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.ExpiresAt)
}

func TestRequireAdmin_ConBearer(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.login(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/session", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+cookie.Value)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin_TokenInvalido(t *testing.T) {
	env := buildTestApp(t)

	otherSecret, _, err := pkgjwt.Generate("otro-secreto", pkgjwt.SubjectAdmin, "", testIssuer, 60)
	require.NoError(t, err)
	otherIssuer, _, err := pkgjwt.Generate(testSessionSecret, pkgjwt.SubjectAdmin, "", "otro-emisor", 60)
	require.NoError(t, err)
	otherSubject, _, err := pkgjwt.Generate(testSessionSecret, "usuario", "", testIssuer, 60)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"basura":       "no-es-un-jwt",
		"otro secreto": otherSecret,
		"otro emisor":  otherIssuer,
		"otro subject": otherSubject,
	} {
		t.Run(name, func(t *testing.T) {
			resp := env.do(t, http.MethodGet, "/api/admin/session", nil,
				&http.Cookie{Name: "admin_session", Value: token})
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestRequireAdmin_TokenExpirado(t *testing.T) {
	env := buildTestApp(t)

	expired, _, err := pkgjwt.Generate(testSessionSecret, pkgjwt.SubjectAdmin, "", testIssuer, -1)
	require.NoError(t, err)

	resp := env.do(t, http.MethodGet, "/api/admin/session", nil,
		&http.Cookie{Name: "admin_session", Value: expired})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogout_ExpiraCookie(t *testing.T) {
	env := buildTestApp(t)
	env.login(t)

	resp := env.do(t, http.MethodPost, "/api/admin/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	c := sessionCookie(resp)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
	assert.True(t, c.Expires.Before(time.Now()))
}
