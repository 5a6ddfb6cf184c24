package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-industrial/internal/application/auth"
	"github.com/jhoicas/catalogo-industrial/internal/domain"
	pkgjwt "github.com/jhoicas/catalogo-industrial/pkg/jwt"
)

const (
	testPassword      = "Compresor#2025"
	testSessionSecret = "test-session-secret"
	testIssuer        = "catalogo-industrial-test"
	testUA            = "Mozilla/5.0 (X11; Linux x86_64)"
)

func newGate(cfg auth.GateConfig) *auth.AdminGate {
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = testSessionSecret
	}
	if cfg.SessionIssuer == "" {
		cfg.SessionIssuer = testIssuer
	}
	if cfg.SessionMinutes == 0 {
		cfg.SessionMinutes = 60
	}
	return auth.NewAdminGate(cfg, zerolog.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// LoginAdmin: igualdad exacta con el secreto
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginAdmin_SecretoPlano(t *testing.T) {
	gate := newGate(auth.GateConfig{Password: testPassword})

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"exacto", testPassword, true},
		{"vacío", "", false},
		{"mayúsculas distintas", strings.ToLower(testPassword), false},
		{"espacio al final", testPassword + " ", false},
		{"espacio al inicio", " " + testPassword, false},
		{"prefijo", testPassword[:5], false},
		{"sufijo extra", testPassword + "x", false},
		{"otro", "admin", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.LoginAdmin(tt.password, testUA))
		})
	}
}

func TestLoginAdmin_SinSecretoConfigurado_SiempreFalla(t *testing.T) {
	gate := newGate(auth.GateConfig{})

	assert.False(t, gate.LoginAdmin("", testUA), "sin secreto no debe aceptar la cadena vacía")
	assert.False(t, gate.LoginAdmin("cualquiera", testUA))
}

func TestLoginAdmin_ModoHashBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	// El hash tiene prioridad: el secreto plano no debe aceptarse.
	gate := newGate(auth.GateConfig{Password: "plano-ignorado", PasswordHash: string(hash)})

	assert.True(t, gate.LoginAdmin(testPassword, testUA))
	assert.False(t, gate.LoginAdmin("plano-ignorado", testUA))
	assert.False(t, gate.LoginAdmin(testPassword+"!", testUA))
}

func TestLoginAdmin_ModoHash_RechazaMasDe72Bytes(t *testing.T) {
	long := strings.Repeat("a", 72)
	hash, err := bcrypt.GenerateFromPassword([]byte(long), bcrypt.MinCost)
	require.NoError(t, err)
	gate := newGate(auth.GateConfig{PasswordHash: string(hash)})

	assert.True(t, gate.LoginAdmin(long, testUA))
	assert.False(t, gate.LoginAdmin(long+"b", testUA), "bcrypt truncaría; la igualdad exacta exige rechazarlo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_IssueYValidate(t *testing.T) {
	gate := newGate(auth.GateConfig{Password: testPassword})

	token, exp, err := gate.IssueSession(testUA)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := gate.ValidateSession(token)
	require.NoError(t, err)
	assert.WithinDuration(t, exp, got, time.Second)

	claims, err := pkgjwt.Parse(testSessionSecret, token)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.SubjectAdmin, claims.Subject)
	assert.Equal(t, testUA, claims.UserAgent)
}

func TestSession_SinSecretoDeSesion_Error(t *testing.T) {
	gate := auth.NewAdminGate(auth.GateConfig{Password: testPassword, SessionMinutes: 60}, zerolog.Nop())

	_, _, err := gate.IssueSession(testUA)
	assert.Error(t, err)
}

func TestValidateSession_Invalidos(t *testing.T) {
	gate := newGate(auth.GateConfig{Password: testPassword})

	expired, _, err := pkgjwt.Generate(testSessionSecret, pkgjwt.SubjectAdmin, testUA, testIssuer, -1)
	require.NoError(t, err)
	otherSecret, _, err := pkgjwt.Generate("otro-secret", pkgjwt.SubjectAdmin, testUA, testIssuer, 60)
	require.NoError(t, err)
	otherIssuer, _, err := pkgjwt.Generate(testSessionSecret, pkgjwt.SubjectAdmin, testUA, "otro-emisor", 60)
	require.NoError(t, err)
	otherSubject, _, err := pkgjwt.Generate(testSessionSecret, "visitante", testUA, testIssuer, 60)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"vacío":        "",
		"basura":       "no.es.jwt",
		"expirado":     expired,
		"otro secreto": otherSecret,
		"otro emisor":  otherIssuer,
		"otro sujeto":  otherSubject,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := gate.ValidateSession(token)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestIssueSession_TruncaUserAgent(t *testing.T) {
	gate := newGate(auth.GateConfig{Password: testPassword})

	token, _, err := gate.IssueSession(strings.Repeat("x", 1000))
	require.NoError(t, err)
	claims, err := pkgjwt.Parse(testSessionSecret, token)
	require.NoError(t, err)
	assert.Len(t, claims.UserAgent, 256)
}
