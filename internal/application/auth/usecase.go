package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-industrial/internal/domain"
	"github.com/jhoicas/catalogo-industrial/pkg/jwt"
)

// bcrypt ignora lo que exceda 72 bytes; se rechaza para conservar la igualdad exacta.
const maxBcryptPasswordLen = 72

// maxUserAgentLen limita lo que se guarda del user-agent en la sesión y en los logs.
const maxUserAgentLen = 256

// GateConfig secreto del panel y parámetros de la sesión.
// Si PasswordHash (bcrypt) no está vacío se usa en lugar de Password.
type GateConfig struct {
	Password       string
	PasswordHash   string
	SessionSecret  string
	SessionIssuer  string
	SessionMinutes int
}

// AdminGate valida el secreto único del panel y emite/verifica la sesión.
type AdminGate struct {
	cfg GateConfig
	log zerolog.Logger
}

// NewAdminGate construye el gate. La configuración se pasa explícitamente desde main.
func NewAdminGate(cfg GateConfig, log zerolog.Logger) *AdminGate {
	return &AdminGate{cfg: cfg, log: log.With().Str("component", "admin_gate").Logger()}
}

// LoginAdmin devuelve true si y solo si password coincide exactamente con el secreto configurado.
// Sin secreto configurado todo intento falla. userAgentHint solo se usa para el log.
func (g *AdminGate) LoginAdmin(password, userAgentHint string) bool {
	ok := g.matches(password)
	ev := g.log.Info()
	if !ok {
		ev = g.log.Warn()
	}
	ev.Bool("success", ok).Str("user_agent", truncate(userAgentHint, maxUserAgentLen)).Msg("intento de login admin")
	return ok
}

func (g *AdminGate) matches(password string) bool {
	if g.cfg.PasswordHash != "" {
		if len(password) > maxBcryptPasswordLen {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(g.cfg.PasswordHash), []byte(password)) == nil
	}
	if g.cfg.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(g.cfg.Password)) == 1
}

// IssueSession firma una sesión nueva para el admin.
func (g *AdminGate) IssueSession(userAgentHint string) (string, time.Time, error) {
	token, exp, err := jwt.Generate(
		g.cfg.SessionSecret,
		jwt.SubjectAdmin,
		truncate(userAgentHint, maxUserAgentLen),
		g.cfg.SessionIssuer,
		g.cfg.SessionMinutes,
	)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("auth: emitir sesión: %w", err)
	}
	return token, exp, nil
}

// ValidateSession verifica firma, expiración, emisor y sujeto.
// Devuelve la expiración o domain.ErrUnauthorized.
func (g *AdminGate) ValidateSession(token string) (time.Time, error) {
	if token == "" {
		return time.Time{}, domain.ErrUnauthorized
	}
	claims, err := jwt.Parse(g.cfg.SessionSecret, token)
	if err != nil {
		return time.Time{}, domain.ErrUnauthorized
	}
	if claims.Subject != jwt.SubjectAdmin || claims.Issuer != g.cfg.SessionIssuer || claims.ExpiresAt == nil {
		return time.Time{}, domain.ErrUnauthorized
	}
	return claims.ExpiresAt.Time, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
