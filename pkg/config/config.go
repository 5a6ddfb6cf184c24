package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Entornos reconocidos en APP_ENV.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Admin   AdminConfig
	Session SessionConfig
	Data    DataConfig
	Site    SiteConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env            string // development, staging, production
	Name           string
	LogLevel       string
	SwaggerEnabled bool
}

// IsDevelopment informa si la app corre en modo desarrollo.
func (c AppConfig) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins string // lista separada por comas para CORS
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AdminConfig secreto único del panel de administración.
// Si PasswordHash (bcrypt) está definido tiene prioridad sobre Password.
type AdminConfig struct {
	Password     string
	PasswordHash string
}

// HasSecret informa si hay algún secreto configurado.
func (c AdminConfig) HasSecret() bool {
	return c.Password != "" || c.PasswordHash != ""
}

// SessionConfig firma y duración de la sesión de admin (JWT en cookie).
type SessionConfig struct {
	Secret       string
	Expiration   int // minutos
	Issuer       string
	CookieSecure bool
}

// DataConfig ubicación de los archivos JSON.
type DataConfig struct {
	Dir            string
	ProductsFile   string
	CategoriesFile string
}

// ProductsPath ruta completa del archivo de productos.
func (c DataConfig) ProductsPath() string {
	return filepath.Join(c.Dir, c.ProductsFile)
}

// CategoriesPath ruta completa del archivo de categorías.
func (c DataConfig) CategoriesPath() string {
	return filepath.Join(c.Dir, c.CategoriesFile)
}

// SiteConfig datos públicos del sitio (sitemap, catálogo PDF).
type SiteConfig struct {
	BaseURL     string
	CompanyName string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, ADMIN_PASSWORD, SESSION_SECRET, DATA_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Sin APP_ENV se asume producción: el modo desarrollo debe pedirse explícitamente.
	env := getString(v, "APP_ENV", EnvProduction)

	cfg := &Config{
		App: AppConfig{
			Env:            env,
			Name:           getString(v, "APP_NAME", "catalogo-industrial"),
			LogLevel:       getString(v, "LOG_LEVEL", "info"),
			SwaggerEnabled: getBool(v, "SWAGGER_ENABLED", false),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "HTTP_PORT", 8080),
			AllowedOrigins: getString(v, "CORS_ALLOWED_ORIGINS", "*"),
		},
		Admin: AdminConfig{
			Password:     getString(v, "ADMIN_PASSWORD", ""),
			PasswordHash: getString(v, "ADMIN_PASSWORD_HASH", ""),
		},
		Session: SessionConfig{
			Secret:       getString(v, "SESSION_SECRET", ""),
			Expiration:   getInt(v, "SESSION_EXPIRATION_MINUTES", 480),
			Issuer:       getString(v, "SESSION_ISSUER", "catalogo-industrial"),
			CookieSecure: getBool(v, "SESSION_COOKIE_SECURE", env != EnvDevelopment), // localhost sin HTTPS
		},
		Data: DataConfig{
			Dir:            getString(v, "DATA_DIR", "./data"),
			ProductsFile:   getString(v, "PRODUCTS_FILE", "products.json"),
			CategoriesFile: getString(v, "CATEGORIES_FILE", "categories.json"),
		},
		Site: SiteConfig{
			BaseURL:     strings.TrimRight(getString(v, "SITE_BASE_URL", "http://localhost:8080"), "/"),
			CompanyName: getString(v, "SITE_COMPANY_NAME", "Equipos Industriales"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuración inválida: %w", err)
	}
	return cfg, nil
}

// Validate revisa combinaciones que impiden arrancar.
// En producción el secreto de admin y el de sesión son obligatorios.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT fuera de rango: %d", c.HTTP.Port)
	}
	if c.Data.Dir == "" || c.Data.ProductsFile == "" || c.Data.CategoriesFile == "" {
		return fmt.Errorf("DATA_DIR, PRODUCTS_FILE y CATEGORIES_FILE son requeridos")
	}
	if c.Data.ProductsPath() == c.Data.CategoriesPath() {
		return fmt.Errorf("PRODUCTS_FILE y CATEGORIES_FILE deben ser archivos distintos")
	}
	if c.Session.Expiration <= 0 {
		return fmt.Errorf("SESSION_EXPIRATION_MINUTES debe ser positivo")
	}
	if c.App.Env == EnvProduction {
		if !c.Admin.HasSecret() {
			return fmt.Errorf("ADMIN_PASSWORD o ADMIN_PASSWORD_HASH es requerido en producción")
		}
		if c.Session.Secret == "" {
			return fmt.Errorf("SESSION_SECRET es requerido en producción")
		}
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}
