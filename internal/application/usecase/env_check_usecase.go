package usecase

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
)

// EnvCheckInput vista de la configuración que interesa revisar (sin exponer valores).
type EnvCheckInput struct {
	AdminPassword     string
	AdminPasswordHash string
	SessionSecret     string
	DataDir           string
	SiteBaseURL       string
}

// EnvCheckUseCase diagnostica la configuración en desarrollo.
type EnvCheckUseCase struct {
	in         EnvCheckInput
	products   FileProbe
	categories FileProbe
}

// NewEnvCheckUseCase construye el caso de uso.
func NewEnvCheckUseCase(in EnvCheckInput, products, categories FileProbe) *EnvCheckUseCase {
	return &EnvCheckUseCase{in: in, products: products, categories: categories}
}

// Check devuelve los indicadores y si la configuración permite operar el panel.
func (uc *EnvCheckUseCase) Check() dto.EnvCheckResponse {
	flags := dto.EnvCheckFlags{
		AdminSecretSet:       uc.in.AdminPassword != "" || uc.in.AdminPasswordHash != "",
		AdminHashMode:        uc.in.AdminPasswordHash != "",
		SessionSecretSet:     uc.in.SessionSecret != "",
		DataDirWritable:      dirWritable(uc.in.DataDir),
		ProductsFileExists:   uc.products.Exists(),
		CategoriesFileExists: uc.categories.Exists(),
		SiteBaseURLSet:       uc.in.SiteBaseURL != "",
	}

	var missing []string
	if !flags.AdminSecretSet {
		missing = append(missing, "ADMIN_PASSWORD o ADMIN_PASSWORD_HASH")
	}
	if !flags.SessionSecretSet {
		missing = append(missing, "SESSION_SECRET")
	}
	if !flags.DataDirWritable {
		missing = append(missing, "DATA_DIR con permisos de escritura")
	}
	if len(missing) > 0 {
		return dto.EnvCheckResponse{Valid: false, Error: "falta configurar: " + strings.Join(missing, ", ")}
	}
	return dto.EnvCheckResponse{Valid: true, Config: &flags}
}

// dirWritable intenta crear (y borrar) un archivo temporal en dir.
func dirWritable(dir string) bool {
	if dir == "" {
		return false
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false
	}
	f, err := os.CreateTemp(dir, ".envcheck-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	_ = os.Remove(filepath.Clean(name))
	return true
}
