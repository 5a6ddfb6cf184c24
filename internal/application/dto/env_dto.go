package dto

// EnvCheckFlags indicadores booleanos de la configuración (nunca los valores).
type EnvCheckFlags struct {
	AdminSecretSet       bool `json:"admin_secret_set"`
	AdminHashMode        bool `json:"admin_hash_mode"`
	SessionSecretSet     bool `json:"session_secret_set"`
	DataDirWritable      bool `json:"data_dir_writable"`
	ProductsFileExists   bool `json:"products_file_exists"`
	CategoriesFileExists bool `json:"categories_file_exists"`
	SiteBaseURLSet       bool `json:"site_base_url_set"`
}

// EnvCheckResponse salida de GET /api/env-check.
type EnvCheckResponse struct {
	Valid  bool           `json:"valid"`
	Config *EnvCheckFlags `json:"config,omitempty"`
	Error  string         `json:"error,omitempty"`
}
