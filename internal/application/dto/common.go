package dto

// ErrorResponse cuerpo de error HTTP. Los errores internos solo llevan success=false.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse confirmación simple.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// CountResponse salida de endpoints de conteo.
type CountResponse struct {
	Count int `json:"count"`
}
