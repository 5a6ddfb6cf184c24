package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	// ErrCorruptData indica que un archivo de datos existe pero no se puede parsear.
	// Las escrituras se abortan para no reemplazarlo por una colección vacía.
	ErrCorruptData = errors.New("archivo de datos corrupto")
)
