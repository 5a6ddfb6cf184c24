// Package filestore implementa la persistencia en archivos JSON planos.
//
// Cada archivo guarda un arreglo completo que se reescribe en cada guardado.
// Las escrituras y los ciclos leer-modificar-escribir se serializan con un mutex
// por archivo y reemplazan el archivo con rename atómico; las lecturas no toman
// el lock porque siempre ven el archivo anterior o el nuevo, nunca uno parcial.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-industrial/internal/domain"
)

// jsonFile arreglo JSON de T respaldado por un archivo.
type jsonFile[T any] struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

func newJSONFile[T any](path string, log zerolog.Logger) *jsonFile[T] {
	return &jsonFile[T]{
		path: path,
		log:  log.With().Str("file", path).Logger(),
	}
}

// load lectura estricta. Un archivo inexistente equivale a una colección vacía;
// un archivo ilegible o mal formado devuelve error.
func (f *jsonFile[T]) load() ([]T, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("filestore: leer %s: %w", f.path, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("filestore: parsear %s: %w: %v", f.path, domain.ErrCorruptData, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// loadOrEmpty lectura tolerante: cualquier fallo se registra y se devuelve vacío.
func (f *jsonFile[T]) loadOrEmpty() []T {
	items, err := f.load()
	if err != nil {
		f.log.Warn().Err(err).Msg("archivo de datos ilegible, se devuelve colección vacía")
		return []T{}
	}
	return items
}

// save reemplaza el archivo completo. Debe llamarse con f.mu tomado.
func (f *jsonFile[T]) save(ctx context.Context, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: serializar %s: %w", f.path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("filestore: crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("filestore: crear temporal: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("filestore: escribir %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("filestore: sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("filestore: cerrar %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("filestore: permisos %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		cleanup()
		return fmt.Errorf("filestore: reemplazar %s: %w", f.path, err)
	}
	f.log.Debug().Int("items", len(items)).Msg("archivo de datos guardado")
	return nil
}

// replace guarda la colección completa bajo el lock de escritura.
func (f *jsonFile[T]) replace(ctx context.Context, items []T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.save(ctx, items)
}

// update ciclo leer-modificar-escribir bajo el lock. Si fn falla no se escribe nada.
func (f *jsonFile[T]) update(ctx context.Context, fn func([]T) ([]T, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load()
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return f.save(ctx, next)
}

// exists informa si el archivo está presente en disco.
func (f *jsonFile[T]) exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}
