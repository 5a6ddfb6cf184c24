package filestore_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-industrial/internal/domain"
	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
	"github.com/jhoicas/catalogo-industrial/internal/infrastructure/filestore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newStore(t *testing.T) (*filestore.ProductStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	return filestore.NewProductStore(path, zerolog.Nop()), path
}

func sampleProducts() []entity.Product {
	ts := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	return []entity.Product{
		{
			ID:          "p-1",
			Name:        "Compresor de tornillo 15 HP",
			Slug:        "compresor-de-tornillo-15-hp",
			Category:    "compresores",
			Description: "Compresor lubricado para operación continua.",
			Images:      []string{"/img/compresor-15.jpg"},
			Specs:       map[string]string{"Potencia": "15 HP", "Caudal": "58 CFM"},
			Featured:    true,
			CreatedAt:   ts,
			UpdatedAt:   ts,
		},
		{
			ID:        "p-2",
			Name:      "Planta eléctrica 60 kVA",
			Slug:      "planta-electrica-60-kva",
			Category:  "generadores",
			Images:    []string{},
			CreatedAt: ts,
			UpdatedAt: ts,
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura tolerante
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProducts_ArchivoInexistente_RetornaVacio(t *testing.T) {
	store, _ := newStore(t)

	got := store.GetProducts(context.Background())
	require.NotNil(t, got, "debe devolver slice vacío, no nil")
	assert.Empty(t, got)
}

func TestGetProducts_ArchivoMalFormado_RetornaVacio(t *testing.T) {
	cases := map[string]string{
		"json truncado":   `[{"id":"p-1","name":`,
		"objeto no lista": `{"id":"p-1"}`,
		"texto plano":     "no es json",
		"archivo vacío":   "",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			store, path := newStore(t)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			got := store.GetProducts(context.Background())
			require.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestGetProducts_JSONNull_RetornaVacio(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, os.WriteFile(path, []byte("null"), 0o644))

	got := store.GetProducts(context.Background())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardado
// ──────────────────────────────────────────────────────────────────────────────

func TestSaveProducts_RoundTrip(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	want := sampleProducts()

	require.NoError(t, store.SaveProducts(ctx, want))
	assert.Equal(t, want, store.GetProducts(ctx))
	assert.True(t, store.Exists())
}

func TestSaveProducts_RoundTripPrecioReferencia(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	price := decimal.RequireFromString("18500000.50")
	in := sampleProducts()[:1]
	in[0].ReferencePrice = &price

	require.NoError(t, store.SaveProducts(ctx, in))
	got := store.GetProducts(ctx)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].ReferencePrice)
	assert.True(t, price.Equal(*got[0].ReferencePrice), "precio %s != %s", got[0].ReferencePrice, price)
}

func TestSaveProducts_SobrescribeCompleto(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveProducts(ctx, sampleProducts()))
	require.NoError(t, store.SaveProducts(ctx, sampleProducts()[1:]))

	got := store.GetProducts(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "p-2", got[0].ID)
}

func TestSaveProducts_NilEscribeArregloVacio(t *testing.T) {
	store, path := newStore(t)

	require.NoError(t, store.SaveProducts(context.Background(), nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestSaveProducts_CreaDirectorio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anidado", "datos", "products.json")
	store := filestore.NewProductStore(path, zerolog.Nop())

	require.NoError(t, store.SaveProducts(context.Background(), sampleProducts()))
	assert.FileExists(t, path)
}

func TestSaveProducts_FalloDeEscrituraSePropaga(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "no-es-directorio")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	store := filestore.NewProductStore(filepath.Join(blocker, "products.json"), zerolog.Nop())
	err := store.SaveProducts(context.Background(), sampleProducts())
	assert.Error(t, err, "no se puede crear un archivo dentro de otro archivo")
}

func TestSaveProducts_ContextoCancelado(t *testing.T) {
	store, path := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.SaveProducts(ctx, sampleProducts())
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}

func TestSaveProducts_NoDejaTemporales(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, store.SaveProducts(context.Background(), sampleProducts()))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "products.json", entries[0].Name())
}

// ──────────────────────────────────────────────────────────────────────────────
// Leer-modificar-escribir
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProducts_ArchivoCorruptoNoSeSobrescribe(t *testing.T) {
	store, path := newStore(t)
	corrupt := []byte(`[{"id":"p-1",`)
	require.NoError(t, os.WriteFile(path, corrupt, 0o644))

	err := store.UpdateProducts(context.Background(), func(in []entity.Product) ([]entity.Product, error) {
		return append(in, entity.Product{ID: "nuevo"}), nil
	})
	assert.ErrorIs(t, err, domain.ErrCorruptData)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, corrupt, data, "el archivo corrupto debe quedar intacto")
}

func TestUpdateProducts_ErrorDeMutacionNoEscribe(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveProducts(ctx, sampleProducts()))

	boom := errors.New("boom")
	err := store.UpdateProducts(ctx, func(in []entity.Product) ([]entity.Product, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, sampleProducts(), store.GetProducts(ctx))
}

func TestUpdateProducts_ArchivoInexistenteEmpiezaVacio(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	seen := -1
	err := store.UpdateProducts(ctx, func(in []entity.Product) ([]entity.Product, error) {
		seen = len(in)
		return append(in, sampleProducts()[0]), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, seen)
	assert.Len(t, store.GetProducts(ctx), 1)
}

// Sin el lock de escritura, las actualizaciones concurrentes pierden datos (last-write-wins).
func TestUpdateProducts_ConcurrenteNoPierdeEscrituras(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	const writers = 40

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := store.UpdateProducts(ctx, func(in []entity.Product) ([]entity.Product, error) {
				return append(in, entity.Product{ID: fmt.Sprintf("p-%02d", i), Name: "equipo"}), nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got := store.GetProducts(ctx)
	require.Len(t, got, writers)
	ids := make(map[string]bool, writers)
	for _, p := range got {
		ids[p.ID] = true
	}
	assert.Len(t, ids, writers, "cada escritor debe dejar su producto")
}

func TestGetProducts_LecturasDuranteEscriturasNuncaParciales(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveProducts(ctx, sampleProducts()))

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 30; i++ {
			_ = store.SaveProducts(ctx, sampleProducts())
		}
		close(stop)
	}()

	for {
		select {
		case <-stop:
			wg.Wait()
			return
		default:
			got := store.GetProducts(ctx)
			assert.Len(t, got, 2, "un lector nunca debe ver un archivo a medio escribir")
		}
	}
}
