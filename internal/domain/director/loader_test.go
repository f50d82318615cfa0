package director

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
	"github.com/turtacn/CineStyle-Engine/internal/infrastructure/monitoring/logging"
	pkgerrors "github.com/turtacn/CineStyle-Engine/pkg/errors"
)

const testCatalogYAML = `directors:
  - id: kurosawa-a
    name: Akira Kurosawa
    cluster: classicist
    known_for: [Drama, Action]
    visual_mandate: "Weather as dramatic force."
    vector:
      scale: 8
      spectacle: 7
      structure: 3
      genreFluidity: 4
      emotion: 7
  - id: varda-a
    name: Agnès Varda
    cluster: humanist
    known_for: [Documentary, Drama]
    vector:
      scale: 2
      spectacle: 2
      structure: 8
      genreFluidity: 8
      emotion: 6
      pacing: 4
`

func writeCatalog(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalogFile(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), testCatalogYAML)

	cat, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	p, err := cat.ByID("kurosawa-a")
	require.NoError(t, err)
	assert.Equal(t, ClusterClassicist, p.Cluster)
	assert.Equal(t, 8.0, p.Vector[style.AxisScale])
	assert.Equal(t, []string{"Drama", "Action"}, p.KnownFor)

	// File order is declaration order.
	var order []string
	cat.Each(func(_ int, p Profile) bool {
		order = append(order, p.ID)
		return true
	})
	assert.Equal(t, []string{"kurosawa-a", "varda-a"}, order)
}

func TestLoadCatalogFile_OptionalDisplayAxis(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), testCatalogYAML)
	cat, err := LoadCatalogFile(path)
	require.NoError(t, err)

	p, err := cat.ByID("varda-a")
	require.NoError(t, err)
	assert.Equal(t, 4.0, p.Vector[style.AxisPacing])
}

func TestLoadCatalogFile_Missing(t *testing.T) {
	_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.ErrCodeCatalogInvalid))
}

func TestLoadCatalogFile_BadCluster(t *testing.T) {
	bad := `directors:
  - id: x
    name: X
    cluster: auteur
    vector: {scale: 1, spectacle: 1, structure: 1, genreFluidity: 1, emotion: 1}
`
	path := writeCatalog(t, t.TempDir(), bad)
	_, err := LoadCatalogFile(path)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.ErrCodeCatalogInvalid))
}

func TestLoadCatalogFile_MissingAxis(t *testing.T) {
	bad := `directors:
  - id: x
    name: X
    cluster: humanist
    vector: {scale: 1, spectacle: 1, structure: 1, genreFluidity: 1}
`
	path := writeCatalog(t, t.TempDir(), bad)
	_, err := LoadCatalogFile(path)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.ErrCodeCatalogInvalid))
}

func TestProvider_Swap(t *testing.T) {
	first, err := NewCatalog([]Profile{fixtureProfile("a")})
	require.NoError(t, err)
	second, err := NewCatalog([]Profile{fixtureProfile("b")})
	require.NoError(t, err)

	prov := NewProvider(first)
	assert.Equal(t, first, prov.Current())

	prov.Swap(second)
	assert.Equal(t, second, prov.Current())

	prov.Swap(nil)
	assert.Equal(t, second, prov.Current())
}

func TestWatchCatalogFile_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, testCatalogYAML)

	initial, err := LoadCatalogFile(path)
	require.NoError(t, err)
	prov := NewProvider(initial)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, WatchCatalogFile(ctx, path, prov, logging.NewNopLogger()))

	// Replace the file with a single-director catalog.
	single := `directors:
  - id: solo-d
    name: Solo Director
    cluster: minimalist
    vector: {scale: 1, spectacle: 1, structure: 1, genreFluidity: 1, emotion: 1}
`
	require.NoError(t, os.WriteFile(path, []byte(single), 0o644))

	assert.Eventually(t, func() bool {
		return prov.Current().Len() == 1
	}, 3*time.Second, 20*time.Millisecond)
}

func TestWatchCatalogFile_KeepsPreviousOnBrokenEdit(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, testCatalogYAML)

	initial, err := LoadCatalogFile(path)
	require.NoError(t, err)
	prov := NewProvider(initial)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, WatchCatalogFile(ctx, path, prov, logging.NewNopLogger()))

	require.NoError(t, os.WriteFile(path, []byte("directors: [not: valid"), 0o644))

	// Give the watcher a moment; the catalog must remain the valid one.
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, 2, prov.Current().Len())
}
