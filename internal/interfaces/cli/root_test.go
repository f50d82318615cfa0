package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
)

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()
	assert.Equal(t, "cinestyle", root.Use)

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "match")
	assert.Contains(t, names, "blend")
	assert.Contains(t, names, "classify")
	assert.Contains(t, names, "directors")

	for _, flag := range []string{"catalog", "log-level", "output", "no-color"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestNewRuntime_BuiltinCatalog(t *testing.T) {
	rt, err := newRuntime(&RootOptions{LogLevel: "error"})
	require.NoError(t, err)
	assert.NotNil(t, rt.Matcher)
	assert.NotNil(t, rt.Blender)
	assert.Greater(t, rt.Provider.Current().Len(), 0)
}

func TestNewRuntime_MissingCatalogFile(t *testing.T) {
	_, err := newRuntime(&RootOptions{LogLevel: "error", CatalogPath: "/nonexistent/catalog.yaml"})
	assert.Error(t, err)
}

func TestVectorFromFlags(t *testing.T) {
	v, err := vectorFromFlags(8, 7, 6, 5, 4, -1, -1)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, v[style.AxisScale], 1e-9)
	_, hasPacing := v[style.AxisPacing]
	assert.False(t, hasPacing)

	// Display axes come through when non-negative.
	v, err = vectorFromFlags(8, 7, 6, 5, 4, 3, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v[style.AxisPacing], 1e-9)
	assert.InDelta(t, 2.0, v[style.AxisTexture], 1e-9)
}

func TestValidateOutput(t *testing.T) {
	assert.NoError(t, validateOutput("table"))
	assert.NoError(t, validateOutput("json"))
	assert.Error(t, validateOutput("yaml"))
}
