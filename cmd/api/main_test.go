package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerAvailable(t *testing.T) {
	dir := t.TempDir()

	t.Run("archivo ausente no registra el middleware", func(t *testing.T) {
		assert.False(t, swaggerAvailable(filepath.Join(dir, "swagger.json")))
	})

	t.Run("un directorio no sirve como swagger.json", func(t *testing.T) {
		assert.False(t, swaggerAvailable(dir))
	})

	t.Run("archivo presente habilita la UI", func(t *testing.T) {
		path := filepath.Join(dir, "swagger.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
		assert.True(t, swaggerAvailable(path))
	})
}

// El swagger.json generado debe acompañar al binario: sin él la UI de docs
// queda deshabilitada en cada despliegue.
func TestSwaggerJSONEstaVersionado(t *testing.T) {
	_, err := os.Stat(filepath.Join("..", "..", "docs", "swagger.json"))
	assert.NoError(t, err)
}
