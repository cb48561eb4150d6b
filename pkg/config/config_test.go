package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SOURCE_PAGE_URL", "")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("MAX_PAGES", "")
	t.Setenv("HEADLESS", "")
	t.Setenv("DEDUPE", "")

	cfg := Load()
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 50, cfg.MaxPaginas)
	assert.True(t, cfg.Headless)
	assert.False(t, cfg.Dedupe)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "salida")
	t.Setenv("MAX_PAGES", "7")
	t.Setenv("HEADLESS", "false")
	t.Setenv("DEDUPE", "sí")

	cfg := Load()
	assert.Equal(t, "salida", cfg.OutputDir)
	assert.Equal(t, 7, cfg.MaxPaginas)
	assert.False(t, cfg.Headless)
	assert.True(t, cfg.Dedupe)
}

func TestMaxPagesInvalidoUsaDefault(t *testing.T) {
	t.Setenv("MAX_PAGES", "-3")
	assert.Equal(t, 50, Load().MaxPaginas)

	t.Setenv("MAX_PAGES", "abc")
	assert.Equal(t, 50, Load().MaxPaginas)
}

func TestRequiereFuente(t *testing.T) {
	t.Setenv("SOURCE_PAGE_URL", "")
	t.Setenv("SOURCE_USERNAME", "")
	t.Setenv("SOURCE_PASSWORD", "secreto")

	err := Load().RequiereFuente()
	require.Error(t, err)
	// nombra todas las faltantes, en orden estable
	assert.Contains(t, err.Error(), "SOURCE_PAGE_URL, SOURCE_USERNAME")
	assert.NotContains(t, err.Error(), "SOURCE_PASSWORD")
}

func TestRequiereDestinoCompleto(t *testing.T) {
	t.Setenv("TARGET_PAGE_LOGIN_URL", "https://destino/login")
	t.Setenv("TARGET_USERNAME", "u")
	t.Setenv("TARGET_PASSWORD", "p")
	t.Setenv("TARGET_PAGE_ADD_CLIENT_URL", "https://destino/alta")

	assert.NoError(t, Load().RequiereDestino())
}

func TestRutaSalida(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "salida")
	cfg := Load()
	assert.Equal(t, filepath.Join("salida", "clients.json"), cfg.RutaSalida("clients.json"))
}
