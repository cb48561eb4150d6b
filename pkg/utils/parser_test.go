package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimerTokenNumerico(t *testing.T) {
	assert.Equal(t, "2,229.58", PrimerTokenNumerico("$ 2,229.58 MXN"))
	assert.Equal(t, "85.5", PrimerTokenNumerico("85.5 m2"))
	assert.Equal(t, "", PrimerTokenNumerico("sin datos"))
	assert.Equal(t, "", PrimerTokenNumerico(""))
}

func TestNormalizarMonto(t *testing.T) {
	assert.Equal(t, "1000.00", NormalizarMonto("1,000.00"))
	assert.Equal(t, "20", NormalizarMonto("20%"))
	assert.Equal(t, "1234567.89", NormalizarMonto(" 1,234,567.89 "))
}

func TestSoloDigitos(t *testing.T) {
	assert.Equal(t, "9991234567", SoloDigitos("(999) 123-45-67"))
	assert.Equal(t, "", SoloDigitos("sin teléfono"))
}

func TestNormalizarClave(t *testing.T) {
	assert.Equal(t, "fecha_venta", NormalizarClave("Fecha Venta"))
	assert.Equal(t, "codigo_venta", NormalizarClave("Código Venta"))
	assert.Equal(t, "precio_m2", NormalizarClave("Precio m2"))
	assert.Equal(t, "enganche", NormalizarClave("Enganche %"))
}

func TestQuitarAcentos(t *testing.T) {
	assert.Equal(t, "Informacion del Credito", QuitarAcentos("Información del Crédito"))
	assert.Equal(t, "albanil", QuitarAcentos("albañil"))
}

func TestReformatearFecha(t *testing.T) {
	assert.Equal(t, "23-07-1985", ReformatearFecha("1985-07-23"))
	assert.Equal(t, "23/07/1985", ReformatearFecha("23/07/1985"))
	assert.Equal(t, "", ReformatearFecha(""))
}

func TestTieneMarcadorDeDatos(t *testing.T) {
	assert.True(t, TieneMarcadorDeDatos("Total: $1,000"))
	assert.True(t, TieneMarcadorDeDatos("Enganche 20%"))
	assert.True(t, TieneMarcadorDeDatos("fecha 2023-05-01"))
	assert.True(t, TieneMarcadorDeDatos("importe 1500.00"))
	assert.False(t, TieneMarcadorDeDatos("<div>Cargando...</div>"))
}
