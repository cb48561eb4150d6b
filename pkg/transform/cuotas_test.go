package transform

import (
	"testing"

	"github.com/Casado7/migration-script/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstruirCuotas(t *testing.T) {
	amortizacion := []models.FilaAmortizacion{
		{No: "1", MontoRaw: "1,000.00", Monto: "1000.00", Tipo: "Enganche"},
		{No: "2", MontoRaw: "500.00", Monto: "500.00", Tipo: "Mensualidad"},
		{No: "3", MontoRaw: "500.00", Monto: "500.00", Tipo: "Mensualidad"},
	}

	cuotas := ConstruirCuotas(amortizacion)
	require.Len(t, cuotas, 3)

	assert.Equal(t, models.Cuota{Tipo: "Enganche", Concepto: "Enganche", Monto: "1000.00"}, cuotas[0])
	assert.Equal(t, models.Cuota{Tipo: "Mensualidad", Concepto: "Mensualidad 1", Monto: "500.00"}, cuotas[1])
	assert.Equal(t, models.Cuota{Tipo: "Mensualidad", Concepto: "Mensualidad 2", Monto: "500.00"}, cuotas[2])
}

func TestConstruirCuotasNormalizaMontoCrudo(t *testing.T) {
	// sin Monto precalculado el crudo se limpia aquí
	cuotas := ConstruirCuotas([]models.FilaAmortizacion{
		{MontoRaw: "2,229.58", Tipo: "mensualidad"},
	})
	require.Len(t, cuotas, 1)
	assert.Equal(t, "Mensualidad 1", cuotas[0].Concepto)
	assert.Equal(t, "2229.58", cuotas[0].Monto)
}

func TestConstruirCuotasVacia(t *testing.T) {
	assert.Empty(t, ConstruirCuotas(nil))
}
