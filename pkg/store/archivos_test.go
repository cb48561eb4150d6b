package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Casado7/migration-script/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCargarCotizacionesArreglo(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "rows_info.json")
	contenido := `[
		{"info_credito": {"desarrollo": "Los Pinos", "unidad": "L-12"},
		 "amortizacion": [{"no": "1", "monto": "1000.00", "tipo": "Enganche"}]},
		{"info_credito": {"desarrollo": "Las Lomas", "unidad": "L-03"}, "amortizacion": []}
	]`
	require.NoError(t, os.WriteFile(ruta, []byte(contenido), 0o644))

	cotizaciones, err := CargarCotizaciones(ruta)
	require.NoError(t, err)
	require.Len(t, cotizaciones, 2)
	assert.Equal(t, "L-12", cotizaciones[0].InfoCredito.Unidad)
	assert.Equal(t, "Enganche", cotizaciones[0].Amortizacion[0].Tipo)
}

func TestCargarCotizacionesObjetoUnico(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "rows_info.json")
	contenido := `{"info_credito": {"desarrollo": "Los Pinos"}, "amortizacion": []}`
	require.NoError(t, os.WriteFile(ruta, []byte(contenido), 0o644))

	cotizaciones, err := CargarCotizaciones(ruta)
	require.NoError(t, err)
	require.Len(t, cotizaciones, 1)
	assert.Equal(t, "Los Pinos", cotizaciones[0].InfoCredito.Desarrollo)
}

func TestTransformadosRoundTrip(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "converted_clients.json")
	clientes := []models.ClienteTransformado{
		{Name: "Juan", LastName: "Perez", CodigoVenta: "V-001"},
	}
	require.NoError(t, GuardarTransformados(ruta, clientes))

	releidos, err := CargarTransformados(ruta)
	require.NoError(t, err)
	assert.Equal(t, clientes, releidos)
}

func TestGuardarDiagnosticoVacioNoEscribe(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "skip_rows_debug.json")
	require.NoError(t, GuardarDiagnostico(ruta, nil))
	_, err := os.Stat(ruta)
	assert.True(t, os.IsNotExist(err))
}

func TestGuardarDiagnostico(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "skip_rows_debug.json")
	omitidas := []models.FilaOmitida{{RowIndex: 3, Pagina: 2, Reason: "fila sin celdas parseables"}}
	require.NoError(t, GuardarDiagnostico(ruta, omitidas))

	data, err := os.ReadFile(ruta)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fila sin celdas parseables")
}
