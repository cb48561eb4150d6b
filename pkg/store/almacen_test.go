package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Casado7/migration-script/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entradaDePrueba(codigo string) models.EntradaCliente {
	return models.EntradaCliente{
		Row:     models.FilaCruda{"cliente": "Juan Perez", "codigo_venta": codigo},
		Cliente: models.Cliente{Name: "Juan Perez", CodigoVenta: codigo},
		InfoCredito: models.InfoCredito{
			Desarrollo: "Los Pinos",
			Enganche:   "$ 285,000.00",
		},
	}
}

func TestAlmacenRoundTrip(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "clients.json")

	almacen, err := AbrirAlmacen(ruta)
	require.NoError(t, err)
	require.Empty(t, almacen.Entradas())

	require.NoError(t, almacen.Agregar(entradaDePrueba("V-001")))
	require.NoError(t, almacen.Agregar(entradaDePrueba("V-002")))

	// cada Agregar reescribe el archivo: una instancia nueva ve todo
	releido, err := AbrirAlmacen(ruta)
	require.NoError(t, err)
	require.Len(t, releido.Entradas(), 2)
	assert.Equal(t, "V-001", releido.Entradas()[0].Cliente.CodigoVenta)
	assert.Equal(t, "Los Pinos", releido.Entradas()[1].InfoCredito.Desarrollo)

	assert.True(t, releido.Contiene("V-001"))
	assert.False(t, releido.Contiene("V-999"))
	assert.False(t, releido.Contiene(""))
}

func TestAlmacenSinDedupeConservaDuplicados(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "clients.json")
	almacen, err := AbrirAlmacen(ruta)
	require.NoError(t, err)

	require.NoError(t, almacen.Agregar(entradaDePrueba("V-001")))
	require.NoError(t, almacen.Agregar(entradaDePrueba("V-001")))
	assert.Len(t, almacen.Entradas(), 2)
}

func TestAlmacenDedupeReemplaza(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "clients.json")
	almacen, err := AbrirAlmacen(ruta)
	require.NoError(t, err)
	almacen.Dedupe = true

	require.NoError(t, almacen.Agregar(entradaDePrueba("V-001")))

	otra := entradaDePrueba("V-001")
	otra.Cliente.Name = "Juan Actualizado"
	require.NoError(t, almacen.Agregar(otra))

	require.Len(t, almacen.Entradas(), 1)
	assert.Equal(t, "Juan Actualizado", almacen.Entradas()[0].Cliente.Name)
}

func TestAlmacenCargaFormasLegadas(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "clients.json")
	legado := `[
		{"name": "Cliente Viejo", "codigo_venta": "V-100"},
		{"row_html": "<td>1</td><td>Sur</td><td>Pedro</td><td>Ana Ruiz</td>", "cliente": {"name": "Ana Ruiz", "codigo_venta": "V-101"}},
		{"row": {"cliente": "Luis Mora", "codigo_venta": "V-102"}, "cliente": {"name": "Luis Mora", "codigo_venta": "V-102"}, "info_credito": {"desarrollo": "Las Lomas"}}
	]`
	require.NoError(t, os.WriteFile(ruta, []byte(legado), 0o644))

	almacen, err := AbrirAlmacen(ruta)
	require.NoError(t, err)
	require.Len(t, almacen.Entradas(), 3)

	// forma 1: el cliente a secas
	assert.Equal(t, "Cliente Viejo", almacen.Entradas()[0].Cliente.Name)
	assert.NotNil(t, almacen.Entradas()[0].Row)

	// forma 2: row_html re-parseado a columnas canónicas
	assert.Equal(t, "Ana Ruiz", almacen.Entradas()[1].Cliente.Name)
	assert.Equal(t, "Ana Ruiz", almacen.Entradas()[1].Row["cliente"])
	assert.Equal(t, "Sur", almacen.Entradas()[1].Row["sucursal"])

	// forma 3: la actual, intacta
	assert.Equal(t, "Las Lomas", almacen.Entradas()[2].InfoCredito.Desarrollo)

	// reescribir normaliza el archivo a la forma actual
	require.NoError(t, almacen.Guardar())
	releido, err := AbrirAlmacen(ruta)
	require.NoError(t, err)
	assert.Equal(t, "Sur", releido.Entradas()[1].Row["sucursal"])
}

func TestAlmacenArchivoCorrupto(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "clients.json")
	require.NoError(t, os.WriteFile(ruta, []byte("{no es un arreglo"), 0o644))
	_, err := AbrirAlmacen(ruta)
	assert.Error(t, err)
}

func TestCodigosVenta(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "clients.json")
	almacen, err := AbrirAlmacen(ruta)
	require.NoError(t, err)

	require.NoError(t, almacen.Agregar(entradaDePrueba("V-001")))
	sinCodigo := models.EntradaCliente{Cliente: models.Cliente{Name: "Anonimo"}, Row: models.FilaCruda{}}
	require.NoError(t, almacen.Agregar(sinCodigo))

	vistos := almacen.CodigosVenta()
	assert.Equal(t, map[string]bool{"V-001": true}, vistos)
}
