package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const detalleCreditoHTML = `
<html><body>
<h4>Información del Crédito</h4>
<table>
  <tr><td></td><td>Desarrollo</td><td>Los Pinos</td></tr>
  <tr><td></td><td>Unidad</td><td>L-12</td></tr>
  <tr><td>Etapa</td><td>2</td><td>Superficie</td><td>120.50 m2</td></tr>
  <tr><td>Precio Lista</td><td>$ 1,500,000.00</td></tr>
  <tr><td>Plan de Pago</td><td>Crédito 24 meses</td></tr>
  <tr><td>Descuento %</td><td>5%</td><td>Descuento m2</td><td>$ 0.00</td></tr>
  <tr><td>Moneda del Contrato</td><td>MXN</td></tr>
  <tr><td>Precio Venta</td><td>$ 1,425,000.00</td></tr>
  <tr><td>Enganche %</td><td>20%</td><td>Enganche</td><td>$ 285,000.00</td></tr>
  <tr><td>Financiamiento %</td><td>80%</td><td>Financiamiento</td><td>$ 1,140,000.00</td></tr>
  <tr><td>Costo Escritura</td><td>$ 45,000.00</td></tr>
</table>
</body></html>`

func TestExtraerInfoCredito(t *testing.T) {
	doc := docDesde(t, detalleCreditoHTML)
	ic := ExtraerInfoCredito(doc)

	assert.Equal(t, "Los Pinos", ic.Desarrollo)
	assert.Equal(t, "L-12", ic.Unidad)
	assert.Equal(t, "2", ic.Etapa)
	assert.Equal(t, "120.50 m2", ic.Superficie)
	assert.Equal(t, "$ 1,500,000.00", ic.PrecioLista)
	assert.Equal(t, "Crédito 24 meses", ic.PlanDePago)
	assert.Equal(t, "5%", ic.DescuentoPct)
	assert.Equal(t, "$ 0.00", ic.DescuentoM2)
	assert.Equal(t, "MXN", ic.MonedaDelContrato)
	assert.Equal(t, "$ 1,425,000.00", ic.PrecioVenta)

	// Enganche % y Enganche son campos distintos
	assert.Equal(t, "20%", ic.EnganchePct)
	assert.Equal(t, "$ 285,000.00", ic.Enganche)
	assert.Equal(t, "80%", ic.FinanciamientoPct)
	assert.Equal(t, "$ 1,140,000.00", ic.Financiamiento)
	assert.Equal(t, "$ 45,000.00", ic.CostoEscritura)
}

func TestExtraerInfoCreditoSinEncabezado(t *testing.T) {
	// sin el h4 de sección el barrido de tablas resuelve igual
	doc := docDesde(t, `<table>
		<tr><td>Desarrollo</td><td>Las Lomas</td></tr>
		<tr><td>Enganche %</td><td>10%</td></tr>
	</table>`)
	ic := ExtraerInfoCredito(doc)
	assert.Equal(t, "Las Lomas", ic.Desarrollo)
	assert.Equal(t, "10%", ic.EnganchePct)
	assert.Equal(t, "", ic.Enganche)
}

func TestExtraerInfoCreditoFilasDeTresColumnas(t *testing.T) {
	// el bloque de crédito del origen trae %/monto en la misma fila
	doc := docDesde(t, `<h4>Información del Crédito</h4><table>
		<tr><td>Descuento</td><td>5%</td><td>$ 75,000.00</td></tr>
		<tr><td>Enganche</td><td>20%</td><td>$ 285,000.00</td></tr>
		<tr><td>Financiamiento</td><td>80%</td><td>$ 1,140,000.00</td></tr>
	</table>`)
	ic := ExtraerInfoCredito(doc)

	assert.Equal(t, "5%", ic.DescuentoPct)
	assert.Equal(t, "$ 75,000.00", ic.DescuentoM2)
	assert.Equal(t, "20%", ic.EnganchePct)
	assert.Equal(t, "$ 285,000.00", ic.Enganche)
	assert.Equal(t, "80%", ic.FinanciamientoPct)
	assert.Equal(t, "$ 1,140,000.00", ic.Financiamiento)
}

func TestExtraerInfoCreditoVacio(t *testing.T) {
	doc := docDesde(t, "<html><body></body></html>")
	assert.Equal(t, "", ExtraerInfoCredito(doc).Desarrollo)
}
