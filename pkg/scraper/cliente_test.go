package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const detalleClienteHTML = `
<html><body>
<input type="hidden" name="id_cliente" value="8841">
<div class="tab-cliente">
  <div class="form-group"><label>Nombre:</label><p>Juan Carlos Perez Lopez</p></div>
  <div class="form-group"><label>Fecha Nacimiento:</label><p>1985-07-23</p></div>
  <div class="form-group"><label>RFC:</label><p>PELJ850723ABC</p></div>
  <div class="form-group"><label>CURP:</label><p>PELJ850723HJCRPN01</p></div>
  <div class="form-group"><label>Sexo:</label><p>Masculino</p></div>
  <div class="form-group"><label>Estado Civil:</label><p>Casado</p></div>
  <dl>
    <dt>Calle</dt><dd>Av. Reforma</dd>
    <dt>Num. Exterior</dt><dd>120</dd>
    <dt>Colonia</dt><dd>Centro</dd>
  </dl>
  <div class="form-group"><label>Estado:</label><p>Jalisco</p></div>
  <div class="form-group"><label>Localidad:</label><p>Guadalajara</p></div>
  <div class="form-group"><label>Codigo Postal:</label><p>44100</p></div>
  <div class="form-group"><label>Numero de Telefono Celular:</label><p>33 8765 4321</p></div>
  <div class="form-group"><label>Correo Electronico:</label><p>juan@example.com</p></div>
  <div class="form-group"><label>Ocupacion:</label><p>Ingeniero</p></div>
</div>
<a href="/clientes/Formulario_Cliente?id_cliente=8841&codigo_venta=V-001">Modificar Datos</a>
</body></html>`

func TestExtraerCliente(t *testing.T) {
	doc := docDesde(t, detalleClienteHTML)
	c := ExtraerCliente(doc)

	assert.Equal(t, "8841", c.IDCliente)
	assert.Equal(t, "V-001", c.CodigoVenta) // del href, no hay input oculto
	assert.Equal(t, "Juan Carlos Perez Lopez", c.Name)
	assert.Equal(t, "1985-07-23", c.BirthDate)
	assert.Equal(t, "PELJ850723ABC", c.RFC)
	assert.Equal(t, "PELJ850723HJCRPN01", c.CURP)
	assert.Equal(t, "Masculino", c.Sexo)
	assert.Equal(t, "Casado", c.EstadoCivil)
	assert.Equal(t, "Av. Reforma", c.Calle)
	assert.Equal(t, "120", c.NumExterior)
	assert.Equal(t, "Centro", c.Colonia)
	assert.Equal(t, "Jalisco", c.Estado)
	assert.Equal(t, "Guadalajara", c.Localidad)
	assert.Equal(t, "44100", c.CodigoPostal)
	assert.Equal(t, "33 8765 4321", c.TelefonoCelular)
	assert.Equal(t, "juan@example.com", c.Email)
	assert.Equal(t, "Ingeniero", c.Ocupacion)

	// lo ausente queda vacío, nunca residuo de otra etiqueta
	assert.Equal(t, "", c.NumInterior)
	assert.Equal(t, "", c.TelefonoLocal)
}

func TestExtraerClienteVacio(t *testing.T) {
	doc := docDesde(t, "<html><body><p>sin formulario</p></body></html>")
	c := ExtraerCliente(doc)
	assert.Equal(t, "", c.Name)
	assert.Equal(t, "", c.IDCliente)
	assert.Equal(t, "", c.CodigoVenta)
}

func TestExtraerClienteInputsOcultosGanan(t *testing.T) {
	doc := docDesde(t, `
		<input type="hidden" name="id_cliente" value="77">
		<input type="hidden" name="codigo_venta" value="V-77">
		<a href="Formulario_Cliente?id_cliente=99&codigo_venta=V-99">Modificar</a>`)
	c := ExtraerCliente(doc)
	assert.Equal(t, "77", c.IDCliente)
	assert.Equal(t, "V-77", c.CodigoVenta)
}

func TestBuscarPorEtiqueta(t *testing.T) {
	doc := docDesde(t, `
		<div><label>Estado Civil:</label><p>Soltero</p></div>
		<div><label>Estado:</label><p>Nayarit</p></div>
		<dl><dt>Colonia</dt><dd>Juárez</dd></dl>
		<div><strong>Edad</strong><p>39</p></div>`)

	// exacto no confunde Estado con Estado Civil
	assert.Equal(t, "Nayarit", BuscarPorEtiqueta(doc, "estado"))
	assert.Equal(t, "Soltero", BuscarPorEtiqueta(doc, "estado civil"))
	assert.Equal(t, "Juárez", BuscarPorEtiqueta(doc, "colonia"))
	assert.Equal(t, "39", BuscarPorEtiqueta(doc, "edad"))
	assert.Equal(t, "", BuscarPorEtiqueta(doc, "rfc"))
}
