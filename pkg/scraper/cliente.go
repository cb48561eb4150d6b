package scraper

import (
	"net/url"
	"strings"

	"github.com/Casado7/migration-script/pkg/models"
	"github.com/PuerkitoBio/goquery"
)

// etiquetasCliente mapea la etiqueta en minúsculas de la página de detalle al
// campo destino. El orden no importa aquí: cada campo se resuelve de forma
// independiente con la cadena de estrategias.
type asignacionCliente struct {
	etiqueta string
	asignar  func(c *models.Cliente, v string)
}

var etiquetasCliente = []asignacionCliente{
	{"nombre", func(c *models.Cliente, v string) { c.Name = v }},
	{"fecha nacimiento", func(c *models.Cliente, v string) { c.BirthDate = v }},
	{"lugar de nacimiento", func(c *models.Cliente, v string) { c.LugarNacimiento = v }},
	{"edad", func(c *models.Cliente, v string) { c.Edad = v }},
	{"rfc", func(c *models.Cliente, v string) { c.RFC = v }},
	{"curp", func(c *models.Cliente, v string) { c.CURP = v }},
	{"sexo", func(c *models.Cliente, v string) { c.Sexo = v }},
	{"estado civil", func(c *models.Cliente, v string) { c.EstadoCivil = v }},
	{"calle", func(c *models.Cliente, v string) { c.Calle = v }},
	{"num. interior", func(c *models.Cliente, v string) { c.NumInterior = v }},
	{"num interior", func(c *models.Cliente, v string) {
		if c.NumInterior == "" {
			c.NumInterior = v
		}
	}},
	{"num. exterior", func(c *models.Cliente, v string) { c.NumExterior = v }},
	{"num exterior", func(c *models.Cliente, v string) {
		if c.NumExterior == "" {
			c.NumExterior = v
		}
	}},
	{"nacionalidad", func(c *models.Cliente, v string) { c.Nacionalidad = v }},
	{"país", func(c *models.Cliente, v string) { c.Pais = v }},
	{"pais", func(c *models.Cliente, v string) {
		if c.Pais == "" {
			c.Pais = v
		}
	}},
	{"estado", func(c *models.Cliente, v string) { c.Estado = v }},
	{"localidad", func(c *models.Cliente, v string) { c.Localidad = v }},
	{"codigo postal", func(c *models.Cliente, v string) { c.CodigoPostal = v }},
	{"colonia", func(c *models.Cliente, v string) { c.Colonia = v }},
	{"numero de telefono local", func(c *models.Cliente, v string) { c.TelefonoLocal = v }},
	{"numero de telefono celular", func(c *models.Cliente, v string) { c.TelefonoCelular = v }},
	{"correo electronico", func(c *models.Cliente, v string) { c.Email = v }},
	{"ocupacion", func(c *models.Cliente, v string) { c.Ocupacion = v }},
	{"actividad economica", func(c *models.Cliente, v string) { c.ActividadEconomica = v }},
	{"tipo de identificacion", func(c *models.Cliente, v string) { c.TipoIdentificacion = v }},
	{"numero de identificacion", func(c *models.Cliente, v string) { c.NumeroIdentificacion = v }},
	{"tipo de persona", func(c *models.Cliente, v string) { c.TipoPersona = v }},
}

// ExtraerCliente extrae la información del cliente desde la pestaña
// "Cliente" de la página de detalle. Toda clave canónica queda presente en
// el resultado; los valores ausentes son cadena vacía.
//
// Los identificadores ocultos (id_cliente, codigo_venta) se extraen primero
// y de preferencia desde inputs hidden literales; si no existen, se parsean
// los query params del enlace "Modificar Datos".
func ExtraerCliente(doc *goquery.Document) models.Cliente {
	var c models.Cliente

	c.IDCliente, c.CodigoVenta = identificadoresOcultos(doc)

	for _, e := range etiquetasCliente {
		if v := BuscarPorEtiqueta(doc, e.etiqueta); v != "" {
			e.asignar(&c, v)
		}
	}

	// intento adicional para el nombre si quedó vacío: cualquier label que
	// contenga "nombre"
	if c.Name == "" {
		doc.Find("label").EachWithBreak(func(i int, l *goquery.Selection) bool {
			if strings.Contains(strings.ToLower(l.Text()), "nombre") {
				if v := strings.TrimSpace(siguienteParrafo(l)); v != "" {
					c.Name = v
					return false
				}
			}
			return true
		})
	}

	return c
}

// identificadoresOcultos resuelve id_cliente y codigo_venta: inputs ocultos
// primero, luego los query params del href de "Modificar Datos".
func identificadoresOcultos(doc *goquery.Document) (idCliente, codigoVenta string) {
	busca := func(nombres ...string) string {
		for _, n := range nombres {
			val := ""
			doc.Find("input[name='" + n + "']").EachWithBreak(func(i int, in *goquery.Selection) bool {
				if v, ok := in.Attr("value"); ok && strings.TrimSpace(v) != "" {
					val = strings.TrimSpace(v)
					return false
				}
				return true
			})
			if val != "" {
				return val
			}
		}
		return ""
	}

	idCliente = busca("id_cliente", "idCliente")
	codigoVenta = busca("codigo_venta", "codigoVenta")

	if idCliente != "" && codigoVenta != "" {
		return idCliente, codigoVenta
	}

	doc.Find("a[href*='Formulario_Cliente']").EachWithBreak(func(i int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok || href == "" {
			href, _ = a.Attr("data-href")
		}
		if href == "" {
			return true
		}
		u, err := url.Parse(href)
		if err != nil {
			return true
		}
		qs := u.Query()
		if idCliente == "" {
			idCliente = primerParam(qs, "id_cliente", "idCliente", "id")
		}
		if codigoVenta == "" {
			codigoVenta = primerParam(qs, "codigo_venta", "codigoVenta", "codigo")
		}
		return idCliente == "" || codigoVenta == ""
	})

	return idCliente, codigoVenta
}

func primerParam(qs url.Values, nombres ...string) string {
	for _, n := range nombres {
		if v := qs.Get(n); v != "" {
			return v
		}
	}
	return ""
}
