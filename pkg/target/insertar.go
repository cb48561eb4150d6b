package target

import (
	"fmt"
	"log"
	"time"

	"github.com/Casado7/migration-script/pkg/browser"
	"github.com/Casado7/migration-script/pkg/models"
	"github.com/go-rod/rod"
)

// campoFormulario vincula el name de un input del formulario de alta con el
// valor del cliente transformado. Los names coinciden uno a uno con las
// claves aplanadas del JSON convertido.
type campoFormulario struct {
	name  string
	valor func(c models.ClienteTransformado) string
	combo bool // se captura con el combo custom, no con tecleo
}

// El formulario de alta es un asistente por pestañas; cada grupo se captura
// en su pestaña y el botón Siguiente avanza a la que sigue.
var (
	camposPersonales = []campoFormulario{
		{"name", func(c models.ClienteTransformado) string { return c.Name }, false},
		{"middle_name", func(c models.ClienteTransformado) string { return c.MiddleName }, false},
		{"last_name", func(c models.ClienteTransformado) string { return c.LastName }, false},
		{"mothers_name", func(c models.ClienteTransformado) string { return c.MothersName }, false},
		{"birth", func(c models.ClienteTransformado) string { return c.Birth }, false},
		{"sex", func(c models.ClienteTransformado) string { return c.Sex }, true},
		{"marital_status", func(c models.ClienteTransformado) string { return c.MaritalStatus }, true},
		{"nationality", func(c models.ClienteTransformado) string { return c.Nationality }, true},
		{"origin_country", func(c models.ClienteTransformado) string { return c.OriginCountry }, true},
		{"profession_id", func(c models.ClienteTransformado) string { return c.ProfessionID }, true},
	}

	camposGenerales = []campoFormulario{
		{"email", func(c models.ClienteTransformado) string { return c.Email }, false},
		{"phone_prefix", func(c models.ClienteTransformado) string { return c.PhonePrefix }, false},
		{"phone", func(c models.ClienteTransformado) string { return c.Phone }, false},
		{"cellphone_prefix", func(c models.ClienteTransformado) string { return c.CellphonePrefix }, false},
		{"cellphone", func(c models.ClienteTransformado) string { return c.Cellphone }, false},
		{"client_kind", func(c models.ClienteTransformado) string { return c.ClientKind }, true},
	}

	camposPublicidad = []campoFormulario{
		{"advertising", func(c models.ClienteTransformado) string { return c.Advertising }, true},
		{"thirdparty_advertising", func(c models.ClienteTransformado) string { return c.ThirdpartyAdvertising }, true},
	}

	camposResidencia = []campoFormulario{
		{"client_address[0].country", func(c models.ClienteTransformado) string { return c.AddressCountry }, true},
		{"client_address[0].state", func(c models.ClienteTransformado) string { return c.AddressState }, false},
		{"client_address[0].city", func(c models.ClienteTransformado) string { return c.AddressCity }, false},
		{"client_address[0].postal_code", func(c models.ClienteTransformado) string { return c.AddressPostalCode }, false},
		{"client_address[0].address", func(c models.ClienteTransformado) string { return c.Address }, false},
	}
)

// InsertarCliente captura un cliente en el formulario de alta del destino:
// pestaña de datos personales, Siguiente, datos generales, Siguiente, dos
// pestañas que no aplican a la migración (se avanzan sin capturar), la de
// residencia y la de publicidad al final. Cualquier avance o campo fallido
// aborta este cliente; el llamador decide si el lote continúa.
func InsertarCliente(sesion *browser.Sesion, urlAlta string, c models.ClienteTransformado) error {
	if err := sesion.Navegar(urlAlta); err != nil {
		return err
	}
	page := sesion.Pagina()

	log.Printf("🔍 Capturando cliente %s %s (venta %s)", c.Name, c.LastName, c.CodigoVenta)

	if err := llenarGrupo(page, camposPersonales, c); err != nil {
		return fmt.Errorf("pestaña de datos personales: %w", err)
	}
	if err := avanzarPestana(page); err != nil {
		return fmt.Errorf("avanzando a datos generales: %w", err)
	}

	if err := llenarGrupo(page, camposGenerales, c); err != nil {
		return fmt.Errorf("pestaña de datos generales: %w", err)
	}
	if err := avanzarPestana(page); err != nil {
		return fmt.Errorf("avanzando tras datos generales: %w", err)
	}

	// documentación y beneficiarios no aplican a registros migrados
	for i := 0; i < 2; i++ {
		if err := avanzarPestana(page); err != nil {
			return fmt.Errorf("saltando pestaña %d: %w", i+1, err)
		}
	}

	if err := llenarGrupo(page, camposResidencia, c); err != nil {
		return fmt.Errorf("pestaña de residencia: %w", err)
	}

	// la pestaña de publicidad va al final del asistente; si este formulario
	// no la tiene, el avance falla y se guarda con los defaults del destino
	if err := avanzarPestana(page); err == nil {
		if err := llenarGrupo(page, camposPublicidad, c); err != nil {
			return fmt.Errorf("pestaña de publicidad: %w", err)
		}
	} else {
		log.Printf("⚠️  Sin pestaña de publicidad, se omite: %v", err)
	}

	if err := guardarFormulario(page); err != nil {
		return fmt.Errorf("guardando cliente: %w", err)
	}
	log.Printf("✅ Cliente %s %s capturado", c.Name, c.LastName)
	return nil
}

var ritmo = browser.RitmoPorDefecto()

// llenarCampo es variable para poder simular fallos de captura en pruebas.
var llenarCampo = llenarCampoPorName

// llenarGrupo captura los campos con valor de una pestaña. Un campo que no se
// puede capturar falla al cliente completo: guardarlo sin sexo o sin domicilio
// crea un registro inválido en el destino que luego hay que cazar a mano.
func llenarGrupo(page *rod.Page, campos []campoFormulario, c models.ClienteTransformado) error {
	for _, campo := range campos {
		valor := campo.valor(c)
		if valor == "" {
			continue
		}
		if err := llenarCampo(page, campo.name, valor, campo.combo); err != nil {
			return fmt.Errorf("campo %s: %w", campo.name, err)
		}
		time.Sleep(ritmo.PausaAccion())
	}
	return nil
}

func llenarCampoPorName(page *rod.Page, name, valor string, combo bool) error {
	selector := fmt.Sprintf("[name='%s']", name)
	el, err := page.Timeout(4 * time.Second).Element(selector)
	if err != nil {
		return fmt.Errorf("no existe input con name %q: %w", name, err)
	}

	if combo {
		if tag, errT := tagDe(el); errT == nil && tag == "select" {
			return browser.SeleccionarOpcion(el, valor)
		}
		return browser.SeleccionarCombo(page, el, valor)
	}
	return browser.LlenarCampo(el, valor)
}

func tagDe(el *rod.Element) (string, error) {
	v, err := el.Eval(`() => this.tagName.toLowerCase()`)
	if err != nil {
		return "", err
	}
	return v.Value.Str(), nil
}

// avanzarPestana pulsa el botón Siguiente del asistente y espera el cambio
// de pestaña.
func avanzarPestana(page *rod.Page) error {
	var ultimo error
	for _, texto := range []string{"Siguiente", "Next", "Continuar"} {
		if err := browser.ClicPorTexto(page, "button, a.btn", texto); err == nil {
			time.Sleep(1 * time.Second)
			return nil
		} else {
			ultimo = err
		}
	}
	return fmt.Errorf("no se encontró el botón Siguiente: %w", ultimo)
}

func guardarFormulario(page *rod.Page) error {
	for _, texto := range []string{"Guardar", "Registrar", "Finalizar", "Save"} {
		if err := browser.ClicPorTexto(page, "button, input[type='submit'], a.btn", texto); err == nil {
			time.Sleep(2 * time.Second)
			return nil
		}
	}
	// submit directo del formulario como último recurso
	if el, err := page.Timeout(2 * time.Second).Element("form"); err == nil {
		if _, err := el.Eval(`() => this.submit()`); err == nil {
			time.Sleep(2 * time.Second)
			return nil
		}
	}
	return fmt.Errorf("no se encontró el botón de guardar")
}
