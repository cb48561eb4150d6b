package target

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Casado7/migration-script/pkg/browser"
	"github.com/Casado7/migration-script/pkg/models"
	"github.com/go-rod/rod"
)

// SeleccionarLote elige el desarrollo y la unidad en el carrusel del
// cotizador. El carrusel carga tarjetas por AJAX, así que la búsqueda se
// reintenta con pausa: exacto primero, substring después, hasta agotar los
// intentos.
func SeleccionarLote(page *rod.Page, desarrollo, unidad string) error {
	if desarrollo != "" {
		if err := SeleccionarProyectoCarrusel(page, desarrollo); err != nil {
			return fmt.Errorf("seleccionando desarrollo %q: %w", desarrollo, err)
		}
		time.Sleep(2 * time.Second)
	}
	if unidad != "" {
		if err := SeleccionarProyectoCarrusel(page, unidad); err != nil {
			return fmt.Errorf("seleccionando unidad %q: %w", unidad, err)
		}
		time.Sleep(2 * time.Second)
	}
	return nil
}

// SeleccionarProyectoCarrusel hace clic en la tarjeta del carrusel cuyo
// texto coincida, reintentando mientras el carrusel termina de cargar.
func SeleccionarProyectoCarrusel(page *rod.Page, texto string) error {
	var ultimo error
	for intento := 1; intento <= 5; intento++ {
		el, err := browser.ElementoPorTexto(page, ".card, .carousel-item, .item, a, button", texto)
		if err == nil {
			return browser.Clic(page, el)
		}
		ultimo = err
		log.Printf("🔍 Intento %d/5: tarjeta %q no visible aún", intento, texto)
		time.Sleep(2 * time.Second)
	}
	return ultimo
}

// LlenarTablaPagos captura el plan de pagos en la tabla dinámica del
// cotizador: por cada cuota pulsa "Agregar Cuota" y llena la fila recién
// creada (select de tipo, concepto, monto). Si el número de filas creadas no
// coincide con las cuotas pedidas, llena las que existan y reporta el
// desfase en lugar de abortar.
func LlenarTablaPagos(page *rod.Page, cuotas []models.Cuota) error {
	if len(cuotas) == 0 {
		return nil
	}

	for i := range cuotas {
		if err := agregarFilaPago(page); err != nil {
			return fmt.Errorf("agregando fila %d: %w", i+1, err)
		}
		time.Sleep(500 * time.Millisecond)
	}

	filas, err := filasTablaPagos(page)
	if err != nil {
		return err
	}

	n := len(filas)
	if n > len(cuotas) {
		n = len(cuotas)
	}
	if len(filas) != len(cuotas) {
		log.Printf("⚠️  La tabla creó %d filas para %d cuotas; se llenan %d", len(filas), len(cuotas), n)
	}

	for i := 0; i < n; i++ {
		if err := llenarFilaPago(filas[i], cuotas[i]); err != nil {
			return fmt.Errorf("llenando fila %d (%s): %w", i+1, cuotas[i].Concepto, err)
		}
	}
	log.Printf("✅ Tabla de pagos capturada: %d cuotas", n)
	return nil
}

func agregarFilaPago(page *rod.Page) error {
	// el botón trae la clase btn-info en la vista actual; el texto es el
	// fallback si la reestilizan
	if el, err := page.Timeout(2 * time.Second).Element("button.btn-info"); err == nil {
		if txt, errT := el.Text(); errT == nil && strings.Contains(strings.ToLower(txt), "cuota") {
			return browser.Clic(page, el)
		}
	}
	return browser.ClicPorTexto(page, "button, a.btn", "Agregar Cuota")
}

func filasTablaPagos(page *rod.Page) ([]*rod.Element, error) {
	filas, err := page.Timeout(5 * time.Second).Elements("table tbody tr")
	if err != nil {
		return nil, fmt.Errorf("no se encontró la tabla de pagos: %w", err)
	}
	return filas, nil
}

// llenarFilaPago captura una fila: el select de tipo con change disparado,
// el concepto como texto y el monto como número. Los listeners del cotizador
// recalculan totales en cada evento.
func llenarFilaPago(fila *rod.Element, cuota models.Cuota) error {
	if sel, err := fila.Element("select"); err == nil {
		if err := browser.SeleccionarOpcion(sel, cuota.Tipo); err != nil {
			return err
		}
	}

	if campo, err := fila.Element("input[type='text']"); err == nil {
		if err := browser.ForzarValor(campo, cuota.Concepto); err != nil {
			return err
		}
	}

	campoMonto, err := fila.Element("input[type='number']")
	if err != nil {
		// algunas filas usan text con máscara numérica para el monto
		inputs, errI := fila.Elements("input[type='text']")
		if errI != nil || len(inputs) < 2 {
			return fmt.Errorf("la fila no tiene campo de monto")
		}
		campoMonto = inputs[len(inputs)-1]
	}
	return browser.ForzarValor(campoMonto, cuota.Monto)
}
