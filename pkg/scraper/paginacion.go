package scraper

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Casado7/migration-script/pkg/browser"
	"github.com/Casado7/migration-script/pkg/utils"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
)

// Paginador avanza por las páginas del listado de ventas. El control de
// paginación del ERP origen cambia de forma entre vistas, así que el avance
// prueba tres mecanismos en orden: el enlace con el número de página
// siguiente, el control "Siguiente" y el bloque de salto de página.
type Paginador struct {
	pagina *rod.Page
	actual int
	// MaxPaginas es el tope duro de avances; el listado real nunca debería
	// excederlo y un bucle de paginación rota sí.
	MaxPaginas int
}

func NuevoPaginador(pagina *rod.Page, maxPaginas int) *Paginador {
	if maxPaginas <= 0 {
		maxPaginas = 50
	}
	return &Paginador{pagina: pagina, actual: 1, MaxPaginas: maxPaginas}
}

// PaginaActual devuelve el número de página 1-based en la que está el listado.
func (p *Paginador) PaginaActual() int {
	return p.actual
}

// Avanzar pasa a la página siguiente. Devuelve false cuando no hay más
// páginas o se alcanzó el tope.
func (p *Paginador) Avanzar() (bool, error) {
	if p.actual >= p.MaxPaginas {
		log.Printf("⚠️  Tope de %d páginas alcanzado, deteniendo paginación", p.MaxPaginas)
		return false, nil
	}

	siguiente := p.actual + 1

	avances := []struct {
		nombre string
		fn     func(int) (bool, error)
	}{
		{"enlace de número de página", p.porNumero},
		{"control Siguiente", p.porSiguiente},
		{"bloque de salto", p.porSalto},
	}

	for _, a := range avances {
		ok, err := a.fn(siguiente)
		if err != nil {
			log.Printf("⚠️  Avance por %s falló: %v", a.nombre, err)
			continue
		}
		if ok {
			p.actual = siguiente
			time.Sleep(2 * time.Second)
			log.Printf("📄 Página %d (vía %s)", p.actual, a.nombre)
			return true, nil
		}
	}

	return false, nil
}

// porNumero busca un enlace cuyo texto sea exactamente el número de la
// página destino.
func (p *Paginador) porNumero(destino int) (bool, error) {
	el, err := browser.ElementoPorTexto(p.pagina, "a.page-link, ul.pagination a, .pagination a", strconv.Itoa(destino))
	if err != nil {
		return false, nil
	}
	// ElementoPorTexto matchea por substring; exige igualdad para no saltar
	// de la página 1 a la 12
	txt, err := el.Text()
	if err != nil || strings.TrimSpace(txt) != strconv.Itoa(destino) {
		return false, nil
	}
	if err := browser.Clic(p.pagina, el); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Paginador) porSiguiente(int) (bool, error) {
	for _, texto := range []string{"Siguiente", "Next", "»"} {
		el, err := browser.ElementoPorTexto(p.pagina, "a, button", texto)
		if err != nil {
			continue
		}
		// controles deshabilitados marcan el fin del listado
		if clase, _ := el.Attribute("class"); clase != nil && strings.Contains(*clase, "disabled") {
			return false, nil
		}
		if padre, err := el.Parent(); err == nil {
			if clase, _ := padre.Attribute("class"); clase != nil && strings.Contains(*clase, "disabled") {
				return false, nil
			}
		}
		if err := browser.Clic(p.pagina, el); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// porSalto usa el input de "ir a la página" cuando los enlaces numerados no
// muestran la página destino.
func (p *Paginador) porSalto(destino int) (bool, error) {
	campo, err := p.pagina.Timeout(2 * time.Second).Element("input[name='pagina'], input.page-jump, .pagination input[type='number'], .pagination input[type='text']")
	if err != nil {
		return false, nil
	}
	if err := browser.LlenarCampo(campo, strconv.Itoa(destino)); err != nil {
		return false, err
	}
	if err := browser.ClicPorTexto(p.pagina, "button, a", "Ir"); err != nil {
		// Enter como último recurso
		if _, err2 := campo.Eval(`() => this.form && this.form.submit()`); err2 != nil {
			return false, err
		}
	}
	return true, nil
}

// DocumentoConDatos obtiene el HTML de la página y lo reintenta hasta 3
// veces cuando el contenido aún no muestra marcadores de datos reales
// (montos, fechas); el listado se llena por AJAX después del load.
func DocumentoConDatos(pagina *rod.Page) (*goquery.Document, error) {
	var ultimo string
	for intento := 1; intento <= 3; intento++ {
		html, err := pagina.HTML()
		if err != nil {
			return nil, fmt.Errorf("error obteniendo HTML: %w", err)
		}
		ultimo = html
		if utils.TieneMarcadorDeDatos(html) {
			return goquery.NewDocumentFromReader(strings.NewReader(html))
		}
		log.Printf("🔍 Intento %d/3: la página aún no muestra datos, esperando", intento)
		time.Sleep(2 * time.Second)
	}
	// tras los reintentos se parsea lo que haya; el extractor reporta filas
	// omitidas si la tabla vino vacía
	return goquery.NewDocumentFromReader(strings.NewReader(ultimo))
}
