package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// EstrategiaEtiqueta es una forma de resolver el valor asociado a una
// etiqueta de texto en el documento. Las estrategias son funciones puras
// (documento, etiqueta) -> valor y se prueban en orden fijo, de modo que la
// cadena de fallbacks sea un dato auditable y no branching enterrado.
type EstrategiaEtiqueta struct {
	Nombre string
	Buscar func(doc *goquery.Document, etiqueta string) string
}

// EstrategiasEtiqueta es el orden de búsqueda para los pares etiqueta/valor
// de las páginas de detalle: primero match exacto, luego por substring, en
// las tres formas de DOM que usa el ERP origen.
var EstrategiasEtiqueta = []EstrategiaEtiqueta{
	{"label exacto + párrafo", buscarLabelParrafo(true)},
	{"dt exacto + dd", buscarDtDd(true)},
	{"contenedor exacto + párrafo", buscarContenedorParrafo(true)},
	{"label contiene + párrafo", buscarLabelParrafo(false)},
	{"dt contiene + dd", buscarDtDd(false)},
	{"contenedor contiene + párrafo", buscarContenedorParrafo(false)},
}

// BuscarPorEtiqueta prueba las estrategias en orden y devuelve el primer
// valor no vacío, o "" si ninguna resuelve.
func BuscarPorEtiqueta(doc *goquery.Document, etiqueta string) string {
	for _, e := range EstrategiasEtiqueta {
		if val := e.Buscar(doc, etiqueta); val != "" {
			return val
		}
	}
	return ""
}

func coincide(texto, etiqueta string, exacto bool) bool {
	t := strings.ToLower(strings.TrimSpace(texto))
	t = strings.TrimSuffix(t, ":")
	if exacto {
		return t == etiqueta
	}
	return strings.Contains(t, etiqueta)
}

// label + primer <p> que le sigue
func buscarLabelParrafo(exacto bool) func(*goquery.Document, string) string {
	return func(doc *goquery.Document, etiqueta string) string {
		val := ""
		doc.Find("label").EachWithBreak(func(i int, l *goquery.Selection) bool {
			if !coincide(l.Text(), etiqueta, exacto) {
				return true
			}
			if v := strings.TrimSpace(siguienteParrafo(l)); v != "" {
				val = v
				return false
			}
			return true
		})
		return val
	}
}

// término de definición + su definición
func buscarDtDd(exacto bool) func(*goquery.Document, string) string {
	return func(doc *goquery.Document, etiqueta string) string {
		val := ""
		doc.Find("dt").EachWithBreak(func(i int, dt *goquery.Selection) bool {
			if !coincide(dt.Text(), etiqueta, exacto) {
				return true
			}
			if v := strings.TrimSpace(dt.NextFiltered("dd").Text()); v != "" {
				val = v
				return false
			}
			return true
		})
		return val
	}
}

// contenedor genérico cuyo texto es la etiqueta + primer párrafo siguiente
func buscarContenedorParrafo(exacto bool) func(*goquery.Document, string) string {
	return func(doc *goquery.Document, etiqueta string) string {
		val := ""
		doc.Find("div,span,strong,b").EachWithBreak(func(i int, s *goquery.Selection) bool {
			// solo nodos hoja: un div con hijos matchearía por el texto
			// concatenado de todo su subárbol
			if s.Children().Length() > 0 {
				return true
			}
			if !coincide(s.Text(), etiqueta, exacto) {
				return true
			}
			if v := strings.TrimSpace(siguienteParrafo(s)); v != "" {
				val = v
				return false
			}
			return true
		})
		return val
	}
}

// siguienteParrafo busca el primer <p> después del nodo: hermano directo,
// o descendiente del padre que aparezca tras el nodo.
func siguienteParrafo(s *goquery.Selection) string {
	if p := s.NextFiltered("p"); p.Length() > 0 {
		return p.First().Text()
	}
	if p := s.NextAllFiltered("p"); p.Length() > 0 {
		return p.First().Text()
	}
	if p := s.Parent().Find("p"); p.Length() > 0 {
		return p.First().Text()
	}
	return ""
}
