package scraper

import (
	"net/url"
	"strings"

	"github.com/Casado7/migration-script/pkg/models"
	"github.com/PuerkitoBio/goquery"
)

// FilaListado es una fila de la tabla principal junto con la URL absoluta de
// su página de detalle, cuando la fila la expone. HTML conserva la fila cruda
// para el archivo de diagnóstico.
type FilaListado struct {
	Fila          models.FilaCruda
	EnlaceDetalle string
	HTML          string
}

// ExtraerListado extrae las filas de la tabla principal resolviendo además
// el enlace de detalle de cada una contra la URL base de la página.
func ExtraerListado(doc *goquery.Document, base string) ([]FilaListado, []models.FilaOmitida) {
	tabla := EncontrarTablaPrincipal(doc)
	if tabla == nil {
		return nil, []models.FilaOmitida{{RowIndex: -1, Reason: "no se encontró tabla principal"}}
	}

	baseURL, _ := url.Parse(base)

	var filas []FilaListado
	var omitidas []models.FilaOmitida

	tabla.Find("tbody tr").Each(func(idx int, tr *goquery.Selection) {
		fila := FilaDesdeSeleccion(tr)
		html, _ := goquery.OuterHtml(tr)
		if len(fila) == 0 {
			omitidas = append(omitidas, models.FilaOmitida{
				RowIndex: idx,
				Reason:   "fila sin celdas parseables",
				RowHTML:  recortar(html, 500),
			})
			return
		}
		filas = append(filas, FilaListado{
			Fila:          fila,
			EnlaceDetalle: enlaceDetalle(tr, baseURL),
			HTML:          recortar(html, 500),
		})
	})

	return filas, omitidas
}

// enlaceDetalle busca el enlace a la página de detalle de la venta: por el
// patrón de la URL primero, por el texto del enlace después, y como último
// recurso el primer href de la columna de acciones.
func enlaceDetalle(tr *goquery.Selection, base *url.URL) string {
	candidatos := []func() string{
		func() string { return primerHref(tr, "a[href*='Detalle'], a[href*='detalle'], a[href*='Venta']") },
		func() string {
			href := ""
			tr.Find("a").EachWithBreak(func(i int, a *goquery.Selection) bool {
				texto := strings.ToLower(strings.TrimSpace(a.Text()))
				if strings.Contains(texto, "detalle") || strings.Contains(texto, "ver") {
					href, _ = a.Attr("href")
					return false
				}
				return true
			})
			return href
		},
		func() string { return primerHref(tr, "td:last-child a, a") },
	}

	for _, c := range candidatos {
		if href := strings.TrimSpace(c()); href != "" && href != "#" && !strings.HasPrefix(href, "javascript:") {
			return resolver(base, href)
		}
	}
	return ""
}

func primerHref(sel *goquery.Selection, selector string) string {
	href := ""
	sel.Find(selector).EachWithBreak(func(i int, a *goquery.Selection) bool {
		if h, ok := a.Attr("href"); ok && strings.TrimSpace(h) != "" {
			href = h
			return false
		}
		return true
	})
	return href
}

func resolver(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
