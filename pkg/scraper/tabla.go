package scraper

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Casado7/migration-script/pkg/models"
	"github.com/Casado7/migration-script/pkg/utils"
	"github.com/PuerkitoBio/goquery"
)

// EncontrarTablaPrincipal localiza la tabla de datos principal del listado:
// la primera <table> cuyo cuerpo tenga al menos una fila con celdas.
func EncontrarTablaPrincipal(doc *goquery.Document) *goquery.Selection {
	var tabla *goquery.Selection
	doc.Find("table").EachWithBreak(func(i int, t *goquery.Selection) bool {
		conCeldas := false
		t.Find("tbody tr").EachWithBreak(func(j int, tr *goquery.Selection) bool {
			if tr.Find("td").Length() > 0 {
				conCeldas = true
				return false
			}
			return true
		})
		if conCeldas {
			tabla = t
			return false
		}
		return true
	})
	return tabla
}

// ExtraerFilas enumera las filas de la tabla principal y mapea el texto de
// cada celda a la lista canónica de columnas por posición. Celdas de sobra
// reciben claves sintéticas col_N; las faltantes simplemente no aparecen en
// el mapa. Devuelve también un diagnóstico por cada fila sin celdas.
func ExtraerFilas(doc *goquery.Document) ([]models.FilaCruda, []models.FilaOmitida) {
	tabla := EncontrarTablaPrincipal(doc)
	if tabla == nil {
		return nil, []models.FilaOmitida{{RowIndex: -1, Reason: "no se encontró tabla principal"}}
	}

	var filas []models.FilaCruda
	var omitidas []models.FilaOmitida

	tabla.Find("tbody tr").Each(func(idx int, tr *goquery.Selection) {
		fila := FilaDesdeSeleccion(tr)
		if len(fila) == 0 {
			html, _ := goquery.OuterHtml(tr)
			omitidas = append(omitidas, models.FilaOmitida{
				RowIndex: idx,
				Reason:   "fila sin celdas parseables",
				RowHTML:  recortar(html, 500),
			})
			return
		}
		filas = append(filas, fila)
	})

	return filas, omitidas
}

// FilaDesdeSeleccion construye una FilaCruda desde un <tr> ya seleccionado.
// El codigo_venta se busca además como input oculto en cualquier celda,
// independiente de la posición de columna.
func FilaDesdeSeleccion(tr *goquery.Selection) models.FilaCruda {
	fila := models.FilaCruda{}

	tr.Find("td").Each(func(i int, td *goquery.Selection) {
		clave := fmt.Sprintf("col_%d", i+1)
		if i < len(models.ColumnasCanonicas) {
			clave = models.ColumnasCanonicas[i]
		}
		fila[clave] = strings.TrimSpace(td.Text())
	})

	if len(fila) == 0 {
		return fila
	}

	// Búsqueda explícita del identificador oculto, sin importar en qué
	// columna viva
	if codigo := CodigoVentaOculto(tr); codigo != "" {
		if fila["codigo_venta"] == "" {
			fila["codigo_venta"] = codigo
		}
	}
	return fila
}

// FilaDesdeHTML re-parsea el HTML crudo de una fila (entradas legadas del
// cache que guardaron row_html). Si el parseo falla, la fila queda con el
// HTML bajo la clave "html".
func FilaDesdeHTML(rowHTML string) models.FilaCruda {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<table><tbody><tr>" + rowHTML + "</tr></tbody></table>"))
	if err != nil {
		return models.FilaCruda{"html": rowHTML}
	}
	tr := doc.Find("tr").First()
	// el HTML legado a veces ya incluye el <tr>
	if tr.Find("td").Length() == 0 {
		doc2, err2 := goquery.NewDocumentFromReader(strings.NewReader("<table><tbody>" + rowHTML + "</tbody></table>"))
		if err2 == nil {
			tr = doc2.Find("tr").First()
		}
	}
	fila := FilaDesdeSeleccion(tr)
	if len(fila) == 0 {
		return models.FilaCruda{"html": rowHTML}
	}
	return fila
}

// CodigoVentaOculto busca un <input name="codigo_venta"> (o variante
// camelCase) dentro de la selección y devuelve su value.
func CodigoVentaOculto(sel *goquery.Selection) string {
	for _, nombre := range []string{"codigo_venta", "codigoVenta"} {
		val := ""
		sel.Find(fmt.Sprintf("input[name=%q]", nombre)).EachWithBreak(func(i int, in *goquery.Selection) bool {
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

// NormalizarEncabezados convierte los th del listado a claves canónicas;
// útil para verificar que la tabla sigue teniendo la estructura esperada.
func NormalizarEncabezados(tabla *goquery.Selection) []string {
	var claves []string
	tabla.Find("thead th").Each(func(i int, th *goquery.Selection) {
		claves = append(claves, utils.NormalizarClave(th.Text()))
	})
	return claves
}

// recortar trunca sin partir una runa a la mitad.
func recortar(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
