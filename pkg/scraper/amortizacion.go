package scraper

import (
	"strings"

	"github.com/Casado7/migration-script/pkg/models"
	"github.com/Casado7/migration-script/pkg/utils"
	"github.com/PuerkitoBio/goquery"
)

// ExtraerAmortizacion extrae las filas de la "Tabla de Amortización" de la
// página de detalle. Localiza la tabla por su encabezado de sección y, si la
// página cambió, por sus columnas (monto + fecha/tipo). Devuelve nil si no
// hay tabla reconocible.
func ExtraerAmortizacion(doc *goquery.Document) []models.FilaAmortizacion {
	tabla := tablaAmortizacion(doc)
	if tabla == nil {
		return nil
	}

	cols := columnasAmortizacion(tabla)

	var filas []models.FilaAmortizacion
	tabla.Find("tbody tr").Each(func(i int, tr *goquery.Selection) {
		var celdas []string
		// algunas filas usan th para el número de pago
		tr.Find("th,td").Each(func(j int, c *goquery.Selection) {
			celdas = append(celdas, strings.TrimSpace(c.Text()))
		})
		if len(celdas) == 0 {
			return
		}

		fila := models.FilaAmortizacion{
			No:     celda(celdas, cols["no"]),
			Fecha:  celda(celdas, cols["fecha"]),
			Tipo:   celda(celdas, cols["tipo"]),
			PagoID: pagoIDFila(tr),
		}
		fila.MontoRaw = celda(celdas, cols["monto"])
		fila.Monto = utils.NormalizarMonto(utils.PrimerTokenNumerico(fila.MontoRaw))

		// la fecha programada puede venir en un input oculto más precisa que
		// el texto visible
		if v := valorInputOculto(tr, "fecha", "fecha_pago"); v != "" {
			fila.Fecha = v
		}

		if fila.MontoRaw == "" && fila.Tipo == "" {
			return
		}
		filas = append(filas, fila)
	})

	return filas
}

// tablaAmortizacion busca la tabla del plan de pagos: por encabezado de
// sección primero, por forma de columnas después.
func tablaAmortizacion(doc *goquery.Document) *goquery.Selection {
	var tabla *goquery.Selection
	doc.Find("h1,h2,h3,h4,h5,legend,strong,b,div").EachWithBreak(func(i int, h *goquery.Selection) bool {
		if h.Is("div") && h.Children().Length() > 0 {
			return true
		}
		texto := strings.ToLower(utils.QuitarAcentos(h.Text()))
		if !strings.Contains(texto, "amortizacion") && !strings.Contains(texto, "plan de pagos") {
			return true
		}
		if t := h.NextAllFiltered("table"); t.Length() > 0 {
			tabla = t.First()
			return false
		}
		if t := h.Parent().Find("table"); t.Length() > 0 {
			tabla = t.First()
			return false
		}
		return true
	})
	if tabla != nil {
		return tabla
	}

	doc.Find("table").EachWithBreak(func(i int, t *goquery.Selection) bool {
		cols := columnasAmortizacion(t)
		if _, ok := cols["monto"]; !ok {
			return true
		}
		_, conFecha := cols["fecha"]
		_, conTipo := cols["tipo"]
		if conFecha || conTipo {
			tabla = t
			return false
		}
		return true
	})
	return tabla
}

// columnasAmortizacion mapea clave canónica -> índice de columna según los
// th del encabezado. Sin thead asume el orden No/Monto/Fecha/Tipo.
func columnasAmortizacion(tabla *goquery.Selection) map[string]int {
	cols := map[string]int{}
	tabla.Find("thead th, thead td").Each(func(i int, th *goquery.Selection) {
		clave := utils.NormalizarClave(th.Text())
		switch {
		case clave == "no" || clave == "num" || clave == "numero":
			cols["no"] = i
		case strings.Contains(clave, "monto") || strings.Contains(clave, "importe"):
			cols["monto"] = i
		case strings.Contains(clave, "fecha"):
			cols["fecha"] = i
		case strings.Contains(clave, "tipo") || strings.Contains(clave, "concepto"):
			cols["tipo"] = i
		}
	})
	if len(cols) == 0 {
		cols["no"], cols["monto"], cols["fecha"], cols["tipo"] = 0, 1, 2, 3
	}
	return cols
}

func celda(celdas []string, idx int) string {
	if idx < 0 || idx >= len(celdas) {
		return ""
	}
	return celdas[idx]
}

// pagoIDFila busca el identificador del pago: input oculto, atributo data o
// query param de algún enlace de la fila.
func pagoIDFila(tr *goquery.Selection) string {
	if v := valorInputOculto(tr, "pago_id", "pagoId", "id_pago"); v != "" {
		return v
	}
	if v, ok := tr.Attr("data-pago-id"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	val := ""
	tr.Find("a[href*='pago_id='], a[href*='pagoId=']").EachWithBreak(func(i int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		for _, p := range []string{"pago_id=", "pagoId="} {
			if idx := strings.Index(href, p); idx >= 0 {
				resto := href[idx+len(p):]
				if amp := strings.IndexByte(resto, '&'); amp >= 0 {
					resto = resto[:amp]
				}
				if resto != "" {
					val = resto
					return false
				}
			}
		}
		return true
	})
	return val
}

func valorInputOculto(sel *goquery.Selection, nombres ...string) string {
	for _, n := range nombres {
		val := ""
		sel.Find("input[name='" + n + "']").EachWithBreak(func(i int, in *goquery.Selection) bool {
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
