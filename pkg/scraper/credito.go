package scraper

import (
	"strings"

	"github.com/Casado7/migration-script/pkg/models"
	"github.com/Casado7/migration-script/pkg/utils"
	"github.com/PuerkitoBio/goquery"
)

type asignacionCredito struct {
	clave      string
	porcentaje bool // la etiqueta lleva "%" (distingue Enganche de Enganche %)
	campo      func(ic *models.InfoCredito) *string
}

var etiquetasCredito = []asignacionCredito{
	{"desarrollo", false, func(ic *models.InfoCredito) *string { return &ic.Desarrollo }},
	{"unidad", false, func(ic *models.InfoCredito) *string { return &ic.Unidad }},
	{"etapa", false, func(ic *models.InfoCredito) *string { return &ic.Etapa }},
	{"superficie", false, func(ic *models.InfoCredito) *string { return &ic.Superficie }},
	{"precio_m2", false, func(ic *models.InfoCredito) *string { return &ic.PrecioM2 }},
	{"precio_lista", false, func(ic *models.InfoCredito) *string { return &ic.PrecioLista }},
	{"plan_de_pago", false, func(ic *models.InfoCredito) *string { return &ic.PlanDePago }},
	{"cuota_de_apertura", false, func(ic *models.InfoCredito) *string { return &ic.CuotaDeApertura }},
	{"descuento", true, func(ic *models.InfoCredito) *string { return &ic.DescuentoPct }},
	{"descuento_m2", false, func(ic *models.InfoCredito) *string { return &ic.DescuentoM2 }},
	{"moneda_del_contrato", false, func(ic *models.InfoCredito) *string { return &ic.MonedaDelContrato }},
	{"precio_venta", false, func(ic *models.InfoCredito) *string { return &ic.PrecioVenta }},
	{"enganche", true, func(ic *models.InfoCredito) *string { return &ic.EnganchePct }},
	{"enganche", false, func(ic *models.InfoCredito) *string { return &ic.Enganche }},
	{"financiamiento", true, func(ic *models.InfoCredito) *string { return &ic.FinanciamientoPct }},
	{"financiamiento", false, func(ic *models.InfoCredito) *string { return &ic.Financiamiento }},
	{"costo_escritura", false, func(ic *models.InfoCredito) *string { return &ic.CostoEscritura }},
}

// ExtraerInfoCredito extrae los términos del crédito de la página de detalle.
// Primero busca la tabla bajo el encabezado "Información del Crédito"; si la
// página cambió de estructura, barre todas las tablas aplicando solo las
// etiquetas conocidas. Los montos se guardan con su formato original (comas,
// signos %); la normalización es responsabilidad del consumidor.
func ExtraerInfoCredito(doc *goquery.Document) models.InfoCredito {
	var ic models.InfoCredito

	if tabla := tablaCredito(doc); tabla != nil {
		aplicarFilasCredito(&ic, tabla)
	}

	// barrido completo como red de seguridad; solo llena campos vacíos
	doc.Find("table").Each(func(i int, t *goquery.Selection) {
		aplicarFilasCredito(&ic, t)
	})

	return ic
}

// tablaCredito localiza la tabla inmediata al encabezado del bloque de crédito.
func tablaCredito(doc *goquery.Document) *goquery.Selection {
	var tabla *goquery.Selection
	doc.Find("h1,h2,h3,h4,h5,legend,strong,b").EachWithBreak(func(i int, h *goquery.Selection) bool {
		texto := strings.ToLower(utils.QuitarAcentos(h.Text()))
		if !strings.Contains(texto, "informacion del credito") && !strings.Contains(texto, "terminos del credito") {
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
	return tabla
}

// aplicarFilasCredito recorre las filas de la tabla como pares
// etiqueta/valor. Tolera una columna inicial vacía (el ERP origen la usa de
// sangría): el ancla es la primera celda con texto. Solo asigna campos que
// siguen vacíos, así la tabla del bloque dedicado gana sobre el barrido.
func aplicarFilasCredito(ic *models.InfoCredito, tabla *goquery.Selection) {
	tabla.Find("tr").Each(func(i int, tr *goquery.Selection) {
		var celdas []string
		tr.Find("th,td").Each(func(j int, c *goquery.Selection) {
			celdas = append(celdas, strings.TrimSpace(c.Text()))
		})
		for len(celdas) > 0 && celdas[0] == "" {
			celdas = celdas[1:]
		}
		if filaPorcentajeMonto(ic, celdas) {
			return
		}
		for k := 0; k+1 < len(celdas); k += 2 {
			asignarCampoCredito(ic, celdas[k], celdas[k+1])
		}
	})
}

// filaPorcentajeMonto asigna las filas de tres columnas que el ERP origen usa
// para descuento, enganche y financiamiento: [etiqueta, porcentaje, monto].
// Sin este caso el par %/monto se leería como dos pares etiqueta/valor y el
// porcentaje caería en el campo del monto.
func filaPorcentajeMonto(ic *models.InfoCredito, celdas []string) bool {
	if len(celdas) != 3 {
		return false
	}
	var pct, monto *string
	switch utils.NormalizarClave(celdas[0]) {
	case "descuento":
		pct, monto = &ic.DescuentoPct, &ic.DescuentoM2
	case "enganche":
		pct, monto = &ic.EnganchePct, &ic.Enganche
	case "financiamiento":
		pct, monto = &ic.FinanciamientoPct, &ic.Financiamiento
	default:
		return false
	}
	if *pct == "" && celdas[1] != "" {
		*pct = celdas[1]
	}
	if *monto == "" && celdas[2] != "" {
		*monto = celdas[2]
	}
	return true
}

func asignarCampoCredito(ic *models.InfoCredito, etiqueta, valor string) {
	if valor == "" {
		return
	}
	clave := utils.NormalizarClave(etiqueta)
	pct := strings.Contains(etiqueta, "%")
	for _, e := range etiquetasCredito {
		if e.clave != clave || e.porcentaje != pct {
			continue
		}
		if campo := e.campo(ic); *campo == "" {
			*campo = valor
		}
		return
	}
}
