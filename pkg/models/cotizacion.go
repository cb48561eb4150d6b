package models

// FilaAmortizacion es una línea del plan de pagos extraída de la
// "Tabla de Amortización" del ERP origen.
type FilaAmortizacion struct {
	No       string `json:"no"`
	Monto    string `json:"monto"`
	MontoRaw string `json:"monto_raw"`
	Fecha    string `json:"fecha"`
	Tipo     string `json:"tipo"` // Enganche | Mensualidad | otro
	PagoID   string `json:"pago_id"`
}

// Cotizacion es el payload de una cotización leído de rows_info.json.
type Cotizacion struct {
	Row          FilaCruda          `json:"row,omitempty"`
	Cliente      *Cliente           `json:"cliente,omitempty"`
	InfoCredito  InfoCredito        `json:"info_credito"`
	Amortizacion []FilaAmortizacion `json:"amortizacion"`
}

// Cuota es una fila lista para capturarse en la tabla de pagos del destino.
type Cuota struct {
	Tipo     string // valor del select (Enganche / Mensualidad)
	Concepto string // etiqueta visible (Enganche, Mensualidad 1, ...)
	Monto    string // monto sin comas ni %
}
