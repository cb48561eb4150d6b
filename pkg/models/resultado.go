package models

import (
	"fmt"
	"time"
)

// EstadoResultado clasifica el desenlace de una unidad de trabajo
// (una fila, un cliente, una cotización).
type EstadoResultado string

const (
	ResultadoOk      EstadoResultado = "ok"
	ResultadoOmitido EstadoResultado = "omitido"
	ResultadoFallido EstadoResultado = "fallido"
)

// Resultado es el desenlace de una unidad de trabajo. "Elemento no encontrado"
// y similares son desenlaces esperados, no excepciones: se reportan aquí y el
// lote continúa.
type Resultado struct {
	Indice  int             `json:"indice"`
	Clave   string          `json:"clave,omitempty"` // codigo_venta u otro identificador
	Estado  EstadoResultado `json:"estado"`
	Detalle string          `json:"detalle,omitempty"`
	Tiempo  float64         `json:"tiempo_segundos,omitempty"`
}

// Ok construye un resultado exitoso.
func Ok(indice int, clave string) Resultado {
	return Resultado{Indice: indice, Clave: clave, Estado: ResultadoOk}
}

// Omitido construye un resultado de fila saltada con su razón.
func Omitido(indice int, clave, razon string) Resultado {
	return Resultado{Indice: indice, Clave: clave, Estado: ResultadoOmitido, Detalle: razon}
}

// Fallido construye un resultado de falla con el error asociado.
func Fallido(indice int, clave string, err error) Resultado {
	detalle := ""
	if err != nil {
		detalle = err.Error()
	}
	return Resultado{Indice: indice, Clave: clave, Estado: ResultadoFallido, Detalle: detalle}
}

// ResumenLote agrega los resultados de una corrida completa.
type ResumenLote struct {
	Total      int         `json:"total"`
	Exitosos   int         `json:"exitosos"`
	Omitidos   int         `json:"omitidos"`
	Fallidos   int         `json:"fallidos"`
	Resultados []Resultado `json:"resultados"`
	Inicio     time.Time   `json:"inicio"`
	Fin        time.Time   `json:"fin"`
}

// Agregar suma un resultado al resumen.
func (r *ResumenLote) Agregar(res Resultado) {
	r.Total++
	switch res.Estado {
	case ResultadoOk:
		r.Exitosos++
	case ResultadoOmitido:
		r.Omitidos++
	default:
		r.Fallidos++
	}
	r.Resultados = append(r.Resultados, res)
}

// Imprimir escribe el resumen legible para el operador.
func (r *ResumenLote) Imprimir() {
	fmt.Printf("\n=== RESUMEN DEL LOTE ===\n")
	fmt.Printf("Total: %d | ✅ %d | ⚠️ omitidos %d | ❌ fallidos %d\n",
		r.Total, r.Exitosos, r.Omitidos, r.Fallidos)
	for _, res := range r.Resultados {
		if res.Estado == ResultadoOk {
			continue
		}
		fmt.Printf("  - [%d] %s (%s): %s\n", res.Indice, res.Clave, res.Estado, res.Detalle)
	}
	if !r.Fin.IsZero() && !r.Inicio.IsZero() {
		fmt.Printf("Duración: %.1fs\n", r.Fin.Sub(r.Inicio).Seconds())
	}
}

// FilaOmitida es una entrada del archivo de diagnóstico skip_rows_debug.json:
// filas de la tabla que el crawler no pudo resolver.
type FilaOmitida struct {
	RowIndex int    `json:"row_index"`
	Pagina   int    `json:"pagina,omitempty"`
	Reason   string `json:"reason"`
	RowHTML  string `json:"row_html,omitempty"`
}
