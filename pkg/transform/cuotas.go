package transform

import (
	"fmt"
	"strings"

	"github.com/Casado7/migration-script/pkg/models"
	"github.com/Casado7/migration-script/pkg/utils"
)

// ConstruirCuotas convierte las filas de amortización en el plan de captura
// de la tabla de pagos: montos sin comas ni %, y conceptos "Mensualidad N"
// numerados en orden de aparición. El tipo Enganche (o cualquier otro)
// conserva su etiqueta tal cual.
func ConstruirCuotas(amortizacion []models.FilaAmortizacion) []models.Cuota {
	cuotas := make([]models.Cuota, 0, len(amortizacion))
	mensualidades := 0

	for _, fila := range amortizacion {
		tipo := strings.TrimSpace(fila.Tipo)
		monto := fila.Monto
		if monto == "" {
			monto = fila.MontoRaw
		}
		monto = utils.NormalizarMonto(monto)

		concepto := tipo
		tipoVal := tipo
		if strings.EqualFold(tipo, "mensualidad") {
			mensualidades++
			concepto = fmt.Sprintf("Mensualidad %d", mensualidades)
			tipoVal = "Mensualidad"
		}

		cuotas = append(cuotas, models.Cuota{
			Tipo:     tipoVal,
			Concepto: concepto,
			Monto:    monto,
		})
	}
	return cuotas
}
