package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Casado7/migration-script/pkg/models"
)

// GuardarDiagnostico escribe skip_rows_debug.json con las filas que el
// extractor no pudo parsear, para inspección manual.
func GuardarDiagnostico(ruta string, omitidas []models.FilaOmitida) error {
	if len(omitidas) == 0 {
		return nil
	}
	return escribirJSON(ruta, omitidas)
}

// CargarCotizaciones lee rows_info.json. Acepta tanto un arreglo de
// cotizaciones como un objeto único (las exportaciones viejas guardaban una
// sola cotización sin corchetes).
func CargarCotizaciones(ruta string) ([]models.Cotizacion, error) {
	data, err := os.ReadFile(ruta)
	if err != nil {
		return nil, fmt.Errorf("error leyendo %s: %w", ruta, err)
	}

	var lista []models.Cotizacion
	if err := json.Unmarshal(data, &lista); err == nil {
		return lista, nil
	}

	var una models.Cotizacion
	if err := json.Unmarshal(data, &una); err != nil {
		return nil, fmt.Errorf("%s no es ni arreglo ni objeto de cotización: %w", ruta, err)
	}
	return []models.Cotizacion{una}, nil
}

// GuardarTransformados escribe converted_clients.json.
func GuardarTransformados(ruta string, clientes []models.ClienteTransformado) error {
	return escribirJSON(ruta, clientes)
}

// CargarTransformados lee converted_clients.json.
func CargarTransformados(ruta string) ([]models.ClienteTransformado, error) {
	data, err := os.ReadFile(ruta)
	if err != nil {
		return nil, fmt.Errorf("error leyendo %s: %w", ruta, err)
	}
	var clientes []models.ClienteTransformado
	if err := json.Unmarshal(data, &clientes); err != nil {
		return nil, fmt.Errorf("%s no es un arreglo de clientes transformados: %w", ruta, err)
	}
	return clientes, nil
}

func escribirJSON(ruta string, v any) error {
	if err := os.MkdirAll(filepath.Dir(ruta), 0o755); err != nil {
		return fmt.Errorf("error creando directorio de salida: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializando %s: %w", ruta, err)
	}
	if err := os.WriteFile(ruta, data, 0o644); err != nil {
		return fmt.Errorf("error escribiendo %s: %w", ruta, err)
	}
	return nil
}
