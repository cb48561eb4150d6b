package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Casado7/migration-script/pkg/models"
	"github.com/Casado7/migration-script/pkg/scraper"
)

// AlmacenClientes es el cache incremental de clients.json: un arreglo JSON
// de entradas {row, cliente, info_credito}. El archivo completo se reescribe
// después de cada entrada nueva; si el proceso muere a media corrida, lo ya
// extraído sobrevive y la siguiente corrida retoma desde ahí.
type AlmacenClientes struct {
	ruta     string
	entradas []models.EntradaCliente
	// Dedupe descarta entradas nuevas cuyo codigo_venta ya existe (gana la
	// última escritura). Apagado por omisión: las corridas históricas
	// esperaban duplicados visibles para auditarlos a mano.
	Dedupe bool
}

// AbrirAlmacen carga (o crea) el cache en la ruta dada.
func AbrirAlmacen(ruta string) (*AlmacenClientes, error) {
	a := &AlmacenClientes{ruta: ruta}
	if err := a.cargar(); err != nil {
		return nil, err
	}
	return a, nil
}

// Entradas devuelve las entradas cargadas, en orden de inserción.
func (a *AlmacenClientes) Entradas() []models.EntradaCliente {
	return a.entradas
}

// CodigosVenta devuelve el conjunto de codigo_venta ya presentes; los que no
// tienen código no aparecen.
func (a *AlmacenClientes) CodigosVenta() map[string]bool {
	vistos := make(map[string]bool, len(a.entradas))
	for _, e := range a.entradas {
		if cv := codigoVentaDe(e); cv != "" {
			vistos[cv] = true
		}
	}
	return vistos
}

// Contiene reporta si ya existe una entrada con ese codigo_venta.
func (a *AlmacenClientes) Contiene(codigoVenta string) bool {
	if codigoVenta == "" {
		return false
	}
	return a.CodigosVenta()[codigoVenta]
}

// Agregar añade una entrada y reescribe el archivo completo de inmediato.
// Con Dedupe activo, una entrada cuyo codigo_venta ya existe reemplaza a la
// anterior en lugar de duplicarla.
func (a *AlmacenClientes) Agregar(e models.EntradaCliente) error {
	if a.Dedupe {
		if cv := codigoVentaDe(e); cv != "" {
			for i := range a.entradas {
				if codigoVentaDe(a.entradas[i]) == cv {
					log.Printf("⚠️  codigo_venta %s ya estaba en el cache, reemplazando", cv)
					a.entradas[i] = e
					return a.Guardar()
				}
			}
		}
	}
	a.entradas = append(a.entradas, e)
	return a.Guardar()
}

// Guardar reescribe el archivo completo con las entradas en memoria.
func (a *AlmacenClientes) Guardar() error {
	if err := os.MkdirAll(filepath.Dir(a.ruta), 0o755); err != nil {
		return fmt.Errorf("error creando directorio de salida: %w", err)
	}
	data, err := json.MarshalIndent(a.entradas, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializando cache: %w", err)
	}
	if err := os.WriteFile(a.ruta, data, 0o644); err != nil {
		return fmt.Errorf("error escribiendo %s: %w", a.ruta, err)
	}
	return nil
}

// Resumen imprime cuántas entradas hay y cuántas comparten codigo_venta.
func (a *AlmacenClientes) Resumen() {
	vistos := map[string]int{}
	sinCodigo := 0
	for _, e := range a.entradas {
		cv := codigoVentaDe(e)
		if cv == "" {
			sinCodigo++
			continue
		}
		vistos[cv]++
	}
	duplicados := 0
	for _, n := range vistos {
		if n > 1 {
			duplicados += n - 1
		}
	}
	log.Printf("📄 Cache %s: %d entradas, %d códigos únicos, %d duplicadas, %d sin codigo_venta",
		a.ruta, len(a.entradas), len(vistos), duplicados, sinCodigo)
}

// cargar lee el archivo si existe y normaliza las tres formas históricas de
// entrada a la forma actual:
//
//  1. cliente a secas (el objeto Cliente directo, sin envoltura)
//  2. {row_html, cliente}: la fila guardada como HTML crudo
//  3. {row, cliente, info_credito}: la forma actual
func (a *AlmacenClientes) cargar() error {
	data, err := os.ReadFile(a.ruta)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error leyendo %s: %w", a.ruta, err)
	}
	if len(data) == 0 {
		return nil
	}

	var crudas []json.RawMessage
	if err := json.Unmarshal(data, &crudas); err != nil {
		return fmt.Errorf("el cache %s no es un arreglo JSON: %w", a.ruta, err)
	}

	for i, cruda := range crudas {
		entrada, err := normalizarEntrada(cruda)
		if err != nil {
			return fmt.Errorf("entrada %d del cache ilegible: %w", i, err)
		}
		a.entradas = append(a.entradas, entrada)
	}
	return nil
}

func normalizarEntrada(cruda json.RawMessage) (models.EntradaCliente, error) {
	// forma actual y forma legada row_html en una sola pasada
	var envoltura struct {
		Row         models.FilaCruda   `json:"row"`
		RowHTML     string             `json:"row_html"`
		Cliente     *models.Cliente    `json:"cliente"`
		InfoCredito models.InfoCredito `json:"info_credito"`
	}
	if err := json.Unmarshal(cruda, &envoltura); err != nil {
		return models.EntradaCliente{}, err
	}

	if envoltura.Cliente != nil {
		e := models.EntradaCliente{
			Row:         envoltura.Row,
			Cliente:     *envoltura.Cliente,
			InfoCredito: envoltura.InfoCredito,
		}
		if e.Row == nil && envoltura.RowHTML != "" {
			e.Row = scraper.FilaDesdeHTML(envoltura.RowHTML)
		}
		if e.Row == nil {
			e.Row = models.FilaCruda{}
		}
		return e, nil
	}

	// forma más vieja: el objeto cliente sin envoltura
	var cliente models.Cliente
	if err := json.Unmarshal(cruda, &cliente); err != nil {
		return models.EntradaCliente{}, err
	}
	return models.EntradaCliente{Row: models.FilaCruda{}, Cliente: cliente}, nil
}

func codigoVentaDe(e models.EntradaCliente) string {
	if e.Cliente.CodigoVenta != "" {
		return e.Cliente.CodigoVenta
	}
	return e.Row["codigo_venta"]
}
