package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Casado7/migration-script/pkg/config"
	"github.com/Casado7/migration-script/pkg/scraper"
	"github.com/Casado7/migration-script/pkg/store"
	"github.com/PuerkitoBio/goquery"
)

// comparar-salidas cruza los códigos de venta visibles en el listado
// guardado (table.html) contra el cache clients.json y reporta qué ventas
// quedaron sin extraer y qué entradas del cache ya no aparecen en el
// listado. Es la verificación de cobertura tras una corrida de extracción.
func main() {
	cfg := config.Load()

	codigosTabla, err := codigosDeTabla(cfg.RutaSalida("table.html"))
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	almacen, err := store.AbrirAlmacen(cfg.RutaSalida("clients.json"))
	if err != nil {
		log.Fatalf("❌ Error abriendo el cache: %v", err)
	}
	extraidos := almacen.CodigosVenta()

	var sinExtraer, sinListar []string
	for cv := range codigosTabla {
		if !extraidos[cv] {
			sinExtraer = append(sinExtraer, cv)
		}
	}
	for cv := range extraidos {
		if !codigosTabla[cv] {
			sinListar = append(sinListar, cv)
		}
	}

	fmt.Printf("En tabla: %d | En cache: %d\n", len(codigosTabla), len(extraidos))
	if len(sinExtraer) == 0 && len(sinListar) == 0 {
		fmt.Println("✅ El cache cubre todo el listado")
		return
	}
	for _, cv := range sinExtraer {
		fmt.Printf("❌ %s listado pero sin extraer\n", cv)
	}
	for _, cv := range sinListar {
		fmt.Printf("⚠️  %s en cache pero ausente del listado\n", cv)
	}
}

// codigosDeTabla lista los codigo_venta de un listado HTML guardado.
func codigosDeTabla(ruta string) (map[string]bool, error) {
	data, err := os.ReadFile(ruta)
	if err != nil {
		return nil, fmt.Errorf("error leyendo %s: %w", ruta, err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%s no es HTML legible: %w", ruta, err)
	}

	// el snapshot concatena la tabla de cada página; se recorren todas
	codigos := map[string]bool{}
	doc.Find("table tbody tr").Each(func(i int, tr *goquery.Selection) {
		fila := scraper.FilaDesdeSeleccion(tr)
		if cv := fila["codigo_venta"]; cv != "" {
			codigos[cv] = true
		}
	})
	return codigos, nil
}
