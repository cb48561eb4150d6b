package main

import (
	"log"

	"github.com/Casado7/migration-script/pkg/config"
	"github.com/Casado7/migration-script/pkg/store"
	"github.com/Casado7/migration-script/pkg/transform"
)

// transformar-clientes convierte el cache crudo (clients.json) en el formato
// que consume el formulario de alta del destino (converted_clients.json):
// nombre separado en partes, ocupación clasificada, teléfonos y fechas
// normalizados y placeholders en los obligatorios vacíos.
func main() {
	cfg := config.Load()

	almacen, err := store.AbrirAlmacen(cfg.RutaSalida("clients.json"))
	if err != nil {
		log.Fatalf("❌ Error abriendo el cache: %v", err)
	}

	entradas := almacen.Entradas()
	if len(entradas) == 0 {
		log.Fatalf("❌ El cache está vacío; corre extraer-clientes primero")
	}

	transformados := transform.TransformarLote(entradas, transform.Opciones{})

	destino := cfg.RutaSalida("converted_clients.json")
	if err := store.GuardarTransformados(destino, transformados); err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Printf("✅ %d clientes transformados en %s", len(transformados), destino)
}
