package main

import (
	"log"

	"github.com/Casado7/migration-script/pkg/config"
	"github.com/Casado7/migration-script/pkg/store"
)

// convertir-cache migra clients.json a la forma actual de entrada. Las
// corridas viejas guardaron entradas como el cliente a secas o como
// {row_html, cliente}; abrir y reescribir el archivo las normaliza todas a
// {row, cliente, info_credito}.
func main() {
	cfg := config.Load()

	almacen, err := store.AbrirAlmacen(cfg.RutaSalida("clients.json"))
	if err != nil {
		log.Fatalf("❌ Error abriendo el cache: %v", err)
	}

	if err := almacen.Guardar(); err != nil {
		log.Fatalf("❌ Error reescribiendo el cache: %v", err)
	}

	log.Printf("✅ Cache normalizado a la forma actual")
	almacen.Resumen()
}
