package main

import (
	"log"

	"github.com/Casado7/migration-script/pkg/config"
	"github.com/Casado7/migration-script/pkg/store"
)

// contar-clientes imprime el estado del cache: total de entradas, códigos de
// venta únicos, duplicados y entradas sin código. Útil antes y después de
// una corrida de extracción.
func main() {
	cfg := config.Load()

	almacen, err := store.AbrirAlmacen(cfg.RutaSalida("clients.json"))
	if err != nil {
		log.Fatalf("❌ Error abriendo el cache: %v", err)
	}
	almacen.Resumen()
}
