package main

import (
	"log"
	"time"

	"github.com/Casado7/migration-script/pkg/browser"
	"github.com/Casado7/migration-script/pkg/config"
	"github.com/Casado7/migration-script/pkg/database"
	"github.com/Casado7/migration-script/pkg/models"
	"github.com/Casado7/migration-script/pkg/store"
	"github.com/Casado7/migration-script/pkg/target"
)

// insertar-clientes captura los clientes de converted_clients.json en el
// formulario de alta del ERP destino, uno por uno. Un cliente que falla no
// detiene el lote: queda en el resumen para reintentarlo a mano.
func main() {
	cfg := config.Load()
	if err := cfg.RequiereDestino(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	clientes, err := store.CargarTransformados(cfg.RutaSalida("converted_clients.json"))
	if err != nil {
		log.Fatalf("❌ %v; corre transformar-clientes primero", err)
	}
	log.Printf("📄 %d clientes por capturar", len(clientes))

	var archivo *database.ServicioArchivo
	if cfg.DatabaseURL != "" {
		archivo, err = database.NuevoServicioArchivo(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Error conectando al archivo Postgres: %v", err)
		}
		defer archivo.Close()
	}

	sesion, err := target.IniciarSesionDestino(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer sesion.Cerrar()

	resumen := &models.ResumenLote{Inicio: time.Now()}
	corrida := time.Now().Format("20060102-150405")
	ritmo := browser.RitmoPorDefecto()

	for i, c := range clientes {
		if i > 0 {
			time.Sleep(ritmo.PausaUnidad())
		}
		inicio := time.Now()
		err := target.InsertarCliente(sesion, cfg.TargetAddClientURL, c)

		var res models.Resultado
		if err != nil {
			log.Printf("❌ Cliente %d (%s %s): %v", i+1, c.Name, c.LastName, err)
			res = models.Fallido(i+1, c.CodigoVenta, err)
		} else {
			res = models.Ok(i+1, c.CodigoVenta)
		}
		res.Tiempo = time.Since(inicio).Seconds()
		resumen.Agregar(res)

		if archivo != nil {
			if err := archivo.RegistrarResultado(corrida, res); err != nil {
				log.Printf("⚠️  %v", err)
			}
		}
	}

	resumen.Fin = time.Now()
	resumen.Imprimir()
}
