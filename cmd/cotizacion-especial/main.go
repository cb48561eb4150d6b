package main

import (
	"log"
	"time"

	"github.com/Casado7/migration-script/pkg/browser"
	"github.com/Casado7/migration-script/pkg/config"
	"github.com/Casado7/migration-script/pkg/models"
	"github.com/Casado7/migration-script/pkg/store"
	"github.com/Casado7/migration-script/pkg/target"
	"github.com/Casado7/migration-script/pkg/transform"
)

// cotizacion-especial crea cotizaciones en el ERP destino a partir de
// rows_info.json: selecciona desarrollo y unidad en el carrusel y captura el
// plan de pagos (enganche + mensualidades numeradas) en la tabla dinámica.
func main() {
	cfg := config.Load()
	if err := cfg.RequiereCotizador(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	cotizaciones, err := store.CargarCotizaciones(cfg.RutaSalida("rows_info.json"))
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Printf("📄 %d cotizaciones por capturar", len(cotizaciones))

	sesion, err := target.IniciarSesionDestino(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer sesion.Cerrar()

	resumen := &models.ResumenLote{Inicio: time.Now()}

	for i, cot := range cotizaciones {
		clave := cot.InfoCredito.Unidad
		if err := capturarCotizacion(sesion, cfg, cot); err != nil {
			log.Printf("❌ Cotización %d (%s): %v", i+1, clave, err)
			resumen.Agregar(models.Fallido(i+1, clave, err))
			continue
		}
		resumen.Agregar(models.Ok(i+1, clave))
	}

	resumen.Fin = time.Now()
	resumen.Imprimir()
}

func capturarCotizacion(sesion *browser.Sesion, cfg *config.Config, cot models.Cotizacion) error {
	if err := sesion.Navegar(cfg.TargetSpecialQuoteURL); err != nil {
		return err
	}
	page := sesion.Pagina()

	if err := target.SeleccionarLote(page, cot.InfoCredito.Desarrollo, cot.InfoCredito.Unidad); err != nil {
		return err
	}

	cuotas := transform.ConstruirCuotas(cot.Amortizacion)
	if len(cuotas) == 0 {
		log.Printf("⚠️  Cotización sin plan de amortización, se captura sin cuotas")
		return nil
	}
	return target.LlenarTablaPagos(page, cuotas)
}
