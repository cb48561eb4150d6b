package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/Casado7/migration-script/pkg/browser"
	"github.com/Casado7/migration-script/pkg/config"
	"github.com/Casado7/migration-script/pkg/database"
	"github.com/Casado7/migration-script/pkg/models"
	"github.com/Casado7/migration-script/pkg/scraper"
	"github.com/Casado7/migration-script/pkg/store"
	"github.com/PuerkitoBio/goquery"
)

// extraer-clientes recorre el listado de ventas del ERP origen página por
// página, abre el detalle de cada venta en una pestaña secundaria y guarda
// cliente + términos de crédito en clients.json. El cache se reescribe tras
// cada entrada: si la corrida muere a la mitad, lo extraído sobrevive y la
// siguiente corrida salta lo ya visto.
func main() {
	cfg := config.Load()
	if err := cfg.RequiereFuente(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	almacen, err := store.AbrirAlmacen(cfg.RutaSalida("clients.json"))
	if err != nil {
		log.Fatalf("❌ Error abriendo el cache: %v", err)
	}
	almacen.Dedupe = cfg.Dedupe
	almacen.Resumen()

	var archivo *database.ServicioArchivo
	if cfg.DatabaseURL != "" {
		archivo, err = database.NuevoServicioArchivo(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Error conectando al archivo Postgres: %v", err)
		}
		defer archivo.Close()
		log.Printf("✅ Archivo Postgres habilitado")
	}

	sesion, err := browser.NuevaSesion(browser.Opciones{Headless: cfg.Headless})
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer sesion.Cerrar()

	if err := sesion.IniciarSesion(cfg.SourcePageURL, cfg.SourceUsername, cfg.SourcePassword); err != nil {
		log.Fatalf("❌ Error iniciando sesión en el origen: %v", err)
	}

	vistos := almacen.CodigosVenta()
	log.Printf("📄 %d ventas ya extraídas en corridas anteriores", len(vistos))

	resumen := &models.ResumenLote{Inicio: time.Now()}
	var diagnostico []models.FilaOmitida
	var tablas []string

	paginador := scraper.NuevoPaginador(sesion.Pagina(), cfg.MaxPaginas)
	indice := 0

	for {
		doc, err := scraper.DocumentoConDatos(sesion.Pagina())
		if err != nil {
			log.Fatalf("❌ Error leyendo la página %d: %v", paginador.PaginaActual(), err)
		}

		if tabla := scraper.EncontrarTablaPrincipal(doc); tabla != nil {
			if html, err := goquery.OuterHtml(tabla); err == nil {
				tablas = append(tablas, html)
			}
		}

		filas, omitidas := scraper.ExtraerListado(doc, cfg.SourcePageURL)
		for i := range omitidas {
			omitidas[i].Pagina = paginador.PaginaActual()
		}
		diagnostico = append(diagnostico, omitidas...)
		log.Printf("📄 Página %d: %d filas, %d omitidas", paginador.PaginaActual(), len(filas), len(omitidas))

		for _, fl := range filas {
			indice++
			codigo := fl.Fila["codigo_venta"]

			if codigo != "" && vistos[codigo] {
				resumen.Agregar(models.Omitido(indice, codigo, "ya extraído en corrida anterior"))
				continue
			}
			if fl.EnlaceDetalle == "" {
				resumen.Agregar(models.Omitido(indice, codigo, "fila sin enlace de detalle"))
				diagnostico = append(diagnostico, models.FilaOmitida{
					RowIndex: indice,
					Reason:   "fila sin enlace de detalle",
					RowHTML:  fl.HTML,
				})
				continue
			}

			entrada, err := extraerDetalle(sesion, fl)
			if err != nil {
				log.Printf("❌ Venta %s: %v", codigo, err)
				resumen.Agregar(models.Fallido(indice, codigo, err))
				continue
			}

			if err := almacen.Agregar(entrada); err != nil {
				log.Fatalf("❌ Error guardando el cache: %v", err)
			}
			if cv := entrada.Cliente.CodigoVenta; cv != "" {
				vistos[cv] = true
			}
			if archivo != nil {
				if err := archivo.ArchivarEntrada(entrada); err != nil {
					log.Printf("⚠️  Archivo Postgres falló para %s: %v", codigo, err)
				}
			}
			resumen.Agregar(models.Ok(indice, codigo))
		}

		avanzo, err := paginador.Avanzar()
		if err != nil {
			log.Printf("⚠️  Error avanzando de página: %v", err)
			break
		}
		if !avanzo {
			break
		}
	}

	if err := store.GuardarDiagnostico(cfg.RutaSalida("skip_rows_debug.json"), diagnostico); err != nil {
		log.Printf("⚠️  No se pudo escribir el diagnóstico: %v", err)
	}
	// snapshot del listado completo, para comparar-salidas
	snapshot := "<html><body>\n" + strings.Join(tablas, "\n") + "\n</body></html>\n"
	_ = os.MkdirAll(cfg.OutputDir, 0o755)
	if err := os.WriteFile(cfg.RutaSalida("table.html"), []byte(snapshot), 0o644); err != nil {
		log.Printf("⚠️  No se pudo escribir table.html: %v", err)
	}

	resumen.Fin = time.Now()
	resumen.Imprimir()
	almacen.Resumen()
}

// extraerDetalle abre la página de detalle en la pestaña secundaria, extrae
// cliente y crédito, y cierra la pestaña regresando al listado.
func extraerDetalle(sesion *browser.Sesion, fl scraper.FilaListado) (models.EntradaCliente, error) {
	pagina, err := sesion.AbrirSecundaria(fl.EnlaceDetalle)
	if err != nil {
		return models.EntradaCliente{}, err
	}
	defer sesion.CerrarSecundaria()

	doc, err := scraper.DocumentoConDatos(pagina)
	if err != nil {
		return models.EntradaCliente{}, err
	}

	cliente := scraper.ExtraerCliente(doc)
	if cliente.CodigoVenta == "" {
		cliente.CodigoVenta = fl.Fila["codigo_venta"]
	}

	return models.EntradaCliente{
		Row:         fl.Fila,
		Cliente:     cliente,
		InfoCredito: scraper.ExtraerInfoCredito(doc),
	}, nil
}
