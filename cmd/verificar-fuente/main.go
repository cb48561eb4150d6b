package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Casado7/migration-script/pkg/config"
	"github.com/Casado7/migration-script/pkg/scraper"
	"github.com/Casado7/migration-script/pkg/utils"
	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

// verificar-fuente es el chequeo previo a una corrida de extracción: abre la
// página del ERP origen, confirma que responde y que el login sigue teniendo
// la forma esperada. No inicia sesión ni extrae nada.
func main() {
	cfg := config.Load()
	if cfg.SourcePageURL == "" {
		log.Fatalf("❌ SOURCE_PAGE_URL no está definida")
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	ctx, cancelTimeout := context.WithTimeout(ctx, 60*time.Second)
	defer cancelTimeout()

	var titulo, html string
	err := chromedp.Run(ctx,
		chromedp.Navigate(cfg.SourcePageURL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.Sleep(2*time.Second),
		chromedp.Title(&titulo),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		log.Fatalf("❌ El ERP origen no respondió: %v", err)
	}

	log.Printf("✅ Página accesible: %q", titulo)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Fatalf("❌ HTML ilegible: %v", err)
	}

	usuarios := doc.Find("input[type='text'], input[type='email'], input[name='username'], input[name='usuario']").Length()
	passwords := doc.Find("input[type='password']").Length()
	if usuarios == 0 || passwords == 0 {
		log.Fatalf("❌ El formulario de login cambió: %d campos de usuario, %d de contraseña", usuarios, passwords)
	}
	log.Printf("✅ Formulario de login presente (%d/%d campos)", usuarios, passwords)

	if tabla := scraper.EncontrarTablaPrincipal(doc); tabla != nil {
		filas, _ := scraper.ExtraerFilas(doc)
		log.Printf("📄 La página ya muestra una tabla con %d filas (sesión activa?)", len(filas))
	}

	if utils.TieneMarcadorDeDatos(html) {
		log.Printf("🔍 La página muestra marcadores de datos antes del login; revisar permisos")
	}
	log.Printf("✅ Verificación completa")
}
