package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config reúne toda la configuración de ambiente de los scripts de migración.
// Las URLs y credenciales son obligatorias para el script que las usa; su
// ausencia aborta la corrida con un mensaje claro, nunca con un default
// silencioso.
type Config struct {
	// ERP origen
	SourcePageURL  string
	SourceUsername string
	SourcePassword string

	// ERP destino
	TargetLoginURL        string
	TargetUsername        string
	TargetPassword        string
	TargetAddClientURL    string
	TargetSpecialQuoteURL string
	TargetListQuotesURL   string

	// Opcionales
	DatabaseURL string // archivo Postgres de auditoría, vacío = deshabilitado
	OutputDir   string
	MaxPaginas  int
	Headless    bool
	Dedupe      bool
}

// Load lee .env (si existe) y las variables de ambiente. Nunca falla: la
// validación de obligatorias es responsabilidad de cada script vía los
// métodos Requiere*.
func Load() *Config {
	// .env es opcional; las variables ya exportadas tienen prioridad
	_ = godotenv.Load()

	cfg := &Config{
		SourcePageURL:  os.Getenv("SOURCE_PAGE_URL"),
		SourceUsername: os.Getenv("SOURCE_USERNAME"),
		SourcePassword: os.Getenv("SOURCE_PASSWORD"),

		TargetLoginURL:        os.Getenv("TARGET_PAGE_LOGIN_URL"),
		TargetUsername:        os.Getenv("TARGET_USERNAME"),
		TargetPassword:        os.Getenv("TARGET_PASSWORD"),
		TargetAddClientURL:    os.Getenv("TARGET_PAGE_ADD_CLIENT_URL"),
		TargetSpecialQuoteURL: os.Getenv("TARGET_PAGE_ADD_SPECIAL_QUOTE_URL"),
		TargetListQuotesURL:   os.Getenv("TARGET_PAGE_LIST_QUOTES_URL"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		OutputDir:   os.Getenv("OUTPUT_DIR"),
		MaxPaginas:  entero("MAX_PAGES", 50),
		Headless:    booleano("HEADLESS", true),
		Dedupe:      booleano("DEDUPE", false),
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}
	return cfg
}

// RequiereFuente valida las variables necesarias para crawlear el ERP origen.
func (c *Config) RequiereFuente() error {
	return faltantes(map[string]string{
		"SOURCE_PAGE_URL": c.SourcePageURL,
		"SOURCE_USERNAME": c.SourceUsername,
		"SOURCE_PASSWORD": c.SourcePassword,
	})
}

// RequiereDestino valida las variables para crear clientes en el ERP destino.
func (c *Config) RequiereDestino() error {
	return faltantes(map[string]string{
		"TARGET_PAGE_LOGIN_URL":      c.TargetLoginURL,
		"TARGET_USERNAME":            c.TargetUsername,
		"TARGET_PASSWORD":            c.TargetPassword,
		"TARGET_PAGE_ADD_CLIENT_URL": c.TargetAddClientURL,
	})
}

// RequiereCotizador valida las variables para el flujo de cotización especial.
func (c *Config) RequiereCotizador() error {
	return faltantes(map[string]string{
		"TARGET_PAGE_LOGIN_URL":             c.TargetLoginURL,
		"TARGET_USERNAME":                   c.TargetUsername,
		"TARGET_PASSWORD":                   c.TargetPassword,
		"TARGET_PAGE_ADD_SPECIAL_QUOTE_URL": c.TargetSpecialQuoteURL,
	})
}

// RutaSalida resuelve un archivo dentro del directorio de salida.
func (c *Config) RutaSalida(nombre string) string {
	return filepath.Join(c.OutputDir, nombre)
}

func faltantes(vars map[string]string) error {
	var falta []string
	for nombre, valor := range vars {
		if strings.TrimSpace(valor) == "" {
			falta = append(falta, nombre)
		}
	}
	if len(falta) == 0 {
		return nil
	}
	return fmt.Errorf("variables de ambiente faltantes: %s", strings.Join(ordenadas(falta), ", "))
}

func ordenadas(vs []string) []string {
	for i := 1; i < len(vs); i++ {
		for j := i; j > 0 && vs[j] < vs[j-1]; j-- {
			vs[j], vs[j-1] = vs[j-1], vs[j]
		}
	}
	return vs
}

func entero(nombre string, def int) int {
	if v := os.Getenv(nombre); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func booleano(nombre string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(nombre)))
	switch v {
	case "1", "true", "t", "yes", "si", "sí":
		return true
	case "0", "false", "f", "no":
		return false
	}
	return def
}
