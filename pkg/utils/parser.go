package utils

import (
	"regexp"
	"strings"
)

var numeroRe = regexp.MustCompile(`[\d.,]+`)

// PrimerTokenNumerico devuelve el primer token numérico (dígitos, comas,
// puntos) encontrado en s, o cadena vacía.
// Ejemplo: "$ 2,229.58 MXN" -> "2,229.58"
func PrimerTokenNumerico(s string) string {
	if s == "" {
		return ""
	}
	return numeroRe.FindString(s)
}

// NormalizarMonto limpia un monto para capturarse en un input numérico:
// remueve signos de porcentaje y comas.
// Ejemplo: "1,000.00" -> "1000.00", "20%" -> "20"
func NormalizarMonto(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "%", "")
	s = strings.ReplaceAll(s, ",", "")
	return s
}

// SoloDigitos remueve todo lo que no sea dígito.
// Ejemplo: "(999) 123-45-67" -> "9991234567"
func SoloDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var claveRe = regexp.MustCompile(`[^0-9a-z]+`)

// NormalizarClave convierte un encabezado de columna a su clave canónica.
// Ejemplo: "Fecha Venta" -> "fecha_venta", "Código Venta" -> "codigo_venta"
func NormalizarClave(s string) string {
	s = strings.ToLower(strings.TrimSpace(QuitarAcentos(s)))
	s = claveRe.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

var acentos = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "Ü", "U", "Ñ", "N",
)

// QuitarAcentos reemplaza las vocales acentuadas y la ñ por su forma plana.
func QuitarAcentos(s string) string {
	return acentos.Replace(s)
}

// ReformatearFecha convierte YYYY-MM-DD a DD-MM-YYYY. Cualquier otro formato
// se devuelve sin cambios.
func ReformatearFecha(fecha string) string {
	if fecha == "" {
		return ""
	}
	parts := strings.Split(fecha, "-")
	if len(parts) == 3 && len(parts[0]) == 4 {
		return parts[2] + "-" + parts[1] + "-" + parts[0]
	}
	return fecha
}

var (
	fechaISORe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	decimalRe  = regexp.MustCompile(`\d+[.,]\d{2}`)
)

// TieneMarcadorDeDatos reporta si el texto contiene algún indicio de contenido
// ya renderizado: una fecha ISO, un signo de moneda/porcentaje o un decimal
// con centavos. Se usa para decidir si reintentar la lectura de una tabla que
// aún está cargando.
func TieneMarcadorDeDatos(texto string) bool {
	if strings.Contains(texto, "$") || strings.Contains(texto, "%") {
		return true
	}
	if fechaISORe.MatchString(texto) {
		return true
	}
	return decimalRe.MatchString(texto)
}
