package transform

import (
	"strings"

	"github.com/Casado7/migration-script/pkg/utils"
)

// OcupacionNoEspecificada es la categoría por defecto cuando ninguna regla
// aplica.
const OcupacionNoEspecificada = "NO ESPECIFICADOS Y NO DECLARADOS"

// reglaOcupacion mapea un conjunto de palabras clave a una categoría laboral
// del catálogo cerrado del ERP destino.
type reglaOcupacion struct {
	claves    []string
	categoria string
}

// reglasOcupacion se evalúa en orden: la primera regla que matchea gana.
// Las reglas específicas van antes que las generales; el orden importa y
// debe preservarse para reproducir la clasificación esperada.
var reglasOcupacion = []reglaOcupacion{
	{[]string{"ama de casa", "labores del hogar", "hogar", "labores domestic"}, "AMA DE CASA"},
	{[]string{"estudiante"}, "ESTUDIANTES"},
	{[]string{"jubilad", "pensionad", "retirad"}, "JUBILADOS Y PENSIONADOS"},
	{[]string{"ingenier", "abog", "medic", "doctor", "arquitect", "contador", "contadur", "licenciad", "quimic", "psicolog", "veterinari", "economista", "dentista", "odontolog", "enfermer"}, "PROFESIONISTAS"},
	{[]string{"maestr", "profesor", "docente", "educador"}, "TRABAJADORES DE LA EDUCACION"},
	{[]string{"empresari", "directiv", "gerente", "propietari", "socio"}, "FUNCIONARIOS Y DIRECTIVOS"},
	{[]string{"funcionari", "servidor public"}, "FUNCIONARIOS Y DIRECTIVOS"},
	{[]string{"comerciante", "vendedor", "ventas", "despachador"}, "COMERCIANTES Y AGENTES DE VENTAS"},
	{[]string{"agricult", "campesin", "ganader", "pescador", "ejidatari"}, "TRABAJADORES AGROPECUARIOS"},
	{[]string{"tecnic", "mecanic", "electricista", "soldador", "programador"}, "TECNICOS"},
	{[]string{"chofer", "conductor", "taxista", "transportista", "operador de transporte"}, "CONDUCTORES DE MAQUINARIA Y TRANSPORTE"},
	{[]string{"albanil", "construccion", "plomero", "pintor de casas"}, "TRABAJADORES DE LA CONSTRUCCION"},
	{[]string{"artesan", "carpinter", "herrer", "panader", "sastre", "zapater"}, "ARTESANOS Y OBREROS"},
	{[]string{"obrer", "jornaler", "ayudante general", "maquilador"}, "ARTESANOS Y OBREROS"},
	{[]string{"secretari", "oficinista", "administrativ", "recepcionista", "cajero", "auxiliar"}, "OFICINISTAS"},
	{[]string{"polici", "militar", "soldado", "marino", "vigilante", "guardia"}, "PROTECCION Y VIGILANCIA Y FUERZAS ARMADAS"},
	{[]string{"cociner", "mesero", "chef", "barman", "camarista"}, "TRABAJADORES EN SERVICIOS PERSONALES"},
	{[]string{"artista", "music", "pintor", "actor", "deportista", "futbolista"}, "TRABAJADORES DEL ARTE, ESPECTACULOS Y DEPORTES"},
	{[]string{"independiente", "por su cuenta", "por cuenta propia", "freelance"}, "TRABAJADORES POR CUENTA PROPIA"},
	{[]string{"empleado", "empleada", "trabajador"}, "EMPLEADOS EN GENERAL"},
}

// ClasificarOcupacion normaliza el texto libre de ocupación (sin acentos,
// minúsculas) y lo prueba contra las reglas en orden. Sin match devuelve
// OcupacionNoEspecificada.
func ClasificarOcupacion(texto string) string {
	t := strings.ToLower(strings.TrimSpace(utils.QuitarAcentos(texto)))
	if t == "" {
		return OcupacionNoEspecificada
	}
	for _, regla := range reglasOcupacion {
		for _, clave := range regla.claves {
			if strings.Contains(t, clave) {
				return regla.categoria
			}
		}
	}
	return OcupacionNoEspecificada
}
