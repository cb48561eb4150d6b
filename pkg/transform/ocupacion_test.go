package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClasificarOcupacion(t *testing.T) {
	casos := []struct {
		texto     string
		categoria string
	}{
		{"Ama de casa", "AMA DE CASA"},
		{"LABORES DEL HOGAR", "AMA DE CASA"},
		{"Ingeniero Civil", "PROFESIONISTAS"},
		{"Abogado", "PROFESIONISTAS"},
		{"Médico cirujano", "PROFESIONISTAS"},
		{"Estudiante de derecho", "ESTUDIANTES"},
		{"Jubilado", "JUBILADOS Y PENSIONADOS"},
		{"Maestra de primaria", "TRABAJADORES DE LA EDUCACION"},
		{"Comerciante", "COMERCIANTES Y AGENTES DE VENTAS"},
		{"Chofer de camión", "CONDUCTORES DE MAQUINARIA Y TRANSPORTE"},
		{"Albañil", "TRABAJADORES DE LA CONSTRUCCION"},
		{"Empleada", "EMPLEADOS EN GENERAL"},
		{"", OcupacionNoEspecificada},
		{"Astronauta", OcupacionNoEspecificada},
	}

	for _, c := range casos {
		assert.Equal(t, c.categoria, ClasificarOcupacion(c.texto), "ocupación %q", c.texto)
	}
}

func TestClasificarOcupacionOrdenDeReglas(t *testing.T) {
	// "pintor de casas" es construcción; "pintor" a secas es artista
	assert.Equal(t, "TRABAJADORES DE LA CONSTRUCCION", ClasificarOcupacion("Pintor de casas"))
	assert.Equal(t, "TRABAJADORES DEL ARTE, ESPECTACULOS Y DEPORTES", ClasificarOcupacion("Pintor"))

	// "empleado" solo aplica cuando nada más específico matchea
	assert.Equal(t, "OFICINISTAS", ClasificarOcupacion("Empleado administrativo"))
}
