package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSepararNombre(t *testing.T) {
	casos := []struct {
		nombre   string
		esperado NombreSeparado
	}{
		{"", NombreSeparado{}},
		{"   ", NombreSeparado{}},
		{"Juan", NombreSeparado{Name: "Juan"}},
		{"Juan Perez", NombreSeparado{Name: "Juan", LastName: "Perez"}},
		{"Juan Perez Lopez", NombreSeparado{Name: "Juan", LastName: "Perez", MothersName: "Lopez"}},
		{"Juan Carlos Perez Lopez", NombreSeparado{Name: "Juan", MiddleName: "Carlos", LastName: "Perez", MothersName: "Lopez"}},
		{"Maria Fernanda Guadalupe Ruiz Sanchez", NombreSeparado{Name: "Maria", MiddleName: "Fernanda Guadalupe", LastName: "Ruiz", MothersName: "Sanchez"}},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, SepararNombre(c.nombre))
		})
	}
}

func TestSepararNombreParticulas(t *testing.T) {
	// las partículas de la cola del segundo nombre pertenecen al apellido
	res := SepararNombre("Juan De La Cruz Martinez")
	assert.Equal(t, "Juan", res.Name)
	assert.Equal(t, "", res.MiddleName)
	assert.Equal(t, "De La Cruz", res.LastName)
	assert.Equal(t, "Martinez", res.MothersName)

	res = SepararNombre("Pedro Del Valle Gomez")
	assert.Equal(t, "Pedro", res.Name)
	assert.Equal(t, "", res.MiddleName)
	assert.Equal(t, "Del Valle", res.LastName)
	assert.Equal(t, "Gomez", res.MothersName)

	res = SepararNombre("Ana Maria Von Humboldt Diaz")
	assert.Equal(t, "Ana", res.Name)
	assert.Equal(t, "Maria", res.MiddleName)
	assert.Equal(t, "Von Humboldt", res.LastName)
	assert.Equal(t, "Diaz", res.MothersName)
}

func TestSepararNombreIgnoraPuntuacion(t *testing.T) {
	res := SepararNombre("Juan - Perez")
	assert.Equal(t, "Juan", res.Name)
	assert.Equal(t, "Perez", res.LastName)
}
