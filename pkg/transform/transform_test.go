package transform

import (
	"testing"

	"github.com/Casado7/migration-script/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emailFijo() string { return "fijo@migracion.local" }

func TestTransformarClienteCompleto(t *testing.T) {
	c := models.Cliente{
		Name:            "Juan Carlos Perez Lopez",
		BirthDate:       "1985-07-23",
		Sexo:            "Masculino",
		EstadoCivil:     "Casado",
		Calle:           "Av. Reforma",
		NumExterior:     "120",
		NumInterior:     "4B",
		Colonia:         "Centro",
		Nacionalidad:    "Mexicana",
		Pais:            "México",
		Estado:          "Jalisco",
		Localidad:       "Guadalajara",
		CodigoPostal:    "44100",
		TelefonoLocal:   "(33) 1234-5678",
		TelefonoCelular: "33 8765 4321",
		Email:           "juan@example.com",
		Ocupacion:       "Ingeniero",
		CodigoVenta:     "V-001",
	}

	out := TransformarCliente(c, Opciones{GeneradorEmail: emailFijo})

	assert.Equal(t, "Juan", out.Name)
	assert.Equal(t, "Carlos", out.MiddleName)
	assert.Equal(t, "Perez", out.LastName)
	assert.Equal(t, "Lopez", out.MothersName)
	assert.Equal(t, "23-07-1985", out.Birth)
	assert.Equal(t, "juan@example.com", out.Email)
	assert.Equal(t, "52", out.PhonePrefix)
	assert.Equal(t, "3312345678", out.Phone)
	assert.Equal(t, "3387654321", out.Cellphone)
	assert.Equal(t, "México", out.AddressCountry)
	assert.Equal(t, "Jalisco", out.AddressState)
	assert.Equal(t, "Guadalajara", out.AddressCity)
	assert.Equal(t, "44100", out.AddressPostalCode)
	assert.Equal(t, "Av. Reforma 120 Int 4B Centro", out.Address)
	assert.Equal(t, "PROFESIONISTAS", out.ProfessionID)
	assert.Equal(t, "M", out.Sex)
	assert.Equal(t, "M", out.ClientKind)
	assert.Equal(t, "Sí", out.Advertising)
	assert.Equal(t, "Sí", out.ThirdpartyAdvertising)
	assert.Equal(t, "V-001", out.CodigoVenta)
}

func TestTransformarClienteVacio(t *testing.T) {
	out := TransformarCliente(models.Cliente{}, Opciones{GeneradorEmail: emailFijo})

	assert.Equal(t, NombreRelleno, out.Name)
	assert.Equal(t, ApellidoRelleno, out.LastName)
	assert.Equal(t, TelefonoRelleno, out.Phone)
	assert.Equal(t, TelefonoRelleno, out.Cellphone)
	assert.Equal(t, "fijo@migracion.local", out.Email)
	assert.Equal(t, PaisPorDefecto, out.AddressCountry)
	assert.Equal(t, OcupacionNoEspecificada, out.ProfessionID)
	assert.Equal(t, "", out.Sex)
}

func TestTransformarClienteCelularCaeAlFijo(t *testing.T) {
	out := TransformarCliente(models.Cliente{TelefonoLocal: "55 1111 2222"}, Opciones{GeneradorEmail: emailFijo})
	assert.Equal(t, "5511112222", out.Phone)
	assert.Equal(t, "5511112222", out.Cellphone)
}

func TestTransformarClienteDeterminista(t *testing.T) {
	c := models.Cliente{Name: "Ana Ruiz", Email: ""}
	opts := Opciones{GeneradorEmail: emailFijo}
	assert.Equal(t, TransformarCliente(c, opts), TransformarCliente(c, opts))
}

func TestEmailPlaceholderUnico(t *testing.T) {
	a, b := EmailPlaceholder(), EmailPlaceholder()
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "@migracion.local")
}

func TestMapearSexo(t *testing.T) {
	assert.Equal(t, "M", MapearSexo("Masculino"))
	assert.Equal(t, "M", MapearSexo("HOMBRE"))
	assert.Equal(t, "F", MapearSexo("Femenino"))
	assert.Equal(t, "F", MapearSexo("mujer"))
	assert.Equal(t, "", MapearSexo(""))
	assert.Equal(t, "X", MapearSexo("X"))
	// primera runa completa, no primer byte
	assert.Equal(t, "Ñ", MapearSexo("ñandú"))
}

func TestTransformarLote(t *testing.T) {
	entradas := []models.EntradaCliente{
		{Cliente: models.Cliente{Name: "Juan Perez", CodigoVenta: "V-1"}},
		{Cliente: models.Cliente{Name: "Ana Ruiz", CodigoVenta: "V-2"}},
	}
	out := TransformarLote(entradas, Opciones{GeneradorEmail: emailFijo})
	require.Len(t, out, 2)
	assert.Equal(t, "V-1", out[0].CodigoVenta)
	assert.Equal(t, "Ana", out[1].Name)
}
