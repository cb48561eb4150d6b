package transform

import (
	"strings"
	"unicode/utf8"

	"github.com/Casado7/migration-script/pkg/models"
	"github.com/Casado7/migration-script/pkg/utils"
	"github.com/google/uuid"
)

// Valores de relleno para campos que el formulario destino marca como
// obligatorios. Son workarounds explícitos, no datos reales.
const (
	NombreRelleno   = "Sin Nombre"
	ApellidoRelleno = "Sin Apellido"
	TelefonoRelleno = "5500000000"
	PaisPorDefecto  = "México"
	PrefijoTelefono = "52"
)

// Opciones controla partes no deterministas de la transformación.
type Opciones struct {
	// GeneradorEmail produce un correo placeholder único para clientes sin
	// correo. Inyectable para que las pruebas sean deterministas.
	GeneradorEmail func() string
}

// EmailPlaceholder genera un correo único que no choca con la restricción de
// unicidad del destino.
func EmailPlaceholder() string {
	return "sin-correo-" + uuid.NewString()[:8] + "@migracion.local"
}

func (o Opciones) generadorEmail() func() string {
	if o.GeneradorEmail != nil {
		return o.GeneradorEmail
	}
	return EmailPlaceholder
}

// TransformarCliente convierte un Cliente extraído en la forma canónica que
// consume el llenador de formularios. Nunca falla: toda rama con entrada
// malformada o faltante produce un valor por defecto; es preferible un
// registro con placeholders marcados que detener el lote por una fila mala.
func TransformarCliente(c models.Cliente, opts Opciones) models.ClienteTransformado {
	partes := SepararNombre(c.Name)
	if partes.Name == "" {
		partes.Name = NombreRelleno
	}
	if partes.LastName == "" {
		partes.LastName = ApellidoRelleno
	}

	telefono := utils.SoloDigitos(c.TelefonoLocal)
	celular := utils.SoloDigitos(c.TelefonoCelular)
	if telefono == "" {
		telefono = TelefonoRelleno
	}
	if celular == "" {
		celular = telefono
	}

	email := strings.TrimSpace(c.Email)
	if email == "" {
		email = opts.generadorEmail()()
	}

	pais := primeraNoVacia(c.Pais, c.Nacionalidad, PaisPorDefecto)

	return models.ClienteTransformado{
		Name:        partes.Name,
		MiddleName:  partes.MiddleName,
		LastName:    partes.LastName,
		MothersName: partes.MothersName,

		Birth: utils.ReformatearFecha(c.BirthDate),
		Email: email,

		PhonePrefix:     PrefijoTelefono,
		Phone:           telefono,
		CellphonePrefix: PrefijoTelefono,
		Cellphone:       celular,

		AddressCountry:    pais,
		AddressState:      strings.TrimSpace(c.Estado),
		AddressCity:       strings.TrimSpace(c.Localidad),
		AddressPostalCode: strings.TrimSpace(c.CodigoPostal),
		Address:           construirDireccion(c),

		OriginCountry: primeraNoVacia(c.Pais, c.Nacionalidad),
		Nationality:   strings.TrimSpace(c.Nacionalidad),
		MaritalStatus: strings.TrimSpace(c.EstadoCivil),
		ProfessionID:  ClasificarOcupacion(c.Ocupacion),
		Sex:           MapearSexo(c.Sexo),
		ClientKind:    "M",

		Advertising:           "Sí",
		ThirdpartyAdvertising: "Sí",

		CodigoVenta: c.CodigoVenta,
	}
}

// TransformarLote transforma todas las entradas de un cache de clientes.
func TransformarLote(entradas []models.EntradaCliente, opts Opciones) []models.ClienteTransformado {
	out := make([]models.ClienteTransformado, 0, len(entradas))
	for _, e := range entradas {
		out = append(out, TransformarCliente(e.Cliente, opts))
	}
	return out
}

// MapearSexo normaliza el texto libre de sexo al catálogo M/F del destino.
// "M"/"MASCULINO"/"HOMBRE" -> M, "MUJER"/"F"/"FEMENINO" -> F; sin match se
// devuelve la primera letra tal cual.
func MapearSexo(val string) string {
	v := strings.ToUpper(strings.TrimSpace(val))
	if v == "" {
		return ""
	}
	switch {
	case strings.HasPrefix(v, "MU"):
		return "F"
	case strings.HasPrefix(v, "M"):
		return "M"
	case strings.HasPrefix(v, "F"):
		return "F"
	case strings.HasPrefix(v, "H"):
		return "M"
	}
	// primera runa, no primer byte: el texto libre puede empezar con acento
	r, _ := utf8.DecodeRuneInString(v)
	return string(r)
}

func construirDireccion(c models.Cliente) string {
	var partes []string
	if calle := strings.TrimSpace(c.Calle); calle != "" {
		partes = append(partes, calle)
	}
	if ext := strings.TrimSpace(c.NumExterior); ext != "" {
		partes = append(partes, ext)
	}
	if interior := strings.TrimSpace(c.NumInterior); interior != "" {
		partes = append(partes, "Int "+interior)
	}
	if col := strings.TrimSpace(c.Colonia); col != "" {
		partes = append(partes, col)
	}
	return strings.Join(partes, " ")
}

func primeraNoVacia(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
