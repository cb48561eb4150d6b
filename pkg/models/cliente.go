package models

// FilaCruda representa una fila scrapeada de la tabla principal del ERP origen.
// Las claves son los nombres canónicos de columna (temp, sucursal, asesor, ...);
// cuando la fila tiene más celdas de las esperadas se usan claves sintéticas
// col_N. Si el parseo de columnas falla, la fila se guarda bajo la clave "html".
type FilaCruda map[string]string

// ColumnasCanonicas es el orden fijo de columnas de la tabla de ventas.
var ColumnasCanonicas = []string{
	"temp",
	"sucursal",
	"asesor",
	"cliente",
	"desarrollo",
	"unidad",
	"fecha_venta",
	"estado",
	"plan",
	"acciones",
	"codigo_venta",
}

// Cliente es la información personal extraída de la página de detalle.
// Todos los campos ausentes quedan como cadena vacía, nunca null: los
// consumidores no necesitan verificar presencia.
type Cliente struct {
	Name            string `json:"name"`
	BirthDate       string `json:"birth_date"`
	LugarNacimiento string `json:"lugar_nacimiento"`
	Edad            string `json:"edad"`
	RFC             string `json:"rfc"`
	CURP            string `json:"curp"`
	Sexo            string `json:"sexo"`
	EstadoCivil     string `json:"estado_civil"`

	// Dirección
	Calle        string `json:"calle"`
	NumInterior  string `json:"num_interior"`
	NumExterior  string `json:"num_exterior"`
	Colonia      string `json:"colonia"`
	Nacionalidad string `json:"nacionalidad"`
	Pais         string `json:"pais"`
	Estado       string `json:"estado"`
	Localidad    string `json:"localidad"`
	CodigoPostal string `json:"codigo_postal"`

	// Contacto
	TelefonoLocal   string `json:"telefono_local"`
	TelefonoCelular string `json:"telefono_celular"`
	Email           string `json:"email"`

	// Datos complementarios
	Ocupacion            string `json:"ocupacion"`
	ActividadEconomica   string `json:"actividad_economica"`
	TipoIdentificacion   string `json:"tipo_identificacion"`
	NumeroIdentificacion string `json:"numero_identificacion"`
	TipoPersona          string `json:"tipo_persona"`

	// Identificadores ocultos (inputs hidden o query params del enlace
	// "Modificar Datos")
	IDCliente   string `json:"id_cliente"`
	CodigoVenta string `json:"codigo_venta"`
}

// InfoCredito son los términos del crédito extraídos del detalle de la venta.
// Los valores numéricos conservan el formato original (comas, signos %);
// la normalización ocurre al momento de consumirlos.
type InfoCredito struct {
	Desarrollo        string `json:"desarrollo"`
	Unidad            string `json:"unidad"`
	Etapa             string `json:"etapa"`
	Superficie        string `json:"superficie"`
	PrecioM2          string `json:"precio_m2"`
	PrecioLista       string `json:"precio_lista"`
	PlanDePago        string `json:"plan_de_pago"`
	CuotaDeApertura   string `json:"cuota_de_apertura"`
	DescuentoPct      string `json:"descuento_%"`
	DescuentoM2       string `json:"descuento_m2"`
	MonedaDelContrato string `json:"moneda_del_contrato"`
	PrecioVenta       string `json:"precio_venta"`
	EnganchePct       string `json:"enganche_%"`
	Enganche          string `json:"enganche"`
	FinanciamientoPct string `json:"financiamiento_%"`
	Financiamiento    string `json:"financiamiento"`
	CostoEscritura    string `json:"costo_escritura"`
}

// EntradaCliente es la unidad persistida en clients.json: la fila de la tabla,
// el cliente del detalle y los términos del crédito.
type EntradaCliente struct {
	Row         FilaCruda   `json:"row"`
	Cliente     Cliente     `json:"cliente"`
	InfoCredito InfoCredito `json:"info_credito"`
}
