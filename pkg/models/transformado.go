package models

// ClienteTransformado es la forma canónica que consume el llenador de
// formularios del ERP destino. Las claves aplanadas client_address[0].*
// corresponden uno a uno con los names de los inputs del formulario.
type ClienteTransformado struct {
	Name        string `json:"name"`
	MiddleName  string `json:"middle_name"`
	LastName    string `json:"last_name"`
	MothersName string `json:"mothers_name"`

	Birth string `json:"birth"` // DD-MM-YYYY
	Email string `json:"email"`

	PhonePrefix     string `json:"phone_prefix"`
	Phone           string `json:"phone"`
	CellphonePrefix string `json:"cellphone_prefix"`
	Cellphone       string `json:"cellphone"`

	AddressCountry    string `json:"client_address[0].country"`
	AddressState      string `json:"client_address[0].state"`
	AddressCity       string `json:"client_address[0].city"`
	AddressPostalCode string `json:"client_address[0].postal_code"`
	Address           string `json:"client_address[0].address"`

	OriginCountry string `json:"origin_country"`
	Nationality   string `json:"nationality"`
	MaritalStatus string `json:"marital_status"`
	ProfessionID  string `json:"profession_id"`
	Sex           string `json:"sex"` // M | F
	ClientKind    string `json:"client_kind"`

	Advertising           string `json:"advertising"`
	ThirdpartyAdvertising string `json:"thirdparty_advertising"`

	// Referencia a la venta de origen, para auditoría
	CodigoVenta string `json:"codigo_venta,omitempty"`
}
