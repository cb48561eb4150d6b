package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Casado7/migration-script/pkg/models"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// ServicioArchivo respalda en Postgres lo que la migración extrae y captura.
// Es un archivo de auditoría opcional (se activa con DATABASE_URL): la
// fuente de verdad operativa sigue siendo clients.json.
type ServicioArchivo struct {
	db *sql.DB
}

func NuevoServicioArchivo(cadenaConexion string) (*ServicioArchivo, error) {
	db, err := sql.Open("postgres", cadenaConexion)
	if err != nil {
		return nil, fmt.Errorf("error conectando a la base de datos: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error haciendo ping a la base de datos: %w", err)
	}

	return &ServicioArchivo{db: db}, nil
}

func (s *ServicioArchivo) Close() error {
	return s.db.Close()
}

// ArchivarEntrada respalda una entrada del cache: el cliente y sus términos
// de crédito, en una sola transacción. El upsert va por codigo_venta, así
// que re-extraer una venta actualiza su registro en vez de duplicarlo.
func (s *ServicioArchivo) ArchivarEntrada(e models.EntradaCliente) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("error iniciando transacción: %w", err)
	}
	defer tx.Rollback()

	clienteID, err := s.upsertCliente(tx, e)
	if err != nil {
		return fmt.Errorf("error archivando cliente: %w", err)
	}

	if err := s.upsertCredito(tx, clienteID, e.InfoCredito); err != nil {
		return fmt.Errorf("error archivando crédito: %w", err)
	}

	return tx.Commit()
}

func (s *ServicioArchivo) upsertCliente(tx *sql.Tx, e models.EntradaCliente) (int64, error) {
	c := e.Cliente
	codigoVenta := c.CodigoVenta
	if codigoVenta == "" {
		codigoVenta = e.Row["codigo_venta"]
	}

	query := `
	INSERT INTO migracion_clientes (
		codigo_venta, id_cliente_origen, nombre, fecha_nacimiento, rfc, curp,
		sexo, estado_civil, calle, num_interior, num_exterior, colonia,
		nacionalidad, pais, estado, localidad, codigo_postal,
		telefono_local, telefono_celular, email, ocupacion
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, $21
	)
	ON CONFLICT (codigo_venta) DO UPDATE SET
		id_cliente_origen = EXCLUDED.id_cliente_origen,
		nombre = EXCLUDED.nombre,
		fecha_nacimiento = EXCLUDED.fecha_nacimiento,
		rfc = EXCLUDED.rfc,
		curp = EXCLUDED.curp,
		sexo = EXCLUDED.sexo,
		estado_civil = EXCLUDED.estado_civil,
		calle = EXCLUDED.calle,
		num_interior = EXCLUDED.num_interior,
		num_exterior = EXCLUDED.num_exterior,
		colonia = EXCLUDED.colonia,
		nacionalidad = EXCLUDED.nacionalidad,
		pais = EXCLUDED.pais,
		estado = EXCLUDED.estado,
		localidad = EXCLUDED.localidad,
		codigo_postal = EXCLUDED.codigo_postal,
		telefono_local = EXCLUDED.telefono_local,
		telefono_celular = EXCLUDED.telefono_celular,
		email = EXCLUDED.email,
		ocupacion = EXCLUDED.ocupacion,
		updated_at = CURRENT_TIMESTAMP
	RETURNING id`

	var clienteID int64
	err := tx.QueryRow(query,
		codigoVenta,
		s.nullString(c.IDCliente),
		s.nullString(c.Name),
		s.parseDate(c.BirthDate),
		s.nullString(c.RFC),
		s.nullString(c.CURP),
		s.nullString(c.Sexo),
		s.nullString(c.EstadoCivil),
		s.nullString(c.Calle),
		s.nullString(c.NumInterior),
		s.nullString(c.NumExterior),
		s.nullString(c.Colonia),
		s.nullString(c.Nacionalidad),
		s.nullString(c.Pais),
		s.nullString(c.Estado),
		s.nullString(c.Localidad),
		s.nullString(c.CodigoPostal),
		s.nullString(c.TelefonoLocal),
		s.nullString(c.TelefonoCelular),
		s.nullString(c.Email),
		s.nullString(c.Ocupacion),
	).Scan(&clienteID)

	return clienteID, err
}

func (s *ServicioArchivo) upsertCredito(tx *sql.Tx, clienteID int64, ic models.InfoCredito) error {
	_, err := tx.Exec(`
		INSERT INTO migracion_creditos (
			cliente_id, desarrollo, unidad, etapa, superficie, precio_m2,
			precio_lista, plan_de_pago, cuota_de_apertura, descuento_pct,
			descuento_m2, moneda_del_contrato, precio_venta, enganche_pct,
			enganche, financiamiento_pct, financiamiento, costo_escritura
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (cliente_id) DO UPDATE SET
			desarrollo = EXCLUDED.desarrollo,
			unidad = EXCLUDED.unidad,
			etapa = EXCLUDED.etapa,
			superficie = EXCLUDED.superficie,
			precio_m2 = EXCLUDED.precio_m2,
			precio_lista = EXCLUDED.precio_lista,
			plan_de_pago = EXCLUDED.plan_de_pago,
			cuota_de_apertura = EXCLUDED.cuota_de_apertura,
			descuento_pct = EXCLUDED.descuento_pct,
			descuento_m2 = EXCLUDED.descuento_m2,
			moneda_del_contrato = EXCLUDED.moneda_del_contrato,
			precio_venta = EXCLUDED.precio_venta,
			enganche_pct = EXCLUDED.enganche_pct,
			enganche = EXCLUDED.enganche,
			financiamiento_pct = EXCLUDED.financiamiento_pct,
			financiamiento = EXCLUDED.financiamiento,
			costo_escritura = EXCLUDED.costo_escritura,
			updated_at = CURRENT_TIMESTAMP`,
		clienteID,
		s.nullString(ic.Desarrollo),
		s.nullString(ic.Unidad),
		s.nullString(ic.Etapa),
		s.nullString(ic.Superficie),
		s.nullString(ic.PrecioM2),
		s.nullString(ic.PrecioLista),
		s.nullString(ic.PlanDePago),
		s.nullString(ic.CuotaDeApertura),
		s.nullString(ic.DescuentoPct),
		s.nullString(ic.DescuentoM2),
		s.nullString(ic.MonedaDelContrato),
		s.nullString(ic.PrecioVenta),
		s.nullString(ic.EnganchePct),
		s.nullString(ic.Enganche),
		s.nullString(ic.FinanciamientoPct),
		s.nullString(ic.Financiamiento),
		s.nullString(ic.CostoEscritura),
	)
	return err
}

// RegistrarResultado deja constancia del desenlace de una unidad de trabajo
// (extracción o captura) para consultarlo después de la corrida.
func (s *ServicioArchivo) RegistrarResultado(corrida string, r models.Resultado) error {
	_, err := s.db.Exec(`
		INSERT INTO migracion_resultados (corrida, indice, clave, estado, detalle)
		VALUES ($1, $2, $3, $4, $5)`,
		corrida, r.Indice, s.nullString(r.Clave), string(r.Estado), s.nullString(r.Detalle))
	if err != nil {
		return fmt.Errorf("error registrando resultado: %w", err)
	}
	return nil
}

// Helper functions
func (s *ServicioArchivo) nullString(v string) interface{} {
	if v == "" || v == "-" {
		return nil
	}
	return v
}

func (s *ServicioArchivo) parseDate(fecha string) interface{} {
	if fecha == "" || fecha == "-" {
		return nil
	}

	formats := []string{
		"2006-01-02",
		"02-01-2006",
		"02/01/2006",
	}

	for _, format := range formats {
		if date, err := time.Parse(format, fecha); err == nil {
			return date
		}
	}

	return nil
}
