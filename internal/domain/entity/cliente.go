package entity

import "time"

// Cliente contraparte comercial de ventas y convenios.
type Cliente struct {
	ID            int64     `db:"id"`
	Nombre        string    `db:"nombre"`
	Telefono      string    `db:"telefono"`
	Email         string    `db:"email"`
	CedulaRif     string    `db:"cedula_rif"`
	Direccion     string    `db:"direccion"`
	Activo        bool      `db:"activo"`
	FechaRegistro time.Time `db:"fecha_registro"`
}
