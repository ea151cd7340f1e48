package dto

import "time"

// CreateClienteRequest body de POST /clientes.
type CreateClienteRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Telefono  string `json:"telefono" validate:"max=50"`
	Email     string `json:"email" validate:"omitempty,email"`
	CedulaRif string `json:"cedula_rif" validate:"max=50"`
	Direccion string `json:"direccion" validate:"max=300"`
	Activo    *bool  `json:"activo"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Telefono      string    `json:"telefono"`
	Email         string    `json:"email"`
	CedulaRif     string    `json:"cedula_rif"`
	Direccion     string    `json:"direccion"`
	Activo        bool      `json:"activo"`
	FechaRegistro time.Time `json:"fecha_registro"`
}
