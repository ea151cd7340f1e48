package entity

// Dependencia unidad organizativa (almacén, sucursal). CodigoPadre apunta a la dependencia padre.
type Dependencia struct {
	ID                int64  `db:"id"`
	IDTipoDependencia *int64 `db:"id_tipo_dependencia"`
	CodigoPadre       *int64 `db:"codigo_padre"`
	Nombre            string `db:"nombre"`
	Direccion         string `db:"direccion"`
	Telefono          string `db:"telefono"`
	Email             string `db:"email"`
	Web               string `db:"web"`
	Descripcion       string `db:"descripcion"`
	IDProvincia       *int64 `db:"id_provincia"`
	IDMunicipio       *int64 `db:"id_municipio"`
}
