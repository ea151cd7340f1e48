package dto

// CreateDependenciaRequest body de POST /dependencias.
type CreateDependenciaRequest struct {
	IDTipoDependencia *int64 `json:"id_tipo_dependencia" validate:"omitempty,gt=0"`
	CodigoPadre       *int64 `json:"codigo_padre" validate:"omitempty,gt=0"`
	Nombre            string `json:"nombre" validate:"required,min=1,max=200"`
	Direccion         string `json:"direccion" validate:"max=300"`
	Telefono          string `json:"telefono" validate:"max=50"`
	Email             string `json:"email" validate:"omitempty,email"`
	Web               string `json:"web" validate:"max=200"`
	Descripcion       string `json:"descripcion" validate:"max=1000"`
	IDProvincia       *int64 `json:"id_provincia" validate:"omitempty,gt=0"`
	IDMunicipio       *int64 `json:"id_municipio" validate:"omitempty,gt=0"`
}

// UpdateDependenciaRequest actualización parcial. codigo_padre admite tres casos:
// ausente (no cambia), número (nuevo padre) o null con QuitarPadre (raíz).
type UpdateDependenciaRequest struct {
	IDTipoDependencia *int64  `json:"id_tipo_dependencia" validate:"omitempty,gt=0"`
	CodigoPadre       *int64  `json:"codigo_padre" validate:"omitempty,gt=0"`
	QuitarPadre       bool    `json:"quitar_padre"`
	Nombre            *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Direccion         *string `json:"direccion" validate:"omitempty,max=300"`
	Telefono          *string `json:"telefono" validate:"omitempty,max=50"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Web               *string `json:"web" validate:"omitempty,max=200"`
	Descripcion       *string `json:"descripcion" validate:"omitempty,max=1000"`
	IDProvincia       *int64  `json:"id_provincia" validate:"omitempty,gt=0"`
	IDMunicipio       *int64  `json:"id_municipio" validate:"omitempty,gt=0"`
}

// DependenciaResponse salida de una dependencia.
type DependenciaResponse struct {
	ID                int64  `json:"id"`
	IDTipoDependencia *int64 `json:"id_tipo_dependencia"`
	CodigoPadre       *int64 `json:"codigo_padre"`
	Nombre            string `json:"nombre"`
	Direccion         string `json:"direccion"`
	Telefono          string `json:"telefono"`
	Email             string `json:"email"`
	Web               string `json:"web"`
	Descripcion       string `json:"descripcion"`
	IDProvincia       *int64 `json:"id_provincia"`
	IDMunicipio       *int64 `json:"id_municipio"`
}

// DependenciaNodoResponse dependencia con indicador de hijos, para navegar la jerarquía.
type DependenciaNodoResponse struct {
	DependenciaResponse
	TieneHijos bool `json:"tiene_hijos"`
}
