package usecase

import (
	"context"

	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/application/ports"
	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/inventory"
	"github.com/caguayo/inventario-api/internal/domain/repository"
)

const msgCiclo = "No se puede %s la dependencia porque se formaría un ciclo en la jerarquía"

// DependenciaUseCase administra el árbol de dependencias. Toda asignación de padre
// se valida contra ciclos antes de escribir.
type DependenciaUseCase struct {
	txRunner ports.TxRunner
	repo     repository.DependenciaRepository
}

// NewDependenciaUseCase construye el caso de uso.
func NewDependenciaUseCase(txRunner ports.TxRunner, repo repository.DependenciaRepository) *DependenciaUseCase {
	return &DependenciaUseCase{txRunner: txRunner, repo: repo}
}

// Create crea la dependencia; el padre, si viene, debe existir.
func (uc *DependenciaUseCase) Create(ctx context.Context, in dto.CreateDependenciaRequest) (*dto.DependenciaResponse, error) {
	d := &entity.Dependencia{
		IDTipoDependencia: in.IDTipoDependencia,
		CodigoPadre:       in.CodigoPadre,
		Nombre:            in.Nombre,
		Direccion:         in.Direccion,
		Telefono:          in.Telefono,
		Email:             in.Email,
		Web:               in.Web,
		Descripcion:       in.Descripcion,
		IDProvincia:       in.IDProvincia,
		IDMunicipio:       in.IDMunicipio,
	}
	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		if err := validarPadre(ctx, r.Dependencias, 0, d.CodigoPadre, "crear"); err != nil {
			return err
		}
		return r.Dependencias.Create(ctx, d)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromDependencia(d)
	return &out, nil
}

// Update aplica los campos presentes. codigo_padre cambia el padre; quitar_padre la vuelve raíz.
func (uc *DependenciaUseCase) Update(ctx context.Context, id int64, in dto.UpdateDependenciaRequest) (*dto.DependenciaResponse, error) {
	var d *entity.Dependencia
	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		var err error
		d, err = r.Dependencias.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.NotFound("dependencia no encontrada")
		}
		switch {
		case in.QuitarPadre:
			d.CodigoPadre = nil
		case in.CodigoPadre != nil:
			if err := validarPadre(ctx, r.Dependencias, id, in.CodigoPadre, "actualizar"); err != nil {
				return err
			}
			d.CodigoPadre = in.CodigoPadre
		}
		if in.IDTipoDependencia != nil {
			d.IDTipoDependencia = in.IDTipoDependencia
		}
		if in.Nombre != nil {
			d.Nombre = *in.Nombre
		}
		if in.Direccion != nil {
			d.Direccion = *in.Direccion
		}
		if in.Telefono != nil {
			d.Telefono = *in.Telefono
		}
		if in.Email != nil {
			d.Email = *in.Email
		}
		if in.Web != nil {
			d.Web = *in.Web
		}
		if in.Descripcion != nil {
			d.Descripcion = *in.Descripcion
		}
		if in.IDProvincia != nil {
			d.IDProvincia = in.IDProvincia
		}
		if in.IDMunicipio != nil {
			d.IDMunicipio = in.IDMunicipio
		}
		return r.Dependencias.Update(ctx, d)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromDependencia(d)
	return &out, nil
}

// validarPadre comprueba que el padre exista y que no cierre un ciclo.
func validarPadre(ctx context.Context, repo repository.DependenciaRepository, id int64, padre *int64, accion string) error {
	if padre == nil {
		return nil
	}
	padres, err := repo.Padres(ctx)
	if err != nil {
		return err
	}
	if inventory.TieneCiclo(padres, id, padre) {
		return domain.NewValidationError(msgCiclo, accion)
	}
	if _, ok := padres[*padre]; !ok {
		return domain.NewValidationError("La dependencia padre %d no existe", *padre)
	}
	return nil
}

// GetByID obtiene una dependencia.
func (uc *DependenciaUseCase) GetByID(ctx context.Context, id int64) (*dto.DependenciaResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.NotFound("dependencia no encontrada")
	}
	out := dto.FromDependencia(d)
	return &out, nil
}

// List dependencias filtradas por nombre.
func (uc *DependenciaUseCase) List(ctx context.Context, nombre string, page dto.PageRequest) ([]dto.DependenciaResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, repository.DependenciaFiltro{Nombre: nombre, Limit: page.Limit, Offset: page.Skip})
	if err != nil {
		return nil, err
	}
	out := make([]dto.DependenciaResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.FromDependencia(d))
	}
	return out, nil
}

// Jerarquia devuelve los hijos directos de padreID (las raíces si es nil).
func (uc *DependenciaUseCase) Jerarquia(ctx context.Context, padreID *int64) ([]dto.DependenciaNodoResponse, error) {
	hijos, err := uc.repo.Hijos(ctx, padreID)
	if err != nil {
		return nil, err
	}
	padres, err := uc.repo.Padres(ctx)
	if err != nil {
		return nil, err
	}
	conHijos := make(map[int64]bool, len(padres))
	for _, p := range padres {
		if p != nil {
			conHijos[*p] = true
		}
	}
	out := make([]dto.DependenciaNodoResponse, 0, len(hijos))
	for _, d := range hijos {
		out = append(out, dto.DependenciaNodoResponse{
			DependenciaResponse: dto.FromDependencia(d),
			TieneHijos:          conHijos[d.ID],
		})
	}
	return out, nil
}

// Delete elimina la dependencia si no tiene hijos ni movimientos.
func (uc *DependenciaUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		d, err := r.Dependencias.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.NotFound("dependencia no encontrada")
		}
		hijos, err := r.Dependencias.Hijos(ctx, &id)
		if err != nil {
			return err
		}
		if len(hijos) > 0 {
			return domain.NewValidationError("No se puede eliminar la dependencia porque tiene dependencias hijas")
		}
		n, err := r.Movimientos.ContarPorDependencia(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.NewValidationError("No se puede eliminar la dependencia porque tiene movimientos asociados")
		}
		return r.Dependencias.Delete(ctx, id)
	})
}
