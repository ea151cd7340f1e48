// Package convenios administra convenios con clientes y sus anexos. Crear un anexo con
// productos genera las recepciones pendientes correspondientes.
package convenios

import (
	"context"
	"time"

	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/application/ports"
	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/repository"
)

// ConvenioUseCase alta, edición y consulta de convenios.
type ConvenioUseCase struct {
	txRunner ports.TxRunner
	repo     repository.ConvenioRepository
}

// NewConvenioUseCase construye el caso de uso.
func NewConvenioUseCase(txRunner ports.TxRunner, repo repository.ConvenioRepository) *ConvenioUseCase {
	return &ConvenioUseCase{txRunner: txRunner, repo: repo}
}

// Create registra el convenio; vigencia no puede ser anterior a fecha.
func (uc *ConvenioUseCase) Create(ctx context.Context, in dto.CreateConvenioRequest) (*dto.ConvenioResponse, error) {
	fecha, err := parseFecha("fecha", in.Fecha)
	if err != nil {
		return nil, err
	}
	vigencia, err := parseFecha("vigencia", in.Vigencia)
	if err != nil {
		return nil, err
	}
	c := &entity.Convenio{
		IDCliente:      in.IDCliente,
		NombreConvenio: in.NombreConvenio,
		Fecha:          fecha,
		Vigencia:       vigencia,
		IDTipoConvenio: in.IDTipoConvenio,
	}
	if c.Vigencia.Before(c.Fecha) {
		return nil, domain.NewValidationError("La vigencia no puede ser anterior a la fecha del convenio")
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toConvenioResponse(c), nil
}

// Update aplica los campos presentes; las fechas se interpretan como YYYY-MM-DD.
func (uc *ConvenioUseCase) Update(ctx context.Context, id int64, in dto.UpdateConvenioRequest) (*dto.ConvenioResponse, error) {
	var c *entity.Convenio
	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		var err error
		c, err = r.Convenios.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.NotFound("convenio no encontrado")
		}
		if in.IDCliente != nil {
			c.IDCliente = *in.IDCliente
		}
		if in.NombreConvenio != nil {
			c.NombreConvenio = *in.NombreConvenio
		}
		if in.Fecha != nil {
			if c.Fecha, err = parseFecha("fecha", *in.Fecha); err != nil {
				return err
			}
		}
		if in.Vigencia != nil {
			if c.Vigencia, err = parseFecha("vigencia", *in.Vigencia); err != nil {
				return err
			}
		}
		if in.IDTipoConvenio != nil {
			c.IDTipoConvenio = in.IDTipoConvenio
		}
		if c.Vigencia.Before(c.Fecha) {
			return domain.NewValidationError("La vigencia no puede ser anterior a la fecha del convenio")
		}
		return r.Convenios.Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return toConvenioResponse(c), nil
}

// GetByID obtiene un convenio.
func (uc *ConvenioUseCase) GetByID(ctx context.Context, id int64) (*dto.ConvenioResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("convenio no encontrado")
	}
	return toConvenioResponse(c), nil
}

// List convenios, opcionalmente de un cliente.
func (uc *ConvenioUseCase) List(ctx context.Context, idCliente *int64) ([]dto.ConvenioResponse, error) {
	list, err := uc.repo.List(ctx, idCliente)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConvenioResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toConvenioResponse(c))
	}
	return out, nil
}

func parseFecha(campo, valor string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, valor)
	if err != nil {
		return time.Time{}, domain.NewValidationError("%s debe tener el formato YYYY-MM-DD", campo)
	}
	return t, nil
}

func toConvenioResponse(c *entity.Convenio) *dto.ConvenioResponse {
	return &dto.ConvenioResponse{
		ID:             c.ID,
		IDCliente:      c.IDCliente,
		NombreConvenio: c.NombreConvenio,
		Fecha:          c.Fecha.Format(dto.DateLayout),
		Vigencia:       c.Vigencia.Format(dto.DateLayout),
		IDTipoConvenio: c.IDTipoConvenio,
		Vigente:        c.Vigente(time.Now()),
	}
}
