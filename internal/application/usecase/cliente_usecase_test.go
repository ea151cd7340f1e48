package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/application/usecase"
	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/testutil/memstore"
)

func TestCliente_CrearActivoPorDefecto(t *testing.T) {
	s := memstore.New()
	uc := usecase.NewClienteUseCase(s.Clientes(), s.Ventas())

	c, err := uc.Create(context.Background(), dto.CreateClienteRequest{Nombre: "Ferretería Ruiz"})
	require.NoError(t, err)
	assert.True(t, c.Activo)
	assert.False(t, c.FechaRegistro.IsZero())

	inactivo := false
	c, err = uc.Create(context.Background(), dto.CreateClienteRequest{Nombre: "Otro", Activo: &inactivo})
	require.NoError(t, err)
	assert.False(t, c.Activo)
}

func TestCliente_EliminarConVentasSeRechaza(t *testing.T) {
	s := memstore.New()
	uc := usecase.NewClienteUseCase(s.Clientes(), s.Ventas())
	ctx := context.Background()
	c, err := uc.Create(ctx, dto.CreateClienteRequest{Nombre: "Panadería"})
	require.NoError(t, err)
	require.NoError(t, s.Ventas().Create(ctx, &entity.Venta{IDCliente: &c.ID, Estado: entity.VentaPendiente}))

	err = uc.Delete(ctx, c.ID)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "No se puede eliminar el cliente porque tiene ventas asociadas", err.Error())

	ventas, err := uc.Ventas(ctx, c.ID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, ventas, 1)

	_, err = uc.GetByID(ctx, c.ID)
	assert.NoError(t, err, "el cliente sigue existiendo")
}

func TestCliente_Eliminar(t *testing.T) {
	s := memstore.New()
	uc := usecase.NewClienteUseCase(s.Clientes(), s.Ventas())
	ctx := context.Background()
	c, err := uc.Create(ctx, dto.CreateClienteRequest{Nombre: "Sin ventas"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, c.ID))
	assert.ErrorIs(t, uc.Delete(ctx, c.ID), domain.ErrNotFound)
	_, err = uc.Ventas(ctx, c.ID, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
