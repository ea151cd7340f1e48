package postgres

import (
	"context"
	"fmt"

	"github.com/caguayo/inventario-api/internal/application/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos ports.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := ports.TxRepos{
		Productos:    NewProductoRepository(tx),
		Movimientos:  NewMovimientoRepository(tx),
		Tipos:        NewTipoMovimientoRepository(tx),
		Ventas:       NewVentaRepository(tx),
		Clientes:     NewClienteRepository(tx),
		Dependencias: NewDependenciaRepository(tx),
		Convenios:    NewConvenioRepository(tx),
		Anexos:       NewAnexoRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
