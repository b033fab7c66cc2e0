package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mpilco/inventario-api/internal/domain"
	"github.com/mpilco/inventario-api/internal/domain/entity"
	"github.com/mpilco/inventario-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre
// PostgreSQL (usable con pool o tx).
//
// La unicidad de (producto_codigo, mes, anio) la garantiza el índice único
// parcial sobre las filas no eliminadas; el upsert resuelve el conflicto en
// la base, de modo que dos escritores concurrentes sobre la misma clave
// serializan ahí sin locking adicional en la aplicación.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const poColumns = `producto_codigo, mes, anio, cantidad, recibido, estado, fecha_entrega, created_at, updated_at, deleted_at`

// Upsert inserta o actualiza atómicamente por clave natural. El truco
// RETURNING (xmax = 0) distingue inserción de actualización en la misma
// sentencia. Solo cambian los campos mutables: la clave natural nunca se
// toca en el UPDATE.
func (r *PurchaseOrderRepo) Upsert(ctx context.Context, po *entity.PurchaseOrder) (bool, error) {
	query := `
		INSERT INTO purchase_orders (producto_codigo, mes, anio, cantidad, recibido, estado, fecha_entrega, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (producto_codigo, mes, anio) WHERE deleted_at IS NULL
		DO UPDATE SET
			cantidad      = EXCLUDED.cantidad,
			recibido      = EXCLUDED.recibido,
			estado        = EXCLUDED.estado,
			fecha_entrega = EXCLUDED.fecha_entrega,
			updated_at    = EXCLUDED.updated_at
		RETURNING (xmax = 0) AS inserted, created_at`
	var inserted bool
	err := r.q.QueryRow(ctx, query,
		po.ProductoCodigo, po.Mes, po.Anio, po.Cantidad, po.Recibido,
		po.Estado, po.FechaEntrega, po.CreatedAt, po.UpdatedAt,
	).Scan(&inserted, &po.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			// El índice parcial debió resolver el conflicto; si aun así
			// llegamos aquí hay un defecto de coordinación.
			return false, domain.ErrConflict
		}
		if isForeignKeyViolation(err) {
			return false, domain.ErrProductoNoEncontrado
		}
		return false, fmt.Errorf("upsert purchase order: %w", err)
	}
	return inserted, nil
}

// FindByKey obtiene la orden no eliminada para (producto, mes, año).
func (r *PurchaseOrderRepo) FindByKey(ctx context.Context, codigo, mes string, anio int) (*entity.PurchaseOrder, error) {
	query := `
		SELECT ` + poColumns + `
		FROM purchase_orders
		WHERE producto_codigo = $1 AND mes = $2 AND anio = $3 AND deleted_at IS NULL`
	po, err := scanPurchaseOrder(r.q.QueryRow(ctx, query, codigo, mes, anio))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return po, nil
}

// ListByProduct lista las órdenes no eliminadas de un producto, opcionalmente
// filtradas por estado, en orden cronológico (año, mes calendario).
func (r *PurchaseOrderRepo) ListByProduct(ctx context.Context, codigo string, estados ...string) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT ` + poColumns + `
		FROM purchase_orders
		WHERE producto_codigo = $1 AND deleted_at IS NULL`
	args := []any{codigo}
	if len(estados) > 0 {
		query += ` AND estado = ANY($2)`
		args = append(args, estados)
	}
	query += `
		ORDER BY anio, array_position(ARRAY['ENE','FEB','MAR','ABR','MAY','JUN','JUL','AGO','SEP','OCT','NOV','DIC'], mes)`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, po)
	}
	return list, rows.Err()
}

// UpdateEstado fija el estado de una orden (transición explícita).
func (r *PurchaseOrderRepo) UpdateEstado(ctx context.Context, codigo, mes string, anio int, estado string) (*entity.PurchaseOrder, error) {
	query := `
		UPDATE purchase_orders
		SET estado = $4, updated_at = now()
		WHERE producto_codigo = $1 AND mes = $2 AND anio = $3 AND deleted_at IS NULL
		RETURNING ` + poColumns
	po, err := scanPurchaseOrder(r.q.QueryRow(ctx, query, codigo, mes, anio, estado))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update purchase order estado: %w", err)
	}
	return po, nil
}

// SoftDelete marca la orden como eliminada. El registro se conserva y queda
// fuera del índice único parcial, liberando la clave natural.
func (r *PurchaseOrderRepo) SoftDelete(ctx context.Context, codigo, mes string, anio int) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE purchase_orders
		SET deleted_at = now(), updated_at = now()
		WHERE producto_codigo = $1 AND mes = $2 AND anio = $3 AND deleted_at IS NULL`,
		codigo, mes, anio,
	)
	if err != nil {
		return false, fmt.Errorf("soft delete purchase order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanPurchaseOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := row.Scan(
		&po.ProductoCodigo, &po.Mes, &po.Anio, &po.Cantidad, &po.Recibido,
		&po.Estado, &po.FechaEntrega, &po.CreatedAt, &po.UpdatedAt, &po.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &po, nil
}
