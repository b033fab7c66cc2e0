package postgres

import (
	"context"
	"fmt"

	"github.com/mpilco/inventario-api/internal/domain/entity"
	"github.com/mpilco/inventario-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación del puerto AlertRepository sobre PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una alerta.
func (r *AlertRepo) Create(ctx context.Context, alert *entity.Alert) error {
	query := `
		INSERT INTO alerts (id, producto_codigo, message, severity, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		alert.ID, alert.ProductoCodigo, alert.Message, alert.Severity, alert.Read, alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// List lista alertas, las más recientes primero.
func (r *AlertRepo) List(ctx context.Context, onlyUnread bool, limit, offset int) ([]*entity.Alert, error) {
	query := `
		SELECT id, producto_codigo, message, severity, read, created_at
		FROM alerts`
	if onlyUnread {
		query += ` WHERE read = false`
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.ProductoCodigo, &a.Message, &a.Severity, &a.Read, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ListByProduct lista las alertas de un producto.
func (r *AlertRepo) ListByProduct(ctx context.Context, codigo string) ([]*entity.Alert, error) {
	query := `
		SELECT id, producto_codigo, message, severity, read, created_at
		FROM alerts WHERE producto_codigo = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, codigo)
	if err != nil {
		return nil, fmt.Errorf("list alerts by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.ProductoCodigo, &a.Message, &a.Severity, &a.Read, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// MarkRead marca una alerta como leída. Devuelve false si el id no existe.
func (r *AlertRepo) MarkRead(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE alerts SET read = true WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("mark alert read: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
