package repository

import (
	"context"

	"github.com/mpilco/inventario-api/internal/domain/entity"
)

// AlertRepository define el puerto de persistencia para Alert (DIP).
type AlertRepository interface {
	Create(ctx context.Context, alert *entity.Alert) error
	List(ctx context.Context, onlyUnread bool, limit, offset int) ([]*entity.Alert, error)
	ListByProduct(ctx context.Context, codigo string) ([]*entity.Alert, error)
	MarkRead(ctx context.Context, id string) (bool, error)
}
