package repository

import (
	"context"

	"github.com/mpilco/inventario-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByCodigo(ctx context.Context, codigo string) (*entity.Product, error)
	Exists(ctx context.Context, codigo string) (bool, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, codigo string) error
}
