package usecase

import (
	"context"

	"github.com/mpilco/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la verificación de producto, la
// búsqueda por clave natural, la derivación de estado y la escritura de la
// orden formen una sola unidad de trabajo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		poRepo repository.PurchaseOrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}
