package report

import (
	"context"

	"github.com/mpilco/inventario-api/internal/domain/entity"
)

// OrdersPDFGenerator renderiza el reporte PDF de órdenes de compra de un
// producto.
type OrdersPDFGenerator interface {
	GenerateOrdersReport(ctx context.Context, product *entity.Product, orders []*entity.PurchaseOrder) ([]byte, error)
}
