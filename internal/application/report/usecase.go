package report

import (
	"context"

	"github.com/mpilco/inventario-api/internal/domain"
	"github.com/mpilco/inventario-api/internal/domain/repository"
)

// OrdersReportUseCase genera el reporte PDF con las órdenes de compra de un
// producto (todas las no eliminadas, en orden cronológico).
type OrdersReportUseCase struct {
	productRepo repository.ProductRepository
	poRepo      repository.PurchaseOrderRepository
	pdf         OrdersPDFGenerator
}

// NewOrdersReportUseCase construye el caso de uso.
func NewOrdersReportUseCase(
	productRepo repository.ProductRepository,
	poRepo repository.PurchaseOrderRepository,
	pdf OrdersPDFGenerator,
) *OrdersReportUseCase {
	return &OrdersReportUseCase{productRepo: productRepo, poRepo: poRepo, pdf: pdf}
}

// Generate devuelve los bytes del PDF para el producto indicado.
func (uc *OrdersReportUseCase) Generate(ctx context.Context, codigo string) ([]byte, error) {
	product, err := uc.productRepo.GetByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductoNoEncontrado
	}
	orders, err := uc.poRepo.ListByProduct(ctx, codigo)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateOrdersReport(ctx, product, orders)
}
