package usecase

import (
	"context"
	"time"

	"github.com/mpilco/inventario-api/internal/application/dto"
	"github.com/mpilco/inventario-api/internal/domain"
	"github.com/mpilco/inventario-api/internal/domain/entity"
	"github.com/mpilco/inventario-api/internal/domain/purchase"
	"github.com/mpilco/inventario-api/internal/domain/repository"
)

// EstadoOutstanding es el filtro virtual "órdenes abiertas" (pendiente o
// parcial), usado por el motor de pronóstico y por el dashboard.
const EstadoOutstanding = "outstanding"

// PurchaseOrderUseCase coordina el ciclo de vida de las órdenes de compra:
// normaliza y valida la entrada, resuelve crear-vs-actualizar por clave
// natural y aplica el resultado en una transacción.
type PurchaseOrderUseCase struct {
	tx          TxRunner
	poRepo      repository.PurchaseOrderRepository
	productRepo repository.ProductRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(tx TxRunner, poRepo repository.PurchaseOrderRepository, productRepo repository.ProductRepository) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{tx: tx, poRepo: poRepo, productRepo: productRepo}
}

// Submit crea o actualiza la orden del (producto, mes, año) indicado.
// Devuelve la orden persistida y created=true si no existía, para que el
// handler distinga 201 de 200.
//
// El estado nunca se acepta del caller: se recalcula siempre con la regla de
// derivación antes de persistir. Una orden cancelada es terminal y rechaza
// nuevos envíos (decisión registrada en DESIGN.md).
func (uc *PurchaseOrderUseCase) Submit(ctx context.Context, codigo string, in dto.SubmitOrderRequest) (*dto.PurchaseOrderResponse, bool, error) {
	// Normalización previa a la validación.
	mes, err := purchase.NormalizeMes(in.Mes)
	if err != nil {
		return nil, false, err
	}
	cantidad := in.Cantidad
	if cantidad < 0 {
		cantidad = 0
	}
	recibido := 0
	if in.Recibido != nil {
		recibido = *in.Recibido
	}

	if err := purchase.ValidateAnio(in.Anio); err != nil {
		return nil, false, err
	}
	if err := purchase.ValidateCantidades(cantidad, recibido); err != nil {
		return nil, false, err
	}
	fechaEntrega, err := time.Parse("2006-01-02", in.FechaEntrega)
	if err != nil {
		return nil, false, domain.NewValidationError("fecha_entrega", "debe tener formato AAAA-MM-DD")
	}

	var (
		persisted *entity.PurchaseOrder
		created   bool
	)
	err = uc.tx.Run(ctx, func(poRepo repository.PurchaseOrderRepository, productRepo repository.ProductRepository) error {
		ok, err := productRepo.Exists(ctx, codigo)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrProductoNoEncontrado
		}

		existing, err := poRepo.FindByKey(ctx, codigo, mes, in.Anio)
		if err != nil {
			return err
		}
		if existing != nil && existing.Estado == entity.EstadoCancelado {
			return domain.ErrOrdenCancelada
		}

		now := time.Now()
		po := &entity.PurchaseOrder{
			ProductoCodigo: codigo,
			Mes:            mes,
			Anio:           in.Anio,
			Cantidad:       cantidad,
			Recibido:       recibido,
			Estado:         purchase.DeriveEstado(cantidad, recibido),
			FechaEntrega:   fechaEntrega,
			UpdatedAt:      now,
		}
		if existing != nil {
			po.CreatedAt = existing.CreatedAt
		} else {
			po.CreatedAt = now
		}

		created, err = poRepo.Upsert(ctx, po)
		if err != nil {
			return err
		}
		persisted = po
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return toPurchaseOrderResponse(persisted), created, nil
}

// GetByKey devuelve la orden para (producto, mes, año), o nil si no existe.
func (uc *PurchaseOrderUseCase) GetByKey(ctx context.Context, codigo, mes string, anio int) (*dto.PurchaseOrderResponse, error) {
	m, err := purchase.NormalizeMes(mes)
	if err != nil {
		return nil, err
	}
	po, err := uc.poRepo.FindByKey(ctx, codigo, m, anio)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, nil
	}
	return toPurchaseOrderResponse(po), nil
}

// ListByProduct lista las órdenes de un producto. estado puede ser vacío
// (todas), un estado concreto, o EstadoOutstanding (pendiente + parcial).
func (uc *PurchaseOrderUseCase) ListByProduct(ctx context.Context, codigo, estado string) (*dto.PurchaseOrderListResponse, error) {
	ok, err := uc.productRepo.Exists(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrProductoNoEncontrado
	}

	var estados []string
	switch estado {
	case "":
	case EstadoOutstanding:
		estados = []string{entity.EstadoPendiente, entity.EstadoParcial}
	case entity.EstadoPendiente, entity.EstadoParcial, entity.EstadoCompletado, entity.EstadoCancelado:
		estados = []string{estado}
	default:
		return nil, domain.NewValidationError("estado", "filtro de estado desconocido")
	}

	list, err := uc.poRepo.ListByProduct(ctx, codigo, estados...)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, po := range list {
		items = append(items, *toPurchaseOrderResponse(po))
	}
	return &dto.PurchaseOrderListResponse{Items: items}, nil
}

// Outstanding devuelve las órdenes abiertas de un producto en la forma
// reducida {mes, año, cantidad, recibido, estado} que consume el motor de
// pronóstico.
func (uc *PurchaseOrderUseCase) Outstanding(ctx context.Context, codigo string) ([]dto.OutstandingOrderDTO, error) {
	list, err := uc.poRepo.ListByProduct(ctx, codigo, entity.EstadoPendiente, entity.EstadoParcial)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OutstandingOrderDTO, 0, len(list))
	for _, po := range list {
		out = append(out, dto.OutstandingOrderDTO{
			Mes:      po.Mes,
			Anio:     po.Anio,
			Cantidad: po.Cantidad,
			Recibido: po.Recibido,
			Estado:   po.Estado,
		})
	}
	return out, nil
}

// Cancel marca la orden como cancelada. La transición es explícita y
// terminal: una vez cancelada la orden deja de re-derivarse. Cancelar una
// orden ya cancelada es idempotente.
func (uc *PurchaseOrderUseCase) Cancel(ctx context.Context, codigo, mes string, anio int) (*dto.PurchaseOrderResponse, error) {
	m, err := purchase.NormalizeMes(mes)
	if err != nil {
		return nil, err
	}
	po, err := uc.poRepo.UpdateEstado(ctx, codigo, m, anio, entity.EstadoCancelado)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	return toPurchaseOrderResponse(po), nil
}

// Delete elimina lógicamente la orden: el registro se conserva pero sale de
// todas las consultas por defecto.
func (uc *PurchaseOrderUseCase) Delete(ctx context.Context, codigo, mes string, anio int) error {
	m, err := purchase.NormalizeMes(mes)
	if err != nil {
		return err
	}
	deleted, err := uc.poRepo.SoftDelete(ctx, codigo, m, anio)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toPurchaseOrderResponse(po *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	if po == nil {
		return nil
	}
	return &dto.PurchaseOrderResponse{
		ProductoCodigo: po.ProductoCodigo,
		Mes:            po.Mes,
		Anio:           po.Anio,
		MesAnio:        po.MesAnio(),
		Cantidad:       po.Cantidad,
		Recibido:       po.Recibido,
		Estado:         po.Estado,
		FechaEntrega:   po.FechaEntrega,
		CreatedAt:      po.CreatedAt,
		UpdatedAt:      po.UpdatedAt,
	}
}
