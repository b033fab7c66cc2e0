package forecast

import (
	"context"
	"fmt"

	"github.com/mpilco/inventario-api/internal/application/dto"
	"github.com/mpilco/inventario-api/internal/application/usecase"
	"github.com/mpilco/inventario-api/internal/domain"
	"github.com/mpilco/inventario-api/internal/domain/entity"
	"github.com/mpilco/inventario-api/internal/domain/repository"
	"github.com/mpilco/inventario-api/pkg/logger"
)

// UseCase orquesta el pronóstico de consumo de un producto: arma la entrada
// del motor con el histórico y las órdenes abiertas, lo invoca y registra
// alertas de stock sobre las proyecciones críticas.
type UseCase struct {
	productRepo repository.ProductRepository
	poRepo      repository.PurchaseOrderRepository
	engine      Engine
	alerts      *usecase.AlertUseCase
	log         *logger.Logger
}

// NewUseCase construye el caso de uso de pronóstico.
func NewUseCase(
	productRepo repository.ProductRepository,
	poRepo repository.PurchaseOrderRepository,
	engine Engine,
	alerts *usecase.AlertUseCase,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		productRepo: productRepo,
		poRepo:      poRepo,
		engine:      engine,
		alerts:      alerts,
		log:         log,
	}
}

// Forecast ejecuta el motor para un producto y devuelve la proyección opaca.
// Las proyecciones marcadas con alerta de stock generan una Alert y un correo;
// un fallo al registrar la alerta se loguea y no invalida el pronóstico.
func (uc *UseCase) Forecast(ctx context.Context, codigo string) (*dto.ForecastResponse, error) {
	product, err := uc.productRepo.GetByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductoNoEncontrado
	}

	abiertas, err := uc.poRepo.ListByProduct(ctx, codigo, entity.EstadoPendiente, entity.EstadoParcial)
	if err != nil {
		return nil, err
	}
	ordenes := make([]dto.OutstandingOrderDTO, 0, len(abiertas))
	for _, po := range abiertas {
		ordenes = append(ordenes, dto.OutstandingOrderDTO{
			Mes:      po.Mes,
			Anio:     po.Anio,
			Cantidad: po.Cantidad,
			Recibido: po.Recibido,
			Estado:   po.Estado,
		})
	}

	result, err := uc.engine.Predict(ctx, Input{
		Codigo:     product.Codigo,
		StockTotal: product.StockTotal,
		UnidCaja:   product.UnidCaja,
		Consumos:   product.Consumos,
		Ordenes:    ordenes,
	})
	if err != nil {
		return nil, err
	}

	if mensajes := buildAlertMessages(product, result.Proyecciones); len(mensajes) > 0 {
		if err := uc.alerts.RegisterStockAlert(ctx, product, mensajes); err != nil {
			uc.log.Warn().Err(err).Str("producto", codigo).Msg("no se pudo registrar la alerta de stock")
		}
	}

	return &dto.ForecastResponse{
		Product: dto.ProductResponse{
			Codigo:      product.Codigo,
			Descripcion: product.Descripcion,
			UnidCaja:    product.UnidCaja,
			StockTotal:  product.StockTotal,
			Consumos:    product.Consumos,
			CreatedAt:   product.CreatedAt,
			UpdatedAt:   product.UpdatedAt,
		},
		Prediction: result.Raw,
	}, nil
}

// buildAlertMessages arma un mensaje por cada proyección con alerta de stock.
func buildAlertMessages(product *entity.Product, proyecciones []Proyeccion) []string {
	var mensajes []string
	for _, p := range proyecciones {
		if !p.AlertaStock {
			continue
		}
		unidades := p.CajasAPedir * product.UnidCaja
		mensajes = append(mensajes, fmt.Sprintf(
			"%s: stock proyectado %s unidades, mínimo requerido %s; pedir %d cajas (%d unidades)",
			p.Mes,
			p.StockProyectado.StringFixed(0),
			p.StockMinimo.StringFixed(0),
			p.CajasAPedir,
			unidades,
		))
	}
	return mensajes
}
