package forecast_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpilco/inventario-api/internal/application/forecast"
	"github.com/mpilco/inventario-api/internal/application/usecase"
	"github.com/mpilco/inventario-api/internal/domain"
	"github.com/mpilco/inventario-api/internal/domain/entity"
	"github.com/mpilco/inventario-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	product *entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, _ *entity.Product) error { return nil }
func (r *fakeProductRepo) GetByCodigo(_ context.Context, codigo string) (*entity.Product, error) {
	if r.product != nil && r.product.Codigo == codigo {
		return r.product, nil
	}
	return nil, nil
}
func (r *fakeProductRepo) Exists(_ context.Context, codigo string) (bool, error) {
	return r.product != nil && r.product.Codigo == codigo, nil
}
func (r *fakeProductRepo) Update(_ context.Context, _ *entity.Product) error { return nil }
func (r *fakeProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Delete(_ context.Context, _ string) error { return nil }

type fakePORepo struct {
	orders []*entity.PurchaseOrder
}

func (r *fakePORepo) Upsert(_ context.Context, _ *entity.PurchaseOrder) (bool, error) {
	return false, nil
}
func (r *fakePORepo) FindByKey(_ context.Context, _, _ string, _ int) (*entity.PurchaseOrder, error) {
	return nil, nil
}
func (r *fakePORepo) ListByProduct(_ context.Context, codigo string, estados ...string) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, po := range r.orders {
		if po.ProductoCodigo != codigo {
			continue
		}
		for _, e := range estados {
			if po.Estado == e {
				out = append(out, po)
				break
			}
		}
	}
	return out, nil
}
func (r *fakePORepo) UpdateEstado(_ context.Context, _, _ string, _ int, _ string) (*entity.PurchaseOrder, error) {
	return nil, nil
}
func (r *fakePORepo) SoftDelete(_ context.Context, _, _ string, _ int) (bool, error) {
	return false, nil
}

type fakeAlertRepo struct {
	created []*entity.Alert
}

func (r *fakeAlertRepo) Create(_ context.Context, a *entity.Alert) error {
	r.created = append(r.created, a)
	return nil
}
func (r *fakeAlertRepo) List(_ context.Context, _ bool, _, _ int) ([]*entity.Alert, error) {
	return r.created, nil
}
func (r *fakeAlertRepo) ListByProduct(_ context.Context, _ string) ([]*entity.Alert, error) {
	return nil, nil
}
func (r *fakeAlertRepo) MarkRead(_ context.Context, _ string) (bool, error) { return false, nil }

// fakeEngine captura la entrada recibida y devuelve un resultado fijo.
type fakeEngine struct {
	gotInput forecast.Input
	result   *forecast.Result
	err      error
}

func (e *fakeEngine) Predict(_ context.Context, in forecast.Input) (*forecast.Result, error) {
	e.gotInput = in
	if e.err != nil {
		return nil, e.err
	}
	return e.result, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func testProduct() *entity.Product {
	return &entity.Product{
		Codigo:      "P1",
		Descripcion: "guantes de nitrilo",
		UnidCaja:    100,
		StockTotal:  1200,
		Consumos:    map[string]int{"ENE 2024": 300, "FEB 2024": 280},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestForecast_ArmaLaEntradaConOrdenesAbiertas(t *testing.T) {
	productRepo := &fakeProductRepo{product: testProduct()}
	poRepo := &fakePORepo{orders: []*entity.PurchaseOrder{
		{ProductoCodigo: "P1", Mes: "ENE", Anio: 2024, Cantidad: 10, Recibido: 0, Estado: entity.EstadoPendiente},
		{ProductoCodigo: "P1", Mes: "FEB", Anio: 2024, Cantidad: 8, Recibido: 3, Estado: entity.EstadoParcial},
		{ProductoCodigo: "P1", Mes: "MAR", Anio: 2024, Cantidad: 5, Recibido: 5, Estado: entity.EstadoCompletado},
		{ProductoCodigo: "P1", Mes: "ABR", Anio: 2024, Cantidad: 5, Recibido: 0, Estado: entity.EstadoCancelado},
	}}
	engine := &fakeEngine{result: &forecast.Result{Raw: json.RawMessage(`{"proyecciones":[]}`)}}
	alerts := usecase.NewAlertUseCase(&fakeAlertRepo{}, nil, testLogger())
	uc := forecast.NewUseCase(productRepo, poRepo, engine, alerts, testLogger())

	out, err := uc.Forecast(context.Background(), "P1")
	require.NoError(t, err)

	assert.Equal(t, "P1", engine.gotInput.Codigo)
	assert.Equal(t, 1200, engine.gotInput.StockTotal)
	assert.Equal(t, 100, engine.gotInput.UnidCaja)
	require.Len(t, engine.gotInput.Ordenes, 2,
		"solo las órdenes pendiente y parcial alimentan el motor")
	assert.Equal(t, "ENE", engine.gotInput.Ordenes[0].Mes)
	assert.Equal(t, "FEB", engine.gotInput.Ordenes[1].Mes)

	assert.Equal(t, "P1", out.Product.Codigo)
	assert.JSONEq(t, `{"proyecciones":[]}`, string(out.Prediction))
}

func TestForecast_ProductoDesconocido(t *testing.T) {
	uc := forecast.NewUseCase(
		&fakeProductRepo{}, &fakePORepo{},
		&fakeEngine{}, usecase.NewAlertUseCase(&fakeAlertRepo{}, nil, testLogger()),
		testLogger(),
	)

	_, err := uc.Forecast(context.Background(), "NO-EXISTE")
	assert.ErrorIs(t, err, domain.ErrProductoNoEncontrado)
}

func TestForecast_RegistraAlertaDeStock(t *testing.T) {
	productRepo := &fakeProductRepo{product: testProduct()}
	alertRepo := &fakeAlertRepo{}
	engine := &fakeEngine{result: &forecast.Result{
		Raw: json.RawMessage(`{"proyecciones":[{"mes":"ENE","alerta_stock":true}]}`),
		Proyecciones: []forecast.Proyeccion{
			{
				Mes:             "ENE",
				ConsumoEstimado: decimal.NewFromInt(320),
				StockProyectado: decimal.NewFromInt(150),
				StockMinimo:     decimal.NewFromInt(400),
				CajasAPedir:     3,
				AlertaStock:     true,
			},
			{
				Mes:         "FEB",
				AlertaStock: false,
			},
		},
	}}
	alerts := usecase.NewAlertUseCase(alertRepo, nil, testLogger())
	uc := forecast.NewUseCase(productRepo, &fakePORepo{}, engine, alerts, testLogger())

	_, err := uc.Forecast(context.Background(), "P1")
	require.NoError(t, err)

	require.Len(t, alertRepo.created, 1, "solo las proyecciones con alerta generan alertas")
	alert := alertRepo.created[0]
	assert.Equal(t, "P1", alert.ProductoCodigo)
	assert.Equal(t, entity.SeverityHigh, alert.Severity)
	assert.Contains(t, alert.Message, "ENE")
	assert.Contains(t, alert.Message, "3 cajas")
	assert.Contains(t, alert.Message, "300 unidades", "cajas a pedir por unid_caja")
}

func TestForecast_SinAlertasNoRegistraNada(t *testing.T) {
	alertRepo := &fakeAlertRepo{}
	engine := &fakeEngine{result: &forecast.Result{Raw: json.RawMessage(`{"proyecciones":[]}`)}}
	uc := forecast.NewUseCase(
		&fakeProductRepo{product: testProduct()}, &fakePORepo{},
		engine, usecase.NewAlertUseCase(alertRepo, nil, testLogger()), testLogger(),
	)

	_, err := uc.Forecast(context.Background(), "P1")
	require.NoError(t, err)
	assert.Empty(t, alertRepo.created)
}

func TestForecast_ErrorDelMotorSePropaga(t *testing.T) {
	engine := &fakeEngine{err: forecast.ErrEngine}
	uc := forecast.NewUseCase(
		&fakeProductRepo{product: testProduct()}, &fakePORepo{},
		engine, usecase.NewAlertUseCase(&fakeAlertRepo{}, nil, testLogger()), testLogger(),
	)

	_, err := uc.Forecast(context.Background(), "P1")
	assert.True(t, forecast.IsEngineError(err))
}
