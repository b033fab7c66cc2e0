package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpilco/inventario-api/internal/application/dto"
	"github.com/mpilco/inventario-api/internal/application/usecase"
	"github.com/mpilco/inventario-api/internal/domain/entity"
	"github.com/mpilco/inventario-api/internal/domain/repository"
	apphttp "github.com/mpilco/inventario-api/internal/interfaces/http"
	"github.com/mpilco/inventario-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para montar el handler sobre el caso de uso real
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct{ codigos map[string]bool }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.codigos[p.Codigo] = true
	return nil
}
func (r *memProductRepo) GetByCodigo(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Exists(_ context.Context, codigo string) (bool, error) {
	return r.codigos[codigo], nil
}
func (r *memProductRepo) Update(_ context.Context, _ *entity.Product) error { return nil }
func (r *memProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Delete(_ context.Context, _ string) error { return nil }

type memPORepo struct{ orders map[string]*entity.PurchaseOrder }

func memKey(codigo, mes string, anio int) string {
	return fmt.Sprintf("%s|%s|%d", codigo, mes, anio)
}

func (r *memPORepo) Upsert(_ context.Context, po *entity.PurchaseOrder) (bool, error) {
	key := memKey(po.ProductoCodigo, po.Mes, po.Anio)
	if existing, ok := r.orders[key]; ok && existing.DeletedAt == nil {
		*existing = *po
		return false, nil
	}
	cp := *po
	r.orders[key] = &cp
	return true, nil
}
func (r *memPORepo) FindByKey(_ context.Context, codigo, mes string, anio int) (*entity.PurchaseOrder, error) {
	po, ok := r.orders[memKey(codigo, mes, anio)]
	if !ok || po.DeletedAt != nil {
		return nil, nil
	}
	cp := *po
	return &cp, nil
}
func (r *memPORepo) ListByProduct(_ context.Context, codigo string, estados ...string) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, po := range r.orders {
		if po.ProductoCodigo != codigo || po.DeletedAt != nil {
			continue
		}
		if len(estados) == 0 {
			out = append(out, po)
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
func (r *memPORepo) UpdateEstado(_ context.Context, codigo, mes string, anio int, estado string) (*entity.PurchaseOrder, error) {
	po, ok := r.orders[memKey(codigo, mes, anio)]
	if !ok || po.DeletedAt != nil {
		return nil, nil
	}
	po.Estado = estado
	cp := *po
	return &cp, nil
}
func (r *memPORepo) SoftDelete(_ context.Context, codigo, mes string, anio int) (bool, error) {
	po, ok := r.orders[memKey(codigo, mes, anio)]
	if !ok || po.DeletedAt != nil {
		return false, nil
	}
	now := time.Now()
	po.DeletedAt = &now
	return true, nil
}

type memTxRunner struct {
	poRepo      repository.PurchaseOrderRepository
	productRepo repository.ProductRepository
}

func (tx *memTxRunner) Run(_ context.Context, fn func(
	poRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(tx.poRepo, tx.productRepo)
}

// buildOrdersApp monta un Fiber mínimo con las rutas de órdenes (sin auth:
// aquí se prueba el handler, el middleware tiene sus propios tests).
func buildOrdersApp(codigos ...string) *fiber.App {
	productRepo := &memProductRepo{codigos: map[string]bool{}}
	for _, c := range codigos {
		productRepo.codigos[c] = true
	}
	poRepo := &memPORepo{orders: map[string]*entity.PurchaseOrder{}}
	uc := usecase.NewPurchaseOrderUseCase(&memTxRunner{poRepo: poRepo, productRepo: productRepo}, poRepo, productRepo)
	h := apphttp.NewPurchaseOrderHandler(uc, logger.New(logger.Config{Env: "test", Level: "error"}))

	app := fiber.New()
	app.Post("/api/products/:codigo/orders", h.Submit)
	app.Get("/api/products/:codigo/orders", h.ListByProduct)
	app.Get("/api/products/:codigo/orders/:mes/:anio", h.GetByKey)
	app.Post("/api/products/:codigo/orders/:mes/:anio/cancel", h.Cancel)
	app.Delete("/api/products/:codigo/orders/:mes/:anio", h.Delete)
	return app
}

func submitOrder(t *testing.T, app *fiber.App, codigo, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/products/"+codigo+"/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeOrder(t *testing.T, resp *http.Response) dto.PurchaseOrderResponse {
	t.Helper()
	var out dto.PurchaseOrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit — 201 al crear, 200 al actualizar
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitHandler_Creacion201(t *testing.T) {
	app := buildOrdersApp("P1")

	resp := submitOrder(t, app, "P1", `{"mes":"ene","anio":2024,"cantidad":10,"fecha_entrega":"2024-01-20"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode, "una orden nueva debe responder 201")
	out := decodeOrder(t, resp)
	assert.Equal(t, "ENE", out.Mes)
	assert.Equal(t, entity.EstadoPendiente, out.Estado)
}

func TestSubmitHandler_Actualizacion200(t *testing.T) {
	app := buildOrdersApp("P1")

	resp := submitOrder(t, app, "P1", `{"mes":"ENE","anio":2024,"cantidad":10,"fecha_entrega":"2024-01-20"}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = submitOrder(t, app, "P1", `{"mes":"ENE","anio":2024,"cantidad":10,"recibido":10,"fecha_entrega":"2024-01-20"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "el reenvío sobre la misma clave debe responder 200")
	out := decodeOrder(t, resp)
	assert.Equal(t, entity.EstadoCompletado, out.Estado)
}

func TestSubmitHandler_Validacion400ConCampo(t *testing.T) {
	app := buildOrdersApp("P1")

	resp := submitOrder(t, app, "P1", `{"mes":"ENE","anio":2019,"cantidad":10,"fecha_entrega":"2024-01-20"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "anio", body.Field, "el error debe nombrar el campo rechazado")
}

func TestSubmitHandler_ProductoDesconocido404(t *testing.T) {
	app := buildOrdersApp("P1")

	resp := submitOrder(t, app, "NO-EXISTE", `{"mes":"ENE","anio":2024,"cantidad":10,"fecha_entrega":"2024-01-20"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "PRODUCT_NOT_FOUND", body.Code)
}

func TestSubmitHandler_OrdenCancelada409(t *testing.T) {
	app := buildOrdersApp("P1")

	resp := submitOrder(t, app, "P1", `{"mes":"ENE","anio":2024,"cantidad":10,"fecha_entrega":"2024-01-20"}`)
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/products/P1/orders/ENE/2024/cancel", nil)
	cancelResp, err := app.Test(req, -1)
	require.NoError(t, err)
	cancelResp.Body.Close()
	require.Equal(t, http.StatusOK, cancelResp.StatusCode)

	resp = submitOrder(t, app, "P1", `{"mes":"ENE","anio":2024,"cantidad":10,"recibido":5,"fecha_entrega":"2024-01-20"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode, "una orden cancelada rechaza nuevos envíos")
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ORDER_CANCELLED", body.Code)
}

func TestSubmitHandler_CuerpoInvalido400(t *testing.T) {
	app := buildOrdersApp("P1")

	resp := submitOrder(t, app, "P1", `{esto no es json}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByKey y Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByKeyHandler_AliasDecEncuentraDic(t *testing.T) {
	app := buildOrdersApp("P1")

	resp := submitOrder(t, app, "P1", `{"mes":"DIC","anio":2024,"cantidad":5,"fecha_entrega":"2024-12-10"}`)
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/products/P1/orders/dec/2024", nil)
	getResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer getResp.Body.Close()

	assert.Equal(t, http.StatusOK, getResp.StatusCode)
	out := decodeOrder(t, getResp)
	assert.Equal(t, "DIC", out.Mes)
}

func TestDeleteHandler_204YLuego404(t *testing.T) {
	app := buildOrdersApp("P1")

	resp := submitOrder(t, app, "P1", `{"mes":"ENE","anio":2024,"cantidad":5,"fecha_entrega":"2024-01-20"}`)
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodDelete, "/api/products/P1/orders/ENE/2024", nil)
	delResp, err := app.Test(req, -1)
	require.NoError(t, err)
	delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/products/P1/orders/ENE/2024", nil)
	getResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer getResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode,
		"una orden con borrado lógico no debe aparecer en las lecturas")
}
