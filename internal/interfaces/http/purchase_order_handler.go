package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mpilco/inventario-api/internal/application/dto"
	"github.com/mpilco/inventario-api/internal/application/usecase"
	"github.com/mpilco/inventario-api/pkg/logger"
)

// PurchaseOrderHandler maneja las peticiones HTTP de órdenes de compra
// (protegido). La clave natural (producto, mes, año) viaja en la ruta.
type PurchaseOrderHandler struct {
	uc  *usecase.PurchaseOrderUseCase
	log *logger.Logger
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(uc *usecase.PurchaseOrderUseCase, log *logger.Logger) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc, log: log}
}

// Submit godoc
// @Summary      Crear o actualizar la orden de un producto para un mes/año
// @Description  Upsert por clave natural. Devuelve 201 si la orden no existía y 200 si se actualizó.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        codigo  path  string  true  "Código del producto"
// @Param        body    body  dto.SubmitOrderRequest  true  "Datos de la orden"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Success      201  {object}  dto.PurchaseOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{codigo}/orders [post]
func (h *PurchaseOrderHandler) Submit(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	if codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODIGO", Message: "codigo es requerido"})
	}
	var in dto.SubmitOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, created, err := h.uc.Submit(c.UserContext(), codigo, in)
	if err != nil {
		return respondDomainError(c, h.log, err)
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	return c.JSON(out)
}

// GetByKey godoc
// @Summary      Obtener la orden de un producto para un mes/año
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "Código del producto"
// @Param        mes     path  string  true  "Mes (ENE..DIC)"
// @Param        anio    path  int     true  "Año"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{codigo}/orders/{mes}/{anio} [get]
func (h *PurchaseOrderHandler) GetByKey(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	mes := c.Params("mes")
	anio, err := c.ParamsInt("anio")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "anio debe ser numérico", Field: "anio"})
	}
	out, err := h.uc.GetByKey(c.UserContext(), codigo, mes, anio)
	if err != nil {
		return respondDomainError(c, h.log, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Listar las órdenes de un producto
// @Description  El filtro estado admite pendiente, parcial, completado, cancelado u outstanding (pendiente + parcial).
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        codigo  path   string  true   "Código del producto"
// @Param        estado  query  string  false  "Filtro de estado"
// @Success      200  {object}  dto.PurchaseOrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{codigo}/orders [get]
func (h *PurchaseOrderHandler) ListByProduct(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	if codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODIGO", Message: "codigo es requerido"})
	}
	out, err := h.uc.ListByProduct(c.UserContext(), codigo, c.Query("estado"))
	if err != nil {
		return respondDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar la orden de un producto para un mes/año
// @Description  Transición terminal: una orden cancelada rechaza nuevos envíos. Cancelar dos veces es idempotente.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "Código del producto"
// @Param        mes     path  string  true  "Mes (ENE..DIC)"
// @Param        anio    path  int     true  "Año"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{codigo}/orders/{mes}/{anio}/cancel [post]
func (h *PurchaseOrderHandler) Cancel(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	mes := c.Params("mes")
	anio, err := c.ParamsInt("anio")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "anio debe ser numérico", Field: "anio"})
	}
	out, err := h.uc.Cancel(c.UserContext(), codigo, mes, anio)
	if err != nil {
		return respondDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar (lógicamente) la orden de un producto para un mes/año
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "Código del producto"
// @Param        mes     path  string  true  "Mes (ENE..DIC)"
// @Param        anio    path  int     true  "Año"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{codigo}/orders/{mes}/{anio} [delete]
func (h *PurchaseOrderHandler) Delete(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	mes := c.Params("mes")
	anio, err := c.ParamsInt("anio")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "anio debe ser numérico", Field: "anio"})
	}
	if err := h.uc.Delete(c.UserContext(), codigo, mes, anio); err != nil {
		return respondDomainError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
