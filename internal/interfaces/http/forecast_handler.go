package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mpilco/inventario-api/internal/application/dto"
	"github.com/mpilco/inventario-api/internal/application/forecast"
	"github.com/mpilco/inventario-api/pkg/logger"
)

// ForecastHandler expone el pronóstico de consumo de un producto (protegido).
type ForecastHandler struct {
	uc  *forecast.UseCase
	log *logger.Logger
}

// NewForecastHandler construye el handler.
func NewForecastHandler(uc *forecast.UseCase, log *logger.Logger) *ForecastHandler {
	return &ForecastHandler{uc: uc, log: log}
}

// Forecast godoc
// @Summary      Pronóstico de consumo de un producto
// @Description  Invoca el motor de pronóstico con el histórico de consumos y las órdenes abiertas del producto.
// @Tags         forecast
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "Código del producto"
// @Success      200  {object}  dto.ForecastResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/products/{codigo}/forecast [get]
func (h *ForecastHandler) Forecast(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	if codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODIGO", Message: "codigo es requerido"})
	}
	out, err := h.uc.Forecast(c.UserContext(), codigo)
	if err != nil {
		if forecast.IsEngineError(err) {
			h.log.Error().Err(err).Str("producto", codigo).Msg("el motor de pronóstico falló")
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "ENGINE_ERROR", Message: "el motor de pronóstico no está disponible"})
		}
		return respondDomainError(c, h.log, err)
	}
	return c.JSON(out)
}
