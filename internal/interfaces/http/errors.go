package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mpilco/inventario-api/internal/application/dto"
	"github.com/mpilco/inventario-api/internal/domain"
	"github.com/mpilco/inventario-api/pkg/logger"
)

// respondDomainError mapea los errores de dominio al status HTTP y al cuerpo
// estándar. La taxonomía:
//   - ValidationError       → 400, con el campo ofensivo.
//   - producto/recurso ausente → 404.
//   - duplicados y orden cancelada → 409.
//   - ErrConflict           → 500: es una violación de unicidad que sobrevivió
//     al upsert atómico, se loguea como defecto y no se expone como error de
//     usuario.
func respondDomainError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: ve.Mensaje, Field: ve.Campo,
		})
	case errors.Is(err, domain.ErrProductoNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado",
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso no encontrado",
		})
	case errors.Is(err, domain.ErrOrdenCancelada):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "ORDER_CANCELLED", Message: "la orden está cancelada y no admite cambios",
		})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE", Message: "el recurso ya existe",
		})
	case errors.Is(err, domain.ErrConflict):
		log.Error().Err(err).Str("path", c.Path()).Msg("violación de unicidad sobrevivió al upsert")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error interno del servidor",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
