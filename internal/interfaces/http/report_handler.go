package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mpilco/inventario-api/internal/application/dto"
	"github.com/mpilco/inventario-api/internal/application/report"
	"github.com/mpilco/inventario-api/pkg/logger"
)

// ReportHandler expone el reporte PDF de órdenes de compra (protegido).
type ReportHandler struct {
	uc  *report.OrdersReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.OrdersReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// OrdersReport godoc
// @Summary      Reporte PDF con las órdenes de compra de un producto
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        codigo  path  string  true  "Código del producto"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{codigo}/orders/report [get]
func (h *ReportHandler) OrdersReport(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	if codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODIGO", Message: "codigo es requerido"})
	}
	pdf, err := h.uc.Generate(c.UserContext(), codigo)
	if err != nil {
		return respondDomainError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="ordenes_%s.pdf"`, codigo))
	return c.Send(pdf)
}
