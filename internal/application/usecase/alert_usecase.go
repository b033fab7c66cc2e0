package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mpilco/inventario-api/internal/application/dto"
	"github.com/mpilco/inventario-api/internal/domain"
	"github.com/mpilco/inventario-api/internal/domain/entity"
	"github.com/mpilco/inventario-api/internal/domain/repository"
	"github.com/mpilco/inventario-api/pkg/logger"
)

// MailSender envía la notificación por correo de una alerta de stock.
type MailSender interface {
	SendStockAlert(ctx context.Context, product *entity.Product, mensajes []string) error
}

// AlertUseCase gestiona las alertas de stock: persistencia, notificación por
// correo y lectura desde el dashboard.
type AlertUseCase struct {
	repo   repository.AlertRepository
	mailer MailSender
	log    *logger.Logger
}

// NewAlertUseCase construye el caso de uso. mailer puede ser nil si el correo
// no está configurado.
func NewAlertUseCase(repo repository.AlertRepository, mailer MailSender, log *logger.Logger) *AlertUseCase {
	return &AlertUseCase{repo: repo, mailer: mailer, log: log}
}

// RegisterStockAlert persiste una alerta de severidad alta para el producto y
// dispara la notificación por correo. Un fallo del correo se loguea como
// warning y no hace fallar la operación que originó la alerta.
func (uc *AlertUseCase) RegisterStockAlert(ctx context.Context, product *entity.Product, mensajes []string) error {
	if len(mensajes) == 0 {
		return nil
	}
	alert := &entity.Alert{
		ID:             uuid.New().String(),
		ProductoCodigo: product.Codigo,
		Message:        strings.Join(mensajes, "\n"),
		Severity:       entity.SeverityHigh,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(ctx, alert); err != nil {
		return err
	}
	if uc.mailer != nil {
		if err := uc.mailer.SendStockAlert(ctx, product, mensajes); err != nil {
			uc.log.Warn().Err(err).Str("producto", product.Codigo).Msg("no se pudo enviar el correo de alerta")
		}
	}
	return nil
}

// List lista alertas, opcionalmente solo las no leídas.
func (uc *AlertUseCase) List(ctx context.Context, onlyUnread bool, limit, offset int) (*dto.AlertListResponse, error) {
	list, err := uc.repo.List(ctx, onlyUnread, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AlertResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.AlertResponse{
			ID:             a.ID,
			ProductoCodigo: a.ProductoCodigo,
			Message:        a.Message,
			Severity:       a.Severity,
			Read:           a.Read,
			CreatedAt:      a.CreatedAt,
		})
	}
	return &dto.AlertListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// MarkRead marca una alerta como leída.
func (uc *AlertUseCase) MarkRead(ctx context.Context, id string) error {
	ok, err := uc.repo.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
