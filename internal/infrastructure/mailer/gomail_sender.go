// Package mailer implementa el envío por SMTP de los correos de alerta de
// stock crítico.
package mailer

import (
	"context"
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/mpilco/inventario-api/internal/application/usecase"
	"github.com/mpilco/inventario-api/internal/domain/entity"
	"github.com/mpilco/inventario-api/pkg/config"
)

// Verificar en tiempo de compilación que GomailSender implementa MailSender.
var _ usecase.MailSender = (*GomailSender)(nil)

// GomailSender envía las alertas por SMTP usando gomail.
type GomailSender struct {
	cfg    config.SMTPConfig
	appURL string
}

// NewGomailSender construye el sender. Con Host vacío el envío devuelve error
// descriptivo; el wiring de main deja el mailer en nil en ese caso.
func NewGomailSender(cfg config.SMTPConfig, appURL string) *GomailSender {
	return &GomailSender{cfg: cfg, appURL: appURL}
}

// SendStockAlert arma y envía el correo HTML de stock crítico de un producto.
func (s *GomailSender) SendStockAlert(_ context.Context, product *entity.Product, mensajes []string) error {
	if s.cfg.Host == "" {
		return fmt.Errorf("mailer: SMTP_HOST no configurado")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.From, "Sistema de Inventarios"))
	m.SetHeader("To", s.cfg.To)
	m.SetHeader("Subject", fmt.Sprintf("Stock crítico: %s - %s", product.Codigo, product.Descripcion))
	m.SetBody("text/html", s.buildBody(product, mensajes))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("mailer: enviar alerta: %w", err)
	}
	return nil
}

func (s *GomailSender) buildBody(product *entity.Product, mensajes []string) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; padding: 20px;">`)
	b.WriteString(`<h2 style="color: #dc3545;">Alerta de stock crítico</h2>`)
	fmt.Fprintf(&b, `<h3>%s <small>(%s)</small></h3>`, product.Descripcion, product.Codigo)
	fmt.Fprintf(&b, `<p>Stock actual: <strong>%d unidades</strong></p>`, product.StockTotal)
	b.WriteString(`<h4>Meses afectados:</h4><ul>`)
	for _, msg := range mensajes {
		fmt.Fprintf(&b, `<li style="margin-bottom: 8px;">%s</li>`, msg)
	}
	b.WriteString(`</ul>`)
	fmt.Fprintf(&b, `<p><a href="%s/products/%s">Revisar en el sistema</a></p>`, s.appURL, product.Codigo)
	b.WriteString(`</div>`)
	return b.String()
}
