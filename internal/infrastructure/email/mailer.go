package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"fieldops/internal/shared/config"
	"fieldops/internal/shared/logger"
)

// Mailer sends the closing report link to the client.
type Mailer interface {
	SendReportLink(to, clientName string, orderID uint, reportURL string) error
}

// SMTPMailer delivers mail through a plain SMTP relay. When disabled it
// degrades to a no-op so closing an order never depends on mail delivery.
type SMTPMailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	enabled  bool
	logger   logger.Interface
}

func NewSMTPMailer(cfg *config.EmailConfig, log logger.Interface) *SMTPMailer {
	return &SMTPMailer{
		dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:     cfg.FromAddress,
		fromName: cfg.FromName,
		enabled:  cfg.Enabled,
		logger:   log,
	}
}

var _ Mailer = (*SMTPMailer)(nil)

func (m *SMTPMailer) SendReportLink(to, clientName string, orderID uint, reportURL string) error {
	if !m.enabled || to == "" {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Ordem de serviço #%d finalizada", orderID))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Olá %s,\n\nSua ordem de serviço #%d foi finalizada. O relatório está disponível em:\n%s\n\nObrigado!",
		clientName, orderID, reportURL,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}

	m.logger.Info("report email sent", "order_id", orderID, "to", to)
	return nil
}
