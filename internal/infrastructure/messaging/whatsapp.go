package messaging

import (
	"fmt"
	"net/url"

	"fieldops/internal/shared/utils"
)

// WhatsAppLinker builds wa.me deep links for client notifications. The links
// are handed to the dispatcher UI; no message is sent server-side.
type WhatsAppLinker struct {
	countryCode string
	businessTag string
}

func NewWhatsAppLinker(countryCode, businessTag string) *WhatsAppLinker {
	return &WhatsAppLinker{
		countryCode: countryCode,
		businessTag: businessTag,
	}
}

// Link builds a wa.me URL for the given raw phone and message text.
// Returns "" when the phone has no digits.
func (l *WhatsAppLinker) Link(rawPhone, message string) string {
	phone := utils.NormalizePhone(rawPhone, l.countryCode)
	if phone == "" {
		return ""
	}
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(message)
}

// AcceptanceLink builds the message sent when a ticket is accepted and
// converted into a service order.
func (l *WhatsAppLinker) AcceptanceLink(rawPhone, clientName string, orderID uint) string {
	message := fmt.Sprintf(
		"Olá %s! Sua solicitação foi aceita pela %s. Ordem de serviço #%d criada. Em breve entraremos em contato para agendar a visita.",
		clientName, l.businessTag, orderID,
	)
	return l.Link(rawPhone, message)
}

// RejectionLink builds the message sent when a ticket is rejected.
func (l *WhatsAppLinker) RejectionLink(rawPhone, clientName string) string {
	message := fmt.Sprintf(
		"Olá %s! Infelizmente não poderemos atender sua solicitação no momento. Agradecemos o contato.",
		clientName,
	)
	return l.Link(rawPhone, message)
}
