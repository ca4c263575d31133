package services

import (
	"fmt"
	"net/url"
	"strings"

	"bigode_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// WhatsAppService builds wa.me links with prefilled messages. The panel opens
// them in a new tab; no WhatsApp API integration is involved.
type WhatsAppService struct {
	logger *gecho.Logger
}

func NewWhatsAppService(logger *gecho.Logger) *WhatsAppService {
	return &WhatsAppService{logger: logger}
}

// NormalizePhone strips formatting and prefixes the Brazilian country code
// when missing. Returns "" when too few digits remain to be a phone number.
func NormalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	number := digits.String()
	if len(number) < 10 {
		return ""
	}
	if !strings.HasPrefix(number, "55") {
		number = "55" + number
	}
	return number
}

// Link builds a wa.me URL for the phone with the message prefilled.
func Link(phone, message string) string {
	number := NormalizePhone(phone)
	if number == "" {
		return ""
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

// OrderMessage writes the canned status message for an order in the house
// voice. Unknown statuses get the generic greeting.
func OrderMessage(order *tables.Order) string {
	firstName := order.CustomerName
	if idx := strings.IndexByte(firstName, ' '); idx > 0 {
		firstName = firstName[:idx]
	}

	switch order.Status {
	case tables.OrderStatusConfirmed:
		return fmt.Sprintf("Olá %s! Seu pedido foi confirmado e já vai para a cozinha. 🍔", firstName)
	case tables.OrderStatusPreparing:
		return fmt.Sprintf("Olá %s! Seu pedido está sendo preparado. 👨‍🍳", firstName)
	case tables.OrderStatusReady:
		return fmt.Sprintf("Olá %s! Seu pedido está pronto! Total: R$ %s. 🛵", firstName, order.Total.StringFixed(2))
	case tables.OrderStatusDelivered:
		return fmt.Sprintf("Olá %s! Pedido entregue. Obrigado pela preferência! 😋", firstName)
	case tables.OrderStatusCancelled:
		return fmt.Sprintf("Olá %s, seu pedido foi cancelado. Qualquer dúvida é só chamar.", firstName)
	default:
		return fmt.Sprintf("Olá %s! Aqui é do Bigode Lanches, sobre o seu pedido.", firstName)
	}
}

// OrderLink builds the wa.me link for an order with the canned message for
// its current status.
func (ws *WhatsAppService) OrderLink(order *tables.Order) (string, error) {
	link := Link(order.CustomerPhone, OrderMessage(order))
	if link == "" {
		return "", fmt.Errorf("order %s has no usable phone number", order.Id)
	}
	return link, nil
}

// CustomLink builds a wa.me link with a free-form message from the panel.
func (ws *WhatsAppService) CustomLink(phone, message string) (string, error) {
	link := Link(phone, message)
	if link == "" {
		return "", fmt.Errorf("phone number %q is not usable", phone)
	}
	return link, nil
}
