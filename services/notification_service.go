package services

import (
	"fmt"
	"strings"

	"bigode_server/structs"
	"bigode_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

// NotificationService emails staff when a new order lands. Customers are
// reached by phone/WhatsApp only, so no customer-facing mail is sent.
// Failures are logged and swallowed; an order must never fail because the
// mail provider is down.
type NotificationService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewNotificationService(logger *gecho.Logger, cfg *structs.Config) *NotificationService {
	var client *resend.Client
	if cfg.Email.Enabled && cfg.Email.APIKey != "" {
		client = resend.NewClient(cfg.Email.APIKey)
	}

	return &NotificationService{
		logger: logger,
		cfg:    cfg,
		client: client,
	}
}

// NotifyNewOrder sends the staff mailbox a plain-text summary of the order.
// Called from a goroutine after commit; never blocks checkout.
func (ns *NotificationService) NotifyNewOrder(order *tables.Order, items []tables.OrderItem) {
	if ns.client == nil || ns.cfg.Email.StaffAddress == "" {
		return
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Novo pedido de %s (%s)\n\n", order.CustomerName, order.CustomerPhone)
	for _, item := range items {
		fmt.Fprintf(&body, "- %dx produto %s @ R$ %s\n", item.Quantity, item.ProductId, item.Price.StringFixed(2))
	}
	fmt.Fprintf(&body, "\nTotal: R$ %s\nPagamento: %s\n", order.Total.StringFixed(2), order.PaymentMethod.Label())
	if order.DeliveryAddress != "" {
		fmt.Fprintf(&body, "Entrega: %s\n", order.DeliveryAddress)
	}

	params := &resend.SendEmailRequest{
		From:    ns.cfg.Email.FromAddress,
		To:      []string{ns.cfg.Email.StaffAddress},
		Subject: fmt.Sprintf("Novo pedido de %s", order.CustomerName),
		Text:    body.String(),
	}

	if _, err := ns.client.Emails.Send(params); err != nil {
		ns.logger.Warn("Failed to send new-order notification",
			gecho.Field("error", err),
			gecho.Field("order_id", order.Id),
		)
	}
}
