package notifications

import (
	"context"
	"fmt"
	"strings"

	"service-delivery-admin/internal/apperr"
	"service-delivery-admin/internal/gateway/mailer"
	"service-delivery-admin/internal/logx"
)

// MailerPort abstracts the outbound mail channel used by the Processor.
type MailerPort interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Processor turns order events into deliveryman notification emails.
type Processor struct {
	mail   MailerPort
	from   string
	logger logx.Logger
}

// NewProcessor creates a notifications Processor. The from address is used as
// the sender of every composed email.
func NewProcessor(mail MailerPort, from string, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Processor{mail: mail, from: from, logger: logger}
}

// Handle composes and sends the "new order" email for a single event.
func (p *Processor) Handle(ctx context.Context, e OrderCreatedEvent) error {
	if strings.TrimSpace(e.DeliverymanEmail) == "" {
		return fmt.Errorf("order %d event has no deliveryman email: %w", e.OrderID, apperr.ErrInvalid)
	}

	msg := mailer.Message{
		From:    p.from,
		To:      e.DeliverymanEmail,
		Subject: "New order available",
		Body:    composeBody(e),
	}
	if err := p.mail.Send(ctx, msg); err != nil {
		return fmt.Errorf("send order %d notification: %w", e.OrderID, err)
	}

	p.logger.Info("order notification sent",
		logx.Int64("order_id", e.OrderID),
		logx.String("to", e.DeliverymanEmail),
	)
	return nil
}

func composeBody(e OrderCreatedEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", e.DeliverymanName)
	fmt.Fprintf(&b, "A new order of %q is waiting for pickup.\n", e.Product)
	fmt.Fprintf(&b, "Recipient: %s\n", e.RecipientName)
	return b.String()
}
