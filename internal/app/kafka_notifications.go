package app

import (
	"context"
	"errors"

	"service-delivery-admin/internal/apperr"
	"service-delivery-admin/internal/service/notifications"
	"service-delivery-admin/internal/transport/kafka"
)

// makeNotificationsHandler adapts the processor to the consumer contract.
// Invalid events are not worth redelivering, so they are marked permanent.
func makeNotificationsHandler(p *notifications.Processor) kafka.HandleFunc {
	return func(ctx context.Context, event notifications.OrderCreatedEvent) error {
		err := p.Handle(ctx, event)
		if err == nil {
			return nil
		}
		if errors.Is(err, apperr.ErrInvalid) {
			return kafka.Permanent(err)
		}
		return err
	}
}
