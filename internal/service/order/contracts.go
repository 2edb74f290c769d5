package order

import (
	"context"

	"service-delivery-admin/internal/domain"
	"service-delivery-admin/internal/service/notifications"
)

// orderRepository defines storage operations required by the business layer.
type orderRepository interface {
	Get(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, productPrefix string, limit, offset int) ([]domain.Order, error)
	Count(ctx context.Context, productPrefix string) (int64, error)
	Create(ctx context.Context, o *domain.Order) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialOrderUpdate) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// deliverymanGetter loads the deliveryman referenced by a new order.
type deliverymanGetter interface {
	Get(ctx context.Context, id int64) (*domain.Deliveryman, error)
}

// recipientGetter loads the recipient referenced by a new order.
type recipientGetter interface {
	Get(ctx context.Context, id int64) (*domain.Recipient, error)
}

// EventPublisher pushes order events to the notification queue.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, e notifications.OrderCreatedEvent) error
}
