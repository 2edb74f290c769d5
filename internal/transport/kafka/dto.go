package kafka

import (
	"strings"
	"time"

	"service-delivery-admin/internal/service/notifications"
)

// EventDTO is a data transfer object for notifications.OrderCreatedEvent
type EventDTO struct {
	OrderID          int64     `json:"order_id"`
	Product          string    `json:"product"`
	Deliveryman      string    `json:"deliveryman"`
	DeliverymanEmail string    `json:"deliveryman_email"`
	Recipient        string    `json:"recipient"`
	CreatedAt        time.Time `json:"created_at"`
}

// ToDomain converts EventDTO to notifications.OrderCreatedEvent
func ToDomain(dto EventDTO) notifications.OrderCreatedEvent {
	return notifications.OrderCreatedEvent{
		OrderID:          dto.OrderID,
		Product:          strings.TrimSpace(dto.Product),
		DeliverymanName:  strings.TrimSpace(dto.Deliveryman),
		DeliverymanEmail: strings.TrimSpace(dto.DeliverymanEmail),
		RecipientName:    strings.TrimSpace(dto.Recipient),
		CreatedAt:        dto.CreatedAt,
	}
}

// FromDomain converts notifications.OrderCreatedEvent to EventDTO
func FromDomain(e notifications.OrderCreatedEvent) EventDTO {
	return EventDTO{
		OrderID:          e.OrderID,
		Product:          e.Product,
		Deliveryman:      e.DeliverymanName,
		DeliverymanEmail: e.DeliverymanEmail,
		Recipient:        e.RecipientName,
		CreatedAt:        e.CreatedAt,
	}
}
