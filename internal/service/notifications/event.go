package notifications

import "time"

// OrderCreatedEvent is published when a new order is registered and carries
// everything the notification worker needs to compose the email without
// calling back into the database.
type OrderCreatedEvent struct {
	OrderID          int64     `json:"order_id"`
	Product          string    `json:"product"`
	DeliverymanName  string    `json:"deliveryman"`
	DeliverymanEmail string    `json:"deliveryman_email"`
	RecipientName    string    `json:"recipient"`
	CreatedAt        time.Time `json:"created_at"`
}
