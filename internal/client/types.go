package client

import "time"

// File is an attached file as the API renders it.
type File struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// Deliveryman is the API representation of a deliveryman.
type Deliveryman struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar *File  `json:"avatar"`
}

// Recipient is the API representation of a recipient.
type Recipient struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Street            string `json:"street"`
	Number            string `json:"number"`
	AdditionalAddress string `json:"additional_address"`
	State             string `json:"state"`
	City              string `json:"city"`
	ZipCode           string `json:"zip_code"`
}

// DeliverymanSummary is the short deliveryman shape nested in orders.
type DeliverymanSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Order is the API representation of an order with its associations.
type Order struct {
	ID            int64               `json:"id"`
	Product       string              `json:"product"`
	RecipientID   int64               `json:"recipient_id"`
	DeliverymanID int64               `json:"deliveryman_id"`
	CanceledAt    *time.Time          `json:"canceled_at"`
	StartDate     *time.Time          `json:"start_date"`
	EndDate       *time.Time          `json:"end_date"`
	Signature     *File               `json:"signature"`
	Deliveryman   *DeliverymanSummary `json:"deliveryman"`
	Recipient     *Recipient          `json:"recipient"`
}

// CreateDeliverymanRequest creates a deliveryman.
type CreateDeliverymanRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	AvatarID *int64 `json:"avatar_id,omitempty"`
}

// UpdateDeliverymanRequest partially updates a deliveryman. Nil fields keep
// their stored values.
type UpdateDeliverymanRequest struct {
	ID       int64   `json:"id"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	AvatarID *int64  `json:"avatar_id,omitempty"`
}

// CreateRecipientRequest creates a recipient.
type CreateRecipientRequest struct {
	Name              string `json:"name"`
	Street            string `json:"street"`
	Number            string `json:"number"`
	AdditionalAddress string `json:"additional_address"`
	State             string `json:"state"`
	City              string `json:"city"`
	ZipCode           string `json:"zip_code"`
}

// UpdateRecipientRequest partially updates a recipient.
type UpdateRecipientRequest struct {
	ID                int64   `json:"id"`
	Name              *string `json:"name,omitempty"`
	Street            *string `json:"street,omitempty"`
	Number            *string `json:"number,omitempty"`
	AdditionalAddress *string `json:"additional_address,omitempty"`
	State             *string `json:"state,omitempty"`
	City              *string `json:"city,omitempty"`
	ZipCode           *string `json:"zip_code,omitempty"`
}

// CreateOrderRequest creates an order.
type CreateOrderRequest struct {
	Product       string `json:"product"`
	RecipientID   int64  `json:"recipient_id"`
	DeliverymanID int64  `json:"deliveryman_id"`
}

// UpdateOrderRequest partially updates an order.
type UpdateOrderRequest struct {
	ID            int64   `json:"id"`
	Product       *string `json:"product,omitempty"`
	RecipientID   *int64  `json:"recipient_id,omitempty"`
	DeliverymanID *int64  `json:"deliveryman_id,omitempty"`
}
