package handlers

import "time"

type deliverymanSummaryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type orderDTO struct {
	ID            int64                  `json:"id"`
	Product       string                 `json:"product"`
	RecipientID   int64                  `json:"recipient_id"`
	DeliverymanID int64                  `json:"deliveryman_id"`
	CanceledAt    *time.Time             `json:"canceled_at"`
	StartDate     *time.Time             `json:"start_date"`
	EndDate       *time.Time             `json:"end_date"`
	Signature     *fileDTO               `json:"signature"`
	Deliveryman   *deliverymanSummaryDTO `json:"deliveryman"`
	Recipient     *recipientDTO          `json:"recipient"`
}

type orderIndexResponse struct {
	Orders  []orderDTO `json:"orders"`
	MaxPage int        `json:"maxPage"`
}

type createOrderRequest struct {
	Product       string `json:"product"`
	RecipientID   int64  `json:"recipient_id"`
	DeliverymanID int64  `json:"deliveryman_id"`
}

type updateOrderRequest struct {
	ID            int64   `json:"id"`
	Product       *string `json:"product,omitempty"`
	RecipientID   *int64  `json:"recipient_id,omitempty"`
	DeliverymanID *int64  `json:"deliveryman_id,omitempty"`
}
