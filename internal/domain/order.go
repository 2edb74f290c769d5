package domain

import "time"

// Order represents a delivery order. CanceledAt, StartDate and EndDate are
// lifecycle milestones set elsewhere; this service treats them as opaque
// nullable timestamps.
type Order struct {
	ID            int64
	Product       string
	RecipientID   int64
	DeliverymanID int64
	SignatureID   *int64
	CanceledAt    *time.Time
	StartDate     *time.Time
	EndDate       *time.Time

	// Eager-loaded associations, populated by list/get queries.
	Signature   *File
	Deliveryman *DeliverymanSummary
	Recipient   *Recipient
}

// DeliverymanSummary is the short deliveryman projection embedded in orders.
type DeliverymanSummary struct {
	ID   int64
	Name string
}

// PartialOrderUpdate carries optional fields to update an order.
// A nil field means “do not change” that attribute.
type PartialOrderUpdate struct {
	ID            int64
	Product       *string
	RecipientID   *int64
	DeliverymanID *int64
}
