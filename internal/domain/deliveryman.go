package domain

// Deliveryman represents a registered deliveryman.
type Deliveryman struct {
	ID       int64
	Name     string
	Email    string
	AvatarID *int64
	Avatar   *File
}

// PartialDeliverymanUpdate carries optional fields to update a deliveryman.
// A nil field means “do not change” that attribute.
type PartialDeliverymanUpdate struct {
	ID       int64
	Name     *string
	Email    *string
	AvatarID *int64
}
