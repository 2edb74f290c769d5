package handlers

type deliverymanDTO struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Avatar *fileDTO `json:"avatar"`
}

type deliverymanIndexResponse struct {
	Deliverymen []deliverymanDTO `json:"deliverymen"`
	MaxPage     int              `json:"maxPage"`
}

type createDeliverymanRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	AvatarID *int64 `json:"avatar_id,omitempty"`
}

type updateDeliverymanRequest struct {
	ID       int64   `json:"id"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	AvatarID *int64  `json:"avatar_id,omitempty"`
}
