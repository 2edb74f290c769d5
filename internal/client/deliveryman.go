package client

import (
	"context"
	"fmt"
	"net/http"
)

// ListDeliverymen returns one page of deliverymen whose name starts with
// namePrefix, plus the total page count.
func (c *Client) ListDeliverymen(ctx context.Context, namePrefix string, page int) ([]Deliveryman, int, error) {
	var out struct {
		Deliverymen []Deliveryman `json:"deliverymen"`
		MaxPage     int           `json:"maxPage"`
	}
	q := listQuery("name", namePrefix, page)
	if err := c.do(ctx, http.MethodGet, "/deliveryman", q, nil, &out); err != nil {
		return nil, 0, err
	}
	return out.Deliverymen, out.MaxPage, nil
}

// GetDeliveryman fetches one deliveryman by id.
func (c *Client) GetDeliveryman(ctx context.Context, id int64) (*Deliveryman, error) {
	var out Deliveryman
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/deliveryman/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDeliveryman creates a deliveryman and returns the stored record.
func (c *Client) CreateDeliveryman(ctx context.Context, req CreateDeliverymanRequest) (*Deliveryman, error) {
	var out Deliveryman
	if err := c.do(ctx, http.MethodPost, "/deliveryman", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDeliveryman applies a partial update and returns the stored record.
func (c *Client) UpdateDeliveryman(ctx context.Context, req UpdateDeliverymanRequest) (*Deliveryman, error) {
	var out Deliveryman
	if err := c.do(ctx, http.MethodPut, "/deliveryman", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDeliveryman removes a deliveryman by id.
func (c *Client) DeleteDeliveryman(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/deliveryman/%d", id), nil, nil, nil)
}
