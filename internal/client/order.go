package client

import (
	"context"
	"fmt"
	"net/http"
)

// ListOrders returns one page of orders whose product starts with
// productPrefix, plus the total page count.
func (c *Client) ListOrders(ctx context.Context, productPrefix string, page int) ([]Order, int, error) {
	var out struct {
		Orders  []Order `json:"orders"`
		MaxPage int     `json:"maxPage"`
	}
	q := listQuery("product", productPrefix, page)
	if err := c.do(ctx, http.MethodGet, "/orders", q, nil, &out); err != nil {
		return nil, 0, err
	}
	return out.Orders, out.MaxPage, nil
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, id int64) (*Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrder creates an order and returns the stored record with its
// associations.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrder applies a partial update and returns the stored record.
func (c *Client) UpdateOrder(ctx context.Context, req UpdateOrderRequest) (*Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodPut, "/orders", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteOrder removes an order by id.
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil, nil, nil)
}
