package client

import (
	"context"
	"fmt"
	"net/http"
)

// ListRecipients returns one page of recipients whose name starts with
// namePrefix, plus the total page count.
func (c *Client) ListRecipients(ctx context.Context, namePrefix string, page int) ([]Recipient, int, error) {
	var out struct {
		Recipients []Recipient `json:"recipients"`
		MaxPage    int         `json:"maxPage"`
	}
	q := listQuery("name", namePrefix, page)
	if err := c.do(ctx, http.MethodGet, "/recipients", q, nil, &out); err != nil {
		return nil, 0, err
	}
	return out.Recipients, out.MaxPage, nil
}

// GetRecipient fetches one recipient by id.
func (c *Client) GetRecipient(ctx context.Context, id int64) (*Recipient, error) {
	var out Recipient
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/recipients/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRecipient creates a recipient and returns the stored record.
func (c *Client) CreateRecipient(ctx context.Context, req CreateRecipientRequest) (*Recipient, error) {
	var out Recipient
	if err := c.do(ctx, http.MethodPost, "/recipients", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRecipient applies a partial update and returns the stored record.
func (c *Client) UpdateRecipient(ctx context.Context, req UpdateRecipientRequest) (*Recipient, error) {
	var out Recipient
	if err := c.do(ctx, http.MethodPut, "/recipients", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRecipient removes a recipient by id.
func (c *Client) DeleteRecipient(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/recipients/%d", id), nil, nil, nil)
}
