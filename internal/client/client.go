// Package client is a typed Go client for the delivery admin API. List calls
// take the filter and page explicitly; the server clamps pages below 1 and
// caps every page at five items.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client calls the delivery admin HTTP API.
type Client struct {
	baseURL string
	hc      *http.Client
}

// New creates a Client for the API at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func listQuery(filterKey, filter string, page int) url.Values {
	q := url.Values{}
	if filter != "" {
		q.Set(filterKey, filter)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	return q
}

// do sends the request and decodes a 2xx body into out (when out is non-nil).
// Non-2xx responses become *ValidationError, *NotFoundError or *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func apiError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	msg := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}
	switch resp.StatusCode {
	case http.StatusBadRequest:
		return &ValidationError{Message: msg}
	case http.StatusNotFound:
		return &NotFoundError{Message: msg}
	default:
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
}
