// Package client is an HTTP client for the agenda API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"agenda/internal/model"
	"agenda/internal/shared"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("agenda api: status %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 20 * time.Second},
	}
}

// CreateResult is the outcome of a successful Create.
type CreateResult struct {
	Message string
	ID      string // taken from the Location header; empty if absent
}

func (c *Client) List(ctx context.Context) ([]model.AgendaItem, error) {
	var items []model.AgendaItem
	_, err := c.do(ctx, http.MethodGet, "/", nil, &items)
	return items, err
}

func (c *Client) ListByDay(ctx context.Context, day string) ([]model.AgendaItem, error) {
	var items []model.AgendaItem
	_, err := c.do(ctx, http.MethodGet, "/day/"+url.PathEscape(day), nil, &items)
	return items, err
}

func (c *Client) Get(ctx context.Context, id string) (model.AgendaItem, error) {
	var item model.AgendaItem
	_, err := c.do(ctx, http.MethodGet, "/"+url.PathEscape(id), nil, &item)
	return item, err
}

func (c *Client) Create(ctx context.Context, item model.AgendaItem) (CreateResult, error) {
	body, err := json.Marshal(item)
	if err != nil {
		return CreateResult{}, err
	}
	resp, err := c.do(ctx, http.MethodPost, "/", body, nil)
	if err != nil {
		return CreateResult{}, err
	}
	id, err := url.PathUnescape(strings.TrimPrefix(resp.location, "/"))
	if err != nil {
		return CreateResult{}, fmt.Errorf("bad location %q: %w", resp.location, err)
	}
	return CreateResult{Message: string(resp.body), ID: id}, nil
}

func (c *Client) DeleteAll(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/", nil, nil)
	return err
}

func (c *Client) Info(ctx context.Context) (shared.InfoResponse, error) {
	var info shared.InfoResponse
	_, err := c.do(ctx, http.MethodGet, "/info", nil, &info)
	return info, err
}

type response struct {
	body     []byte
	location string
}

// do sends the request and, when out is non-nil, decodes a JSON response into it.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) (*response, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	if out != nil {
		if err := json.Unmarshal(b, out); err != nil {
			return nil, fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return &response{body: b, location: resp.Header.Get("Location")}, nil
}
