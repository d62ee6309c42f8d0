// Package client is a typed HTTP client for the managed catalog API,
// consumed by the catalog reconciler and by admin tooling.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/glowora/cosmetics-api/catalog"
	"github.com/glowora/cosmetics-api/models"
)

// StatusError is returned for any non-2xx response so callers can react to
// the exact status (e.g. revert an optimistic update on a failed save).
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return "managed api: unexpected status " + e.Status
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New builds a client for the managed API at baseURL. apiKey may be empty
// for read-only use; write endpoints require it.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-KEY", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Products lists the whole managed catalog as raw records for the
// reconciler to normalize.
func (c *Client) Products(ctx context.Context) ([]catalog.ManagedRecord, error) {
	var records []catalog.ManagedRecord
	if err := c.do(ctx, http.MethodGet, "/products", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) Product(ctx context.Context, id uint) (*catalog.ManagedRecord, error) {
	var record catalog.ManagedRecord
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ProductInput carries the writable product fields. Pointer fields are
// omitted from PATCH payloads when nil.
type ProductInput struct {
	Name        *string  `json:"name,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
}

func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	var created models.Product
	if err := c.do(ctx, http.MethodPost, "/admin/products", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ReplaceProduct overwrites the whole record (PUT).
func (c *Client) ReplaceProduct(ctx context.Context, id uint, input ProductInput) (*models.Product, error) {
	var updated models.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/products/%d", id), input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateProduct sends a sparse PATCH of only the set fields.
func (c *Client) UpdateProduct(ctx context.Context, id uint, input ProductInput) (*models.Product, error) {
	var updated models.Product
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/products/%d", id), input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/products/%d", id), nil, nil)
}

// Reviews lists reviews, optionally filtered to one category.
func (c *Client) Reviews(ctx context.Context, category string) ([]models.Review, error) {
	path := "/reviews"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var reviews []models.Review
	if err := c.do(ctx, http.MethodGet, path, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, review models.Review) (*models.Review, error) {
	var created models.Review
	if err := c.do(ctx, http.MethodPost, "/reviews", review, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteReview(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/admin/reviews/"+strconv.Itoa(int(id)), nil, nil)
}

// Users lists registered users (admin only).
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
