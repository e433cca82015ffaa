package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/config"
)

// Client is the jobs' HTTP client for the CRM facade. The jobs are external
// callers: they go over the wire even when running in the same process.
type Client struct {
	base string
	http *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		base: cfg.Cron.BaseURL,
		http: &http.Client{Timeout: cfg.Cron.RequestTimeout},
	}
}

// ReminderOrder is the slice of an order the reminder job needs. IDs travel
// as strings on the wire, matching how the facade serializes them.
type ReminderOrder struct {
	ID       string `json:"id"`
	Customer struct {
		Email string `json:"email"`
	} `json:"customer"`
}

// RestockedProduct mirrors the restock mutation's per-product result.
type RestockedProduct struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// Hello issues the liveness query and returns the greeting.
func (c *Client) Hello(ctx context.Context) (string, error) {
	var payload struct {
		Data struct {
			Hello string `json:"hello"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/hello", nil, &payload); err != nil {
		return "", err
	}
	return payload.Data.Hello, nil
}

// ordersPageSize matches the facade's page_size cap.
const ordersPageSize = 250

// OrdersSince fetches all orders with an order date at or after since,
// walking pages until a short page signals the end of the window.
func (c *Client) OrdersSince(ctx context.Context, since time.Time) ([]ReminderOrder, error) {
	var all []ReminderOrder
	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("order_date_from", since.UTC().Format(time.RFC3339))
		query.Set("page", strconv.Itoa(page))
		query.Set("page_size", strconv.Itoa(ordersPageSize))

		var payload struct {
			Data struct {
				Orders []ReminderOrder `json:"orders"`
			} `json:"data"`
		}
		if err := c.get(ctx, "/orders", query, &payload); err != nil {
			return nil, err
		}

		all = append(all, payload.Data.Orders...)
		if len(payload.Data.Orders) < ordersPageSize {
			return all, nil
		}
	}
}

// RestockLowStock invokes the restock mutation and returns the updated set.
func (c *Client) RestockLowStock(ctx context.Context) ([]RestockedProduct, error) {
	var payload struct {
		Data struct {
			UpdatedProducts []RestockedProduct `json:"updatedProducts"`
		} `json:"data"`
	}
	if err := c.post(ctx, "/products/restock", &payload); err != nil {
		return nil, err
	}
	return payload.Data.UpdatedProducts, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
