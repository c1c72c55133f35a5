package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer token for outgoing requests. An empty
// string means the request goes out unauthenticated.
type TokenSource func() string

// Client talks to the UaiFood backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

func NewClient(baseURL string, timeout time.Duration, token TokenSource) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	return c.doWithHeaders(ctx, method, path, body, out, nil)
}

func (c *Client) doWithHeaders(ctx context.Context, method, path string, body, out any, headers map[string]string) error {
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// decodeError reads the backend's {message} error body when present.
func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Message = body.Message
	}
	return apiErr
}

// Catalog.

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	err := c.do(ctx, http.MethodGet, "/categories", nil, &out)
	return out, err
}

func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (Category, error) {
	var out Category
	err := c.do(ctx, http.MethodPost, "/categories", in, &out)
	return out, err
}

func (c *Client) UpdateCategory(ctx context.Context, id string, in CategoryInput) (Category, error) {
	var out Category
	err := c.do(ctx, http.MethodPut, "/categories/"+id, in, &out)
	return out, err
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+id, nil, nil)
}

func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	var out []Item
	err := c.do(ctx, http.MethodGet, "/items", nil, &out)
	return out, err
}

func (c *Client) CreateItem(ctx context.Context, in ItemInput) (Item, error) {
	var out Item
	err := c.do(ctx, http.MethodPost, "/items", in, &out)
	return out, err
}

func (c *Client) UpdateItem(ctx context.Context, id string, in ItemInput) (Item, error) {
	var out Item
	err := c.do(ctx, http.MethodPut, "/items/"+id, in, &out)
	return out, err
}

func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/items/"+id, nil, nil)
}

// Addresses.

func (c *Client) ListAddresses(ctx context.Context) ([]Address, error) {
	var out []Address
	err := c.do(ctx, http.MethodGet, "/addresses", nil, &out)
	return out, err
}

func (c *Client) CreateAddress(ctx context.Context, in AddressInput) (Address, error) {
	var out Address
	err := c.do(ctx, http.MethodPost, "/addresses", in, &out)
	return out, err
}

func (c *Client) UpdateAddress(ctx context.Context, id string, in AddressInput) (Address, error) {
	var out Address
	err := c.do(ctx, http.MethodPut, "/addresses/"+id, in, &out)
	return out, err
}

// Orders.

func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	err := c.do(ctx, http.MethodGet, "/orders", nil, &out)
	return out, err
}

func (c *Client) GetOrder(ctx context.Context, id string) (Order, error) {
	var out Order
	err := c.do(ctx, http.MethodGet, "/orders/"+id, nil, &out)
	return out, err
}

// PlaceOrder submits the draft with a client-generated idempotency key, so
// a retried request cannot create a duplicate order.
func (c *Client) PlaceOrder(ctx context.Context, draft OrderDraft) (Order, error) {
	var out Order
	err := c.doWithHeaders(ctx, http.MethodPost, "/orders", draft, &out, map[string]string{
		"Idempotency-Key": uuid.NewString(),
	})
	return out, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) error {
	body := struct {
		Status string `json:"status"`
	}{Status: status}
	return c.do(ctx, http.MethodPatch, "/orders/"+id+"/status", body, nil)
}

// Users and authentication.

// Login exchanges credentials for an opaque token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/users/login", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Me returns the profile behind the current token.
func (c *Client) Me(ctx context.Context) (User, error) {
	var out User
	err := c.do(ctx, http.MethodGet, "/users/me", nil, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (User, error) {
	var out User
	err := c.do(ctx, http.MethodPost, "/users", in, &out)
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, in ProfileInput) (User, error) {
	var out User
	err := c.do(ctx, http.MethodPut, "/users/me", in, &out)
	return out, err
}

func (c *Client) ChangePassword(ctx context.Context, in PasswordInput) error {
	return c.do(ctx, http.MethodPut, "/users/me/password", in, nil)
}

func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/users/me", nil, nil)
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	err := c.do(ctx, http.MethodGet, "/users", nil, &out)
	return out, err
}

func (c *Client) UpdateUserRole(ctx context.Context, id, role string) error {
	body := struct {
		Type string `json:"type"`
	}{Type: role}
	return c.do(ctx, http.MethodPut, "/users/"+id, body, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id, nil, nil)
}
