// Package client es un cliente tipado de la API de penguins.
// Lo usan el comando healthcheck y los tests end-to-end.
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
)

const (
	DefaultTimeout = 10 * time.Second

	maxResponseBytes = 1 << 20 // 1MB
)

type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// Penguin es el recurso tal como lo devuelve la API.
type Penguin struct {
	ID          string    `json:"id"`
	Species     string    `json:"species"`
	FirstName   string    `json:"firstName"`
	Description string    `json:"description,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreatePenguin struct {
	Species     string `json:"species"`
	FirstName   string `json:"firstName"`
	Description string `json:"description,omitempty"`
	Gender      string `json:"gender,omitempty"`
}

// UpdatePenguin: nil = el campo no viaja.
type UpdatePenguin struct {
	Species     *string `json:"species,omitempty"`
	FirstName   *string `json:"firstName,omitempty"`
	Description *string `json:"description,omitempty"`
	Gender      *string `json:"gender,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError representa una respuesta no-2xx.
type APIError struct {
	StatusCode int
	Message    string
	Details    []FieldError
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("penguin api: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("penguin api: status=%d error=%s", e.StatusCode, e.Message)
}

// New crea un Client contra baseURL (p.ej. http://localhost:8080).
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Health devuelve nil si /health responde 200.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) CreatePenguin(ctx context.Context, in CreatePenguin) (Penguin, error) {
	var out Penguin
	err := c.do(ctx, http.MethodPost, "/api/penguins", in, &out)
	return out, err
}

func (c *Client) GetPenguin(ctx context.Context, id string) (Penguin, error) {
	var out Penguin
	err := c.do(ctx, http.MethodGet, "/api/penguins/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) ListPenguins(ctx context.Context) ([]Penguin, error) {
	var out []Penguin
	if err := c.do(ctx, http.MethodGet, "/api/penguins", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdatePenguin(ctx context.Context, id string, in UpdatePenguin) (Penguin, error) {
	var out Penguin
	err := c.do(ctx, http.MethodPut, "/api/penguins/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *Client) DeletePenguin(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/penguins/"+url.PathEscape(id), nil, nil)
}

// StatusCode devuelve el status de un *APIError, o 0 si err no lo es.
func StatusCode(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if c == nil || c.HTTP == nil {
		return errors.New("client: nil client")
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("client: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("client: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("client: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Error   string       `json:"error"`
			Details []FieldError `json:"details"`
		}
		if json.Unmarshal(raw, &payload) == nil {
			apiErr.Message = payload.Error
			apiErr.Details = payload.Details
		} else {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("client: unmarshal json: %w", err)
	}
	return nil
}
