// Package client reads decks from a running pitch deck server.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pitchdeck/internal/domain"
	models "pitchdeck/internal/domain/models/deck"
	"pitchdeck/internal/httputil"
)

// DefaultTimeout bounds each request when no http.Client is supplied
const DefaultTimeout = 10 * time.Second

// Client fetches decks over the server's JSON API
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the server at baseURL. A nil httpClient uses DefaultTimeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// GetDeck fetches a deck by id
func (c *Client) GetDeck(ctx context.Context, id string) (*models.Deck, error) {
	var d models.Deck
	if err := c.getJSON(ctx, "/api/decks/"+url.PathEscape(id), "", &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// GetCurrent fetches the current deck of a session. Empty means the default session.
func (c *Client) GetCurrent(ctx context.Context, sessionID string) (*models.Deck, error) {
	var d models.Deck
	if err := c.getJSON(ctx, "/api/decks/current", sessionID, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDecks fetches every stored deck, with the session's current deck marked
func (c *Client) ListDecks(ctx context.Context, sessionID string) ([]models.Info, error) {
	var decks []models.Info
	if err := c.getJSON(ctx, "/api/decks", sessionID, &decks); err != nil {
		return nil, err
	}
	return decks, nil
}

// Summary fetches the plain-text report of a deck
func (c *Client) Summary(ctx context.Context, id string) (string, error) {
	resp, err := c.do(ctx, "/deck/"+url.PathEscape(id)+"/summary", "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read summary: %w", err)
	}
	return string(body), nil
}

func (c *Client) getJSON(ctx context.Context, path, sessionID string, dest interface{}) error {
	resp, err := c.do(ctx, path, sessionID)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// do sends a GET and converts non-2xx responses into domain errors
func (c *Client) do(ctx context.Context, path, sessionID string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if sessionID != "" {
		req.Header.Set(httputil.SessionHeader, sessionID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()
	return nil, problemError(resp)
}

// problemError maps a problem+json response back onto the domain error types
func problemError(resp *http.Response) error {
	var problem struct {
		Detail string `json:"detail"`
		Field  string `json:"field"`
		Index  *int   `json:"index"`
		Count  *int   `json:"count"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, httputil.MaxBodyBytes)).Decode(&problem)

	detail := problem.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return &domain.NotFoundError{Message: detail}
	case http.StatusConflict:
		return &domain.ConflictError{Message: detail}
	case http.StatusBadRequest:
		if problem.Index != nil && problem.Count != nil {
			return &domain.OutOfRangeError{Index: *problem.Index, Count: *problem.Count}
		}
		return &domain.InvalidArgumentError{Field: problem.Field, Message: detail}
	default:
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, detail)
	}
}
