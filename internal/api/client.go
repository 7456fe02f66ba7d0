// Package api talks to the issue tracker's REST service
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
)

const (
	// DefaultHTTPTimeout bounds a single request
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultPageSize is how many issues FetchAll asks for per page
	DefaultPageSize = 50

	apiKeyHeader = "X-API-Key"
)

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithPageSize sets the page size used by FetchAll
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// Client is a move store backed by the REST service
type Client struct {
	base     string
	apiKey   string
	http     *http.Client
	pageSize int
}

// NewClient creates a client for the service rooted at baseURL
// (for example http://localhost:8081/api)
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		base:     strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		http:     &http.Client{Timeout: DefaultHTTPTimeout},
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type moveRequest struct {
	Status     models.Column `json:"status"`
	OrderIndex float64       `json:"order_index"`
}

// FetchAll pages through GET /issues until a short page comes back
func (c *Client) FetchAll(ctx context.Context) ([]models.Issue, error) {
	var all []models.Issue
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("page_size", strconv.Itoa(c.pageSize))

		var batch []models.Issue
		if err := c.do(ctx, http.MethodGet, "/issues?"+q.Encode(), nil, &batch); err != nil {
			return nil, fmt.Errorf("failed to fetch issues: %w", err)
		}
		all = append(all, batch...)
		if len(batch) < c.pageSize {
			break
		}
	}
	return all, nil
}

// UpdatePosition calls PATCH /issues/{id}/move
func (c *Client) UpdatePosition(ctx context.Context, id types.IssueID, column models.Column, position float64) error {
	body := moveRequest{Status: column, OrderIndex: position}
	if err := c.do(ctx, http.MethodPatch, "/issues/"+id.String()+"/move", body, nil); err != nil {
		return fmt.Errorf("failed to move issue %s: %w", id, err)
	}
	return nil
}

// GetIssue calls GET /issues/{id}
func (c *Client) GetIssue(ctx context.Context, id types.IssueID) (*models.Issue, error) {
	var issue models.Issue
	if err := c.do(ctx, http.MethodGet, "/issues/"+id.String(), nil, &issue); err != nil {
		return nil, fmt.Errorf("failed to get issue %s: %w", id, err)
	}
	return &issue, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	slog.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(method, path, resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(method, path string, resp *http.Response) error {
	serr := &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	var payload struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if json.Unmarshal(raw, &payload) == nil {
		serr.Message = payload.Error
	}
	return serr
}
