// Package api contains the raw HTTP clients for the collection backend and
// the movie metadata provider. These clients only move bytes: request in,
// status and body out. Classifying an outcome into Loading/Success/Error is
// the repository layer's job.
package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/patrickmoura/gomovie/internal/config"
	"github.com/patrickmoura/gomovie/internal/util"
)

// BackendClient talks to the collection backend REST API.
type BackendClient struct {
	client  *http.Client
	baseURL string
}

// Reply is the raw outcome of a backend call that made it onto the wire and
// back. Transport failures are returned as errors instead.
type Reply struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the reply carries a 2xx status.
func (r *Reply) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NewBackendClient builds a backend client from config. The HTTP client is
// passed in explicitly so all repositories share one pooled transport.
func NewBackendClient(cfg config.BackendConfig, client *http.Client) *BackendClient {
	return &BackendClient{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// Do issues a backend call. A non-empty bearer token is attached as an
// Authorization header; an empty token is attached as-is and left for the
// server to reject, matching the no-local-short-circuit contract.
func (c *BackendClient) Do(ctx context.Context, method, path, bearer string, payload any) (*Reply, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "encoding request body")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+bearer)

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	util.Debug("backend request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	util.Debug("backend response", "status", resp.StatusCode, "request_id", requestID, "bytes", len(raw))
	return &Reply{StatusCode: resp.StatusCode, Body: raw}, nil
}

// Get is shorthand for a bodyless GET.
func (c *BackendClient) Get(ctx context.Context, path, bearer string) (*Reply, error) {
	return c.Do(ctx, http.MethodGet, path, bearer, nil)
}

// Post issues a POST with a JSON payload.
func (c *BackendClient) Post(ctx context.Context, path, bearer string, payload any) (*Reply, error) {
	return c.Do(ctx, http.MethodPost, path, bearer, payload)
}

// Put issues a PUT with a JSON payload.
func (c *BackendClient) Put(ctx context.Context, path, bearer string, payload any) (*Reply, error) {
	return c.Do(ctx, http.MethodPut, path, bearer, payload)
}

// Delete issues a bodyless DELETE.
func (c *BackendClient) Delete(ctx context.Context, path, bearer string) (*Reply, error) {
	return c.Do(ctx, http.MethodDelete, path, bearer, nil)
}
