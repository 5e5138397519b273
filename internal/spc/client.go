package spc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spcwebgw/spc2mqtt/internal/log"
)

// DefaultTimeout bounds every request to the gateway's REST API.
const DefaultTimeout = 10 * time.Second

// Client talks to the SPC Web Gateway REST API. Every failure class
// (timeout, connection error, non-200 status, non-success payload status)
// collapses into a nil result: callers treat "no data" uniformly and never
// see a transport error.
type Client struct {
	baseURL string
	http    *http.Client
	log     *log.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// Get fetches a resource. Returns nil on any failure.
func (c *Client) Get(ctx context.Context, path string) *APIData {
	return c.request(ctx, http.MethodGet, path)
}

// Put issues a command against a resource. Returns nil on any failure.
func (c *Client) Put(ctx context.Context, path string) *APIData {
	return c.request(ctx, http.MethodPut, path)
}

func (c *Client) request(ctx context.Context, method, path string) *APIData {
	u, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		c.log.Error("Invalid SPC resource path %q: %v", path, err)
		return nil
	}

	requestsTotal.Inc()
	c.log.Debug("Sending %s request to %s", method, u)

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		c.log.Error("Failed to build request for %s: %v", u, err)
		requestErrorsTotal.Inc()
		return nil
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Error getting SPC data from %s: %v", u, err)
		requestErrorsTotal.Inc()
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("HTTP status %d from %s", resp.StatusCode, u)
		requestErrorsTotal.Inc()
		return nil
	}

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.log.Error("Failed to decode SPC response from %s: %v", u, err)
		requestErrorsTotal.Inc()
		return nil
	}

	if envelope.Status != "success" {
		c.log.Error("SPC Web Gateway call unsuccessful for resource %s", u)
		requestErrorsTotal.Inc()
		return nil
	}

	return envelope.Data
}
