package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/metrics"
	"github.com/rs/zerolog/log"
)

const (
	perspectivePublished = "published"
	perspectiveDrafts    = "previewDrafts"
)

// Client issues GROQ queries against one CMS query endpoint. The published
// client reads the CDN-backed endpoint anonymously; the preview client reads
// the live endpoint with a bearer token and the drafts perspective.
type Client struct {
	endpoint    string
	perspective string
	token       string
	httpClient  *http.Client
}

// NewClient builds a client for an explicit query endpoint. Used directly in
// tests; production code goes through NewClients.
func NewClient(endpoint, perspective, token string) *Client {
	return &Client{
		endpoint:    endpoint,
		perspective: perspective,
		token:       token,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

func publishedEndpoint(cfg config.CMS) string {
	return fmt.Sprintf("https://%s.apicdn.sanity.io/v%s/data/query/%s", cfg.ProjectID, cfg.APIVersion, cfg.Dataset)
}

func previewEndpoint(cfg config.CMS) string {
	return fmt.Sprintf("https://%s.api.sanity.io/v%s/data/query/%s", cfg.ProjectID, cfg.APIVersion, cfg.Dataset)
}

// queryEnvelope is the wire shape of a query response.
type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
	Ms     float64         `json:"ms"`
}

// Fetch runs one query with the given bound parameters and decodes the
// result into result. It returns false when the query succeeded but matched
// nothing (a null result), which callers treat as not-found.
func (c *Client) Fetch(ctx context.Context, operation, query string, params map[string]any, result any) (bool, error) {
	start := time.Now()
	found, err := c.fetch(ctx, query, params, result)
	observeQuery(operation, time.Since(start), err)
	return found, err
}

func (c *Client) fetch(ctx context.Context, query string, params map[string]any, result any) (bool, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return false, fmt.Errorf("parsing query endpoint: %w", err)
	}

	q := u.Query()
	q.Set("query", query)
	q.Set("perspective", c.perspective)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return false, fmt.Errorf("encoding query param %q: %w", name, err)
		}
		q.Set("$"+name, string(encoded))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return false, fmt.Errorf("building query request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("executing query request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("query endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var envelope queryEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return false, fmt.Errorf("decoding query response: %w", err)
	}

	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return false, nil
	}

	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return false, fmt.Errorf("decoding query result: %w", err)
	}
	return true, nil
}

// observeQuery records query metrics when the registry has been initialized.
func observeQuery(operation string, duration time.Duration, err error) {
	if metrics.CMSQueriesTotal == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	metrics.CMSQueriesTotal.WithLabelValues(operation, outcome).Inc()
	metrics.CMSQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// Clients holds the published/preview client pair. Both are constructed once
// at startup and passed by reference; the preview choice is always an
// explicit argument, never ambient state.
type Clients struct {
	published *Client
	preview   *Client
}

// NewClients builds the pair from configuration. The preview client only
// exists when a read token is configured.
func NewClients(cfg config.CMS) *Clients {
	clients := &Clients{
		published: NewClient(publishedEndpoint(cfg), perspectivePublished, ""),
	}
	if cfg.Token != "" {
		clients.preview = NewClient(previewEndpoint(cfg), perspectiveDrafts, cfg.Token)
	}
	return clients
}

// NewClientPair wires an explicit pair, preview may be nil. Used by tests.
func NewClientPair(published, preview *Client) *Clients {
	return &Clients{published: published, preview: preview}
}

// For selects the client for the requested read mode. Preview reads without
// a configured token fall back to published content with a warning; the site
// must still render.
func (c *Clients) For(preview bool) *Client {
	if preview {
		if c.preview == nil {
			log.Warn().Msg("preview requested but no CMS token is configured, falling back to published content")
			return c.published
		}
		return c.preview
	}
	return c.published
}
