// Package contentful is a small client for the Contentful Content Delivery,
// Content Preview and Content Management APIs.
//
// It covers what a portfolio site needs: reading entries with their linked
// assets, listing content types, and creating/publishing content types.
// Requests carry the caller's context and are never retried.
package contentful

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	// DeliveryHost serves published content.
	DeliveryHost = "cdn.contentful.com"
	// PreviewHost serves draft and published content.
	PreviewHost = "preview.contentful.com"
	// ManagementHost serves the management API.
	ManagementHost = "api.contentful.com"
	// DefaultEnvironment is the environment used when none is configured.
	DefaultEnvironment = "master"
)

// Config configures a read client.
type Config struct {
	SpaceID     string
	AccessToken string
	Environment string       // default "master"
	Host        string       // host name or full base URL (default DeliveryHost)
	HTTPClient  *http.Client // default &http.Client{}
}

// Client reads from the Delivery or Preview API.
type Client struct {
	api         api
	spaceID     string
	environment string
}

// NewClient returns a read client. Missing credentials are reported by every
// call rather than here, so a half-configured site still starts.
func NewClient(cfg Config) *Client {
	if cfg.Host == "" {
		cfg.Host = DeliveryHost
	}
	if cfg.Environment == "" {
		cfg.Environment = DefaultEnvironment
	}
	return &Client{
		api:         newAPI(cfg.Host, cfg.AccessToken, cfg.HTTPClient),
		spaceID:     cfg.SpaceID,
		environment: cfg.Environment,
	}
}

// Entries runs q and returns one page of entries with included assets.
func (c *Client) Entries(ctx context.Context, q *Query) (*EntryCollection, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	var out EntryCollection
	path := c.envPath("entries")
	if err := c.api.do(ctx, http.MethodGet, path, q.Values(), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get %s entries: %w", q.ContentType(), err)
	}
	return &out, nil
}

// Space returns the space metadata.
func (c *Client) Space(ctx context.Context) (*Space, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	var out Space
	if err := c.api.do(ctx, http.MethodGet, "/spaces/"+url.PathEscape(c.spaceID), nil, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get space: %w", err)
	}
	return &out, nil
}

// ContentTypes lists the content types of the environment.
func (c *Client) ContentTypes(ctx context.Context) (*ContentTypeCollection, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	var out ContentTypeCollection
	if err := c.api.do(ctx, http.MethodGet, c.envPath("content_types"), nil, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list content types: %w", err)
	}
	for i := range out.Items {
		out.Items[i].ID = out.Items[i].Sys.ID
	}
	return &out, nil
}

func (c *Client) ready() error {
	if c.spaceID == "" || c.api.token == "" {
		return ErrMissingCredentials
	}
	return nil
}

func (c *Client) envPath(resource string) string {
	return "/spaces/" + url.PathEscape(c.spaceID) + "/environments/" + url.PathEscape(c.environment) + "/" + resource
}

// api is the HTTP plumbing shared by the read and management clients.
type api struct {
	base       string
	token      string
	httpClient *http.Client
	mediaType  string
}

func newAPI(host, token string, hc *http.Client) api {
	if hc == nil {
		hc = &http.Client{}
	}
	base := host
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	return api{
		base:       strings.TrimSuffix(base, "/"),
		token:      token,
		httpClient: hc,
	}
}

func (a api) do(ctx context.Context, method, path string, query url.Values, header http.Header, body, out any) error {
	u := a.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		ct := a.mediaType
		if ct == "" {
			ct = "application/json"
		}
		req.Header.Set("Content-Type", ct)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
