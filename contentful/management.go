package contentful

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const managementMediaType = "application/vnd.contentful.management.v1+json"

// ManagementConfig configures a management client.
type ManagementConfig struct {
	SpaceID     string
	AccessToken string // personal access (management) token
	Environment string // default "master"
	BaseURL     string // default https://api.contentful.com
	HTTPClient  *http.Client
}

// ManagementClient creates and publishes content types.
type ManagementClient struct {
	api         api
	spaceID     string
	environment string
}

// NewManagementClient returns a management client.
func NewManagementClient(cfg ManagementConfig) *ManagementClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = ManagementHost
	}
	if cfg.Environment == "" {
		cfg.Environment = DefaultEnvironment
	}
	a := newAPI(cfg.BaseURL, cfg.AccessToken, cfg.HTTPClient)
	a.mediaType = managementMediaType
	return &ManagementClient{api: a, spaceID: cfg.SpaceID, environment: cfg.Environment}
}

type contentTypeBody struct {
	Name         string  `json:"name"`
	DisplayField string  `json:"displayField,omitempty"`
	Description  string  `json:"description,omitempty"`
	Fields       []Field `json:"fields"`
}

// ContentType fetches one content type. A missing type yields an *APIError
// for which IsNotFound is true.
func (m *ManagementClient) ContentType(ctx context.Context, id string) (*ContentType, error) {
	if err := m.ready(); err != nil {
		return nil, err
	}
	var out ContentType
	if err := m.api.do(ctx, http.MethodGet, m.typePath(id), nil, nil, nil, &out); err != nil {
		return nil, err
	}
	out.ID = out.Sys.ID
	return &out, nil
}

// PutContentType creates the content type ct.ID, or updates it when version
// is the current version of an existing type.
func (m *ManagementClient) PutContentType(ctx context.Context, ct ContentType, version int) (*ContentType, error) {
	if err := m.ready(); err != nil {
		return nil, err
	}
	if ct.ID == "" {
		return nil, errors.New("contentful: content type ID is required")
	}
	var header http.Header
	if version > 0 {
		header = http.Header{"X-Contentful-Version": {strconv.Itoa(version)}}
	}
	body := contentTypeBody{
		Name:         ct.Name,
		DisplayField: ct.DisplayField,
		Description:  ct.Description,
		Fields:       ct.Fields,
	}
	var out ContentType
	if err := m.api.do(ctx, http.MethodPut, m.typePath(ct.ID), nil, header, body, &out); err != nil {
		return nil, fmt.Errorf("put content type %s: %w", ct.ID, err)
	}
	out.ID = out.Sys.ID
	return &out, nil
}

// PublishContentType activates version of content type id.
func (m *ManagementClient) PublishContentType(ctx context.Context, id string, version int) (*ContentType, error) {
	if err := m.ready(); err != nil {
		return nil, err
	}
	header := http.Header{"X-Contentful-Version": {strconv.Itoa(version)}}
	var out ContentType
	if err := m.api.do(ctx, http.MethodPut, m.typePath(id)+"/published", nil, header, nil, &out); err != nil {
		return nil, fmt.Errorf("publish content type %s: %w", id, err)
	}
	out.ID = out.Sys.ID
	return &out, nil
}

func (m *ManagementClient) ready() error {
	if m.spaceID == "" || m.api.token == "" {
		return ErrMissingCredentials
	}
	return nil
}

func (m *ManagementClient) typePath(id string) string {
	return "/spaces/" + url.PathEscape(m.spaceID) + "/environments/" + url.PathEscape(m.environment) +
		"/content_types/" + url.PathEscape(id)
}
