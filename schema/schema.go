// Package schema holds the portfolio content model and provisions it into a
// content store space.
package schema

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eringen/folio/contentful"
)

//go:embed contenttypes.yaml
var contentTypesYAML []byte

// Load returns the content types of the portfolio model.
func Load() ([]contentful.ContentType, error) {
	return parse(contentTypesYAML)
}

func parse(data []byte) ([]contentful.ContentType, error) {
	var types []contentful.ContentType
	if err := yaml.Unmarshal(data, &types); err != nil {
		return nil, fmt.Errorf("parse content types: %w", err)
	}
	seen := make(map[string]bool, len(types))
	for _, ct := range types {
		if ct.ID == "" {
			return nil, fmt.Errorf("content type %q has no id", ct.Name)
		}
		if seen[ct.ID] {
			return nil, fmt.Errorf("duplicate content type %q", ct.ID)
		}
		seen[ct.ID] = true
		if len(ct.Fields) == 0 {
			return nil, fmt.Errorf("content type %q has no fields", ct.ID)
		}
	}
	return types, nil
}

// ManagementAPI is the subset of the management client provisioning needs.
type ManagementAPI interface {
	ContentType(ctx context.Context, id string) (*contentful.ContentType, error)
	PutContentType(ctx context.Context, ct contentful.ContentType, version int) (*contentful.ContentType, error)
	PublishContentType(ctx context.Context, id string, version int) (*contentful.ContentType, error)
}

// Provisioner creates or updates content types and publishes them.
type Provisioner struct {
	api    ManagementAPI
	logger *zap.Logger
}

// NewProvisioner returns a Provisioner. A nil logger discards output.
func NewProvisioner(api ManagementAPI, logger *zap.Logger) *Provisioner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provisioner{api: api, logger: logger}
}

// Provision applies types in order and stops at the first failure.
func (p *Provisioner) Provision(ctx context.Context, types []contentful.ContentType) error {
	for _, ct := range types {
		if err := p.apply(ctx, ct); err != nil {
			return fmt.Errorf("provision %s: %w", ct.ID, err)
		}
	}
	return nil
}

func (p *Provisioner) apply(ctx context.Context, ct contentful.ContentType) error {
	version := 0
	existing, err := p.api.ContentType(ctx, ct.ID)
	switch {
	case err == nil:
		version = existing.Sys.Version
	case contentful.IsNotFound(err):
	default:
		return err
	}

	log := p.logger.With(zap.String("content_type", ct.ID))
	if version > 0 {
		log.Info("updating content type", zap.Int("version", version))
	} else {
		log.Info("creating content type")
	}

	saved, err := p.api.PutContentType(ctx, ct, version)
	if err != nil {
		return err
	}
	if saved == nil {
		return errors.New("empty response to content type update")
	}
	if _, err := p.api.PublishContentType(ctx, ct.ID, saved.Sys.Version); err != nil {
		return err
	}
	log.Info("content type published")
	return nil
}
