package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/eringen/folio/contentful"
	"github.com/eringen/folio/schema"
)

// SetupCmd provisions the content model.
type SetupCmd struct {
	SpaceID         string `name:"space-id" env:"CONTENTFUL_SPACE_ID" required:"" help:"Contentful space ID."`
	Environment     string `name:"environment" env:"CONTENTFUL_ENVIRONMENT" default:"master" help:"Contentful environment."`
	ManagementToken string `name:"management-token" env:"CONTENTFUL_MANAGEMENT_TOKEN" required:"" help:"Content Management API token."`
}

func (s *SetupCmd) Run(g *Globals) error {
	types, err := schema.Load()
	if err != nil {
		return err
	}
	client := contentful.NewManagementClient(contentful.ManagementConfig{
		SpaceID:     s.SpaceID,
		AccessToken: s.ManagementToken,
		Environment: s.Environment,
	})
	if err := schema.NewProvisioner(client, g.Logger).Provision(context.Background(), types); err != nil {
		return err
	}
	fmt.Printf("Provisioned %d content types. Add entries in the Contentful web app.\n", len(types))
	return nil
}

// CheckCmd tests the delivery credentials.
type CheckCmd struct {
	Contentful ContentfulFlags `embed:""`
}

type spaceReader interface {
	Space(ctx context.Context) (*contentful.Space, error)
	ContentTypes(ctx context.Context) (*contentful.ContentTypeCollection, error)
}

func (c *CheckCmd) Run() error {
	client := contentful.NewClient(contentful.Config{
		SpaceID:     c.Contentful.SpaceID,
		AccessToken: c.Contentful.AccessToken,
		Environment: c.Contentful.Environment,
	})
	return runCheck(context.Background(), client, os.Stdout)
}

// runCheck prints the space name and its content types, and reports the
// model types the space lacks.
func runCheck(ctx context.Context, r spaceReader, w io.Writer) error {
	space, err := r.Space(ctx)
	if err != nil {
		return fmt.Errorf("connect to space: %w", err)
	}
	fmt.Fprintf(w, "Connected to space %q\n", space.Name)

	coll, err := r.ContentTypes(ctx)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(coll.Items))
	fmt.Fprintf(w, "Content types (%d):\n", len(coll.Items))
	for _, ct := range coll.Items {
		have[ct.ID] = true
		fmt.Fprintf(w, "  %s (%s), %d fields\n", ct.ID, ct.Name, len(ct.Fields))
	}

	model, err := schema.Load()
	if err != nil {
		return err
	}
	var missing []string
	for _, ct := range model {
		if !have[ct.ID] {
			missing = append(missing, ct.ID)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("space is missing content types %v; run `folio setup`", missing)
	}
	fmt.Fprintln(w, "Content model is complete.")
	return nil
}
