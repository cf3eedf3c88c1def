// Package content reads portfolio records from the content store and turns
// them into plain values with CDN-optimized images.
//
// Every read degrades instead of failing: when the store cannot be reached or
// rejects the request, the error is logged and the caller gets an empty
// result, so a broken section renders as "no data" rather than an error page.
package content

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/eringen/folio/cloudinary"
	"github.com/eringen/folio/contentful"
)

// EntryFetcher runs an entry query against the content store.
type EntryFetcher interface {
	Entries(ctx context.Context, q *contentful.Query) (*contentful.EntryCollection, error)
}

// Repository is the read side of the portfolio content.
type Repository struct {
	store   EntryFetcher
	images  *cloudinary.Builder
	logger  *zap.Logger
	metrics *Metrics
}

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets the logger used for fetch failures.
func WithLogger(l *zap.Logger) Option {
	return func(r *Repository) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records every fetch in m.
func WithMetrics(m *Metrics) Option {
	return func(r *Repository) {
		r.metrics = m
	}
}

// NewRepository returns a Repository reading from store and rewriting image
// fields through images.
func NewRepository(store EntryFetcher, images *cloudinary.Builder, opts ...Option) *Repository {
	r := &Repository{
		store:  store,
		images: images,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Projects returns all projects, featured first, then by display order.
func (r *Repository) Projects(ctx context.Context) []Project {
	q := contentful.NewQuery(TypeProject).Order("-featured", "order")
	coll, ok := r.fetch(ctx, q)
	if !ok {
		return []Project{}
	}
	out := make([]Project, 0, len(coll.Items))
	for _, e := range coll.Items {
		p, err := r.project(coll, e)
		if err != nil {
			r.skip(e, err)
			continue
		}
		out = append(out, p)
	}
	return out
}

// ProjectBySlug returns the project with the given slug. The boolean is false
// when no project matches or the store could not be queried.
func (r *Repository) ProjectBySlug(ctx context.Context, slug string) (Project, bool) {
	q := contentful.NewQuery(TypeProject).Equal("slug", slug).Limit(1)
	coll, ok := r.fetch(ctx, q)
	if !ok || len(coll.Items) == 0 {
		return Project{}, false
	}
	p, err := r.project(coll, coll.Items[0])
	if err != nil {
		r.skip(coll.Items[0], err)
		return Project{}, false
	}
	return p, true
}

// Skills returns all skills, strongest first.
func (r *Repository) Skills(ctx context.Context) []Skill {
	q := contentful.NewQuery(TypeSkill).Order("-level")
	coll, ok := r.fetch(ctx, q)
	if !ok {
		return []Skill{}
	}
	out := make([]Skill, 0, len(coll.Items))
	for _, e := range coll.Items {
		var f skillFields
		if err := e.DecodeFields(&f); err != nil {
			r.skip(e, err)
			continue
		}
		out = append(out, Skill{
			ID:       e.Sys.ID,
			Name:     f.Name,
			Category: f.Category,
			Level:    int(f.Level),
			Icon:     f.Icon,
		})
	}
	return out
}

// Experiences returns all positions, current first, then most recent.
func (r *Repository) Experiences(ctx context.Context) []Experience {
	q := contentful.NewQuery(TypeExperience).Order("-current", "-startDate")
	coll, ok := r.fetch(ctx, q)
	if !ok {
		return []Experience{}
	}
	out := make([]Experience, 0, len(coll.Items))
	for _, e := range coll.Items {
		var f experienceFields
		if err := e.DecodeFields(&f); err != nil {
			r.skip(e, err)
			continue
		}
		out = append(out, Experience{
			ID:           e.Sys.ID,
			Company:      f.Company,
			Position:     f.Position,
			StartDate:    f.StartDate,
			EndDate:      f.EndDate,
			Current:      f.Current,
			Description:  f.Description,
			Achievements: nonNil(f.Achievements),
			Technologies: nonNil(f.Technologies),
		})
	}
	return out
}

// Testimonials returns all testimonials, featured first, then by rating.
func (r *Repository) Testimonials(ctx context.Context) []Testimonial {
	q := contentful.NewQuery(TypeTestimonial).Order("-featured", "-rating")
	coll, ok := r.fetch(ctx, q)
	if !ok {
		return []Testimonial{}
	}
	out := make([]Testimonial, 0, len(coll.Items))
	for _, e := range coll.Items {
		var f testimonialFields
		if err := e.DecodeFields(&f); err != nil {
			r.skip(e, err)
			continue
		}
		out = append(out, Testimonial{
			ID:       e.Sys.ID,
			Author:   f.Author,
			Position: f.Position,
			Company:  f.Company,
			Content:  f.Content,
			Rating:   int(f.Rating),
			Image:    r.image(coll, f.Image, cloudinary.Options{}),
			Featured: f.Featured,
		})
	}
	return out
}

// fetch runs q and reports whether a collection came back. Failures are
// logged and counted here and never reach the caller.
func (r *Repository) fetch(ctx context.Context, q *contentful.Query) (*contentful.EntryCollection, bool) {
	start := time.Now()
	coll, err := r.store.Entries(ctx, q)
	r.metrics.observe(q.ContentType(), start, err)
	if err != nil {
		r.logger.Error("content fetch failed",
			zap.String("content_type", q.ContentType()),
			zap.Error(err),
		)
		return nil, false
	}
	if coll == nil {
		return &contentful.EntryCollection{}, true
	}
	return coll, true
}

func (r *Repository) skip(e contentful.Entry, err error) {
	r.logger.Warn("skipping malformed entry",
		zap.String("entry_id", e.Sys.ID),
		zap.String("content_type", e.ContentTypeID()),
		zap.Error(err),
	)
}

func (r *Repository) project(coll *contentful.EntryCollection, e contentful.Entry) (Project, error) {
	var f projectFields
	if err := e.DecodeFields(&f); err != nil {
		return Project{}, err
	}
	return Project{
		ID:              e.Sys.ID,
		Title:           f.Title,
		Slug:            f.Slug,
		Description:     f.Description,
		LongDescription: f.LongDescription,
		Technologies:    nonNil(f.Technologies),
		GithubURL:       f.GithubURL,
		LiveURL:         f.LiveURL,
		Featured:        f.Featured,
		Order:           int(f.Order),
		CoverImage:      r.image(coll, f.CoverImage, cloudinary.ProjectCard),
		Gallery:         r.gallery(coll, f.Gallery, cloudinary.ProjectCard),
		Results:         f.Results,
	}, nil
}

// image resolves an asset link. It returns nil when the link is absent, the
// asset was not included, or the asset has no file.
func (r *Repository) image(coll *contentful.EntryCollection, link *contentful.Link, opts cloudinary.Options) *Image {
	if link == nil {
		return nil
	}
	asset, ok := coll.Asset(link.ID())
	if !ok || asset.URL() == "" {
		return nil
	}
	src := asset.URL()
	img := &Image{
		URL:         src,
		Optimized:   r.images.URL(src, opts),
		Placeholder: r.images.PlaceholderImage(src),
		Title:       asset.Fields.Title,
		Description: asset.Fields.Description,
	}
	if d := asset.Fields.File.Details.Image; d != nil {
		img.Width, img.Height = d.Width, d.Height
	}
	return img
}

// gallery resolves each link in order, dropping the ones that do not resolve.
func (r *Repository) gallery(coll *contentful.EntryCollection, links []*contentful.Link, opts cloudinary.Options) []Image {
	out := make([]Image, 0, len(links))
	for _, l := range links {
		if img := r.image(coll, l, opts); img != nil {
			out = append(out, *img)
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
