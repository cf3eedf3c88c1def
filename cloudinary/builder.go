// Package cloudinary builds transformation URLs for the Cloudinary image CDN.
//
// URLs are assembled from a source reference and a set of Options; nothing here
// talks to the network. Identical inputs always produce identical strings, so the
// results are safe to use as CDN cache keys.
package cloudinary

import (
	"strings"
)

const (
	// DefaultOrigin is the Cloudinary delivery host.
	DefaultOrigin = "https://res.cloudinary.com"
	// DefaultCloudName is used when no cloud name is configured.
	DefaultCloudName = "demo"
)

// Mode selects the delivery type segment of the URL.
type Mode string

const (
	// ModeFetch transforms a remote image given by its absolute URL.
	ModeFetch Mode = "fetch"
	// ModeUpload transforms an asset stored in the Cloudinary account by public ID.
	ModeUpload Mode = "upload"
)

// Builder produces transformation URLs for a single cloud and delivery mode.
// A Builder is immutable after construction and safe for concurrent use.
type Builder struct {
	origin    string
	cloudName string
	mode      Mode
	defaults  Options
	flags     []string
}

// Option configures a Builder.
type Option func(*Builder)

// WithDefaults replaces the option set applied underneath every call.
func WithDefaults(o Options) Option {
	return func(b *Builder) {
		b.defaults = o
	}
}

// WithFlags replaces the tokens appended unconditionally after the options.
func WithFlags(flags ...string) Option {
	return func(b *Builder) {
		b.flags = append([]string(nil), flags...)
	}
}

// WithOrigin overrides the CDN origin (scheme and host).
func WithOrigin(origin string) Option {
	return func(b *Builder) {
		b.origin = strings.TrimSuffix(origin, "/")
	}
}

// New creates a Builder for cloudName in the given mode. An empty cloudName
// falls back to DefaultCloudName.
func New(cloudName string, mode Mode, opts ...Option) *Builder {
	if cloudName == "" {
		cloudName = DefaultCloudName
	}
	b := &Builder{
		origin:    DefaultOrigin,
		cloudName: cloudName,
		mode:      mode,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFetch returns a fetch-mode Builder that proxies remote images with
// automatic quality, format and pixel ratio, marked progressive and immutable.
func NewFetch(cloudName string, opts ...Option) *Builder {
	base := []Option{
		WithDefaults(Options{
			Quality:     QualityAuto,
			Format:      FormatAuto,
			FetchFormat: FormatAuto,
			DPR:         DPRAuto,
		}),
		WithFlags("fl_progressive", "fl_immutable_cache"),
	}
	return New(cloudName, ModeFetch, append(base, opts...)...)
}

// NewUpload returns an upload-mode Builder for assets stored in the account.
func NewUpload(cloudName string, opts ...Option) *Builder {
	base := []Option{
		WithDefaults(Options{
			Quality: QualityBest,
			Format:  FormatAuto,
			Crop:    CropFill,
			Gravity: GravityAuto,
		}),
		WithFlags("dpr_auto", "f_auto"),
	}
	return New(cloudName, ModeUpload, append(base, opts...)...)
}

// CloudName returns the configured cloud.
func (b *Builder) CloudName() string { return b.cloudName }

// Mode returns the delivery mode.
func (b *Builder) Mode() Mode { return b.mode }

// URL returns the transformation URL for source with opts layered over the
// builder defaults. An empty source yields an empty string.
func (b *Builder) URL(source string, opts Options) string {
	if source == "" {
		return ""
	}
	tokens := b.defaults.Merge(opts).tokens()
	tokens = append(tokens, b.flags...)

	var sb strings.Builder
	sb.WriteString(b.origin)
	sb.WriteByte('/')
	sb.WriteString(b.cloudName)
	sb.WriteString("/image/")
	sb.WriteString(string(b.mode))
	sb.WriteByte('/')
	if len(tokens) > 0 {
		sb.WriteString(strings.Join(tokens, ","))
		sb.WriteByte('/')
	}
	if b.mode == ModeFetch {
		sb.WriteString(encodeComponent(NormalizeSource(source)))
	} else {
		sb.WriteString(strings.TrimPrefix(source, "/"))
	}
	return sb.String()
}

// NormalizeSource makes a reference absolute: protocol-relative and
// scheme-less references get an https: prefix, http(s) URLs pass through.
func NormalizeSource(ref string) string {
	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, "//"):
		return "https:" + ref
	case strings.HasPrefix(ref, "http"):
		return ref
	default:
		return "https:" + ref
	}
}

const upperhex = "0123456789ABCDEF"

// encodeComponent escapes s as a single path segment. Letters, digits and
// -_.!~*'() are kept; every other byte becomes %XX.
func encodeComponent(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) * 3 / 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&15])
	}
	return sb.String()
}

func unreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
