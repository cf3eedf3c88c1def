package folio

import (
	"time"

	"github.com/eringen/folio/content"
)

// HomePage is everything the landing page shows.
type HomePage struct {
	Projects     []content.Project     `json:"projects"`
	Skills       []content.Skill       `json:"skills"`
	Experiences  []content.Experience  `json:"experiences"`
	Testimonials []content.Testimonial `json:"testimonials"`
	Preview      bool                  `json:"preview"`
}

// Message is a contact form submission held in the inbox.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	IP        string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // og:image
}
