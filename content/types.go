package content

import "github.com/eringen/folio/richtext"

// Content type IDs in the store.
const (
	TypeProject     = "project"
	TypeSkill       = "skill"
	TypeExperience  = "experience"
	TypeTestimonial = "testimonial"
)

// Image is a resolved asset field: the original file URL, its CDN-transformed
// counterpart, a blurred placeholder and the asset's alt text and caption.
type Image struct {
	URL         string `json:"url"`
	Optimized   string `json:"optimized"`
	Placeholder string `json:"placeholder"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// Project is a portfolio project.
type Project struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Slug            string         `json:"slug"`
	Description     string         `json:"description"`
	LongDescription *richtext.Node `json:"longDescription,omitempty"`
	Technologies    []string       `json:"technologies"`
	GithubURL       string         `json:"githubUrl,omitempty"`
	LiveURL         string         `json:"liveUrl,omitempty"`
	Featured        bool           `json:"featured"`
	Order           int            `json:"order"`
	CoverImage      *Image         `json:"coverImage"`
	Gallery         []Image        `json:"gallery"`
	Results         map[string]any `json:"results,omitempty"`
}

// Skill is a single skill with a 1-100 level.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
	Icon     string `json:"icon,omitempty"`
}

// Experience is a position held. Dates are kept as stored (ISO 8601).
type Experience struct {
	ID           string         `json:"id"`
	Company      string         `json:"company"`
	Position     string         `json:"position"`
	StartDate    string         `json:"startDate"`
	EndDate      string         `json:"endDate,omitempty"`
	Current      bool           `json:"current"`
	Description  *richtext.Node `json:"description,omitempty"`
	Achievements []string       `json:"achievements"`
	Technologies []string       `json:"technologies"`
}

// Testimonial is a quote from a client or colleague. Rating is 0 when unset.
type Testimonial struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Content  string `json:"content"`
	Rating   int    `json:"rating,omitempty"`
	Image    *Image `json:"image"`
	Featured bool   `json:"featured"`
}
