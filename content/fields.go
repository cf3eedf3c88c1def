package content

import (
	"github.com/eringen/folio/contentful"
	"github.com/eringen/folio/richtext"
)

// Wire shapes of the entry fields. Numbers arrive as JSON numbers that may
// carry a fraction, so they are decoded as float64.

type projectFields struct {
	Title           string             `json:"title"`
	Slug            string             `json:"slug"`
	Description     string             `json:"description"`
	LongDescription *richtext.Node     `json:"longDescription"`
	Technologies    []string           `json:"technologies"`
	GithubURL       string             `json:"githubUrl"`
	LiveURL         string             `json:"liveUrl"`
	Featured        bool               `json:"featured"`
	Order           float64            `json:"order"`
	CoverImage      *contentful.Link   `json:"coverImage"`
	Gallery         []*contentful.Link `json:"gallery"`
	Results         map[string]any     `json:"results"`
}

type skillFields struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Level    float64 `json:"level"`
	Icon     string  `json:"icon"`
}

type experienceFields struct {
	Company      string         `json:"company"`
	Position     string         `json:"position"`
	StartDate    string         `json:"startDate"`
	EndDate      string         `json:"endDate"`
	Current      bool           `json:"current"`
	Description  *richtext.Node `json:"description"`
	Achievements []string       `json:"achievements"`
	Technologies []string       `json:"technologies"`
}

type testimonialFields struct {
	Author   string           `json:"author"`
	Position string           `json:"position"`
	Company  string           `json:"company"`
	Content  string           `json:"content"`
	Rating   float64          `json:"rating"`
	Image    *contentful.Link `json:"image"`
	Featured bool             `json:"featured"`
}
