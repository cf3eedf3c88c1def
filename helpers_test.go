package folio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/folio/content"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		expected string
	}{
		{"https://folio.example", nil, "https://folio.example"},
		{"https://folio.example", []string{"projects", "folio"}, "https://folio.example/projects/folio/"},
		{"https://folio.example/sub/", []string{"projects", "x"}, "https://folio.example/sub/projects/x/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, BuildURL(tt.base, tt.segments...))
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		n        int
		expected string
	}{
		{"short", 10, "short"},
		{"one two three four", 9, "one two…"},
		{"unbroken", 4, "unbr…"},
		{"héllo wörld", 7, "héllo…"},
		{"  padded  ", 0, "padded"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Truncate(tt.input, tt.n), tt.input)
	}
}

func TestPersonJsonLD(t *testing.T) {
	cfg := SiteConfig{Author: "Jane Doe", URL: "https://folio.example"}
	out := PersonJsonLD(cfg,
		[]content.Skill{{Name: "Go"}, {Name: "SQL"}},
		[]content.Experience{
			{Company: "Old Co", Position: "Intern"},
			{Company: "Acme", Position: "Staff Engineer", Current: true},
		})

	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &data))
	assert.Equal(t, "Person", data["@type"])
	assert.Equal(t, []any{"Go", "SQL"}, data["knowsAbout"])
	assert.Equal(t, "Staff Engineer", data["jobTitle"])
	assert.Equal(t, "Acme", data["worksFor"].(map[string]any)["name"])
}

func TestProjectJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "Jane", Author: "Jane Doe", URL: "https://folio.example"}
	p := content.Project{
		Title:        "Folio",
		Slug:         "folio",
		Description:  "Portfolio engine",
		Technologies: []string{"Go", "templ"},
		LiveURL:      "https://live.example",
		CoverImage:   &content.Image{Optimized: "https://cdn.example/cover"},
	}
	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(ProjectJsonLD(p, cfg)), &data))
	assert.Equal(t, "CreativeWork", data["@type"])
	assert.Equal(t, "https://folio.example/projects/folio/", data["url"])
	assert.Equal(t, "Go, templ", data["keywords"])
	assert.Equal(t, "https://cdn.example/cover", data["image"])
	assert.Equal(t, "https://live.example", data["sameAs"])
}

func TestWebsiteJsonLD(t *testing.T) {
	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(WebsiteJsonLD(SiteConfig{Name: "Jane", URL: "https://folio.example"})), &data))
	assert.Equal(t, "WebSite", data["@type"])
	assert.Nil(t, data["author"])
}
