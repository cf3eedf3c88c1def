package folio

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/eringen/folio/content"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// PathEscape escapes a string for use in a URL path.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// JoinTechnologies joins technology names with " · ".
func JoinTechnologies(techs []string) string {
	return strings.Join(techs, " · ")
}

// Truncate shortens s to at most n runes, cutting at a word boundary and
// appending an ellipsis when anything was removed.
func Truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:n])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema using SiteConfig.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.Name,
		"url":         BuildURL(cfg.URL),
		"description": cfg.Description,
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	return marshalJsonLD(data)
}

// PersonJsonLD returns a JSON-LD string for the site owner, listing skills
// as knowsAbout and the current positions as worksFor.
func PersonJsonLD(cfg SiteConfig, skills []content.Skill, experiences []content.Experience) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     cfg.Author,
		"url":      BuildURL(cfg.URL),
	}
	if len(skills) > 0 {
		names := make([]string, 0, len(skills))
		for _, s := range skills {
			names = append(names, s.Name)
		}
		data["knowsAbout"] = names
	}
	for _, e := range experiences {
		if e.Current {
			data["jobTitle"] = e.Position
			data["worksFor"] = map[string]string{
				"@type": "Organization",
				"name":  e.Company,
			}
			break
		}
	}
	return marshalJsonLD(data)
}

// ProjectJsonLD returns a JSON-LD string for a CreativeWork schema.
func ProjectJsonLD(p content.Project, cfg SiteConfig) string {
	projectURL := BuildURL(cfg.URL, "projects", p.Slug)
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "CreativeWork",
		"name":        p.Title,
		"description": p.Description,
		"url":         projectURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   projectURL,
		},
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	if p.CoverImage != nil {
		data["image"] = p.CoverImage.Optimized
	}
	if len(p.Technologies) > 0 {
		data["keywords"] = strings.Join(p.Technologies, ", ")
	}
	if p.LiveURL != "" {
		data["sameAs"] = p.LiveURL
	}
	return marshalJsonLD(data)
}

func marshalJsonLD(data map[string]interface{}) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
