package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/eringen/folio/content"
)

func itoa(i int) string { return strconv.Itoa(i) }

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
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

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block.
func WebsiteJsonLD(meta SiteMeta) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     meta.Name,
		"url":      buildURL(meta.URL),
	}
	if meta.Description != "" {
		data["description"] = meta.Description
	}
	if meta.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  meta.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// PersonJsonLD describes the portfolio owner, with skills as knowsAbout.
func PersonJsonLD(meta SiteMeta, about content.About) string {
	name := about.Name
	if name == "" {
		name = meta.Author
	}
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     name,
		"url":      buildURL(meta.URL),
	}
	if len(about.Skills) > 0 {
		data["knowsAbout"] = about.Skills
	}
	if about.ImageURL != "" {
		data["image"] = about.ImageURL
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// jsonLDScript escapes "</" so a JSON-LD payload cannot close its script tag.
func jsonLDScript(payload string) string {
	return strings.ReplaceAll(payload, "</", `<\/`)
}
