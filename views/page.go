package views

import (
	"context"

	"github.com/a-h/templ"
)

// head writes the document prologue up to and including <body>.
func head(b *builder, site SiteMeta, page PageMeta, jsonLD ...string) {
	title := page.Title
	if title == "" {
		title = site.Name
	}
	desc := page.Description
	if desc == "" {
		desc = site.Description
	}
	ogType := page.OGType
	if ogType == "" {
		ogType = "website"
	}
	b.raw("<!DOCTYPE html>")
	b.open("html", "lang", "pt-BR")
	b.raw("<head>")
	b.raw(`<meta charset="utf-8">`)
	b.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	b.element("title", title)
	if desc != "" {
		b.open("meta", "name", "description", "content", desc)
		b.open("meta", "property", "og:description", "content", desc)
	}
	b.open("meta", "property", "og:title", "content", title)
	b.open("meta", "property", "og:type", "content", ogType)
	if page.URL != "" {
		b.open("link", "rel", "canonical", "href", page.URL)
		b.open("meta", "property", "og:url", "content", page.URL)
	}
	b.open("link", "rel", "stylesheet", "href", "/public/site.css")
	b.open("link", "rel", "alternate", "type", "application/rss+xml", "title", site.Name, "href", "/feed.xml")
	for _, ld := range jsonLD {
		b.raw(`<script type="application/ld+json">`, jsonLDScript(ld), "</script>")
	}
	b.open("script", "src", "/public/site.js", "defer", "defer")
	b.close("script")
	b.raw("</head>")
	b.open("body", "class", "bg-background text-foreground antialiased")
}

func foot(b *builder) {
	b.raw("</body></html>")
}

// Home renders the full single page.
func Home(d HomeData) templ.Component {
	if d.Layout == nil {
		d.Layout = NewLayout(d.Site)
	}
	return component(func(ctx context.Context, b *builder) {
		head(b, d.Meta, PageMeta{URL: buildURL(d.Meta.URL)},
			WebsiteJsonLD(d.Meta), PersonJsonLD(d.Meta, d.Site.About))
		navbarSection(b, d.Site.Brand)
		b.raw("<main>")
		heroSection(b, d.Site.Hero, d.Layout)
		projectsSection(b, d.Site, d.Layout)
		aboutSection(b, d.Site.About, d.Layout)
		alternateSection(b, d.Site, d.Layout)
		contactSection(b, d.Site.Contact, d.Layout, d.CSRFToken)
		b.raw("</main>")
		footerSection(b, d.Site.Footer, d.Year)
		b.raw(`<div id="toaster" class="toaster" aria-live="polite"></div>`)
		foot(b)
	})
}
