package views

import (
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/reveal"
)

// SiteMeta holds the site-wide settings every page needs.
type SiteMeta struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// HomeData is everything the single page renders.
type HomeData struct {
	Meta      SiteMeta
	Site      content.Site
	Layout    *Layout
	CSRFToken string
	Year      int
}

var (
	// SectionOptions drive the section-level fades.
	SectionOptions = reveal.Options{Threshold: reveal.DefaultThreshold}
	// SlideOptions drive slide-ins and cards, which trigger 100px late.
	SlideOptions = reveal.Options{Threshold: reveal.DefaultThreshold, BottomMargin: 100}
)

// Layout is the set of revealable elements on the home page.
type Layout struct {
	Hero           *reveal.Element
	About          *reveal.Element
	AboutText      *reveal.Element
	AboutImage     *reveal.Element
	Projects       *reveal.Element
	Cards          []*reveal.Element
	Alternate      *reveal.Element
	AlternateItems []*reveal.Element
	Contact        *reveal.Element
}

// NewLayout builds one Hidden element per revealable block of site.
// Card and alternate items are staggered by their list position.
func NewLayout(site content.Site) *Layout {
	l := &Layout{
		Hero:       &reveal.Element{ID: "hero-content", Variant: reveal.Fade},
		About:      &reveal.Element{ID: "about", Variant: reveal.Fade},
		AboutText:  &reveal.Element{ID: "about-text", Variant: reveal.SlideFromLeft},
		AboutImage: &reveal.Element{ID: "about-image", Variant: reveal.SlideFromRight},
		Projects:   &reveal.Element{ID: "projects", Variant: reveal.Fade},
		Alternate:  &reveal.Element{ID: "projects-alternate", Variant: reveal.Fade},
		Contact:    &reveal.Element{ID: "contact", Variant: reveal.Fade},
	}
	for i, p := range site.Projects {
		l.Cards = append(l.Cards, &reveal.Element{
			ID: CardID(p), Variant: reveal.SlideUp, Index: i, Stagger: true,
		})
	}
	for i, p := range site.Alternate {
		l.AlternateItems = append(l.AlternateItems, &reveal.Element{
			ID: AlternateID(p), Variant: reveal.SlideUp, Index: i, Stagger: true,
		})
	}
	return l
}

// Sections returns the elements observed with SectionOptions.
func (l *Layout) Sections() []*reveal.Element {
	return []*reveal.Element{l.Hero, l.About, l.Projects, l.Alternate, l.Contact}
}

// Slides returns the elements observed with SlideOptions.
func (l *Layout) Slides() []*reveal.Element {
	out := []*reveal.Element{l.AboutText, l.AboutImage}
	out = append(out, l.Cards...)
	return append(out, l.AlternateItems...)
}

// CardID is the DOM id of a project card.
func CardID(p content.Project) string { return "project-card-" + itoa(p.ID) }

// AlternateID is the DOM id of an alternate-layout project row.
func AlternateID(p content.Project) string { return "alternate-item-" + itoa(p.ID) }
