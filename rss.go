package folio

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/views"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Categories  []string `xml:"category"`
	GUID        rssGUID  `xml:"guid"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// projectLink is the project's own link, or its anchor on the page when it
// has none.
func projectLink(base, link, anchor string) string {
	if link != "" && link != "#" {
		if strings.HasPrefix(link, "#") {
			return BuildURL(base) + link
		}
		return link
	}
	return BuildURL(base) + "#" + anchor
}

func (a *App) renderRSS(c echo.Context, site content.Site) error {
	base := a.Config.URL
	items := make([]rssItem, 0, len(site.Projects)+len(site.Alternate))
	add := func(p content.Project, anchor string) {
		cats := append([]string{}, p.Tags...)
		if p.Category != "" {
			cats = append([]string{p.Category}, cats...)
		}
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        projectLink(base, p.Link, anchor),
			Description: p.Description,
			Categories:  cats,
			GUID:        rssGUID{Value: BuildURL(base) + "#" + anchor},
		})
	}
	for _, p := range site.Projects {
		add(p, views.CardID(p))
	}
	for _, p := range site.Alternate {
		add(p, views.AlternateID(p))
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        BuildURL(base),
			Description: a.Config.Description,
			Language:    "pt-BR",
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
