// Package analytics classifies visitors and counts page views, bot hits and
// section reveals as Prometheus metrics. Nothing about a visitor is stored.
package analytics

import (
	"regexp"
	"strings"
)

// Agent is the coarse classification of a User-Agent header.
type Agent struct {
	Browser string
	OS      string
	Device  string
	// Bot is the crawler name, or empty for a person.
	Bot string
}

// IsBot reports whether the agent is a crawler.
func (a Agent) IsBot() bool { return a.Bot != "" }

// ParseAgent classifies ua.
func ParseAgent(ua string) Agent {
	var a Agent
	a.Browser, a.OS, a.Device = ParseUserAgent(ua)
	if IsBot(ua) {
		a.Bot = BotName(ua)
	}
	return a
}

// ParseUserAgent extracts browser, OS, and device from a User-Agent string.
func ParseUserAgent(ua string) (browser, os, device string) {
	ua = strings.ToLower(ua)

	// Opera and Edge both claim to be Chrome, which claims to be Safari.
	switch {
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "opera") || strings.Contains(ua, "opr/"):
		browser = "Opera"
	case strings.Contains(ua, "edg"):
		browser = "Edge"
	case strings.Contains(ua, "chrome"):
		browser = "Chrome"
	case strings.Contains(ua, "safari"):
		browser = "Safari"
	default:
		browser = "Other"
	}

	// Android before Linux: Android UAs contain "linux".
	switch {
	case strings.Contains(ua, "windows"):
		os = "Windows"
	case strings.Contains(ua, "android"):
		os = "Android"
	case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad"):
		os = "iOS"
	case strings.Contains(ua, "macintosh") || strings.Contains(ua, "mac os"):
		os = "macOS"
	case strings.Contains(ua, "linux"):
		os = "Linux"
	default:
		os = "Other"
	}

	// iPad UAs contain "mobile".
	switch {
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		device = "Tablet"
	case strings.Contains(ua, "mobile"):
		device = "Mobile"
	default:
		device = "Desktop"
	}

	return
}

var botMarkers = []string{
	"bot", "crawler", "spider", "crawl", "slurp", "scrape",
	"yandex", "baidu", "facebookexternalhit",
}

// IsBot checks if the User-Agent is likely a bot or crawler.
func IsBot(ua string) bool {
	ua = strings.ToLower(ua)
	for _, m := range botMarkers {
		if strings.Contains(ua, m) {
			return true
		}
	}
	return false
}

// botNames is checked in order; specific crawlers precede the generic ones.
var botNames = []struct {
	pattern string
	name    string
}{
	{"googlebot", "Googlebot"},
	{"bingbot", "Bingbot"},
	{"yandex", "Yandex"},
	{"baidu", "Baidu"},
	{"duckduckbot", "DuckDuckBot"},
	{"facebookexternalhit", "Facebook"},
	{"twitterbot", "Twitterbot"},
	{"linkedinbot", "LinkedIn"},
	{"ahrefsbot", "Ahrefs"},
	{"semrushbot", "SEMrush"},
	{"mj12bot", "Majestic"},
	{"dotbot", "Moz"},
	{"slurp", "Yahoo Slurp"},
	{"crawler", "Generic Crawler"},
	{"spider", "Generic Spider"},
}

// BotName names the crawler behind ua.
func BotName(ua string) string {
	ua = strings.ToLower(ua)
	for _, b := range botNames {
		if strings.Contains(ua, b.pattern) {
			return b.name
		}
	}
	if strings.Contains(ua, "bot") {
		return "Other Bot"
	}
	return "Unknown"
}

var referrerDomainRegex = regexp.MustCompile(`^https?://(?:www\.)?([^/:?#]+)`)

var referrerSources = []struct {
	pattern string
	name    string
}{
	{"google.", "Google"},
	{"bing.", "Bing"},
	{"duckduckgo.", "DuckDuckGo"},
	{"yahoo.", "Yahoo"},
	{"github.", "GitHub"},
	{"linkedin.", "LinkedIn"},
}

// Source buckets a Referer header into a small fixed set of names. host is
// the site's own host; links from it count as Internal.
func Source(ref, host string) string {
	if ref == "" {
		return "Direct"
	}
	matches := referrerDomainRegex.FindStringSubmatch(strings.ToLower(ref))
	if len(matches) < 2 {
		return "Other"
	}
	domain := matches[1]

	own, _, _ := strings.Cut(strings.ToLower(host), ":")
	if own != "" && domain == strings.TrimPrefix(own, "www.") {
		return "Internal"
	}
	for _, s := range referrerSources {
		if strings.Contains(domain, s.pattern) {
			return s.name
		}
	}
	return "Other"
}
