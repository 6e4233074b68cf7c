// Package content holds the portfolio copy and project catalog compiled
// into the binary.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

// ErrDuplicateID is returned when two projects in one list share an id.
var ErrDuplicateID = errors.New("content: duplicate project id")

// Status marks a project as finished or still in development.
type Status string

const (
	StatusNone      Status = ""
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
)

// Project is a showcase entry. Category is used by the card grid, Tags by
// the alternate layout; either may be empty.
type Project struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	ImageURL    string   `yaml:"image_url"`
	Link        string   `yaml:"link"`
	Status      Status   `yaml:"status"`
}

// Pending reports whether the project is still in development.
func (p Project) Pending() bool { return p.Status == StatusPending }

// Completed reports whether the project is finished.
func (p Project) Completed() bool { return p.Status == StatusCompleted }

type Hero struct {
	Badge        string `yaml:"badge"`
	Headline     string `yaml:"headline"`
	Lead         string `yaml:"lead"`
	PrimaryCTA   string `yaml:"primary_cta"`
	SecondaryCTA string `yaml:"secondary_cta"`
}

type About struct {
	Badge      string   `yaml:"badge"`
	Name       string   `yaml:"name"`
	Paragraphs []string `yaml:"paragraphs"`
	SkillsHead string   `yaml:"skills_heading"`
	Skills     []string `yaml:"skills"`
	ImageURL   string   `yaml:"image_url"`
	ImageAlt   string   `yaml:"image_alt"`
}

// Section is the badge/heading/lead triple that opens most sections.
type Section struct {
	Badge   string `yaml:"badge"`
	Heading string `yaml:"heading"`
	Lead    string `yaml:"lead"`
}

type Contact struct {
	Section `yaml:",inline"`
}

type SocialLink struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
	Icon string `yaml:"icon"`
}

type Footer struct {
	Brand   string       `yaml:"brand"`
	Tagline string       `yaml:"tagline"`
	Social  []SocialLink `yaml:"social"`
	Contact []string     `yaml:"contact"`
}

// Site is everything the home page renders.
type Site struct {
	Brand     string    `yaml:"brand"`
	Hero      Hero      `yaml:"hero"`
	About     About     `yaml:"about"`
	Showcase  Section   `yaml:"showcase"`
	Projects  []Project `yaml:"projects"`
	Featured  Section   `yaml:"featured"`
	Alternate []Project `yaml:"alternate"`
	Contact   Contact   `yaml:"contact"`
	Footer    Footer    `yaml:"footer"`
}

// Load parses the embedded site data.
func Load() (Site, error) {
	return Parse(siteYAML)
}

// Parse decodes and validates site data.
func Parse(data []byte) (Site, error) {
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Site{}, fmt.Errorf("content: parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Site{}, err
	}
	return s, nil
}

// Validate checks that project ids are unique within each list and that
// statuses are known.
func (s Site) Validate() error {
	if err := validateProjects("projects", s.Projects); err != nil {
		return err
	}
	return validateProjects("alternate", s.Alternate)
}

func validateProjects(list string, ps []Project) error {
	seen := make(map[int]struct{}, len(ps))
	for _, p := range ps {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %s list, id %d", ErrDuplicateID, list, p.ID)
		}
		seen[p.ID] = struct{}{}
		switch p.Status {
		case StatusNone, StatusCompleted, StatusPending:
		default:
			return fmt.Errorf("content: %s list, id %d: unknown status %q", list, p.ID, p.Status)
		}
	}
	return nil
}

// AllProjects returns both lists, card grid first.
func (s Site) AllProjects() []Project {
	out := make([]Project, 0, len(s.Projects)+len(s.Alternate))
	out = append(out, s.Projects...)
	return append(out, s.Alternate...)
}
