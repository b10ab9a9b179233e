// Package site holds the immutable site-wide configuration: global
// metadata, per-page metadata, and the ordered social link list. A Site is
// built once at startup via New and passed into every component that
// renders from it; nothing mutates it afterwards.
package site

import (
	"fmt"
	"net/url"
	"strings"
)

// Page is per-page metadata keyed by a logical page name ("home", "blog", ...).
type Page struct {
	Key         string
	Title       string
	Description string
}

// SocialLink is one external profile reference shown in the header and footer.
// IsLastInGroup marks the final entry of a visually separated cluster so the
// renderer can emit a divider after it.
type SocialLink struct {
	DisplayName   string
	Href          string
	Icon          string
	IsLastInGroup bool
}

// Config is the input to New. All fields are literal data; there is no I/O.
type Config struct {
	Title        string
	Description  string
	ContactEmail string
	URL          string // canonical site URL
	Author       string

	PostsPerPage    int
	ProjectsPerPage int

	Pages  []Page
	Social []SocialLink
}

// Site is the validated, immutable configuration bundle.
type Site struct {
	title        string
	description  string
	contactEmail string
	url          string
	author       string

	postsPerPage    int
	projectsPerPage int

	pages  map[string]Page
	social []SocialLink
}

// New validates cfg and returns an immutable Site. Construction fails on a
// malformed social link or a duplicate page key; empty page titles are
// allowed and render as empty strings downstream.
func New(cfg Config) (*Site, error) {
	if cfg.URL == "" {
		cfg.URL = "http://localhost:3000"
	}
	if cfg.PostsPerPage <= 0 {
		cfg.PostsPerPage = 5
	}
	if cfg.ProjectsPerPage <= 0 {
		cfg.ProjectsPerPage = 6
	}

	pages := make(map[string]Page, len(cfg.Pages))
	for _, p := range cfg.Pages {
		key := strings.TrimSpace(p.Key)
		if key == "" {
			return nil, fmt.Errorf("site: page with empty key")
		}
		if _, exists := pages[key]; exists {
			return nil, fmt.Errorf("site: duplicate page key %q", key)
		}
		p.Key = key
		pages[key] = p
	}

	social := make([]SocialLink, len(cfg.Social))
	for i, l := range cfg.Social {
		if strings.TrimSpace(l.DisplayName) == "" {
			return nil, fmt.Errorf("site: social link %d: display name is required", i)
		}
		if err := validateHref(l.Href); err != nil {
			return nil, fmt.Errorf("site: social link %q: %w", l.DisplayName, err)
		}
		if strings.TrimSpace(l.Icon) == "" {
			return nil, fmt.Errorf("site: social link %q: icon is required", l.DisplayName)
		}
		social[i] = l
	}

	return &Site{
		title:           cfg.Title,
		description:     cfg.Description,
		contactEmail:    cfg.ContactEmail,
		url:             cfg.URL,
		author:          cfg.Author,
		postsPerPage:    cfg.PostsPerPage,
		projectsPerPage: cfg.ProjectsPerPage,
		pages:           pages,
		social:          social,
	}, nil
}

func validateHref(href string) error {
	href = strings.TrimSpace(href)
	if href == "" {
		return fmt.Errorf("href is required")
	}
	u, err := url.Parse(href)
	if err != nil {
		return fmt.Errorf("href %q: %w", href, err)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("href %q: missing host", href)
		}
	case "mailto":
		if u.Opaque == "" {
			return fmt.Errorf("href %q: missing address", href)
		}
	default:
		return fmt.Errorf("href %q: unsupported scheme %q", href, u.Scheme)
	}
	return nil
}

func (s *Site) Title() string        { return s.title }
func (s *Site) Description() string  { return s.description }
func (s *Site) ContactEmail() string { return s.contactEmail }
func (s *Site) URL() string          { return s.url }
func (s *Site) Author() string       { return s.author }

func (s *Site) PostsPerPage() int    { return s.postsPerPage }
func (s *Site) ProjectsPerPage() int { return s.projectsPerPage }

// Page returns the metadata for key, or a zero Page when the key is not
// configured. Missing metadata is presentational, not an error.
func (s *Site) Page(key string) Page {
	return s.pages[key]
}

// Social returns the social links in authored order. The slice is a copy;
// callers cannot mutate the Site through it.
func (s *Site) Social() []SocialLink {
	out := make([]SocialLink, len(s.social))
	copy(out, s.social)
	return out
}
