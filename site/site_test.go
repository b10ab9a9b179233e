package site

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		Title:       "Simeon Tran",
		Description: "Computer Science Graduate Student",
		URL:         "https://simeontran.dev",
		Pages: []Page{
			{Key: PageHome, Title: "Simeon Tran"},
			{Key: PageBlog, Title: "Blog"},
		},
		Social: []SocialLink{
			{DisplayName: "GitHub", Href: "https://github.com/simtran", Icon: "github"},
			{DisplayName: "LinkedIn", Href: "https://www.linkedin.com/in/simeon-tran", Icon: "linkedin", IsLastInGroup: true},
		},
	}
}

func TestNewValidConfig(t *testing.T) {
	s, err := New(validConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Title() != "Simeon Tran" {
		t.Errorf("Title = %q, want %q", s.Title(), "Simeon Tran")
	}
	if s.Page(PageBlog).Title != "Blog" {
		t.Errorf("Page(blog).Title = %q, want %q", s.Page(PageBlog).Title, "Blog")
	}
}

func TestNewRejectsMissingHref(t *testing.T) {
	cfg := validConfig()
	cfg.Social[0].Href = ""
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for missing href")
	}
}

func TestNewRejectsMalformedHref(t *testing.T) {
	for _, href := range []string{"javascript:alert(1)", "http://", "not a url at all\x00"} {
		cfg := validConfig()
		cfg.Social[0].Href = href
		if _, err := New(cfg); err == nil {
			t.Errorf("expected error for href %q", href)
		}
	}
}

func TestNewAcceptsMailtoHref(t *testing.T) {
	cfg := validConfig()
	cfg.Social = append(cfg.Social, SocialLink{DisplayName: "Email", Href: "mailto:hello@simeontran.dev", Icon: "mail"})
	if _, err := New(cfg); err != nil {
		t.Fatalf("New failed: %v", err)
	}
}

func TestNewRejectsMissingDisplayName(t *testing.T) {
	cfg := validConfig()
	cfg.Social[1].DisplayName = "  "
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for missing display name")
	}
}

func TestNewRejectsDuplicatePageKey(t *testing.T) {
	cfg := validConfig()
	cfg.Pages = append(cfg.Pages, Page{Key: PageHome, Title: "Home again"})
	_, err := New(cfg)
	if err == nil {
		t.Fatal("expected error for duplicate page key")
	}
	if !strings.Contains(err.Error(), "duplicate page key") {
		t.Errorf("error = %q, want mention of duplicate page key", err)
	}
}

func TestNewAllowsEmptyPageTitle(t *testing.T) {
	cfg := validConfig()
	cfg.Pages[1].Title = ""
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := s.Page(PageBlog).Title; got != "" {
		t.Errorf("Page(blog).Title = %q, want empty", got)
	}
}

func TestPageReturnsZeroValueForUnknownKey(t *testing.T) {
	s, err := New(validConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	p := s.Page("nope")
	if p.Title != "" || p.Description != "" {
		t.Errorf("Page(unknown) = %+v, want zero value", p)
	}
}

func TestSocialPreservesAuthoredOrder(t *testing.T) {
	s, err := New(validConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	links := s.Social()
	if len(links) != 2 {
		t.Fatalf("len(Social) = %d, want 2", len(links))
	}
	if links[0].DisplayName != "GitHub" || links[1].DisplayName != "LinkedIn" {
		t.Errorf("order = [%s %s], want [GitHub LinkedIn]", links[0].DisplayName, links[1].DisplayName)
	}
	if links[0].IsLastInGroup {
		t.Error("GitHub should not terminate the group")
	}
	if !links[1].IsLastInGroup {
		t.Error("LinkedIn should terminate the group")
	}
}

func TestSocialReturnsCopy(t *testing.T) {
	s, err := New(validConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	links := s.Social()
	links[0].DisplayName = "mutated"
	if s.Social()[0].DisplayName != "GitHub" {
		t.Error("mutating the returned slice must not affect the Site")
	}
}

func TestNewDefaultsPagination(t *testing.T) {
	cfg := validConfig()
	cfg.PostsPerPage = 0
	cfg.ProjectsPerPage = -1
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.PostsPerPage() <= 0 {
		t.Errorf("PostsPerPage = %d, want > 0", s.PostsPerPage())
	}
	if s.ProjectsPerPage() <= 0 {
		t.Errorf("ProjectsPerPage = %d, want > 0", s.ProjectsPerPage())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	s, err := New(Default())
	if err != nil {
		t.Fatalf("New(Default()) failed: %v", err)
	}
	if s.Title() != "Simeon Tran" {
		t.Errorf("Title = %q, want %q", s.Title(), "Simeon Tran")
	}
}
