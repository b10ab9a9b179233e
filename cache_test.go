package portfolio

import (
	"testing"
	"time"

	"github.com/simtran/portfolio/views"
)

func setupTestCache(t *testing.T) (*Store, *ContentCache) {
	t.Helper()
	s := setupTestStore(t)
	return s, NewContentCache(s, time.Minute)
}

func seedPosts(t *testing.T, s *Store) {
	t.Helper()
	for _, p := range []views.BlogPost{
		{Slug: "docker-updates", Title: "Docker Update Scripts", Date: "2024-03-01", Tags: []string{"docker"}, Published: true},
		{Slug: "gitea-backups", Title: "Gitea Backups", Date: "2024-02-01", Tags: []string{"gitea", "docker"}, Published: true},
	} {
		if err := s.SavePost(p); err != nil {
			t.Fatalf("SavePost failed: %v", err)
		}
	}
}

func TestCacheListPosts(t *testing.T) {
	s, c := setupTestCache(t)
	seedPosts(t, s)

	posts, err := c.ListPosts("")
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d, want 2", len(posts))
	}
}

func TestCacheFiltersByTag(t *testing.T) {
	s, c := setupTestCache(t)
	seedPosts(t, s)

	posts, err := c.ListPosts("gitea")
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "gitea-backups" {
		t.Errorf("filtered posts = %v", posts)
	}

	posts, err = c.ListPosts("DOCKER")
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("tag filtering should be case-insensitive, got %d posts", len(posts))
	}
}

func TestCacheServesStaleUntilInvalidated(t *testing.T) {
	s, c := setupTestCache(t)
	seedPosts(t, s)

	if _, err := c.ListPosts(""); err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}

	if err := s.SavePost(views.BlogPost{Slug: "new", Title: "New", Date: "2024-04-01", Published: true}); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}

	posts, err := c.ListPosts("")
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("cache should still serve the old snapshot, got %d posts", len(posts))
	}

	c.Invalidate()
	posts, err = c.ListPosts("")
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("after Invalidate the new post should appear, got %d posts", len(posts))
	}
}

func TestCacheExpiresAfterTTL(t *testing.T) {
	s := setupTestStore(t)
	c := NewContentCache(s, 50*time.Millisecond)
	seedPosts(t, s)

	if _, err := c.ListPosts(""); err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if err := s.SavePost(views.BlogPost{Slug: "late", Title: "Late", Date: "2024-05-01", Published: true}); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}

	time.Sleep(80 * time.Millisecond)
	posts, err := c.ListPosts("")
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expired cache should reload, got %d posts", len(posts))
	}
}

func TestCacheGetPost(t *testing.T) {
	s, c := setupTestCache(t)
	seedPosts(t, s)

	post, err := c.GetPost("docker-updates")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if post.Title != "Docker Update Scripts" {
		t.Errorf("Title = %q", post.Title)
	}

	if _, err := c.GetPost("missing"); err != ErrNotFound {
		t.Errorf("GetPost(missing) = %v, want ErrNotFound", err)
	}
}

func TestCacheListProjects(t *testing.T) {
	s, c := setupTestCache(t)
	if err := s.SaveProject(views.Project{Slug: "p", Title: "P", Year: 2024}); err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}
	projects, err := c.ListProjects()
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(projects) != 1 || projects[0].Slug != "p" {
		t.Errorf("projects = %v", projects)
	}
}
