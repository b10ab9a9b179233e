package portfolio

import (
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/simtran/portfolio/views"
)

// ErrNotFound is returned when a requested post or project does not exist.
var ErrNotFound = sql.ErrNoRows

// ContentCache is an in-memory cache of published posts, tags, and projects
// with a TTL. All public pages read through it; admin writes invalidate it.
type ContentCache struct {
	mu       sync.RWMutex
	posts    []views.BlogPost
	tags     []string
	projects []views.Project
	fetched  time.Time
	ttl      time.Duration
	store    *Store
}

// NewContentCache creates a ContentCache backed by the given Store.
func NewContentCache(s *Store, ttl time.Duration) *ContentCache {
	return &ContentCache{store: s, ttl: ttl}
}

func (c *ContentCache) valid() bool {
	return !c.fetched.IsZero() && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ContentCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.tags = nil
	c.projects = nil
	c.fetched = time.Time{}
	c.mu.Unlock()
}

func (c *ContentCache) load() error {
	posts, err := c.store.ListPosts()
	if err != nil {
		return err
	}
	tags, err := c.store.ListTags()
	if err != nil {
		return err
	}
	projects, err := c.store.ListProjects()
	if err != nil {
		return err
	}
	c.posts = posts
	c.tags = tags
	c.projects = projects
	c.fetched = time.Now()
	return nil
}

// ensureLoaded refreshes the cache if stale. It tries a read lock first and
// only takes the write lock when a reload is needed.
func (c *ContentCache) ensureLoaded() ([]views.BlogPost, []string, []views.Project, error) {
	c.mu.RLock()
	if c.valid() {
		posts, tags, projects := c.posts, c.tags, c.projects
		c.mu.RUnlock()
		return posts, tags, projects, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid() {
		if err := c.load(); err != nil {
			return nil, nil, nil, err
		}
	}
	return c.posts, c.tags, c.projects, nil
}

// ListPosts returns published posts, optionally filtered by tag.
func (c *ContentCache) ListPosts(tag string) ([]views.BlogPost, error) {
	posts, _, _, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	if tag == "" {
		return posts, nil
	}
	normalized := normalizeTag(tag)
	var filtered []views.BlogPost
	for _, p := range posts {
		for _, t := range p.Tags {
			if normalizeTag(t) == normalized {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered, nil
}

// ListTags returns all unique tags from published posts.
func (c *ContentCache) ListTags() ([]string, error) {
	_, tags, _, err := c.ensureLoaded()
	return tags, err
}

// ListProjects returns all projects, featured first.
func (c *ContentCache) ListProjects() ([]views.Project, error) {
	_, _, projects, err := c.ensureLoaded()
	return projects, err
}

// GetPost returns a single published post by slug from the cache.
func (c *ContentCache) GetPost(slug string) (views.BlogPost, error) {
	posts, _, _, err := c.ensureLoaded()
	if err != nil {
		return views.BlogPost{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return views.BlogPost{}, ErrNotFound
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
