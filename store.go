package portfolio

import (
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/simtran/portfolio/views"
)

// Store wraps a SQLite database holding blog posts and projects.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write, busy timeout so writers wait instead of
	// failing with SQLITE_BUSY, synchronous=NORMAL is safe under WAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    date TEXT NOT NULL,
    tags TEXT NOT NULL,
    summary TEXT NOT NULL,
    content TEXT NOT NULL,
    published INTEGER NOT NULL DEFAULT 1
);
CREATE TABLE IF NOT EXISTS projects (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    tech_stack TEXT NOT NULL,
    repo_url TEXT NOT NULL DEFAULT '',
    live_url TEXT NOT NULL DEFAULT '',
    year INTEGER NOT NULL DEFAULT 0,
    featured INTEGER NOT NULL DEFAULT 0
);
`)
	return err
}

func scanPost(scan func(dest ...any) error) (views.BlogPost, error) {
	var slug, title, date, tags, summary, content string
	var published int
	if err := scan(&slug, &title, &date, &tags, &summary, &content, &published); err != nil {
		return views.BlogPost{}, err
	}
	return views.BlogPost{
		Slug:      slug,
		Title:     title,
		Date:      date,
		Tags:      ParseTags(tags),
		Summary:   summary,
		Content:   content,
		Link:      "/blog/" + slug + "/",
		Published: published == 1,
	}, nil
}

// ListPosts returns all published posts ordered by date descending.
func (s *Store) ListPosts() ([]views.BlogPost, error) {
	rows, err := s.db.Query(`SELECT slug, title, date, tags, summary, content, published FROM posts WHERE published = 1 ORDER BY date DESC, slug ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []views.BlogPost
	for rows.Next() {
		post, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// ListTags returns a sorted, deduplicated slice of tags from published posts.
func (s *Store) ListTags() ([]string, error) {
	rows, err := s.db.Query(`SELECT tags FROM posts WHERE published = 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := make(map[string]struct{})
	for rows.Next() {
		var tags string
		if err := rows.Scan(&tags); err != nil {
			return nil, err
		}
		for _, t := range ParseTags(tags) {
			set[strings.ToLower(t)] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	result := make([]string, 0, len(set))
	for t := range set {
		result = append(result, t)
	}
	sort.Strings(result)
	return result, nil
}

// GetPost returns a single published post by slug.
func (s *Store) GetPost(slug string) (views.BlogPost, error) {
	row := s.db.QueryRow(`SELECT slug, title, date, tags, summary, content, published FROM posts WHERE slug = ? AND published = 1`, slug)
	return scanPost(row.Scan)
}

// GetPostAny returns a post by slug regardless of published status (admin).
func (s *Store) GetPostAny(slug string) (views.BlogPost, error) {
	row := s.db.QueryRow(`SELECT slug, title, date, tags, summary, content, published FROM posts WHERE slug = ?`, slug)
	return scanPost(row.Scan)
}

// ListAllPosts returns every post including drafts, ordered by date descending.
func (s *Store) ListAllPosts() ([]views.BlogPost, error) {
	rows, err := s.db.Query(`SELECT slug, title, date, tags, summary, content, published FROM posts ORDER BY date DESC, slug ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []views.BlogPost
	for rows.Next() {
		post, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// SavePost upserts a blog post. Tags are normalized to lowercase.
func (s *Store) SavePost(p views.BlogPost) error {
	normalized := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		normalized[i] = strings.ToLower(strings.TrimSpace(t))
	}
	tagString := "," + strings.Join(normalized, ",") + ","
	published := 0
	if p.Published {
		published = 1
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO posts (slug, title, date, tags, summary, content, published) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Slug, p.Title, p.Date, tagString, p.Summary, p.Content, published)
	return err
}

// DeletePost removes a post by slug.
func (s *Store) DeletePost(slug string) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE slug = ?`, slug)
	return err
}

// ListProjects returns all projects, featured first, then newest year first.
func (s *Store) ListProjects() ([]views.Project, error) {
	rows, err := s.db.Query(`SELECT slug, title, description, tech_stack, repo_url, live_url, year, featured FROM projects ORDER BY featured DESC, year DESC, slug ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []views.Project
	for rows.Next() {
		var slug, title, description, techStack, repoURL, liveURL string
		var year, featured int
		if err := rows.Scan(&slug, &title, &description, &techStack, &repoURL, &liveURL, &year, &featured); err != nil {
			return nil, err
		}
		projects = append(projects, views.Project{
			Slug:        slug,
			Title:       title,
			Description: description,
			TechStack:   ParseTags(techStack),
			RepoURL:     repoURL,
			LiveURL:     liveURL,
			Year:        year,
			Featured:    featured == 1,
		})
	}
	return projects, rows.Err()
}

// SaveProject upserts a project.
func (s *Store) SaveProject(p views.Project) error {
	stack := "," + strings.Join(p.TechStack, ",") + ","
	featured := 0
	if p.Featured {
		featured = 1
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO projects (slug, title, description, tech_stack, repo_url, live_url, year, featured) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Slug, p.Title, p.Description, stack, p.RepoURL, p.LiveURL, p.Year, featured)
	return err
}

// DeleteProject removes a project by slug.
func (s *Store) DeleteProject(slug string) error {
	_, err := s.db.Exec(`DELETE FROM projects WHERE slug = ?`, slug)
	return err
}

// ParseTags splits a comma-delimited tag string (e.g. ",go,web,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
