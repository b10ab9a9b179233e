package views

// BlogPost is the content type stored in SQLite and rendered by components.
type BlogPost struct {
	Title     string
	Date      string
	Tags      []string
	Summary   string
	Link      string
	Slug      string
	Content   string
	Published bool
}

// Project is one portfolio entry on the projects page.
type Project struct {
	Slug        string
	Title       string
	Description string
	TechStack   []string
	RepoURL     string
	LiveURL     string
	Year        int
	Featured    bool
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}
