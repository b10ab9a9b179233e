package site

// Page keys used across handlers and views.
const (
	PageHome     = "home"
	PageBlog     = "blog"
	PageProjects = "projects"
)

// Default returns the configuration this site ships with. The canonical URL
// is usually overridden from the environment at startup.
func Default() Config {
	return Config{
		Title:        "Simeon Tran",
		Description:  "Computer Science Graduate Student",
		ContactEmail: "hello@simeontran.dev",
		Author:       "Simeon Tran",

		PostsPerPage:    5,
		ProjectsPerPage: 6,

		Pages: []Page{
			{Key: PageHome, Title: "Simeon Tran", Description: "Computer Science Graduate Student"},
			{Key: PageBlog, Title: "Blog", Description: "Notes on tooling, automation, and the occasional deep dive"},
			{Key: PageProjects, Title: "Projects", Description: "Selected projects and experiments"},
		},

		Social: []SocialLink{
			{DisplayName: "GitHub", Href: "https://github.com/simtran", Icon: "github", IsLastInGroup: false},
			{DisplayName: "LinkedIn", Href: "https://www.linkedin.com/in/simeon-tran", Icon: "linkedin", IsLastInGroup: true},
			{DisplayName: "Email", Href: "mailto:hello@simeontran.dev", Icon: "mail", IsLastInGroup: false},
			{DisplayName: "RSS", Href: "https://simeontran.dev/feed.xml", Icon: "rss", IsLastInGroup: true},
		},
	}
}
