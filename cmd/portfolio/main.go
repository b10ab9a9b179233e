// Command portfolio runs the portfolio and blog server. Deployment settings
// come from the environment; site content is compiled in (see site.Default).
package main

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/simtran/portfolio"
	"github.com/simtran/portfolio/site"
)

type envConfig struct {
	Addr         string        `env:"ADDR" envDefault:":3000"`
	SiteURL      string        `env:"SITE_URL" envDefault:"http://localhost:3000"`
	DatabasePath string        `env:"DATABASE_PATH" envDefault:"data/site.db"`
	StaticDir    string        `env:"STATIC_DIR" envDefault:"public"`
	CacheTTL     time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	AdminPassword string `env:"ADMIN_PASSWORD,required"`
	SessionSecret string `env:"SESSION_SECRET,required"`
	CookieSecure  bool   `env:"COOKIE_SECURE"`
}

func main() {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		log.Fatalf("portfolio: parse environment: %v", err)
	}

	siteCfg := site.Default()
	siteCfg.URL = ec.SiteURL

	s, err := site.New(siteCfg)
	if err != nil {
		log.Fatalf("portfolio: invalid site configuration: %v", err)
	}

	app := portfolio.New(s, portfolio.Config{
		Addr:            ec.Addr,
		DatabasePath:    ec.DatabasePath,
		AdminPassword:   ec.AdminPassword,
		SessionSecret:   ec.SessionSecret,
		CookieSecure:    ec.CookieSecure,
		ContentCacheTTL: ec.CacheTTL,
	}, portfolio.WithStaticDir(ec.StaticDir))
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatalf("portfolio: %v", err)
	}
}
