package main

import (
	"time"

	"github.com/m-zajac/portfolio/internal/app"
)

// Config is the container for app configuration
type Config struct {
	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubUsername - owner of listed repositories
	GithubUsername string `default:"940smiley"`

	// GithubAPIRateLimit - max frequency for github rest api calls
	GithubAPIRateLimit float64 `default:"1"`

	// GithubTimeout - timeout for single github api call
	GithubTimeout time.Duration `default:"15s"`

	// LoadTimeout - timeout for the whole load sequence. Zero disables it
	LoadTimeout time.Duration `default:"30s"`

	// FeaturedRepos - names of featured repositories, case insensitive
	FeaturedRepos []string `default:"recoveredtreasures,giveawonderfulday,trashy-items"`

	// RecentCount - maximum number of repositories in the recent section
	RecentCount int `default:"6"`

	// LanguageColors - language color overrides, e.g. "Go:#00add8,Zig:#ec915c"
	LanguageColors map[string]string
}

// AppConfig converts configuration to app.Config.
func (c Config) AppConfig() app.Config {
	cfg := app.DefaultConfig()
	cfg.Username = c.GithubUsername
	cfg.FeaturedNames = app.NewFeaturedSet(c.FeaturedRepos...)
	cfg.RecentLimit = c.RecentCount
	for lang, color := range c.LanguageColors {
		cfg.LanguageColors[lang] = color
	}

	return cfg
}
