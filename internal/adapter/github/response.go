package github

import (
	"github.com/google/go-github/v62/github"
	"github.com/m-zajac/portfolio/internal/app"
)

func toRepositories(rs []*github.Repository) []app.Repository {
	repos := make([]app.Repository, 0, len(rs))
	for _, r := range rs {
		if r == nil {
			continue
		}
		repos = append(repos, app.Repository{
			Name:        r.GetName(),
			Description: r.GetDescription(),
			Language:    r.GetLanguage(),
			Stars:       r.GetStargazersCount(),
			Forks:       r.GetForksCount(),
			SizeKB:      r.GetSize(),
			UpdatedAt:   r.GetUpdatedAt().Time,
			Private:     r.GetPrivate(),
			Fork:        r.GetFork(),
			URL:         r.GetHTMLURL(),
		})
	}

	return repos
}
