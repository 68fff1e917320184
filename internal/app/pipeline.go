package app

import (
	"sort"
)

// Classify drops forks and splits the rest into featured and other repositories.
// Both parts are ordered by update time, most recent first. Ties keep input order.
func Classify(cfg Config, repos []Repository) Partition {
	own := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if r.Fork {
			continue
		}
		own = append(own, r)
	}

	sort.SliceStable(own, func(i, j int) bool {
		return own[i].UpdatedAt.After(own[j].UpdatedAt)
	})

	p := Partition{
		Featured: []Repository{},
		Other:    []Repository{},
	}
	for _, r := range own {
		if cfg.IsFeatured(r.Name) {
			p.Featured = append(p.Featured, r)
		} else {
			p.Other = append(p.Other, r)
		}
	}

	return p
}

// BuildModel classifies repositories and assigns them to display slots.
func BuildModel(cfg Config, repos []Repository) RenderModel {
	p := Classify(cfg, repos)

	limit := cfg.RecentLimit
	if limit < 0 {
		limit = 0
	}
	recent := p.Other
	if len(recent) > limit {
		recent = recent[:limit]
	}

	return RenderModel{
		Featured: p.Featured,
		Recent:   recent,
		All:      p.Other,
	}
}
