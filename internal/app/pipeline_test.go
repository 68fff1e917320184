package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC)
}

func names(repos []Repository) []string {
	ns := make([]string, 0, len(repos))
	for _, r := range repos {
		ns = append(ns, r.Name)
	}
	return ns
}

func TestClassify(t *testing.T) {
	t.Parallel()

	cfg := Config{
		FeaturedNames: NewFeaturedSet("Alpha", "beta"),
	}

	tests := []struct {
		name         string
		repos        []Repository
		wantFeatured []string
		wantOther    []string
	}{
		{
			name:         "empty",
			repos:        nil,
			wantFeatured: []string{},
			wantOther:    []string{},
		},
		{
			name: "forks are dropped",
			repos: []Repository{
				{Name: "a", UpdatedAt: day(1)},
				{Name: "forked", Fork: true, UpdatedAt: day(9)},
				{Name: "beta", Fork: true, UpdatedAt: day(9)},
			},
			wantFeatured: []string{},
			wantOther:    []string{"a"},
		},
		{
			name: "featured names match ignoring case",
			repos: []Repository{
				{Name: "ALPHA", UpdatedAt: day(1)},
				{Name: "Beta", UpdatedAt: day(2)},
				{Name: "gamma", UpdatedAt: day(3)},
			},
			wantFeatured: []string{"Beta", "ALPHA"},
			wantOther:    []string{"gamma"},
		},
		{
			name: "other sorted by update time descending",
			repos: []Repository{
				{Name: "old", UpdatedAt: day(1)},
				{Name: "new", UpdatedAt: day(20)},
				{Name: "mid", UpdatedAt: day(10)},
			},
			wantFeatured: []string{},
			wantOther:    []string{"new", "mid", "old"},
		},
		{
			name: "ties keep input order",
			repos: []Repository{
				{Name: "t1", UpdatedAt: day(5)},
				{Name: "newest", UpdatedAt: day(6)},
				{Name: "t2", UpdatedAt: day(5)},
				{Name: "t3", UpdatedAt: day(5)},
			},
			wantFeatured: []string{},
			wantOther:    []string{"newest", "t1", "t2", "t3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(cfg, tt.repos)
			assert.Equal(t, tt.wantFeatured, names(got.Featured))
			assert.Equal(t, tt.wantOther, names(got.Other))
		})
	}
}

func TestClassifyPartitionsNonForks(t *testing.T) {
	t.Parallel()

	cfg := Config{
		FeaturedNames: NewFeaturedSet("f1", "f2", "missing"),
	}
	var repos []Repository
	for i := 0; i < 40; i++ {
		r := Repository{
			Name:      "repo" + string(rune('a'+i%26)) + string(rune('a'+i/26)),
			UpdatedAt: day(1 + i%7),
			Fork:      i%5 == 0,
		}
		if i == 3 {
			r.Name = "F1"
		}
		if i == 11 {
			r.Name = "f2"
		}
		repos = append(repos, r)
	}

	got := Classify(cfg, repos)

	wantNonForks := make(map[string]bool)
	for _, r := range repos {
		if !r.Fork {
			wantNonForks[r.Name] = true
		}
	}

	seen := make(map[string]bool)
	for _, r := range append(append([]Repository{}, got.Featured...), got.Other...) {
		require.False(t, seen[r.Name], "duplicate %s", r.Name)
		seen[r.Name] = true
		assert.False(t, r.Fork)
	}
	assert.Equal(t, wantNonForks, seen)
	assert.Equal(t, []string{"f2", "F1"}, names(got.Featured))

	for i := 1; i < len(got.Other); i++ {
		assert.False(t, got.Other[i].UpdatedAt.After(got.Other[i-1].UpdatedAt))
	}
}

func TestBuildModel(t *testing.T) {
	t.Parallel()

	var repos []Repository
	for i := 1; i <= 10; i++ {
		repos = append(repos, Repository{
			Name:      "r" + string(rune('0'+i%10)),
			UpdatedAt: day(i),
		})
	}
	repos = append(repos, Repository{Name: "Featured", UpdatedAt: day(28)})

	tests := []struct {
		name       string
		limit      int
		wantRecent int
	}{
		{name: "default limit", limit: DefaultRecentLimit, wantRecent: 6},
		{name: "limit above count", limit: 50, wantRecent: 10},
		{name: "zero limit", limit: 0, wantRecent: 0},
		{name: "negative limit", limit: -1, wantRecent: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				FeaturedNames: NewFeaturedSet("featured"),
				RecentLimit:   tt.limit,
			}
			got := BuildModel(cfg, repos)

			assert.Equal(t, []string{"Featured"}, names(got.Featured))
			assert.Len(t, got.All, 10)
			require.Len(t, got.Recent, tt.wantRecent)
			assert.Equal(t, got.All[:tt.wantRecent], got.Recent)
		})
	}
}

func TestConfigLanguageColor(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Equal(t, "#00add8", cfg.LanguageColor("Go"))
	assert.Equal(t, DefaultFallbackColor, cfg.LanguageColor("Brainfuck"))
	assert.Equal(t, DefaultFallbackColor, cfg.LanguageColor(""))

	cfg.FallbackColor = ""
	assert.Equal(t, DefaultFallbackColor, cfg.LanguageColor("Zig"))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(Loading{}))
	assert.True(t, IsTerminal(Rendered{}))
	assert.True(t, IsTerminal(Errored{Message: "x"}))
}
