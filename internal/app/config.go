package app

import "strings"

// DefaultRecentLimit is the number of repositories shown in the recent slot.
const DefaultRecentLimit = 6

// DefaultFallbackColor is used for unknown or unmapped languages.
const DefaultFallbackColor = "#586069"

// Config describes whose repositories are loaded and how they are classified.
type Config struct {
	Username       string
	FeaturedNames  map[string]bool
	RecentLimit    int
	LanguageColors map[string]string
	FallbackColor  string
}

// DefaultConfig returns configuration of the 940smiley portfolio page.
func DefaultConfig() Config {
	return Config{
		Username:       "940smiley",
		FeaturedNames:  NewFeaturedSet("recoveredtreasures", "giveawonderfulday", "trashy-items"),
		RecentLimit:    DefaultRecentLimit,
		LanguageColors: DefaultLanguageColors(),
		FallbackColor:  DefaultFallbackColor,
	}
}

// DefaultLanguageColors returns a fresh copy of the builtin language color table.
func DefaultLanguageColors() map[string]string {
	return map[string]string{
		"Python":     "#3776ab",
		"JavaScript": "#f7df1e",
		"TypeScript": "#3178c6",
		"HTML":       "#e34f26",
		"CSS":        "#1572b6",
		"Java":       "#ed8b00",
		"C++":        "#00599c",
		"C":          "#555555",
		"Go":         "#00add8",
		"Rust":       "#000000",
		"PHP":        "#777bb4",
		"Ruby":       "#cc342d",
		"Swift":      "#fa7343",
		"Kotlin":     "#7f52ff",
		"Dart":       "#0175c2",
		"Shell":      "#89e051",
	}
}

// NewFeaturedSet builds lowercase name set. Blank names are skipped.
func NewFeaturedSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		set[n] = true
	}

	return set
}

// IsFeatured checks repository name against featured set, ignoring case.
func (c Config) IsFeatured(name string) bool {
	return c.FeaturedNames[strings.ToLower(name)]
}

// LanguageColor returns display color for given language.
func (c Config) LanguageColor(language string) string {
	if color, ok := c.LanguageColors[language]; ok && language != "" {
		return color
	}
	if c.FallbackColor == "" {
		return DefaultFallbackColor
	}

	return c.FallbackColor
}
