// Package render turns load states into html fragments for display slots.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/m-zajac/portfolio/internal/app"
	"github.com/sirupsen/logrus"
)

// Texts used in place of missing data.
const (
	NoDescription       = "No description available"
	UnknownLanguage     = "Unknown"
	FeaturedPlaceholder = "Featured repositories will appear here when available."
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// cardData holds template data for a single repository card.
type cardData struct {
	Repo          app.Repository
	Featured      bool
	Visibility    string
	Description   string
	Size          string
	Language      string
	LanguageColor string
	Updated       string
}

// Renderer renders repository cards.
type Renderer struct {
	cfg       app.Config
	templates *template.Template
	l         logrus.FieldLogger
}

// NewRenderer creates new Renderer instance.
// Language colors and the fallback color are taken from cfg.
func NewRenderer(cfg app.Config, l logrus.FieldLogger) *Renderer {
	return &Renderer{
		cfg:       cfg,
		templates: templates,
		l:         l,
	}
}

// Card renders single repository card.
func (r *Renderer) Card(repo app.Repository, featured bool) (template.HTML, error) {
	data := cardData{
		Repo:          repo,
		Featured:      featured,
		Visibility:    "Public",
		Description:   repo.Description,
		Language:      repo.Language,
		LanguageColor: r.cfg.LanguageColor(repo.Language),
		Updated:       FormatDate(repo.UpdatedAt),
	}
	if repo.Private {
		data.Visibility = "Private"
	}
	if data.Description == "" {
		data.Description = NoDescription
	}
	if data.Language == "" {
		data.Language = UnknownLanguage
	}
	if repo.SizeKB > 0 {
		data.Size = FormatSize(repo.SizeKB)
	}

	return r.execute("card", data)
}

// Cards renders cards for all repositories, in order, as one fragment.
func (r *Renderer) Cards(repos []app.Repository, featured bool) (template.HTML, error) {
	var buf bytes.Buffer
	for _, repo := range repos {
		card, err := r.Card(repo, featured)
		if err != nil {
			return "", fmt.Errorf("rendering card %s: %w", repo.Name, err)
		}
		buf.WriteString(string(card))
	}

	return template.HTML(buf.String()), nil
}

// Fragments renders html fragment for every display slot.
// Returns no fragments for non terminal states.
func (r *Renderer) Fragments(state app.State) (map[app.Slot]template.HTML, error) {
	switch s := state.(type) {
	case app.Rendered:
		return r.renderedFragments(s.Model)
	case app.Errored:
		msg, err := r.execute("error", s.Message)
		if err != nil {
			return nil, err
		}
		fragments := make(map[app.Slot]template.HTML, len(app.Slots))
		for _, slot := range app.Slots {
			fragments[slot] = msg
		}
		return fragments, nil
	default:
		return map[app.Slot]template.HTML{}, nil
	}
}

func (r *Renderer) renderedFragments(m app.RenderModel) (map[app.Slot]template.HTML, error) {
	var featured template.HTML
	var err error
	if len(m.Featured) == 0 {
		featured, err = r.execute("placeholder", FeaturedPlaceholder)
	} else {
		featured, err = r.Cards(m.Featured, true)
	}
	if err != nil {
		return nil, fmt.Errorf("rendering featured slot: %w", err)
	}

	recent, err := r.Cards(m.Recent, false)
	if err != nil {
		return nil, fmt.Errorf("rendering recent slot: %w", err)
	}
	all, err := r.Cards(m.All, false)
	if err != nil {
		return nil, fmt.Errorf("rendering all slot: %w", err)
	}

	return map[app.Slot]template.HTML{
		app.SlotFeatured: featured,
		app.SlotRecent:   recent,
		app.SlotAll:      all,
	}, nil
}

func (r *Renderer) execute(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	return template.HTML(buf.String()), nil
}
