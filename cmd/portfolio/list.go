package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/m-zajac/portfolio/internal/app"
	"github.com/m-zajac/portfolio/internal/render"
	"github.com/spf13/cobra"
)

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	listLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	listNameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
)

type listedRepository struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Size        string `json:"size,omitempty"`
	Updated     string `json:"updated"`
	Private     bool   `json:"private"`
	URL         string `json:"url"`
}

type listResponse struct {
	Featured []listedRepository `json:"featured"`
	Recent   []listedRepository `json:"recent"`
	All      []listedRepository `json:"all"`
}

func newListResponse(m app.RenderModel) listResponse {
	return listResponse{
		Featured: newListedRepositories(m.Featured),
		Recent:   newListedRepositories(m.Recent),
		All:      newListedRepositories(m.All),
	}
}

func newListedRepositories(repos []app.Repository) []listedRepository {
	ls := make([]listedRepository, 0, len(repos))
	for _, r := range repos {
		lr := listedRepository{
			Name:        r.Name,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.Stars,
			Forks:       r.Forks,
			Updated:     render.FormatDate(r.UpdatedAt),
			Private:     r.Private,
			URL:         r.URL,
		}
		if r.SizeKB > 0 {
			lr.Size = render.FormatSize(r.SizeKB)
		}
		ls = append(ls, lr)
	}

	return ls
}

func newListCmd(e *env) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Prints classified repositories",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := e.newLoader()
			if err != nil {
				return err
			}
			model, err := loader.Fetch(cmd.Context())
			if err != nil {
				if app.IsInvalidRequestError(err) {
					return fmt.Errorf("%w (set GITHUBUSERNAME or --user)", err)
				}
				if app.IsLoadFailureError(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), app.LoadFailureMessage)
				}
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(newListResponse(model))
			}
			writeModel(cmd.OutOrStdout(), model, e.conf.AppConfig())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}

func writeModel(w io.Writer, m app.RenderModel, cfg app.Config) {
	sections := []struct {
		title string
		repos []app.Repository
	}{
		{title: "Featured", repos: m.Featured},
		{title: "Recent", repos: m.Recent},
		{title: "All", repos: m.All},
	}

	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, listHeaderStyle.Render(fmt.Sprintf("%s (%d)", s.title, len(s.repos))))
		if len(s.repos) == 0 {
			fmt.Fprintln(w, listLabelStyle.Render("  none"))
			continue
		}
		for _, r := range s.repos {
			language := r.Language
			if language == "" {
				language = render.UnknownLanguage
			}
			langStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.LanguageColor(r.Language)))

			details := []string{
				langStyle.Render(language),
				fmt.Sprintf("★ %d", r.Stars),
				fmt.Sprintf("forks %d", r.Forks),
			}
			if r.SizeKB > 0 {
				details = append(details, render.FormatSize(r.SizeKB))
			}
			details = append(details, "updated "+render.FormatDate(r.UpdatedAt))

			fmt.Fprintf(w, "  %s  %s\n", listNameStyle.Render(r.Name), listLabelStyle.Render(strings.Join(details, " · ")))
		}
	}
}
