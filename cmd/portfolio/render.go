package main

import (
	"fmt"
	"io"
	"os"

	"github.com/m-zajac/portfolio/internal/page"
	"github.com/m-zajac/portfolio/internal/render"
	"github.com/spf13/cobra"
)

var _ render.Document = &page.Document{}

func newRenderCmd(e *env) *cobra.Command {
	var (
		templatePath string
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fills display slots of a host html page with repositories",
		Long: `Loads repositories and writes them into the host page elements
#featuredProjects, #recentProjects and #allProjects, then hides #loading.
When repositories can't be loaded, every slot gets the same error message
and the page is still written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, templatePath)
			if err != nil {
				return err
			}
			defer in.Close()

			doc, err := page.Parse(in)
			if err != nil {
				return fmt.Errorf("reading host page %s: %w", templatePath, err)
			}

			loader, err := e.newLoader()
			if err != nil {
				return err
			}
			e.l.Debugf("loader state: %T", loader.State())
			state := loader.Load(cmd.Context())

			renderer := render.NewRenderer(e.conf.AppConfig(), e.l.WithField("component", "renderer"))
			if err := render.Apply(doc, renderer, state); err != nil {
				return fmt.Errorf("rendering page: %w", err)
			}
			for _, href := range doc.SmoothAnchors() {
				e.l.WithField("component", "page").Warnf("in-page link %s has no target", href)
			}

			return writeOutput(cmd, outPath, doc)
		},
	}
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", `Host html page, "-" reads stdin (required)`)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file, stdout when empty")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening host page: %w", err)
	}

	return f, nil
}

func writeOutput(cmd *cobra.Command, path string, doc *page.Document) error {
	if path == "" {
		return doc.Render(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := doc.Render(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
