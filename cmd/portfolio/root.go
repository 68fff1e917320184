package main

import (
	"fmt"
	"net/http"

	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/portfolio/internal/adapter/github"
	"github.com/m-zajac/portfolio/internal/app"
	"github.com/m-zajac/portfolio/internal/limiter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// env holds state shared by all commands, set up before any of them runs.
type env struct {
	conf Config
	l    *logrus.Logger

	// newFetcher is replaced in tests.
	newFetcher func(Config) (app.RepositoryFetcher, error)
}

func newEnv() *env {
	e := &env{
		l:          logrus.New(),
		newFetcher: newGithubFetcher,
	}
	e.l.Level = logrus.InfoLevel

	return e
}

func newRootCmd(e *env) *cobra.Command {
	var (
		verbose  bool
		username string
	)

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Renders github repositories of a user into a portfolio page",
		Long: `portfolio fetches public repositories of a github user and renders them
into three sections of a host html page: featured, recently updated and all.
Forks are skipped. Configuration is read from environment variables and can be
overridden with flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				e.l.Level = logrus.DebugLevel
			}
			if err := envconfig.Process("", &e.conf); err != nil {
				return fmt.Errorf("couldn't parse config: %w", err)
			}
			if username != "" {
				e.conf.GithubUsername = username
			}
			return nil
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&username, "user", "u", "", "Github user name (overrides GITHUBUSERNAME)")

	cmd.AddCommand(
		newRenderCmd(e),
		newListCmd(e),
	)

	return cmd
}

// newLoader wires github client and load sequence.
func (e *env) newLoader() (*app.Loader, error) {
	fetcher, err := e.newFetcher(e.conf)
	if err != nil {
		return nil, err
	}

	return app.NewLoader(
		fetcher,
		e.conf.AppConfig(),
		e.conf.LoadTimeout,
		e.l.WithField("component", "loader"),
	), nil
}

func newGithubFetcher(conf Config) (app.RepositoryFetcher, error) {
	httpClient := &http.Client{
		Timeout:   conf.GithubTimeout,
		Transport: limiter.NewTransport(http.DefaultTransport, conf.GithubAPIRateLimit),
	}

	githubClient, err := github.NewClient(httpClient, conf.GithubAPIAddress)
	if err != nil {
		return nil, fmt.Errorf("couldn't create github client: %w", err)
	}

	return githubClient, nil
}
