package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// RepositoryFetcher returns repositories owned by a github user.
type RepositoryFetcher interface {
	ReposByUser(ctx context.Context, username string) ([]Repository, error)
}

// Loader runs the load sequence: fetch, classify and sort.
type Loader struct {
	fetcher RepositoryFetcher
	cfg     Config
	timeout time.Duration
	l       logrus.FieldLogger

	state State
}

// NewLoader creates new Loader instance.
// Zero timeout disables the deadline.
func NewLoader(fetcher RepositoryFetcher, cfg Config, timeout time.Duration, l logrus.FieldLogger) *Loader {
	return &Loader{
		fetcher: fetcher,
		cfg:     cfg,
		timeout: timeout,
		l:       l,
		state:   Loading{},
	}
}

// State returns the current load state: Loading until Load finishes.
func (l *Loader) State() State {
	return l.state
}

// Fetch returns render model for configured user.
// All errors are returned as LoadFailureError.
func (l *Loader) Fetch(ctx context.Context) (RenderModel, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	repos, err := l.fetcher.ReposByUser(ctx, l.cfg.Username)
	if err != nil {
		return RenderModel{}, fmt.Errorf("%w: %w", LoadFailureError("fetching repositories of "+l.cfg.Username), err)
	}

	model := BuildModel(l.cfg, repos)
	l.l.Debugf(
		"loaded %d repositories: %d featured, %d other",
		len(repos),
		len(model.Featured),
		len(model.All),
	)

	return model, nil
}

// Load runs the load sequence and returns its terminal state.
// Failures are logged and reported to the user with a single generic message.
func (l *Loader) Load(ctx context.Context) State {
	model, err := l.Fetch(ctx)
	if err != nil {
		l.l.WithError(err).Error("Error loading repositories")
		l.state = Errored{Message: LoadFailureMessage}
		return l.state
	}

	l.state = Rendered{Model: model}
	return l.state
}
