package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/m-zajac/portfolio/internal/app"
)

// reposPerPage is the maximum page size accepted by github rest api.
const reposPerPage = 100

// Client returns repositories of github users.
// This struct is an adapter for app.RepositoryFetcher.
//go:generate mockgen -destination ../../app/mock/fetcher.go -package mock github.com/m-zajac/portfolio/internal/app RepositoryFetcher
type Client struct {
	gh *github.Client
}

var _ app.RepositoryFetcher = &Client{}

// NewClient creates new github client.
// address is the rest api root, e.g. https://api.github.com.
func NewClient(httpClient *http.Client, address string) (*Client, error) {
	gh := github.NewClient(httpClient)

	if !strings.HasSuffix(address, "/") {
		address += "/"
	}
	u, err := url.Parse(address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}
	gh.BaseURL = u

	return &Client{
		gh: gh,
	}, nil
}

// ReposByUser returns first page of public repositories of given user, most recently updated first.
func (c *Client) ReposByUser(ctx context.Context, username string) ([]app.Repository, error) {
	if username == "" {
		return nil, app.InvalidRequestError("username cannot be empty")
	}

	opts := &github.RepositoryListByUserOptions{
		Sort: "updated",
		ListOptions: github.ListOptions{
			PerPage: reposPerPage,
		},
	}
	repos, resp, err := c.gh.Repositories.ListByUser(ctx, username, opts)

	// go-github reports 202 as an error, but the body still holds the listing.
	var accepted *github.AcceptedError
	if errors.As(err, &accepted) {
		repos = nil
		err = nil
		if len(accepted.Raw) > 0 {
			if jsonErr := json.Unmarshal(accepted.Raw, &repos); jsonErr != nil {
				return nil, fmt.Errorf("unmarshalling accepted response: %w", jsonErr)
			}
		}
	}
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("listing repositories, http status %d: %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("listing repositories: %w", err)
	}

	return toRepositories(repos), nil
}
