package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-zajac/portfolio/internal/app"
	"github.com/m-zajac/portfolio/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ReposByUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		status   int
		body     string
		want     []app.Repository
		wantErr  bool
	}{
		{
			name:     "empty username",
			username: "",
			want:     nil,
			wantErr:  true,
		},
		{
			name:     "status ok, body ok",
			username: "octocat",
			status:   http.StatusOK,
			body: `[
				{
					"id": 1296269,
					"name": "Hello-World",
					"full_name": "octocat/Hello-World",
					"html_url": "https://github.com/octocat/Hello-World",
					"description": "This your first repo!",
					"fork": false,
					"private": false,
					"language": "Go",
					"stargazers_count": 80,
					"forks_count": 9,
					"size": 108,
					"updated_at": "2011-01-26T19:14:43Z"
				},
				{
					"id": 1300192,
					"name": "Spoon-Knife",
					"html_url": "https://github.com/octocat/Spoon-Knife",
					"description": null,
					"fork": true,
					"language": null,
					"stargazers_count": 0,
					"forks_count": 0,
					"size": 0,
					"updated_at": "2011-01-27T19:14:43Z"
				}
			]`,
			want: []app.Repository{
				{
					Name:        "Hello-World",
					Description: "This your first repo!",
					Language:    "Go",
					Stars:       80,
					Forks:       9,
					SizeKB:      108,
					UpdatedAt:   time.Date(2011, time.January, 26, 19, 14, 43, 0, time.UTC),
					URL:         "https://github.com/octocat/Hello-World",
				},
				{
					Name:      "Spoon-Knife",
					Fork:      true,
					UpdatedAt: time.Date(2011, time.January, 27, 19, 14, 43, 0, time.UTC),
					URL:       "https://github.com/octocat/Spoon-Knife",
				},
			},
			wantErr: false,
		},
		{
			name:     "status accepted, body ok",
			username: "octocat",
			status:   http.StatusAccepted,
			body: `[
				{
					"name": "Hello-World",
					"html_url": "https://github.com/octocat/Hello-World",
					"stargazers_count": 1,
					"updated_at": "2011-01-26T19:14:43Z"
				}
			]`,
			want: []app.Repository{
				{
					Name:      "Hello-World",
					Stars:     1,
					UpdatedAt: time.Date(2011, time.January, 26, 19, 14, 43, 0, time.UTC),
					URL:       "https://github.com/octocat/Hello-World",
				},
			},
			wantErr: false,
		},
		{
			name:     "status accepted, empty body",
			username: "octocat",
			status:   http.StatusAccepted,
			body:     "",
			want:     []app.Repository{},
			wantErr:  false,
		},
		{
			name:     "status accepted, malformed body",
			username: "octocat",
			status:   http.StatusAccepted,
			body:     `[{"name": `,
			want:     nil,
			wantErr:  true,
		},
		{
			name:     "status not found",
			username: "octocat",
			status:   http.StatusNotFound,
			body:     `{"message": "Not Found"}`,
			want:     nil,
			wantErr:  true,
		},
		{
			name:     "status internal error",
			username: "octocat",
			status:   http.StatusInternalServerError,
			body:     `{"message": "Internal Server Error"}`,
			want:     nil,
			wantErr:  true,
		},
		{
			name:     "status ok, malformed body",
			username: "octocat",
			status:   http.StatusOK,
			body:     `[{"name": "Hello-World"`,
			want:     nil,
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requests := make(chan *http.Request, 1)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests <- r
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c, err := NewClient(server.Client(), server.URL)
			require.NoError(t, err)

			got, err := c.ReposByUser(context.Background(), tt.username)
			require.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)

			if tt.username == "" {
				assert.True(t, app.IsInvalidRequestError(err))
				assert.Empty(t, requests)
				return
			}

			require.Len(t, requests, 1)
			req := <-requests
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "/users/"+tt.username+"/repos", req.URL.Path)
			assert.Equal(t, "updated", req.URL.Query().Get("sort"))
			assert.Equal(t, "100", req.URL.Query().Get("per_page"))
			assert.Empty(t, req.Header.Get("Authorization"))
			checkAPIHeaders(req, t)
		})
	}
}

func TestClient_ReposByUserTransportError(t *testing.T) {
	t.Parallel()

	rt := &mock.RoundTripper{
		Err: context.DeadlineExceeded,
	}
	c, err := NewClient(&http.Client{Transport: rt}, "https://fake")
	require.NoError(t, err)

	got, err := c.ReposByUser(context.Background(), "octocat")
	require.Error(t, err)
	assert.Nil(t, got)
	require.Len(t, rt.Requests, 1)
	assert.Equal(t, "fake", rt.Requests[0].URL.Host)
}

func TestNewClientInvalidAddress(t *testing.T) {
	_, err := NewClient(nil, "://bad")
	assert.Error(t, err)
}

func checkAPIHeaders(r *http.Request, t *testing.T) {
	assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
	assert.NotEmpty(t, r.Header.Get("User-Agent"))
}
