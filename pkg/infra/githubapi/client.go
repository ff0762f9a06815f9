package githubapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ghorg/pkg/domain/interfaces"
	"github.com/secmon-lab/ghorg/pkg/domain/model"
	"github.com/secmon-lab/ghorg/pkg/domain/types"
	"github.com/secmon-lab/ghorg/pkg/utils/errutil"
	"github.com/secmon-lab/ghorg/pkg/utils/logging"
)

const reposPerPage = 100

// Client calls the GitHub REST API for a single organization. It has no
// mutable state after New returns and is safe for concurrent use.
type Client struct {
	org string
	gh  *github.Client

	token      types.AuthToken
	httpClient *http.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithAuthToken sends `Authorization: token <token>` on every request.
// Without a token requests are anonymous and get a lower rate limit.
func WithAuthToken(token types.AuthToken) Option {
	return func(x *Client) {
		x.token = token
	}
}

// WithHTTPClient sets the underlying HTTP client. Timeouts are configured there.
func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

// New creates a client for org on the API at baseURL, e.g. https://api.github.com
// or https://ghe.example.com/api/v3.
func New(baseURL, org string, options ...Option) (*Client, error) {
	if org == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "organization is empty")
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL",
			goerr.V("url", baseURL),
			goerr.V("error", err.Error()),
		)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub API URL must be absolute", goerr.V("url", baseURL))
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	client := &Client{
		org:        org,
		httpClient: &http.Client{},
	}
	for _, opt := range options {
		opt(client)
	}

	httpClient := *client.httpClient
	tr := httpClient.Transport
	if tr == nil {
		tr = http.DefaultTransport
	}
	httpClient.Transport = &headerTransport{base: tr, token: client.token}

	client.gh = github.NewClient(&httpClient)
	client.gh.BaseURL = base
	client.gh.UserAgent = "ghorg"

	return client, nil
}

// NewForOrganization creates a client for org on api.github.com. An empty
// token makes anonymous requests.
func NewForOrganization(org string, token types.AuthToken) (*Client, error) {
	return New(types.DefaultGitHubAPIURL, org, WithAuthToken(token))
}

func (x *Client) Organization() string {
	return x.org
}

// call performs exactly one request. Any failure, including a non-2xx status
// and an undecodable body, is returned as *types.TransportError.
func (x *Client) call(ctx context.Context, ep endpoint, params map[string]string, opts, body, out any) error {
	if params == nil {
		params = map[string]string{}
	}
	params["org"] = x.org

	path, err := ep.build(params, opts)
	if err != nil {
		return err
	}

	req, err := x.gh.NewRequest(ep.method, path, body)
	if err != nil {
		return goerr.Wrap(err, "failed to build GitHub API request",
			goerr.V("endpoint", ep.name),
			goerr.V("path", path),
		)
	}

	resp, err := x.gh.Do(ctx, req, out)
	var status int
	if resp != nil {
		status = resp.StatusCode
	}

	logging.From(ctx).Debug("GitHub API response",
		slog.String("endpoint", ep.name),
		slog.String("method", ep.method),
		slog.String("path", path),
		slog.Int("status", status),
	)

	if err != nil {
		return goerr.Wrap(types.NewTransportError(ep.method, path, status, err), "GitHub API call failed",
			goerr.V("endpoint", ep.name),
			goerr.V("status", status),
		)
	}

	return nil
}

// CreateIssue creates an issue in request.Repo. A nil request or an empty
// Repo or Title is rejected with types.ErrInvalidArgument before any request
// is sent. Title and body are truncated to GitHub's limits.
func (x *Client) CreateIssue(ctx context.Context, request *model.CreateIssueRequest) (*model.CreateIssueResponse, error) {
	if request == nil {
		return nil, goerr.Wrap(types.ErrInvalidArgument, "create issue request is nil")
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}

	var resp model.CreateIssueResponse
	params := map[string]string{"repo": request.Repo}
	if err := x.call(ctx, createIssueEndpoint, params, nil, request, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to create issue",
			goerr.V("org", x.org),
			goerr.V("repo", request.Repo),
		)
	}

	return &resp, nil
}

// ListRepositories returns every repository of the organization. Pages of 100
// are requested until an empty page comes back; there is no page limit, so an
// API that never returns an empty page makes this loop forever. Repositories
// repeated across pages are returned once, in first-seen order. A failed page
// fails the whole listing.
func (x *Client) ListRepositories(ctx context.Context) ([]model.RepositoryListing, error) {
	seen := make(map[model.RepositoryListing]struct{})
	var allRepos []model.RepositoryListing

	for page := 1; ; page++ {
		repos, err := x.listRepos(ctx, page)
		if err != nil {
			return nil, err
		}
		if len(repos) == 0 {
			break
		}

		for _, repo := range repos {
			if _, ok := seen[repo]; ok {
				continue
			}
			seen[repo] = struct{}{}
			allRepos = append(allRepos, repo)
		}
	}

	logging.From(ctx).Debug("Listed organization repositories",
		slog.String("org", x.org),
		slog.Int("count", len(allRepos)),
	)

	return allRepos, nil
}

func (x *Client) listRepos(ctx context.Context, page int) ([]model.RepositoryListing, error) {
	opts := &github.ListOptions{Page: page, PerPage: reposPerPage}

	var repos []model.RepositoryListing
	if err := x.call(ctx, listReposEndpoint, nil, opts, nil, &repos); err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories",
			goerr.V("org", x.org),
			goerr.V("page", page),
		)
	}
	return repos, nil
}

// FetchBranchInfo returns the head commit information of a branch. Use it
// rather than the repository's pushed_at, which moves on a push to any branch.
func (x *Client) FetchBranchInfo(ctx context.Context, repo, branch string) (*model.BranchInfo, error) {
	if repo == "" {
		return nil, goerr.Wrap(types.ErrInvalidArgument, "repo is empty")
	}
	if branch == "" {
		return nil, goerr.Wrap(types.ErrInvalidArgument, "branch is empty", goerr.V("repo", repo))
	}

	var info model.BranchInfo
	params := map[string]string{"repo": repo, "branch": branch}
	if err := x.call(ctx, getBranchInfoEndpoint, params, nil, nil, &info); err != nil {
		return nil, goerr.Wrap(err, "failed to get branch info",
			goerr.V("org", x.org),
			goerr.V("repo", repo),
			goerr.V("branch", branch),
		)
	}

	return &info, nil
}

// FetchLatestVersion returns the tag name of the latest release of repo. It
// is best effort: any failure, including a repository without releases,
// yields ("", false) and is only logged.
func (x *Client) FetchLatestVersion(ctx context.Context, repo string) (string, bool) {
	logger := logging.From(ctx)
	if repo == "" {
		logger.Warn("Repository name is empty, skip fetching latest release", slog.String("org", x.org))
		return "", false
	}

	var release model.LatestRelease
	params := map[string]string{"repo": repo}
	if err := x.call(ctx, getLatestReleaseEndpoint, params, nil, nil, &release); err != nil {
		var terr *types.TransportError
		if errors.As(err, &terr) && terr.StatusCode == http.StatusNotFound {
			logger.Warn("No release found",
				slog.String("org", x.org),
				slog.String("repo", repo),
			)
		} else {
			errutil.HandleError(ctx, "No data received from server for latest release", err)
		}
		return "", false
	}

	if release.TagName == "" {
		logger.Warn("Latest release has no tag name",
			slog.String("org", x.org),
			slog.String("repo", repo),
		)
		return "", false
	}

	return release.TagName, true
}
