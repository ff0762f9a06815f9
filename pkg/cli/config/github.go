package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/secmon-lab/ghorg/pkg/domain/types"
	"github.com/secmon-lab/ghorg/pkg/infra/githubapi"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	apiURL  string
	org     string
	token   types.AuthToken `masq:"secret"`
	timeout time.Duration
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("GHORG_GITHUB_API_URL"),
			Value:       types.DefaultGitHubAPIURL,
		},
		&cli.StringFlag{
			Name:        "github-org",
			Usage:       "GitHub organization (detected from git remote if not specified)",
			Category:    "GitHub",
			Destination: &x.org,
			Sources:     cli.EnvVars("GHORG_GITHUB_ORG"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub access token (anonymous if not specified)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GHORG_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of each GitHub API request",
			Category:    "GitHub",
			Destination: &x.timeout,
			Sources:     cli.EnvVars("GHORG_GITHUB_TIMEOUT"),
			Value:       30 * time.Second,
		},
	}
}

// Organization returns the organization given by flag or environment variable.
func (x *GitHub) Organization() string {
	return x.org
}

// New creates a client. The --github-org value takes precedence over org,
// which callers pass as the organization detected from the git remote.
func (x *GitHub) New(org string) (*githubapi.Client, error) {
	if x.org != "" {
		org = x.org
	}

	options := []githubapi.Option{
		githubapi.WithHTTPClient(&http.Client{Timeout: x.timeout}),
	}
	if x.token != "" {
		options = append(options, githubapi.WithAuthToken(x.token))
	}

	return githubapi.New(x.apiURL, org, options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("APIURL", x.apiURL),
		slog.String("Org", x.org),
		slog.Int("Token.len", len(x.token)),
		slog.Duration("Timeout", x.timeout),
	)
}
