package githubapi

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ghorg/pkg/domain/types"
)

// endpoint binds one logical operation to an HTTP method and a path template
// relative to the API base URL. Placeholders are written as {name}.
type endpoint struct {
	name   string
	method string
	path   string
}

var (
	createIssueEndpoint      = endpoint{name: "createIssue", method: http.MethodPost, path: "repos/{org}/{repo}/issues"}
	listReposEndpoint        = endpoint{name: "listRepos", method: http.MethodGet, path: "orgs/{org}/repos"}
	getBranchInfoEndpoint    = endpoint{name: "getBranchInfo", method: http.MethodGet, path: "repos/{org}/{repo}/branches/{branch}"}
	getLatestReleaseEndpoint = endpoint{name: "getLatestRelease", method: http.MethodGet, path: "repos/{org}/{repo}/releases/latest"}
)

// build interpolates escaped path parameters and appends opts, a struct with
// `url` tags such as github.ListOptions, as the query string.
func (x endpoint) build(params map[string]string, opts any) (string, error) {
	path := x.path
	for k, v := range params {
		// PathEscape keeps dots, and dot segments are resolved against the base URL.
		if v == "." || v == ".." {
			return "", goerr.Wrap(types.ErrInvalidArgument, "path parameter must not be a dot segment",
				goerr.V("endpoint", x.name),
				goerr.V("param", k),
				goerr.V("value", v),
			)
		}
		path = strings.ReplaceAll(path, "{"+k+"}", url.PathEscape(v))
	}
	if strings.ContainsAny(path, "{}") {
		return "", goerr.Wrap(types.ErrInvalidArgument, "unresolved path parameter",
			goerr.V("endpoint", x.name),
			goerr.V("path", path),
		)
	}

	if opts == nil {
		return path, nil
	}

	values, err := query.Values(opts)
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode query parameters", goerr.V("endpoint", x.name))
	}
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return path, nil
}
