package cli

import (
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
)

// detectRepository reads owner and repository name from the origin remote of
// the git repository containing dir.
func detectRepository(dir string) (owner, repo string, err error) {
	r, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := r.Remote("origin")
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to get remote origin", goerr.V("dir", dir))
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", "", goerr.New("no remote URL found", goerr.V("dir", dir))
	}

	owner, repo, ok := parseRemoteURL(urls[0])
	if !ok {
		return "", "", goerr.New("failed to parse owner/repo from git remote URL", goerr.V("url", urls[0]))
	}
	return owner, repo, nil
}

// parseRemoteURL accepts scp-like (git@host:owner/repo.git) and URL style
// (https://host/owner/repo.git, ssh://git@host/owner/repo) remotes of any host.
func parseRemoteURL(raw string) (owner, repo string, ok bool) {
	var path string
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Host != "" {
		path = u.Path
	} else if at := strings.Index(raw, ":"); at > 0 && !strings.Contains(raw[:at], "/") {
		path = raw[at+1:]
	} else {
		return "", "", false
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) < 2 {
		return "", "", false
	}

	// GitHub Enterprise remotes may carry a path prefix before owner/repo.
	owner, repo = parts[len(parts)-2], parts[len(parts)-1]
	if owner == "" || repo == "" {
		return "", "", false
	}
	return owner, repo, true
}
