package model

import (
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// RepositoryListing is one element of the organization repository listing
// (GET /orgs/{org}/repos). It is comparable, so listings collected from
// several pages can be deduplicated by value.
type RepositoryListing struct {
	HTMLURL string `json:"html_url" yaml:"html_url"`
	Name    string `json:"name" yaml:"name"`
}

// URL parses HTMLURL.
func (x RepositoryListing) URL() (*url.URL, error) {
	u, err := url.Parse(x.HTMLURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse repository html_url", goerr.V("html_url", x.HTMLURL))
	}
	return u, nil
}

// RepositoryActivity pairs a repository with the last commit date of one of its branches.
type RepositoryActivity struct {
	Name           string    `json:"name" yaml:"name"`
	URL            string    `json:"url" yaml:"url"`
	Branch         string    `json:"branch" yaml:"branch"`
	LastCommitDate time.Time `json:"last_commit_date" yaml:"last_commit_date"`
}
