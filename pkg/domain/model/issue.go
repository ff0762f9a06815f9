package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ghorg/pkg/domain/types"
)

const (
	// TitleMaxLength is the longest issue title GitHub accepts.
	TitleMaxLength = 125
	// BodyMaxLength is the longest issue body GitHub accepts.
	BodyMaxLength = 65536

	truncationSuffix = "..."
)

// CreateIssueRequest is the payload of POST /repos/{org}/{repo}/issues. Title
// and Body are truncated to GitHub's limits when the request is encoded; the
// caller's values are left untouched.
type CreateIssueRequest struct {
	Repo   string
	Title  string
	Body   string
	Labels []string
}

type createIssuePayload struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels,omitempty"`
}

func (x *CreateIssueRequest) Validate() error {
	if x.Repo == "" {
		return goerr.Wrap(types.ErrInvalidArgument, "repo is required for issue creation")
	}
	if x.Title == "" {
		return goerr.Wrap(types.ErrInvalidArgument, "title is required for issue creation", goerr.V("repo", x.Repo))
	}
	return nil
}

func (x *CreateIssueRequest) TruncatedTitle() string {
	return truncate(x.Title, TitleMaxLength, truncationSuffix)
}

func (x *CreateIssueRequest) TruncatedBody() string {
	return truncate(x.Body, BodyMaxLength, truncationSuffix)
}

func (x CreateIssueRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(createIssuePayload{
		Title:  x.TruncatedTitle(),
		Body:   x.TruncatedBody(),
		Labels: x.Labels,
	})
}

// CreateIssueResponse is the subset of the created issue returned by GitHub.
type CreateIssueResponse struct {
	HTMLURL string `json:"html_url" yaml:"html_url"`
}

// truncate cuts s to at most maxLen runes. A cut string ends with suffix and
// is exactly maxLen runes long.
func truncate(s string, maxLen int, suffix string) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	keep := maxLen - len([]rune(suffix))
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + suffix
}
