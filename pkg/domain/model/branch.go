package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ghorg/pkg/domain/types"
)

// BranchInfo is the subset of GET /repos/{org}/{repo}/branches/{branch}
// used by this client. Prefer it over the repository's pushed_at, which
// changes for a push to any branch.
type BranchInfo struct {
	Name   string       `json:"name" yaml:"name"`
	Commit branchCommit `json:"commit" yaml:"commit"`
}

type branchCommit struct {
	SHA    string       `json:"sha" yaml:"sha"`
	Commit commitDetail `json:"commit" yaml:"commit"`
}

type commitDetail struct {
	Author commitAuthor `json:"author" yaml:"author"`
}

type commitAuthor struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Date string `json:"date" yaml:"date"`
}

// CommitSHA returns the SHA of the branch head.
func (x BranchInfo) CommitSHA() string {
	return x.Commit.SHA
}

// LastCommitDate parses commit.commit.author.date of the branch head.
func (x BranchInfo) LastCommitDate() (time.Time, error) {
	raw := x.Commit.Commit.Author.Date
	if raw == "" {
		return time.Time{}, goerr.Wrap(types.ErrNotFound, "branch has no commit date", goerr.V("branch", x.Name))
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "failed to parse commit date",
			goerr.V("branch", x.Name),
			goerr.V("date", raw),
		)
	}
	return t.UTC(), nil
}
