package interfaces

import (
	"context"

	"github.com/secmon-lab/ghorg/pkg/domain/model"
)

// GitHub is the set of GitHub REST API operations for one organization.
type GitHub interface {
	Organization() string
	CreateIssue(ctx context.Context, request *model.CreateIssueRequest) (*model.CreateIssueResponse, error)
	ListRepositories(ctx context.Context) ([]model.RepositoryListing, error)
	FetchBranchInfo(ctx context.Context, repo, branch string) (*model.BranchInfo, error)
	// FetchLatestVersion reports ok=false instead of an error when no release can be read.
	FetchLatestVersion(ctx context.Context, repo string) (version string, ok bool)
}
