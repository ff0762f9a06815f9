package usecase_test

import (
	"context"

	"github.com/secmon-lab/ghorg/pkg/domain/interfaces"
	"github.com/secmon-lab/ghorg/pkg/domain/model"
)

type githubMock struct {
	org                    string
	createIssueFunc        func(ctx context.Context, request *model.CreateIssueRequest) (*model.CreateIssueResponse, error)
	listRepositoriesFunc   func(ctx context.Context) ([]model.RepositoryListing, error)
	fetchBranchInfoFunc    func(ctx context.Context, repo, branch string) (*model.BranchInfo, error)
	fetchLatestVersionFunc func(ctx context.Context, repo string) (string, bool)
}

var _ interfaces.GitHub = (*githubMock)(nil)

func (m *githubMock) Organization() string {
	return m.org
}

func (m *githubMock) CreateIssue(ctx context.Context, request *model.CreateIssueRequest) (*model.CreateIssueResponse, error) {
	return m.createIssueFunc(ctx, request)
}

func (m *githubMock) ListRepositories(ctx context.Context) ([]model.RepositoryListing, error) {
	return m.listRepositoriesFunc(ctx)
}

func (m *githubMock) FetchBranchInfo(ctx context.Context, repo, branch string) (*model.BranchInfo, error) {
	return m.fetchBranchInfoFunc(ctx, repo, branch)
}

func (m *githubMock) FetchLatestVersion(ctx context.Context, repo string) (string, bool) {
	return m.fetchLatestVersionFunc(ctx, repo)
}
