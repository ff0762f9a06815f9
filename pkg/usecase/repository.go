package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ghorg/pkg/domain/model"
	"github.com/secmon-lab/ghorg/pkg/domain/types"
	"github.com/secmon-lab/ghorg/pkg/utils/logging"
)

// ListRepositories returns all repositories of the organization sorted by name.
func (x *UseCase) ListRepositories(ctx context.Context) ([]model.RepositoryListing, error) {
	gh, err := x.github()
	if err != nil {
		return nil, err
	}

	repos, err := gh.ListRepositories(ctx)
	if err != nil {
		return nil, err
	}

	sorted := make([]model.RepositoryListing, len(repos))
	copy(sorted, repos)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	logging.From(ctx).Info("Listed repositories",
		slog.String("org", gh.Organization()),
		slog.Int("count", len(sorted)),
	)

	return sorted, nil
}

// ListRepositoryActivity reads the last commit date of branch for every
// repository of the organization. Branch lookups run one after another.
// Repositories without the branch are skipped; any other failure aborts.
func (x *UseCase) ListRepositoryActivity(ctx context.Context, branch string) ([]*model.RepositoryActivity, error) {
	if branch == "" {
		return nil, goerr.Wrap(types.ErrInvalidArgument, "branch is required for repository activity")
	}

	repos, err := x.ListRepositories(ctx)
	if err != nil {
		return nil, err
	}
	gh, err := x.github()
	if err != nil {
		return nil, err
	}

	logger := logging.From(ctx)
	var activities []*model.RepositoryActivity
	for i, repo := range repos {
		logger.Debug("Fetching branch info",
			slog.Int("progress", i+1),
			slog.Int("total", len(repos)),
			slog.String("repo", repo.Name),
			slog.String("branch", branch),
		)

		info, err := gh.FetchBranchInfo(ctx, repo.Name, branch)
		if err != nil {
			var terr *types.TransportError
			if errors.As(err, &terr) && terr.StatusCode == http.StatusNotFound {
				logger.Debug("Skipping repository without branch",
					slog.String("repo", repo.Name),
					slog.String("branch", branch),
				)
				continue
			}
			return nil, goerr.Wrap(err, "failed to fetch repository activity",
				goerr.V("repo", repo.Name),
				goerr.V("branch", branch),
			)
		}

		lastCommit, err := info.LastCommitDate()
		if err != nil {
			return nil, goerr.Wrap(err, "invalid branch info", goerr.V("repo", repo.Name))
		}

		activities = append(activities, &model.RepositoryActivity{
			Name:           repo.Name,
			URL:            repo.HTMLURL,
			Branch:         branch,
			LastCommitDate: lastCommit,
		})
	}

	logger.Info("Collected repository activity",
		slog.String("org", gh.Organization()),
		slog.String("branch", branch),
		slog.Int("repos", len(repos)),
		slog.Int("with_branch", len(activities)),
	)

	return activities, nil
}

// FetchBranchInfo returns the head commit information of repo's branch.
func (x *UseCase) FetchBranchInfo(ctx context.Context, repo, branch string) (*model.BranchInfo, error) {
	gh, err := x.github()
	if err != nil {
		return nil, err
	}
	return gh.FetchBranchInfo(ctx, repo, branch)
}

// LatestVersion returns the latest release tag of repo, or ErrNotFound when
// none could be read.
func (x *UseCase) LatestVersion(ctx context.Context, repo string) (string, error) {
	gh, err := x.github()
	if err != nil {
		return "", err
	}

	version, ok := gh.FetchLatestVersion(ctx, repo)
	if !ok {
		return "", goerr.Wrap(types.ErrNotFound, "latest release is not available",
			goerr.V("org", gh.Organization()),
			goerr.V("repo", repo),
		)
	}
	return version, nil
}
