package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ghorg/pkg/cli/config"
	"github.com/secmon-lab/ghorg/pkg/domain/types"
	"github.com/secmon-lab/ghorg/pkg/infra"
	"github.com/secmon-lab/ghorg/pkg/usecase"
	"github.com/secmon-lab/ghorg/pkg/utils/logging"
)

// resolveTarget fills org and, if needRepo, repo from the git remote of dir
// when they are not given.
func resolveTarget(ctx context.Context, dir, org, repo string, needRepo bool) (string, string, error) {
	if org != "" && (repo != "" || !needRepo) {
		return org, repo, nil
	}

	owner, name, err := detectRepository(dir)
	if err != nil {
		return "", "", goerr.Wrap(types.ErrInvalidArgument,
			"organization or repository is not specified and cannot be detected from git",
			goerr.V("dir", dir),
			goerr.V("error", err.Error()),
		)
	}

	if org == "" {
		org = owner
	}
	if repo == "" && needRepo {
		repo = name
	}

	logging.From(ctx).Debug("Detected target from git remote",
		slog.String("dir", dir),
		slog.String("org", org),
		slog.String("repo", repo),
	)
	return org, repo, nil
}

// newUseCase resolves the target and wires a GitHub client into a UseCase.
func newUseCase(ctx context.Context, env *runEnv, ghCfg *config.GitHub, repo string, needRepo bool) (*usecase.UseCase, string, error) {
	org, repo, err := resolveTarget(ctx, env.gitDir, ghCfg.Organization(), repo, needRepo)
	if err != nil {
		return nil, "", err
	}

	client, err := ghCfg.New(org)
	if err != nil {
		return nil, "", err
	}

	logging.From(ctx).Debug("GitHub client configured", slog.Any("github", ghCfg))
	return usecase.New(infra.New(infra.WithGitHub(client))), repo, nil
}
