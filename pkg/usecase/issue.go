package usecase

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/ghorg/pkg/domain/model"
	"github.com/secmon-lab/ghorg/pkg/utils/logging"
)

func (x *UseCase) CreateIssue(ctx context.Context, request *model.CreateIssueRequest) (*model.CreateIssueResponse, error) {
	gh, err := x.github()
	if err != nil {
		return nil, err
	}

	resp, err := gh.CreateIssue(ctx, request)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("Created issue",
		slog.String("org", gh.Organization()),
		slog.String("repo", request.Repo),
		slog.String("url", resp.HTMLURL),
	)
	return resp, nil
}
