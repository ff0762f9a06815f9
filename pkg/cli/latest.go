package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/ghorg/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func latestCommand(env *runEnv) *cli.Command {
	var (
		ghCfg config.GitHub
		repo  string
	)

	return &cli.Command{
		Name:    "latest",
		Aliases: []string{"l"},
		Usage:   "Print the tag of the latest release",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "repo",
				Aliases:     []string{"r"},
				Usage:       "Repository name (detected from git if not specified)",
				Destination: &repo,
			},
		}, ghCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, repo, err := newUseCase(ctx, env, &ghCfg, repo, true)
			if err != nil {
				return err
			}

			version, err := uc.LatestVersion(ctx, repo)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(env.w, version)
			return err
		},
	}
}
