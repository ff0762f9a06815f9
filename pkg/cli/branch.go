package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/ghorg/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func branchCommand(env *runEnv) *cli.Command {
	var (
		ghCfg  config.GitHub
		repo   string
		branch string
		format string
	)

	return &cli.Command{
		Name:    "branch",
		Aliases: []string{"b"},
		Usage:   "Show head commit of a branch",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "repo",
				Aliases:     []string{"r"},
				Usage:       "Repository name (detected from git if not specified)",
				Destination: &repo,
			},
			&cli.StringFlag{
				Name:        "branch",
				Aliases:     []string{"b"},
				Usage:       "Branch name",
				Value:       "main",
				Destination: &branch,
			},
			formatFlag(&format),
		}, ghCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, repo, err := newUseCase(ctx, env, &ghCfg, repo, true)
			if err != nil {
				return err
			}

			info, err := uc.FetchBranchInfo(ctx, repo, branch)
			if err != nil {
				return err
			}

			return writeOutput(env.w, format, info, func(w io.Writer) error {
				date, err := info.LastCommitDate()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(w, "%s\t%s\t%s\n", info.Name, info.CommitSHA(), date.Format(time.RFC3339))
				return err
			})
		},
	}
}
