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

func reposCommand(env *runEnv) *cli.Command {
	var (
		ghCfg    config.GitHub
		activity bool
		branch   string
		format   string
	)

	return &cli.Command{
		Name:    "repos",
		Aliases: []string{"r"},
		Usage:   "List repositories of the organization",
		Flags: slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:        "activity",
				Aliases:     []string{"a"},
				Usage:       "Show last commit date of --branch for each repository",
				Destination: &activity,
			},
			&cli.StringFlag{
				Name:        "branch",
				Aliases:     []string{"b"},
				Usage:       "Branch used by --activity",
				Value:       "main",
				Destination: &branch,
			},
			formatFlag(&format),
		}, ghCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, _, err := newUseCase(ctx, env, &ghCfg, "", false)
			if err != nil {
				return err
			}

			if activity {
				activities, err := uc.ListRepositoryActivity(ctx, branch)
				if err != nil {
					return err
				}
				return writeOutput(env.w, format, activities, func(w io.Writer) error {
					for _, a := range activities {
						if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", a.Name, a.LastCommitDate.Format(time.RFC3339), a.URL); err != nil {
							return err
						}
					}
					return nil
				})
			}

			repos, err := uc.ListRepositories(ctx)
			if err != nil {
				return err
			}
			return writeOutput(env.w, format, repos, func(w io.Writer) error {
				for _, r := range repos {
					if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Name, r.HTMLURL); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
