package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/ghorg/pkg/cli/config"
	"github.com/secmon-lab/ghorg/pkg/domain/model"
	"github.com/secmon-lab/ghorg/pkg/domain/types"
	"github.com/secmon-lab/ghorg/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func issueCommand(env *runEnv) *cli.Command {
	var (
		ghCfg    config.GitHub
		repo     string
		title    string
		body     string
		bodyFile string
		labels   []string
		format   string
	)

	return &cli.Command{
		Name:    "issue",
		Aliases: []string{"i"},
		Usage:   "Create an issue",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "repo",
				Aliases:     []string{"r"},
				Usage:       "Repository name (detected from git if not specified)",
				Destination: &repo,
			},
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "Issue title, truncated to 125 characters",
				Required:    true,
				Destination: &title,
			},
			&cli.StringFlag{
				Name:        "body",
				Usage:       "Issue body, truncated to 65536 characters",
				Destination: &body,
			},
			&cli.StringFlag{
				Name:        "body-file",
				Usage:       "Read issue body from file ('-' for stdin)",
				Destination: &bodyFile,
			},
			&cli.StringSliceFlag{
				Name:        "label",
				Usage:       "Issue label (repeatable)",
				Destination: &labels,
			},
			formatFlag(&format),
		}, ghCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if body != "" && bodyFile != "" {
				return goerr.Wrap(types.ErrInvalidOption, "--body and --body-file are exclusive")
			}
			if bodyFile != "" {
				b, err := readBody(env.stdin, bodyFile)
				if err != nil {
					return err
				}
				body = b
			}

			uc, repo, err := newUseCase(ctx, env, &ghCfg, repo, true)
			if err != nil {
				return err
			}

			resp, err := uc.CreateIssue(ctx, &model.CreateIssueRequest{
				Repo:   repo,
				Title:  title,
				Body:   body,
				Labels: labels,
			})
			if err != nil {
				return err
			}

			return writeOutput(env.w, format, resp, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, resp.HTMLURL)
				return err
			})
		},
	}
}

func readBody(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return "", goerr.Wrap(err, "failed to read issue body from stdin")
		}
		return string(raw), nil
	}

	fd, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", goerr.Wrap(err, "failed to open issue body file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	raw, err := io.ReadAll(fd)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read issue body file", goerr.V("path", path))
	}
	return string(raw), nil
}
