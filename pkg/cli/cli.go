package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/ghorg/pkg/cli/config"
	"github.com/secmon-lab/ghorg/pkg/utils/errutil"
	"github.com/secmon-lab/ghorg/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	w     io.Writer
	stdin io.Reader
}

type Option func(*CLI)

// WithWriter sets the destination of command output. Logs are not written here.
func WithWriter(w io.Writer) Option {
	return func(x *CLI) {
		x.w = w
	}
}

// WithReader sets the input read by `issue --body-file -`.
func WithReader(r io.Reader) Option {
	return func(x *CLI) {
		x.stdin = r
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		w:     os.Stdout,
		stdin: os.Stdin,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// runEnv is shared by all subcommands of one invocation.
type runEnv struct {
	w      io.Writer
	stdin  io.Reader
	gitDir string
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
		sentryCfg config.Sentry
	)
	env := &runEnv{w: x.w, stdin: x.stdin}

	app := &cli.Command{
		Name:  "ghorg",
		Usage: "GitHub organization tool: list repositories, read branches and releases, create issues",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("GHORG_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       logging.DefaultLevel,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Sources:     cli.EnvVars("GHORG_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       logging.DefaultFormat,
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Sources:     cli.EnvVars("GHORG_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       logging.DefaultOutput,
			},
			&cli.StringFlag{
				Name:        "git-dir",
				Usage:       "Git repository used to detect organization and repository",
				Sources:     cli.EnvVars("GHORG_GIT_DIR"),
				Destination: &env.gitDir,
				Value:       ".",
			},
		}, sentryCfg.Flags()),
		Commands: []*cli.Command{
			reposCommand(env),
			branchCommand(env),
			latestCommand(env),
			issueCommand(env),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			if err := sentryCfg.Configure(ctx); err != nil {
				return ctx, err
			}
			return logging.Start(ctx), nil
		},
	}

	ctx := context.Background()
	if err := app.Run(ctx, argv); err != nil {
		errutil.HandleError(ctx, "fatal error", err)
		sentryCfg.Flush()
		return err
	}

	return nil
}
