package logging_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ghorg/pkg/domain/types"
	"github.com/secmon-lab/ghorg/pkg/utils/logging"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() {
		gt.NoError(t, logging.Configure(logging.DefaultFormat, logging.DefaultLevel, logging.DefaultOutput))
	})

	t.Run("configure with json format to stdout", func(t *testing.T) {
		gt.NoError(t, logging.Configure("json", "info", "stdout"))
	})

	t.Run("configure with text format to stderr", func(t *testing.T) {
		gt.NoError(t, logging.Configure("text", "debug", "stderr"))
	})

	t.Run("configure with invalid format returns error", func(t *testing.T) {
		gt.Error(t, logging.Configure("invalid", "info", "stdout"))
	})

	t.Run("configure with invalid level returns error", func(t *testing.T) {
		err := logging.Configure("json", "invalid", "stdout")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("level is case insensitive and accepts warning", func(t *testing.T) {
		gt.NoError(t, logging.Configure("json", "WARNING", "stderr"))
	})

	t.Run("level filters records", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ghorg.log")
		gt.NoError(t, logging.Configure("json", "warn", path))

		logger := logging.From(context.Background())
		logger.Info("hidden record")
		logger.Warn("shown record")

		raw := gt.R1(os.ReadFile(path)).NoError(t)
		gt.S(t, string(raw)).NotContains("hidden record")
		gt.S(t, string(raw)).Contains("shown record")
	})

	t.Run("log file is appended across configurations", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ghorg.log")
		gt.NoError(t, logging.Configure("json", "info", path))
		logging.Default().Info("first run")
		gt.NoError(t, logging.Configure("json", "info", path))
		logging.Default().Info("second run")

		raw := gt.R1(os.ReadFile(path)).NoError(t)
		gt.S(t, string(raw)).Contains("first run")
		gt.S(t, string(raw)).Contains("second run")
	})

	t.Run("unwritable log file returns error", func(t *testing.T) {
		gt.Error(t, logging.Configure("json", "info", filepath.Join(t.TempDir(), "missing", "ghorg.log")))
	})

	t.Run("auth token is masked in log output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ghorg.log")
		gt.NoError(t, logging.Configure("json", "debug", path))

		logging.From(context.Background()).Info("configured",
			"token", types.AuthToken("ghp_abcdefghijklmnop"),
			"raw", "github_pat_0123456789",
			"oauth", "gho_9876543210",
		)

		raw := gt.R1(os.ReadFile(path)).NoError(t)
		gt.S(t, string(raw)).Contains("configured")
		gt.S(t, string(raw)).NotContains("abcdefghijklmnop")
		gt.S(t, string(raw)).NotContains("0123456789")
		gt.S(t, string(raw)).NotContains("9876543210")
	})
}

func TestDefault(t *testing.T) {
	logger := logging.Default()
	logger.Info("test message", "key", "value")
}
