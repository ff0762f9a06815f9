package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/secmon-lab/ghorg/pkg/domain/types"
)

// GetEnvOrSkip returns the value of key, or skips the test when it is unset.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	return lookupEnvOrSkip(t, key)[0]
}

// GitHubEnv points tests at a real organization on api.github.com.
type GitHubEnv struct {
	Org    string
	Repo   string
	Branch string
	Token  types.AuthToken
}

// LoadGitHubEnv reads TEST_GITHUB_ORG, TEST_GITHUB_REPO and TEST_GITHUB_BRANCH
// and skips the test unless all of them are set. The token comes from
// TEST_GITHUB_TOKEN or GITHUB_TOKEN and may be empty.
func LoadGitHubEnv(t *testing.T) GitHubEnv {
	t.Helper()
	values := lookupEnvOrSkip(t, "TEST_GITHUB_ORG", "TEST_GITHUB_REPO", "TEST_GITHUB_BRANCH")

	token := os.Getenv("TEST_GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	return GitHubEnv{
		Org:    values[0],
		Repo:   values[1],
		Branch: values[2],
		Token:  types.AuthToken(token),
	}
}

func lookupEnvOrSkip(t *testing.T, keys ...string) []string {
	t.Helper()
	values := make([]string, len(keys))
	var missing []string
	for i, key := range keys {
		values[i] = os.Getenv(key)
		if values[i] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		t.Skipf("Environment variable(s) %s not set, skipping test", strings.Join(missing, ", "))
	}
	return values
}
