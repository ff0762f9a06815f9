package githubapi

import (
	"net/http"

	"github.com/secmon-lab/ghorg/pkg/domain/types"
)

// headerTransport sets the headers every GitHub API request carries.
type headerTransport struct {
	base  http.RoundTripper
	token types.AuthToken
}

func (x *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if x.token != "" {
		req.Header.Set("Authorization", "token "+string(x.token))
	}
	return x.base.RoundTrip(req)
}
