package types_test

import (
	"errors"
	"io"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ghorg/pkg/domain/types"
)

func TestTransportError(t *testing.T) {
	t.Run("message includes status code when response was received", func(t *testing.T) {
		err := types.NewTransportError("GET", "orgs/example-org/repos", 404, errors.New("Not Found"))
		gt.S(t, err.Error()).Contains("status 404")
		gt.S(t, err.Error()).Contains("orgs/example-org/repos")
		gt.V(t, err.Detail).Equal("Not Found")
	})

	t.Run("message omits status code without response", func(t *testing.T) {
		err := types.NewTransportError("POST", "repos/o/r/issues", 0, io.ErrUnexpectedEOF)
		gt.S(t, err.Error()).Contains("POST repos/o/r/issues failed: unexpected EOF")
		gt.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	})

	t.Run("can be found through goerr wrapping", func(t *testing.T) {
		wrapped := goerr.Wrap(types.NewTransportError("GET", "x", 500, nil), "failed")

		var terr *types.TransportError
		gt.True(t, errors.As(wrapped, &terr))
		gt.V(t, terr.StatusCode).Equal(500)
		gt.V(t, terr.Detail).Equal("")
	})
}

func TestAuthTokenIsMasked(t *testing.T) {
	token := types.AuthToken("ghp_secret")
	gt.V(t, token.String()).Equal("***********")
	gt.V(t, token.LogValue().String()).Equal("***********")
}
