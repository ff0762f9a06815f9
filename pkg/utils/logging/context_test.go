package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ghorg/pkg/utils/logging"
)

func TestWith(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	newCtx := logging.With(ctx, logger)
	gt.V(t, logging.From(newCtx)).Equal(logger)
}

func TestFrom(t *testing.T) {
	t.Run("get logger from context without logger", func(t *testing.T) {
		ctx := context.Background()
		retrieved := logging.From(ctx)
		gt.V(t, retrieved).Equal(logging.From(ctx))
		gt.V(t, retrieved.Handler()).Equal(logging.Default().Handler())
	})
}

func TestCtxRequestID(t *testing.T) {
	t.Run("get new request ID from context", func(t *testing.T) {
		reqID, newCtx := logging.CtxRequestID(context.Background())
		gt.V(t, reqID).NotEqual("")

		retrievedID, _ := logging.CtxRequestID(newCtx)
		gt.V(t, retrievedID).Equal(reqID)
	})

	t.Run("different contexts get different IDs", func(t *testing.T) {
		id1, _ := logging.CtxRequestID(context.Background())
		id2, _ := logging.CtxRequestID(context.Background())
		gt.V(t, id1).NotEqual(id2)
	})
}

func TestStart(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	ctx = logging.Start(ctx)
	reqID, _ := logging.CtxRequestID(ctx)
	logging.From(ctx).Info("hello")

	gt.S(t, buf.String()).Contains(`"request_id":"` + string(reqID) + `"`)
}
