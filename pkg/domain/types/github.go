package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	// AuthToken is a GitHub personal access token sent as `Authorization: token <value>`.
	AuthToken string
	RequestID string
)

const DefaultGitHubAPIURL = "https://api.github.com"

func (x AuthToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AuthToken) String() string {
	return "***********"
}

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}
