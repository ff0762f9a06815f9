package infra

import (
	"reflect"

	"github.com/secmon-lab/ghorg/pkg/domain/interfaces"
)

type Clients struct {
	github interfaces.GitHub
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}

// WithGitHub sets the GitHub client. A nil client, including a nil pointer
// held by the interface, leaves it unset.
func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		if isNil(client) {
			return
		}
		x.github = client
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
