package ai

import "context"

// TokenStore supplies the bearer credential attached to outbound
// requests. An empty token means no Authorization header.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a fixed credential, handy for tests and CLI tools.
type StaticToken string

func (s StaticToken) Token(ctx context.Context) (string, error) {
	return string(s), nil
}
