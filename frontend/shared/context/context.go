package context

import (
	"context"

	"companysite/infrastructure/i18n"
	"companysite/infrastructure/viewstate"
)

type sessionKey struct{}

type messagesKey struct{}

func NewContextWithSession(ctx context.Context, session *viewstate.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

func GetSessionFromContext(ctx context.Context) (*viewstate.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*viewstate.Session)
	return s, ok && s != nil
}

func NewContextWithMessages(ctx context.Context, m i18n.Messages) context.Context {
	return context.WithValue(ctx, messagesKey{}, m)
}

// GetMessagesFromContext returns the request's labels; the zero Messages
// echoes message ids.
func GetMessagesFromContext(ctx context.Context) i18n.Messages {
	m, _ := ctx.Value(messagesKey{}).(i18n.Messages)
	return m
}

type csrfKey struct{}

func NewContextWithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, csrfKey{}, token)
}

func GetCSRFTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(csrfKey{}).(string)
	return token
}
