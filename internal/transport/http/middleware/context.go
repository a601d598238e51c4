package middleware

import (
	"context"

	"ems/internal/domain/session"
)

type ctxKey string

const (
	ctxKeyRequestID ctxKey = "request_id"
	ctxKeySession   ctxKey = "session"
	ctxKeySessionID ctxKey = "session_id"
)

func withRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return value
	}
	return ""
}

func withSession(ctx context.Context, id string, sess session.Session) context.Context {
	ctx = context.WithValue(ctx, ctxKeySessionID, id)
	return context.WithValue(ctx, ctxKeySession, sess)
}

// GetSession returns the session resolved for this request. Requests
// without a live session get the zero (unauthenticated) Session.
func GetSession(ctx context.Context) session.Session {
	if sess, ok := ctx.Value(ctxKeySession).(session.Session); ok {
		return sess
	}
	return session.Session{}
}

func GetSessionID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKeySessionID).(string); ok {
		return id
	}
	return ""
}
