package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	TokenKey  contextKey = "token"

	userSinkKey contextKey = "user_sink"
)

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// SetUserContext stores the authenticated user and reports it to any
// sink installed by WithUserSink.
func SetUserContext(ctx context.Context, userID uuid.UUID) context.Context {
	if sink, ok := ctx.Value(userSinkKey).(*uuid.UUID); ok {
		*sink = userID
	}
	return context.WithValue(ctx, UserIDKey, userID)
}

// WithUserSink lets an outer middleware learn the user resolved further in.
func WithUserSink(ctx context.Context, sink *uuid.UUID) context.Context {
	return context.WithValue(ctx, userSinkKey, sink)
}

// GetTokenFromContext mendapatkan token dari context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}

// SetTokenContext menambahkan token ke context
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
