package api_context

import (
	"context"

	"github.com/fhuszti/images-ms-go/internal/uuid"
)

type ctxKey string

const (
	IDKey         ctxKey = "id"
	AuthUserIDKey ctxKey = "authUserID"
)

func IDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(IDKey).(uuid.UUID)
	return id, ok
}

func AuthUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(uuid.UUID)
	return id, ok
}
