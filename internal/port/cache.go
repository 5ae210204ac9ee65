package port

import (
	"context"
	"time"

	"github.com/fhuszti/images-ms-go/internal/uuid"
)

// Cache provides caching capabilities for servable image locations. Only
// public images are ever cached, so a hit is safe to serve to any viewer.
type Cache interface {
	GetImageLocation(ctx context.Context, id uuid.UUID) ([]byte, error)
	GetEtagImageLocation(ctx context.Context, id uuid.UUID) (string, error)
	SetImageLocation(ctx context.Context, id uuid.UUID, data []byte, validUntil time.Time)
	SetEtagImageLocation(ctx context.Context, id uuid.UUID, etag string, validUntil time.Time)
}
