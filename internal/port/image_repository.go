package port

import (
	"context"
	"time"

	"github.com/fhuszti/images-ms-go/internal/model"
	"github.com/fhuszti/images-ms-go/internal/uuid"
)

// FeedFilter narrows a feed listing. After/Before bound created_at strictly.
// A nil ViewerID is an anonymous request; a non-nil CreatorID restricts the
// listing to that owner on top of the visibility predicate.
type FeedFilter struct {
	ViewerID  *uuid.UUID
	CreatorID *uuid.UUID
	After     time.Time
	Before    time.Time
	Limit     int
}

// ImageRepository defines persistence operations for image records.
type ImageRepository interface {
	Create(ctx context.Context, img *model.Image) error
	// GetByID returns (nil, nil) when no record exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Image, error)
	// MarkConfirmed transitions the record to confirmed only if it is
	// currently initiated, and reports whether a transition happened. This is
	// the single serialization point for concurrent confirmations.
	MarkConfirmed(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateContentType(ctx context.Context, id uuid.UUID, contentType string) error
	// ListFeed returns confirmed images matching the filter, newest first,
	// ties broken by id so repeated calls are stable.
	ListFeed(ctx context.Context, f FeedFilter) ([]model.Image, error)
}
