package feed

import (
	"context"
	"fmt"

	"github.com/fhuszti/images-ms-go/internal/logger"
	"github.com/fhuszti/images-ms-go/internal/port"
	image "github.com/fhuszti/images-ms-go/internal/usecase/image"
)

type feedListerSrv struct {
	repo   port.ImageRepository
	strg   port.Storage
	direct bool
	limit  int
}

// compile-time check: *feedListerSrv must satisfy port.FeedLister
var _ port.FeedLister = (*feedListerSrv)(nil)

// NewFeedLister wires the feed listing use case. limit caps the result size
// regardless of what callers ask for.
func NewFeedLister(repo port.ImageRepository, strg port.Storage, direct bool, limit int) port.FeedLister {
	return &feedListerSrv{repo: repo, strg: strg, direct: direct, limit: limit}
}

func (s *feedListerSrv) ListFeed(ctx context.Context, in port.ListFeedInput) (port.ListFeedOutput, error) {
	imgs, err := s.repo.ListFeed(ctx, port.FeedFilter{
		ViewerID:  in.ViewerID,
		CreatorID: in.CreatorID,
		After:     in.After,
		Before:    in.Before,
		Limit:     s.limit,
	})
	if err != nil {
		return port.ListFeedOutput{}, fmt.Errorf("list feed: %w", err)
	}

	results := make([]port.FeedItem, 0, len(imgs))
	for _, img := range imgs {
		item := port.FeedItem{
			ID:        img.ID,
			Creator:   img.OwnerID,
			CreatedAt: img.CreatedAt,
		}
		if s.direct {
			url, _, err := s.strg.IssueDownloadURL(ctx, img.Location, img.ContentType, img.Public)
			if err != nil {
				// a summary without a URL beats failing the whole feed
				logger.Warnf(ctx, "could not issue download URL for image #%s: %v", img.ID, err)
			} else {
				item.DownloadURL = url
			}
		} else {
			item.DownloadURL = image.DevMediaPath(img.ID)
		}
		results = append(results, item)
	}

	return port.ListFeedOutput{Count: len(results), Results: results}, nil
}
