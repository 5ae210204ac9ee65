package image

import (
	"context"
	"fmt"
	"io"

	"github.com/fhuszti/images-ms-go/internal/model"
	"github.com/fhuszti/images-ms-go/internal/port"
)

type locationGetterSrv struct {
	repo   port.ImageRepository
	strg   port.Storage
	direct bool
}

// compile-time checks
var (
	_ port.LocationGetter = (*locationGetterSrv)(nil)
	_ port.ImageOpener    = (*locationGetterSrv)(nil)
)

func NewLocationGetter(repo port.ImageRepository, strg port.Storage, direct bool) *locationGetterSrv {
	return &locationGetterSrv{repo: repo, strg: strg, direct: direct}
}

func (s *locationGetterSrv) GetServableLocation(ctx context.Context, in port.GetLocationInput) (*port.GetLocationOutput, error) {
	img, err := s.gate(ctx, in)
	if err != nil {
		return nil, err
	}

	out := &port.GetLocationOutput{ContentType: img.ContentType, Public: img.Public}
	if s.direct {
		url, validUntil, err := s.strg.IssueDownloadURL(ctx, img.Location, img.ContentType, img.Public)
		if err != nil {
			return nil, fmt.Errorf("issue download URL for image #%s: %w", in.ID, err)
		}
		out.URL = url
		out.ValidUntil = validUntil
	} else {
		out.URL = DevMediaPath(in.ID)
	}
	return out, nil
}

// OpenImage streams the raw bytes of a confirmed image, applying the exact
// same read gate as GetServableLocation. Local-managed deployments only.
func (s *locationGetterSrv) OpenImage(ctx context.Context, in port.GetLocationInput) (io.ReadCloser, string, error) {
	img, err := s.gate(ctx, in)
	if err != nil {
		return nil, "", err
	}
	rc, err := s.strg.GetObject(ctx, img.Location)
	if err != nil {
		return nil, "", fmt.Errorf("open object for image #%s: %w", in.ID, err)
	}
	return rc, img.ContentType, nil
}

// gate merges absence, invisibility and not-yet-confirmed into a single
// ErrImageNotFound so callers cannot probe for private records.
func (s *locationGetterSrv) gate(ctx context.Context, in port.GetLocationInput) (*model.Image, error) {
	img, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch image #%s: %w", in.ID, err)
	}
	if img == nil || !img.VisibleTo(in.ViewerID) || !img.Confirmed() {
		return nil, ErrImageNotFound
	}
	return img, nil
}
