package image

import (
	"context"
	"fmt"

	"github.com/fhuszti/images-ms-go/internal/logger"
	"github.com/fhuszti/images-ms-go/internal/model"
	"github.com/fhuszti/images-ms-go/internal/port"
)

type uploadInitiatorSrv struct {
	repo    port.ImageRepository
	strg    port.Storage
	genUUID port.UUIDGen
	direct  bool
}

// compile-time check: *uploadInitiatorSrv must satisfy port.UploadInitiator
var _ port.UploadInitiator = (*uploadInitiatorSrv)(nil)

// NewUploadInitiator wires the upload initiation use case. direct selects
// whether clients upload straight to storage or through the app.
func NewUploadInitiator(repo port.ImageRepository, strg port.Storage, genUUID port.UUIDGen, direct bool) port.UploadInitiator {
	return &uploadInitiatorSrv{repo: repo, strg: strg, genUUID: genUUID, direct: direct}
}

func (s *uploadInitiatorSrv) InitiateUpload(ctx context.Context, in port.InitiateUploadInput) (port.InitiateUploadOutput, error) {
	if in.Visibility != VisibilityPublic && in.Visibility != VisibilityPrivate {
		return port.InitiateUploadOutput{}, ErrInvalidVisibility
	}
	public := in.Visibility == VisibilityPublic

	id := s.genUUID()
	img := &model.Image{
		ID:          id,
		ContentType: ProvisionalContentType,
		Status:      model.ImageStatusInitiated,
		Public:      public,
		OwnerID:     in.OwnerID,
	}

	out := port.InitiateUploadOutput{ID: id, Direct: s.direct}
	if s.direct {
		// reserve storage before persisting anything, so a backend failure
		// leaves no record behind
		grant, err := s.strg.ReserveUpload(ctx, id.String(), public)
		if err != nil {
			return port.InitiateUploadOutput{}, fmt.Errorf("reserve upload for image #%s: %w", id, err)
		}
		img.Location = grant.Location
		out.URL = grant.URL
	} else {
		img.Location = s.strg.StorageLocation(id.String(), public)
		out.URL = DevUploadPath(id)
	}

	if err := s.repo.Create(ctx, img); err != nil {
		return port.InitiateUploadOutput{}, fmt.Errorf("create image record: %w", err)
	}

	logger.Infof(ctx, "initiated upload for image #%s (%s)", id, in.Visibility)
	return out, nil
}
