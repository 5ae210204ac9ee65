package image

import (
	"context"
	"fmt"

	"github.com/fhuszti/images-ms-go/internal/logger"
	"github.com/fhuszti/images-ms-go/internal/model"
	"github.com/fhuszti/images-ms-go/internal/port"
)

type uploadConfirmerSrv struct {
	repo port.ImageRepository
	strg port.Storage
}

// compile-time check: *uploadConfirmerSrv must satisfy port.UploadConfirmer
var _ port.UploadConfirmer = (*uploadConfirmerSrv)(nil)

func NewUploadConfirmer(repo port.ImageRepository, strg port.Storage) port.UploadConfirmer {
	return &uploadConfirmerSrv{repo: repo, strg: strg}
}

func (s *uploadConfirmerSrv) ConfirmUpload(ctx context.Context, in port.ConfirmUploadInput) error {
	img, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("fetch image #%s: %w", in.ID, err)
	}
	if img == nil || !img.VisibleTo(&in.RequesterID) {
		return ErrImageNotFound
	}
	if img.Status == model.ImageStatusConfirmed {
		return ErrAlreadyConfirmed
	}

	exists, err := s.strg.ObjectExists(ctx, img.Location)
	if err != nil {
		return fmt.Errorf("check object for image #%s: %w", in.ID, err)
	}
	if !exists {
		return ErrObjectMissing
	}

	// single conditional transition: a concurrent confirmation loses here and
	// observes ErrAlreadyConfirmed instead of silently succeeding twice
	transitioned, err := s.repo.MarkConfirmed(ctx, img.ID)
	if err != nil {
		return fmt.Errorf("confirm image #%s: %w", in.ID, err)
	}
	if !transitioned {
		return ErrAlreadyConfirmed
	}

	logger.Infof(ctx, "confirmed upload for image #%s", in.ID)
	return nil
}
