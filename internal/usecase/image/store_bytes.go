package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fhuszti/images-ms-go/internal/logger"
	"github.com/fhuszti/images-ms-go/internal/model"
	"github.com/fhuszti/images-ms-go/internal/port"
)

type byteStorerSrv struct {
	repo      port.ImageRepository
	strg      port.Storage
	chunkSize int
}

// compile-time check: *byteStorerSrv must satisfy port.ByteStorer
var _ port.ByteStorer = (*byteStorerSrv)(nil)

// NewByteStorer wires the app-managed upload path used by local-managed
// deployments. chunkSize bounds per-read buffering while streaming.
func NewByteStorer(repo port.ImageRepository, strg port.Storage, chunkSize int) port.ByteStorer {
	return &byteStorerSrv{repo: repo, strg: strg, chunkSize: chunkSize}
}

func (s *byteStorerSrv) StoreUploadedBytes(ctx context.Context, in port.StoreBytesInput) error {
	img, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("fetch image #%s: %w", in.ID, err)
	}
	// the uploader must be the owner; absent and not-owned look identical
	if img == nil || img.OwnerID != in.RequesterID {
		return ErrImageNotFound
	}
	if img.Status == model.ImageStatusConfirmed {
		return ErrAlreadyConfirmed
	}

	// sniff the real content type from the first chunk; the client-supplied
	// type is never trusted
	head := make([]byte, s.chunkSize)
	n, err := io.ReadFull(in.Reader, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("read first chunk of image #%s: %w", in.ID, err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !IsAllowedImageType(contentType) {
		return fmt.Errorf("%w: sniffed %q", ErrUnsupportedMediaType, contentType)
	}

	// stream the remaining bytes to storage without buffering the whole file;
	// a failure here leaves the record initiated so the upload can be retried
	body := io.MultiReader(bytes.NewReader(head), in.Reader)
	if err := s.strg.SaveObject(ctx, img.Location, body, -1, contentType); err != nil {
		return fmt.Errorf("save object for image #%s: %w", in.ID, err)
	}

	if err := s.repo.UpdateContentType(ctx, img.ID, contentType); err != nil {
		return fmt.Errorf("record content type of image #%s: %w", in.ID, err)
	}
	transitioned, err := s.repo.MarkConfirmed(ctx, img.ID)
	if err != nil {
		return fmt.Errorf("confirm image #%s: %w", in.ID, err)
	}
	if !transitioned {
		return ErrAlreadyConfirmed
	}

	logger.Infof(ctx, "stored uploaded bytes for image #%s (%s)", in.ID, contentType)
	return nil
}
