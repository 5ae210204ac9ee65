package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fhuszti/images-ms-go/internal/api_context"
	"github.com/fhuszti/images-ms-go/internal/logger"
	"github.com/fhuszti/images-ms-go/internal/port"
	imageUC "github.com/fhuszti/images-ms-go/internal/usecase/image"
)

// UploadDevHandler receives upload bytes through the application process.
// Only mounted in local-managed deployments; direct-storage deployments
// reject the path outright.
func UploadDevHandler(svc port.ByteStorer, direct bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if direct {
			WriteError(w, http.StatusBadRequest, "Attempted to access development path in production", nil)
			return
		}

		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		uid, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		file, err := uploadStream(r)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid upload payload", err)
			return
		}

		err = svc.StoreUploadedBytes(r.Context(), port.StoreBytesInput{ID: id, RequesterID: uid, Reader: file})
		if err != nil {
			switch {
			case errors.Is(err, imageUC.ErrImageNotFound):
				WriteError(w, http.StatusNotFound, "Path not found", nil)
			case errors.Is(err, imageUC.ErrAlreadyConfirmed):
				WriteError(w, http.StatusBadRequest, "Image already uploaded", nil)
			case errors.Is(err, imageUC.ErrUnsupportedMediaType):
				WriteError(w, http.StatusUnsupportedMediaType, "Uploaded content is not an allowed image type", nil)
			case errors.Is(err, imageUC.ErrStorageUnavailable):
				WriteError(w, http.StatusBadGateway, "Storage temporarily unavailable", err)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not store upload", err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
		logger.Infof(r.Context(), "✅  Successfully stored uploaded bytes for image #%s", id)
	}
}

// uploadStream returns a reader over the uploaded bytes without buffering the
// whole body: the first multipart file part when the request is multipart,
// the raw body otherwise.
func uploadStream(r *http.Request) (io.Reader, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return r.Body, nil
		}
		return nil, fmt.Errorf("read multipart body: %w", err)
	}

	for {
		part, err := mr.NextPart()
		if err != nil {
			return nil, fmt.Errorf("no file part in multipart body: %w", err)
		}
		if part.FileName() != "" {
			return part, nil
		}
	}
}
