package api

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/fhuszti/images-ms-go/internal/api_context"
	"github.com/fhuszti/images-ms-go/internal/port"
	imageUC "github.com/fhuszti/images-ms-go/internal/usecase/image"
)

// MediaDevHandler streams image bytes through the application process. Only
// mounted in local-managed deployments.
func MediaDevHandler(svc port.ImageOpener, direct bool) http.HandlerFunc {
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

		rc, contentType, err := svc.OpenImage(r.Context(), port.GetLocationInput{
			ID:       id,
			ViewerID: viewerFromContext(r),
		})
		if err != nil {
			if errors.Is(err, imageUC.ErrImageNotFound) {
				WriteError(w, http.StatusNotFound, "Image not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not serve image", err)
			return
		}
		defer func() {
			if err := rc.Close(); err != nil {
				log.Printf("failed to close object reader for image #%s: %v", id, err)
			}
		}()

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, rc); err != nil {
			log.Printf("failed streaming image #%s: %v", id, err)
		}
	}
}
