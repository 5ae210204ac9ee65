package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/fhuszti/images-ms-go/internal/api_context"
	"github.com/fhuszti/images-ms-go/internal/port"
	imageUC "github.com/fhuszti/images-ms-go/internal/usecase/image"
	"github.com/fhuszti/images-ms-go/internal/uuid"
)

func GetImageHandler(renderer port.HTTPRenderer, svc port.LocationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		raw, etag, err := renderer.RenderImageLocation(r.Context(), svc, port.GetLocationInput{
			ID:       id,
			ViewerID: viewerFromContext(r),
		})
		if err != nil {
			if errors.Is(err, imageUC.ErrImageNotFound) {
				WriteError(w, http.StatusNotFound, "Image not found", nil)
				return
			}
			if errors.Is(err, imageUC.ErrStorageUnavailable) {
				WriteError(w, http.StatusBadGateway, "Storage temporarily unavailable", err)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get image", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "private, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			log.Printf("✅  Returning cached image #%s", id)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Printf("✅  Successfully returned servable location for image #%s", id)
	}
}

func viewerFromContext(r *http.Request) *uuid.UUID {
	if uid, ok := api_context.AuthUserIDFromContext(r.Context()); ok {
		return &uid
	}
	return nil
}
