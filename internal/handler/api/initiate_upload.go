package api

import (
	"errors"
	"net/http"

	"github.com/fhuszti/images-ms-go/internal/api_context"
	"github.com/fhuszti/images-ms-go/internal/logger"
	"github.com/fhuszti/images-ms-go/internal/port"
	imageUC "github.com/fhuszti/images-ms-go/internal/usecase/image"
	"github.com/go-chi/chi/v5"
)

func InitiateUploadHandler(svc port.UploadInitiator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		out, err := svc.InitiateUpload(r.Context(), port.InitiateUploadInput{
			OwnerID:    uid,
			Visibility: chi.URLParam(r, "privacy"),
		})
		if err != nil {
			switch {
			case errors.Is(err, imageUC.ErrInvalidVisibility):
				WriteError(w, http.StatusBadRequest, "privacy parameter should be 'public' or 'private'", nil)
			case errors.Is(err, imageUC.ErrStorageUnavailable):
				WriteError(w, http.StatusBadGateway, "Storage temporarily unavailable", err)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not initiate upload", err)
			}
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully initiated upload for image #%s", out.ID)
	}
}
