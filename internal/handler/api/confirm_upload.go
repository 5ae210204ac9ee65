package api

import (
	"errors"
	"net/http"

	"github.com/fhuszti/images-ms-go/internal/api_context"
	"github.com/fhuszti/images-ms-go/internal/logger"
	"github.com/fhuszti/images-ms-go/internal/port"
	imageUC "github.com/fhuszti/images-ms-go/internal/usecase/image"
)

func ConfirmUploadHandler(svc port.UploadConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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

		err := svc.ConfirmUpload(r.Context(), port.ConfirmUploadInput{ID: id, RequesterID: uid})
		if err != nil {
			switch {
			case errors.Is(err, imageUC.ErrImageNotFound):
				WriteError(w, http.StatusNotFound, "Image not found", nil)
			case errors.Is(err, imageUC.ErrAlreadyConfirmed):
				WriteError(w, http.StatusConflict, "Image upload already confirmed", nil)
			case errors.Is(err, imageUC.ErrObjectMissing):
				WriteError(w, http.StatusNotFound, "Image bytes not found in storage", nil)
			case errors.Is(err, imageUC.ErrStorageUnavailable):
				WriteError(w, http.StatusBadGateway, "Storage temporarily unavailable", err)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not confirm upload", err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
		logger.Infof(r.Context(), "✅  Successfully confirmed upload for image #%s", id)
	}
}
