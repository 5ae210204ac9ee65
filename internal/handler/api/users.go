package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fhuszti/images-ms-go/internal/api_context"
	"github.com/fhuszti/images-ms-go/internal/port"
	userUC "github.com/fhuszti/images-ms-go/internal/usecase/user"
	msuuid "github.com/fhuszti/images-ms-go/internal/uuid"
	"github.com/go-chi/chi/v5"
	guuid "github.com/google/uuid"
)

func MeHandler(svc port.ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		out, err := svc.GetProfile(r.Context(), uid)
		if err != nil {
			if errors.Is(err, userUC.ErrUserNotFound) {
				WriteError(w, http.StatusNotFound, "User not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get profile", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
	}
}

func ProfileHandler(svc port.ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "id")
		parsed, err := guuid.Parse(raw)
		if err != nil {
			WriteError(w, http.StatusBadRequest, fmt.Sprintf("ID %q is not a valid UUID", raw), nil)
			return
		}

		out, err := svc.GetProfile(r.Context(), msuuid.UUID(parsed))
		if err != nil {
			if errors.Is(err, userUC.ErrUserNotFound) {
				WriteError(w, http.StatusNotFound, "User not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get profile", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
	}
}
