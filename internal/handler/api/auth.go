package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fhuszti/images-ms-go/internal/logger"
	"github.com/fhuszti/images-ms-go/internal/port"
	userUC "github.com/fhuszti/images-ms-go/internal/usecase/user"
	"github.com/fhuszti/images-ms-go/internal/validation"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func RegisterHandler(svc port.UserRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			respondValidationErrors(w, r, errs)
			return
		}

		err := svc.Register(r.Context(), port.RegisterInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			if errors.Is(err, userUC.ErrUserExists) {
				WriteError(w, http.StatusBadRequest, "Email or username already registered", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not register user", err)
			return
		}

		RespondJSON(w, http.StatusCreated, map[string]bool{"success": true})
		logger.Infof(r.Context(), "✅  Successfully registered user %q", req.Username)
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func LoginHandler(svc port.UserAuthenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			respondValidationErrors(w, r, errs)
			return
		}

		out, err := svc.Login(r.Context(), port.LoginInput{Username: req.Username, Password: req.Password})
		if err != nil {
			if errors.Is(err, userUC.ErrInvalidCredentials) {
				WriteError(w, http.StatusUnauthorized, "Invalid username or password", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not log in", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
	}
}

func respondValidationErrors(w http.ResponseWriter, r *http.Request, errs error) {
	errsJSON, err := validation.ErrorsToJson(errs)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
		return
	}

	RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
	logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
}
