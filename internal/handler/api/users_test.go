package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fhuszti/images-ms-go/internal/mock"
	"github.com/fhuszti/images-ms-go/internal/port"
	userUC "github.com/fhuszti/images-ms-go/internal/usecase/user"
	"github.com/go-chi/chi/v5"
)

func TestMeHandler_Success(t *testing.T) {
	svc := &mock.ProfileGetter{Out: port.ProfileOutput{ID: testUserID, Username: "alice"}}
	handler := MeHandler(svc)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithIDs(http.MethodGet, "/users/me", nil, &testUserID))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if svc.ID != testUserID {
		t.Errorf("service called with %q, want %q", svc.ID, testUserID)
	}

	var out port.ProfileOutput
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("could not decode body: %v", err)
	}
	if out.Username != "alice" {
		t.Errorf("username = %q, want alice", out.Username)
	}
}

func TestMeHandler_Unauthenticated(t *testing.T) {
	svc := &mock.ProfileGetter{}
	handler := MeHandler(svc)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithIDs(http.MethodGet, "/users/me", nil, nil))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
	if svc.Called {
		t.Error("did not expect the service to be called")
	}
}

func profileRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/users/profile/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestProfileHandler(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		svcErr     error
		wantStatus int
	}{
		{"success", testUserID.String(), nil, http.StatusOK},
		{"invalid uuid", "not-a-uuid", nil, http.StatusBadRequest},
		{"unknown user", testUserID.String(), userUC.ErrUserNotFound, http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.ProfileGetter{Err: tc.svcErr}
			rr := httptest.NewRecorder()
			ProfileHandler(svc).ServeHTTP(rr, profileRequest(tc.id))

			if rr.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
		})
	}
}
