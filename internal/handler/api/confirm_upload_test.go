package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fhuszti/images-ms-go/internal/api_context"
	"github.com/fhuszti/images-ms-go/internal/mock"
	imageUC "github.com/fhuszti/images-ms-go/internal/usecase/image"
	msuuid "github.com/fhuszti/images-ms-go/internal/uuid"
	"github.com/google/uuid"
)

var (
	testImgID  = msuuid.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	testUserID = msuuid.UUID(uuid.MustParse("11111111-2222-3333-4444-555555555555"))
)

func requestWithIDs(method, target string, id, uid *msuuid.UUID) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	ctx := r.Context()
	if id != nil {
		ctx = context.WithValue(ctx, api_context.IDKey, *id)
	}
	if uid != nil {
		ctx = context.WithValue(ctx, api_context.AuthUserIDKey, *uid)
	}
	return r.WithContext(ctx)
}

func TestConfirmUploadHandler(t *testing.T) {
	tests := []struct {
		name       string
		id         *msuuid.UUID
		uid        *msuuid.UUID
		svcErr     error
		wantStatus int
		wantCalled bool
	}{
		{name: "success", id: &testImgID, uid: &testUserID, wantStatus: http.StatusOK, wantCalled: true},
		{name: "missing id in context", uid: &testUserID, wantStatus: http.StatusBadRequest},
		{name: "missing auth in context", id: &testImgID, wantStatus: http.StatusUnauthorized},
		{name: "not found", id: &testImgID, uid: &testUserID, svcErr: imageUC.ErrImageNotFound, wantStatus: http.StatusNotFound, wantCalled: true},
		{name: "already confirmed", id: &testImgID, uid: &testUserID, svcErr: imageUC.ErrAlreadyConfirmed, wantStatus: http.StatusConflict, wantCalled: true},
		{name: "object missing", id: &testImgID, uid: &testUserID, svcErr: imageUC.ErrObjectMissing, wantStatus: http.StatusNotFound, wantCalled: true},
		{name: "storage unavailable", id: &testImgID, uid: &testUserID, svcErr: imageUC.ErrStorageUnavailable, wantStatus: http.StatusBadGateway, wantCalled: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.UploadConfirmer{Err: tc.svcErr}
			handler := ConfirmUploadHandler(svc)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, requestWithIDs(http.MethodPost, "/images/upload/"+testImgID.String()+"/confirm", tc.id, tc.uid))

			if rr.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if svc.Called != tc.wantCalled {
				t.Errorf("service called = %v, want %v", svc.Called, tc.wantCalled)
			}
			if tc.wantCalled {
				if svc.In.ID != testImgID {
					t.Errorf("service called with ID %q, want %q", svc.In.ID, testImgID)
				}
				if svc.In.RequesterID != testUserID {
					t.Errorf("service called with requester %q, want %q", svc.In.RequesterID, testUserID)
				}
			}

			if tc.wantStatus == http.StatusOK {
				var body map[string]bool
				if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
					t.Fatalf("could not decode body: %v", err)
				}
				if !body["success"] {
					t.Error("expected success true")
				}
			}
		})
	}
}
