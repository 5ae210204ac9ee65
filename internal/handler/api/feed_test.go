package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fhuszti/images-ms-go/internal/api_context"
	"github.com/fhuszti/images-ms-go/internal/mock"
	"github.com/fhuszti/images-ms-go/internal/port"
	"github.com/go-chi/chi/v5"
)

func TestFeedLatestHandler_Success(t *testing.T) {
	svc := &mock.FeedLister{Out: port.ListFeedOutput{
		Count: 1,
		Results: []port.FeedItem{{
			ID:          testImgID,
			Creator:     testUserID,
			DownloadURL: "https://signed.example.com/obj",
			CreatedAt:   time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		}},
	}}
	handler := FeedLatestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/feed/latest?after=2025-01-01T00:00:00Z&before=2025-12-31T00:00:00Z", nil)
	req = req.WithContext(context.WithValue(req.Context(), api_context.AuthUserIDKey, testUserID))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var out port.ListFeedOutput
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("could not decode body: %v", err)
	}
	if out.Count != 1 || len(out.Results) != 1 {
		t.Fatalf("unexpected output %+v", out)
	}
	if out.Results[0].DownloadURL != "https://signed.example.com/obj" {
		t.Errorf("unexpected url %q", out.Results[0].DownloadURL)
	}

	wantAfter := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	wantBefore := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	if !svc.In.After.Equal(wantAfter) || !svc.In.Before.Equal(wantBefore) {
		t.Errorf("window [%v, %v], want [%v, %v]", svc.In.After, svc.In.Before, wantAfter, wantBefore)
	}
	if svc.In.ViewerID == nil || *svc.In.ViewerID != testUserID {
		t.Errorf("viewer = %v, want %q", svc.In.ViewerID, testUserID)
	}
	if svc.In.CreatorID != nil {
		t.Errorf("expected no creator filter, got %v", svc.In.CreatorID)
	}
}

func TestFeedLatestHandler_DefaultWindow(t *testing.T) {
	svc := &mock.FeedLister{}
	handler := FeedLatestHandler(svc)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/feed/latest", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !svc.In.After.Equal(time.Unix(0, 0)) {
		t.Errorf("default after = %v, want epoch", svc.In.After)
	}
	if svc.In.Before.Before(time.Now()) {
		t.Errorf("default before %v should be in the future", svc.In.Before)
	}
	if svc.In.ViewerID != nil {
		t.Errorf("expected anonymous listing, got viewer %v", svc.In.ViewerID)
	}
}

func TestFeedLatestHandler_BadTimestamps(t *testing.T) {
	for _, target := range []string{
		"/feed/latest?after=yesterday",
		"/feed/latest?before=2025-13-45",
	} {
		svc := &mock.FeedLister{}
		rr := httptest.NewRecorder()
		FeedLatestHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))

		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", target, rr.Code, http.StatusBadRequest)
		}
		if svc.Called {
			t.Errorf("%s: did not expect the service to be called", target)
		}
	}
}

func feedByUserRequest(t *testing.T, creator string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/feed/by_user/"+creator, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("creator", creator)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestFeedByUserHandler_Success(t *testing.T) {
	svc := &mock.FeedLister{}
	handler := FeedByUserHandler(svc)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, feedByUserRequest(t, testUserID.String()))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if svc.In.CreatorID == nil || *svc.In.CreatorID != testUserID {
		t.Errorf("creator = %v, want %q", svc.In.CreatorID, testUserID)
	}
}

func TestFeedByUserHandler_InvalidCreator(t *testing.T) {
	svc := &mock.FeedLister{}
	handler := FeedByUserHandler(svc)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, feedByUserRequest(t, "not-a-uuid"))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if svc.Called {
		t.Error("did not expect the service to be called")
	}
}
