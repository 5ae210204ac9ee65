package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fhuszti/images-ms-go/internal/logger"
	"github.com/fhuszti/images-ms-go/internal/port"
	msuuid "github.com/fhuszti/images-ms-go/internal/uuid"
	"github.com/go-chi/chi/v5"
	guuid "github.com/google/uuid"
)

func FeedLatestHandler(svc port.FeedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		after, before, err := feedWindow(r)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}

		out, err := svc.ListFeed(r.Context(), port.ListFeedInput{
			ViewerID: viewerFromContext(r),
			After:    after,
			Before:   before,
		})
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list feed", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully listed feed (%d results)", out.Count)
	}
}

func FeedByUserHandler(svc port.FeedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "creator")
		parsed, err := guuid.Parse(raw)
		if err != nil {
			WriteError(w, http.StatusBadRequest, fmt.Sprintf("creator %q is not a valid UUID", raw), nil)
			return
		}
		creator := msuuid.UUID(parsed)

		after, before, err := feedWindow(r)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}

		out, err := svc.ListFeed(r.Context(), port.ListFeedInput{
			ViewerID:  viewerFromContext(r),
			CreatorID: &creator,
			After:     after,
			Before:    before,
		})
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list feed", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully listed feed of user #%s (%d results)", creator, out.Count)
	}
}

// feedWindow parses the optional after/before query params. The default
// window spans everything, with a day of slack on the upper bound for
// timezone skew.
func feedWindow(r *http.Request) (after, before time.Time, err error) {
	after = time.Unix(0, 0)
	before = time.Now().Add(24 * time.Hour)

	if raw := r.URL.Query().Get("after"); raw != "" {
		after, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return after, before, fmt.Errorf("after %q is not a valid RFC3339 timestamp", raw)
		}
	}
	if raw := r.URL.Query().Get("before"); raw != "" {
		before, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return after, before, fmt.Errorf("before %q is not a valid RFC3339 timestamp", raw)
		}
	}
	return after, before, nil
}
