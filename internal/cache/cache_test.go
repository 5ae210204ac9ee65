package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	msuuid "github.com/fhuszti/images-ms-go/internal/uuid"
	"github.com/google/uuid"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewCache(mr.Addr(), ""), mr
}

func TestCache_RoundTrip(t *testing.T) {
	c, mr := newTestCache(t)
	id := msuuid.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	payload := []byte(`{"url":"https://signed.example.com/obj"}`)
	validUntil := time.Now().Add(time.Hour)

	c.SetImageLocation(context.Background(), id, payload, validUntil)
	c.SetEtagImageLocation(context.Background(), id, `"cafebabe"`, validUntil)

	got, err := c.GetImageLocation(context.Background(), id)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("expected payload %q, got %q", payload, got)
	}

	etag, err := c.GetEtagImageLocation(context.Background(), id)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if etag != `"cafebabe"` {
		t.Errorf("expected etag %q, got %q", `"cafebabe"`, etag)
	}

	// entries expire with the signing window
	if ttl := mr.TTL("image_location:" + id.String()); ttl <= 0 || ttl > time.Hour {
		t.Errorf("unexpected ttl %v", ttl)
	}
}

func TestCache_MissIsNotAnError(t *testing.T) {
	c, _ := newTestCache(t)
	id := msuuid.NewUUID()

	got, err := c.GetImageLocation(context.Background(), id)
	if err != nil {
		t.Fatalf("expected no error on miss, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil payload on miss, got %q", got)
	}

	etag, err := c.GetEtagImageLocation(context.Background(), id)
	if err != nil {
		t.Fatalf("expected no error on miss, got %v", err)
	}
	if etag != "" {
		t.Errorf("expected empty etag on miss, got %q", etag)
	}
}

func TestCache_EntryExpires(t *testing.T) {
	c, mr := newTestCache(t)
	id := msuuid.NewUUID()

	c.SetImageLocation(context.Background(), id, []byte("data"), time.Now().Add(time.Minute))
	mr.FastForward(2 * time.Minute)

	got, err := c.GetImageLocation(context.Background(), id)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != nil {
		t.Errorf("expected entry to have expired, got %q", got)
	}
}

func TestNoop_AlwaysMisses(t *testing.T) {
	n := NewNoop()
	id := msuuid.NewUUID()

	n.SetImageLocation(context.Background(), id, []byte("data"), time.Now().Add(time.Hour))

	got, err := n.GetImageLocation(context.Background(), id)
	if err != nil || got != nil {
		t.Errorf("expected miss, got %q / %v", got, err)
	}
}
