package port

import (
	"context"
	"io"
	"time"
)

// UploadGrant is a time-bounded credential allowing a client to upload an
// object directly to storage, together with the location the object will be
// addressable at.
type UploadGrant struct {
	URL      string `json:"url"`
	Location string `json:"-"`
}

// Storage defines object storage operations, partitioned by visibility class
// (public vs private bucket).
type Storage interface {
	InitBucket(bucket string) error
	// StorageLocation computes the location an object would be stored at,
	// without touching the backend. The key is partitioned by allocation date.
	StorageLocation(objectID string, public bool) string
	// ReserveUpload allocates a storage key and returns a presigned upload
	// grant for it.
	ReserveUpload(ctx context.Context, objectID string, public bool) (UploadGrant, error)
	// IssueDownloadURL returns a presigned download URL for the object at
	// location, with the content type pinned in the response headers, plus the
	// instant the URL's signing window ends. Repeated calls within the same
	// window return identical URLs. An empty URL means none could be issued.
	IssueDownloadURL(ctx context.Context, location, contentType string, public bool) (string, time.Time, error)
	// ObjectExists reports whether bytes are present at location. An absent
	// object is false, not an error.
	ObjectExists(ctx context.Context, location string) (bool, error)
	// SaveObject streams reader into the object at location. size may be -1
	// when unknown.
	SaveObject(ctx context.Context, location string, reader io.Reader, size int64, contentType string) error
	// GetObject opens the object at location for reading.
	GetObject(ctx context.Context, location string) (io.ReadCloser, error)
}
