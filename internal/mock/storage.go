package mock

import (
	"context"
	"io"
	"time"

	"github.com/fhuszti/images-ms-go/internal/port"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// stored values
	GrantOut      port.UploadGrant
	LocationOut   string
	URLOut        string
	ValidUntilOut time.Time
	ExistsOut     bool
	GetOut        io.ReadCloser

	// captured inputs
	ObjectID    string
	Location    string
	Public      bool
	ContentType string
	SavedSize   int64
	SavedBytes  []byte

	// errors
	InitBucketErr  error
	ReserveErr     error
	IssueErr       error
	ExistsErr      error
	SaveErr        error
	GetErr         error

	// call flags
	InitBucketCalled bool
	ReserveCalled    bool
	IssueCalled      bool
	ExistsCalled     bool
	SaveCalled       bool
	GetCalled        bool
}

// compile-time check: *Storage must satisfy port.Storage
var _ port.Storage = (*Storage)(nil)

func (m *Storage) InitBucket(bucket string) error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) StorageLocation(objectID string, public bool) string {
	m.ObjectID = objectID
	m.Public = public
	if m.LocationOut != "" {
		return m.LocationOut
	}
	return "s3://test-bucket/2025/1/1/" + objectID
}

func (m *Storage) ReserveUpload(ctx context.Context, objectID string, public bool) (port.UploadGrant, error) {
	m.ReserveCalled = true
	m.ObjectID = objectID
	m.Public = public
	if m.ReserveErr != nil {
		return port.UploadGrant{}, m.ReserveErr
	}
	if m.GrantOut.URL != "" || m.GrantOut.Location != "" {
		return m.GrantOut, nil
	}
	return port.UploadGrant{
		URL:      "https://example.com/upload/" + objectID,
		Location: "s3://test-bucket/2025/1/1/" + objectID,
	}, nil
}

func (m *Storage) IssueDownloadURL(ctx context.Context, location, contentType string, public bool) (string, time.Time, error) {
	m.IssueCalled = true
	m.Location = location
	m.ContentType = contentType
	m.Public = public
	if m.IssueErr != nil {
		return "", time.Time{}, m.IssueErr
	}
	url := m.URLOut
	if url == "" {
		url = "https://example.com/download"
	}
	return url, m.ValidUntilOut, nil
}

func (m *Storage) ObjectExists(ctx context.Context, location string) (bool, error) {
	m.ExistsCalled = true
	m.Location = location
	return m.ExistsOut, m.ExistsErr
}

func (m *Storage) SaveObject(ctx context.Context, location string, reader io.Reader, size int64, contentType string) error {
	m.SaveCalled = true
	m.Location = location
	m.ContentType = contentType
	m.SavedSize = size
	if m.SaveErr != nil {
		return m.SaveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.SavedBytes = data
	return nil
}

func (m *Storage) GetObject(ctx context.Context, location string) (io.ReadCloser, error) {
	m.GetCalled = true
	m.Location = location
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.GetOut, nil
}
