package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/fhuszti/images-ms-go/internal/port"
	image "github.com/fhuszti/images-ms-go/internal/usecase/image"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Options configures the object storage gateway. Objects live in one of two
// buckets depending on visibility, and download URLs are rewritten to the
// matching edge distribution hostname.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string

	PublicBucket  string
	PrivateBucket string

	PublicEdgeHost  string
	PrivateEdgeHost string

	// DownloadURLExpiry is also the signing window width for download URLs.
	DownloadURLExpiry time.Duration
	UploadGrantExpiry time.Duration
	CallTimeout       time.Duration
}

type MinioStorage struct {
	client minioClient
	opts   Options
	signer presigner
	now    func() time.Time
}

// compile-time check: *MinioStorage must satisfy port.Storage
var _ port.Storage = (*MinioStorage)(nil)

func NewStorage(opts Options) (*MinioStorage, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return &MinioStorage{
		client: client,
		opts:   opts,
		signer: presigner{accessKey: opts.AccessKey, secretKey: opts.SecretKey, region: opts.Region},
		now:    time.Now,
	}, nil
}

func (s *MinioStorage) InitBucket(bucket string) error {
	ctx, cancel := s.opCtx(context.Background())
	defer cancel()

	ok, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return mapMinioErr(err)
	}
	if !ok {
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: s.opts.Region}); err != nil {
			return mapMinioErr(err)
		}
	}
	return nil
}

// StorageLocation computes the s3://bucket/key location an object would be
// stored at, partitioning keys by allocation date to bound per-prefix object
// counts.
func (s *MinioStorage) StorageLocation(objectID string, public bool) string {
	return fmt.Sprintf("s3://%s/%s/%s", s.bucketFor(public), resourcePrefix(s.now()), objectID)
}

func (s *MinioStorage) ReserveUpload(ctx context.Context, objectID string, public bool) (port.UploadGrant, error) {
	location := s.StorageLocation(objectID, public)
	bucket, key, err := parseLocation(location)
	if err != nil {
		return port.UploadGrant{}, err
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	presignedURL, err := s.client.PresignedPutObject(ctx, bucket, key, s.opts.UploadGrantExpiry)
	if err != nil {
		return port.UploadGrant{}, mapMinioErr(err)
	}

	return port.UploadGrant{URL: presignedURL.String(), Location: location}, nil
}

// IssueDownloadURL signs a download URL as if issued at the start of the
// current window, so repeated calls within a window return byte-identical
// URLs an edge cache can hold on to. The Cache-Control override leaves an
// hour of signature validity beyond the cacheable age, so in-flight cached
// URLs never expire mid-window.
func (s *MinioStorage) IssueDownloadURL(_ context.Context, location, contentType string, public bool) (string, time.Time, error) {
	bucket, key, err := parseLocation(location)
	if err != nil {
		return "", time.Time{}, err
	}

	start := windowStart(s.now(), s.opts.DownloadURLExpiry)
	validUntil := start.Add(s.opts.DownloadURLExpiry)
	cacheAge := int64((s.opts.DownloadURLExpiry - time.Hour) / time.Second)

	query := url.Values{
		"response-content-type":  {contentType},
		"response-cache-control": {fmt.Sprintf("private, max-age=%d, immutable", cacheAge)},
	}

	host := fmt.Sprintf("%s.s3.%s.amazonaws.com", bucket, s.opts.Region)
	u := s.signer.presignGet(host, "/"+key, start, s.opts.DownloadURLExpiry, query)

	// Serve through the edge distribution for this visibility class.
	if edge := s.edgeHostFor(public); edge != "" {
		u.Host = edge
	}

	return u.String(), validUntil, nil
}

func (s *MinioStorage) ObjectExists(ctx context.Context, location string) (bool, error) {
	bucket, key, err := parseLocation(location)
	if err != nil {
		return false, err
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	_, err = s.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if errors.Is(mapMinioErr(err), image.ErrObjectNotFound) {
			return false, nil
		}
		return false, mapMinioErr(err)
	}
	return true, nil
}

func (s *MinioStorage) SaveObject(ctx context.Context, location string, reader io.Reader, size int64, contentType string) error {
	bucket, key, err := parseLocation(location)
	if err != nil {
		return err
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	opts := minio.PutObjectOptions{ContentType: contentType}
	if size < 0 {
		// unknown size: keep streaming parts small instead of the default
		opts.PartSize = 5 * 1024 * 1024
	}
	if _, err := s.client.PutObject(ctx, bucket, key, reader, size, opts); err != nil {
		return mapMinioErr(err)
	}
	return nil
}

func (s *MinioStorage) GetObject(ctx context.Context, location string) (io.ReadCloser, error) {
	bucket, key, err := parseLocation(location)
	if err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return obj, nil
}

func (s *MinioStorage) bucketFor(public bool) string {
	if public {
		return s.opts.PublicBucket
	}
	return s.opts.PrivateBucket
}

func (s *MinioStorage) edgeHostFor(public bool) string {
	if public {
		return s.opts.PublicEdgeHost
	}
	return s.opts.PrivateEdgeHost
}

func (s *MinioStorage) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.CallTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.opts.CallTimeout)
}

// resourcePrefix partitions storage keys by calendar date at allocation time.
func resourcePrefix(now time.Time) string {
	return fmt.Sprintf("%d/%d/%d", now.Year(), int(now.Month()), now.Day())
}

// parseLocation splits an s3://bucket/key location.
func parseLocation(location string) (bucket, key string, err error) {
	u, perr := url.Parse(location)
	if perr != nil || u.Scheme != "s3" || u.Host == "" || u.Path == "" {
		return "", "", fmt.Errorf("invalid storage location %q", location)
	}
	return u.Host, strings.TrimPrefix(u.Path, "/"), nil
}
