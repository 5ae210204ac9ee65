package storage

import (
	"context"
	"errors"
	"fmt"

	image "github.com/fhuszti/images-ms-go/internal/usecase/image"
	"github.com/minio/minio-go/v7"
)

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", image.ErrStorageUnavailable, err)
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return image.ErrObjectNotFound
	default:
		// access errors, missing buckets, timeouts: all surface as the
		// backend being unavailable to the workflow layer
		return fmt.Errorf("%w: %v", image.ErrStorageUnavailable, err)
	}
}
