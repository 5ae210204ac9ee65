package image

import "errors"

var (
	// ErrInvalidVisibility rejects a visibility outside {public, private}.
	ErrInvalidVisibility = errors.New("visibility should be 'public' or 'private'")
	// ErrImageNotFound covers both a missing record and a record the
	// requester may not see. Merged on purpose so error inspection cannot
	// reveal that a private image exists.
	ErrImageNotFound = errors.New("image not found")
	// ErrAlreadyConfirmed guards the one-shot initiated→confirmed transition.
	ErrAlreadyConfirmed = errors.New("image upload already confirmed")
	// ErrObjectMissing means storage has no bytes at the record's location.
	ErrObjectMissing = errors.New("storage: no object at expected location")
	// ErrUnsupportedMediaType rejects sniffed content that is not an allowed
	// image type.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrStorageUnavailable covers failed or timed-out storage backend calls.
	ErrStorageUnavailable = errors.New("storage: backend unavailable")

	// ErrObjectNotFound is the storage adapter's internal absence signal; the
	// gateway translates it into a false existence result.
	ErrObjectNotFound = errors.New("storage: object not found")
)
