package image

import "fmt"

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// ProvisionalContentType is recorded at creation and replaced by the sniffed
// type once bytes flow through the app, or trusted as-is for direct-storage
// uploads.
const ProvisionalContentType = "image/jpeg"

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

func IsAllowedImageType(contentType string) bool {
	return allowedImageTypes[contentType]
}

// DevUploadPath is the app-managed upload endpoint returned instead of a
// presigned URL in local-managed deployments.
func DevUploadPath(id fmt.Stringer) string {
	return "/images/upload/dev/" + id.String()
}

// DevMediaPath is the app-served media endpoint used instead of a signed URL
// in local-managed deployments.
func DevMediaPath(id fmt.Stringer) string {
	return "/images/media/dev/" + id.String()
}
