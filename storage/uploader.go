package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
)

var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader stores player photos in object storage.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
	// GetPublicURL returns "" when no public base URL is configured.
	GetPublicURL(key string) string
}

// PlayerPhotoKey returns a fresh object key for a player's photo. ok is false
// for content types other than jpeg, png and webp.
func PlayerPhotoKey(playerID int, contentType string) (key string, ok bool) {
	ext, ok := photoExtensions[contentType]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("players/%d/%s%s", playerID, uuid.NewString(), ext), true
}
