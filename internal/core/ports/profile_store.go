package ports

import "context"

// ProfileImageStore is the blob storage contract for profile images. The
// engine behind it is interchangeable; the service layer only moves bytes.
type ProfileImageStore interface {
	Put(ctx context.Context, imageID string, data []byte, contentType string) error
	Get(ctx context.Context, imageID string) (data []byte, contentType string, err error)
}
