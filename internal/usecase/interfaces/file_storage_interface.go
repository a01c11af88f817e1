package interfaces

import (
	"context"
	"time"
)

// IFileStorage issues short-lived URLs for deliverable files kept in object storage.
type IFileStorage interface {
	PresignUpload(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
	PresignDownload(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
	Remove(ctx context.Context, objectKey string) error
}
