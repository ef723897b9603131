package contracts

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	UploadObject(ctx context.Context, bucketName, objectName, contentType string, reader io.Reader, size int64) (string, error)
	GetPresignedURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error)
}
