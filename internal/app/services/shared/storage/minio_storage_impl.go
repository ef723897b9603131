package storage

import (
	"context"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/pkg/exceptions"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return fmt.Sprintf("%s/%s/%s", m.MinioClient.EndpointURL().String(), bucketName, objectName), nil
}

func (m *minioStorage) GetPresignedURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectName, expiry, nil)
	if err != nil {
		return "", exceptions.ErrMinioFindObjectPresignedURL(err, bucketName)
	}
	return presignedURL.String(), nil
}
