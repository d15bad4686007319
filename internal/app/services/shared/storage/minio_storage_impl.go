package storage

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"io"
	"mime/multipart"

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

// UploadFile stores file under objectName and returns the object name.
func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName, objectName string) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return objectName, nil
}

// GetObject opens objectName for reading and returns its content type.
// The caller closes the reader.
func (m *minioStorage) GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, string, error) {
	object, err := m.MinioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", exceptions.ErrMinioGetObject(err, bucketName)
	}

	info, err := object.Stat()
	if err != nil {
		object.Close()
		return nil, "", exceptions.ErrMinioGetObject(err, bucketName)
	}

	return object, info.ContentType, nil
}
