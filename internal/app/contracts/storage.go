package contracts

import (
	"context"
	"io"
	"mime/multipart"
)

type Storage interface {
	UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName, objectName string) (string, error)
	GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, string, error)
}
