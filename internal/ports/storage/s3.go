package storage

import (
	"context"
	"errors"
)

var ErrObjectNotFound = errors.New("object not found")

// IObjectStorage интерфейс для работы с S3-совместимым хранилищем (MinIO)
type IObjectStorage interface {
	GetFile(ctx context.Context, path string) ([]byte, error)
	PutFile(ctx context.Context, path string, data []byte, contentType string) error
}
