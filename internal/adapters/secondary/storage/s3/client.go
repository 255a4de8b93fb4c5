package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"log/slog"

	"github.com/admin/tg-bots/gpt-bot/internal/ports/sink"
	"github.com/admin/tg-bots/gpt-bot/internal/ports/storage"
	"github.com/minio/minio-go/v7"
)

const usageLogPrefix = "usage/"

var (
	_ storage.IObjectStorage = (*Client)(nil)
	_ sink.IUsageLogSink     = (*Client)(nil)
)

// Client обёртка над minio.Client для работы с S3
type Client struct {
	client *minio.Client
	bucket string
	log    *slog.Logger
}

// NewClient создаёт новый S3 клиент
func NewClient(client *minio.Client, bucket string, log *slog.Logger) *Client {
	return &Client{
		client: client,
		bucket: bucket,
		log:    log,
	}
}

// GetFile получает файл по пути, для отсутствующего объекта возвращает storage.ErrObjectNotFound
func (c *Client) GetFile(ctx context.Context, path string) ([]byte, error) {
	object, err := c.client.GetObject(ctx, c.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", path, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, storage.ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to read object %s: %w", path, err)
	}

	return data, nil
}

// PutFile перезаписывает объект целиком
func (c *Client) PutFile(ctx context.Context, path string, data []byte, contentType string) error {
	_, err := c.client.PutObject(ctx, c.bucket, path, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", path, err)
	}
	return nil
}

// Append дописывает строку в объект usage/<day>.txt.
// В S3 нет дозаписи, поэтому объект читается и перезаписывается целиком.
func (c *Client) Append(ctx context.Context, day string, line string) error {
	path := UsageLogPath(day)

	existing, err := c.GetFile(ctx, path)
	if err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		return err
	}

	data := append(existing, line...)
	if err := c.PutFile(ctx, path, data, "text/plain; charset=utf-8"); err != nil {
		return err
	}
	c.log.Debug("usage log uploaded to s3", "bucket", c.bucket, "path", path, "size", len(data))
	return nil
}

// Ping для readiness-проверки
func (c *Client) Ping(ctx context.Context) error {
	exists, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", c.bucket)
	}
	return nil
}

// UsageLogPath путь объекта с журналом за день
func UsageLogPath(day string) string {
	return usageLogPrefix + day + ".txt"
}
