package static

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"isoserve/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Object is an open object ready to be streamed.
type Object struct {
	Key         string
	Size        int64
	ContentType string
	Body        io.ReadCloser
}

// Service resolves request paths to bucket objects.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	index  string
	logger *zap.Logger
}

// NewService creates a new bucket service.
func NewService(client storage.Client, bucket, prefix, index string, logger *zap.Logger) *Service {
	if index == "" {
		index = "index.html"
	}
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		index:  index,
		logger: logger,
	}
}

// CheckBucket returns an error if the bucket is missing or unreachable.
func (s *Service) CheckBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}

// ObjectKey maps a decoded request path to an object key under the prefix.
// The path is cleaned as a rooted path first, so ".." never climbs above the
// prefix. Directory paths map to the index object.
func (s *Service) ObjectKey(requestPath string) string {
	key := strings.TrimPrefix(path.Clean("/"+requestPath), "/")
	if key == "" || strings.HasSuffix(requestPath, "/") {
		if key != "" {
			key += "/"
		}
		key += s.index
	}
	return s.prefix + key
}

// Stat resolves requestPath to an object without opening its body.
// A missing object yields fiber.ErrNotFound.
func (s *Service) Stat(ctx context.Context, requestPath string) (*Object, error) {
	key := s.ObjectKey(requestPath)

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fiber.ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat %s: %w", key, err)
	}

	return &Object{
		Key:         key,
		Size:        info.Size,
		ContentType: contentType(key, info.ContentType),
	}, nil
}

// Open stats and opens the object for requestPath.
// A missing object yields fiber.ErrNotFound.
func (s *Service) Open(ctx context.Context, requestPath string) (*Object, error) {
	obj, err := s.Stat(ctx, requestPath)
	if err != nil {
		return nil, err
	}

	body, err := s.client.GetObject(ctx, s.bucket, obj.Key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fiber.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", obj.Key, err)
	}
	obj.Body = body

	return obj, nil
}

// contentType prefers the stored type unless it is the generic default.
func contentType(key, stored string) string {
	if stored != "" && stored != "application/octet-stream" && stored != "binary/octet-stream" {
		return stored
	}
	if t := mime.TypeByExtension(path.Ext(key)); t != "" {
		return t
	}
	return "application/octet-stream"
}
