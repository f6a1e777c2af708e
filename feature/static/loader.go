package static

import (
	"context"
	"fmt"
	"os"
	"time"

	"isoserve/core/server"
	"isoserve/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature serves the document root from the local filesystem.
type Feature struct {
	cfg    server.Config
	logger *zap.Logger
}

// NewFeature creates a new filesystem static feature.
func NewFeature(cfg server.Config, logger *zap.Logger) *Feature {
	return &Feature{cfg: cfg, logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load verifies the document root and registers the file routes.
func (f *Feature) Load(app fiber.Router) error {
	root := f.cfg.Root
	if root == "" {
		root = "."
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("document root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("document root %s is not a directory", root)
	}

	f.logger.Debug("Serving filesystem root",
		zap.String("root", root),
		zap.Bool("browse", f.cfg.Browse))
	RegisterFilesystem(app, root, f.cfg.Index, f.cfg.Browse)
	return nil
}

// BucketFeature serves the document root from an object storage bucket.
type BucketFeature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewBucketFeature creates a new bucket static feature.
func NewBucketFeature(client storage.Client, cfg storage.Config, index string, logger *zap.Logger) *BucketFeature {
	svc := NewService(client, cfg.Bucket, cfg.Prefix, index, logger)
	return &BucketFeature{
		service: svc,
		handler: NewHandler(svc),
		enabled: cfg.Enabled,
	}
}

// Name returns the name of the feature.
func (f *BucketFeature) Name() string {
	return "static-bucket"
}

// IsEnabled checks if the feature is enabled.
func (f *BucketFeature) IsEnabled() bool {
	return f.enabled
}

// Load verifies the bucket is reachable and registers the object routes.
func (f *BucketFeature) Load(app fiber.Router) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := f.service.CheckBucket(ctx); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
