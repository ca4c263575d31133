package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"bigode_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/google/uuid"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// StorageService stores product images in an object bucket and serves them
// through the public base URL.
type StorageService struct {
	logger *gecho.Logger
	cfg    *structs.StorageConfig
	client *oss.Client
}

func NewStorageService(logger *gecho.Logger, cfg *structs.Config) *StorageService {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Storage.Endpoint).
		WithRegion(cfg.Storage.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.Storage.AccessKeyID,
				cfg.Storage.AccessKeySecret,
			),
		)

	return &StorageService{
		logger: logger,
		cfg:    cfg.Storage,
		client: oss.NewClient(ossCfg),
	}
}

// UploadProductImage validates size and content type, stores the file under a
// random key, and returns the public URL. The content type comes from sniffing
// the first bytes, not from the client header.
func (ss *StorageService) UploadProductImage(ctx context.Context, r io.Reader, declaredSize int64) (string, error) {
	if declaredSize > ss.cfg.MaxImageBytes {
		return "", fmt.Errorf("image exceeds maximum size of %d bytes", ss.cfg.MaxImageBytes)
	}

	// Read one byte past the cap so an undeclared oversized body still fails.
	data, err := io.ReadAll(io.LimitReader(r, ss.cfg.MaxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if int64(len(data)) > ss.cfg.MaxImageBytes {
		return "", fmt.Errorf("image exceeds maximum size of %d bytes", ss.cfg.MaxImageBytes)
	}

	contentType := http.DetectContentType(data)
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported image type: %s", contentType)
	}

	objectKey := fmt.Sprintf("products/%s/%s%s",
		time.Now().Format("2006/01"),
		uuid.NewString(),
		ext,
	)

	_, err = ss.client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket:      oss.Ptr(ss.cfg.Bucket),
		Key:         oss.Ptr(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: oss.Ptr(contentType),
	})
	if err != nil {
		ss.logger.Error("Failed to upload image", gecho.Field("error", err), gecho.Field("key", objectKey))
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	ss.logger.Info("Image uploaded", gecho.Field("key", objectKey), gecho.Field("bytes", len(data)))
	return ss.PublicURL(objectKey), nil
}

// DeleteImage removes a stored image by its public URL. Failures are logged
// and swallowed: a dangling object in the bucket must never block deleting
// the product row.
func (ss *StorageService) DeleteImage(ctx context.Context, imageURL string) {
	key := ss.objectKeyFromURL(imageURL)
	if key == "" {
		return
	}

	_, err := ss.client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(ss.cfg.Bucket),
		Key:    oss.Ptr(key),
	})
	if err != nil {
		ss.logger.Warn("Failed to delete image from storage",
			gecho.Field("error", err),
			gecho.Field("key", key),
		)
	}
}

func (ss *StorageService) PublicURL(objectKey string) string {
	base := strings.TrimSuffix(ss.cfg.PublicBaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", ss.cfg.Bucket, ss.cfg.Endpoint)
	}
	return base + "/" + objectKey
}

func (ss *StorageService) objectKeyFromURL(imageURL string) string {
	base := strings.TrimSuffix(ss.cfg.PublicBaseURL, "/")
	if base != "" && strings.HasPrefix(imageURL, base+"/") {
		return strings.TrimPrefix(imageURL, base+"/")
	}
	// Fallback: anything under products/ is ours.
	if idx := strings.Index(imageURL, "/products/"); idx >= 0 {
		return imageURL[idx+1:]
	}
	if strings.HasPrefix(path.Clean(imageURL), "products/") {
		return path.Clean(imageURL)
	}
	return ""
}
