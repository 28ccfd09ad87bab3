// internal/services/storage_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/catalog-service/internal/config"
	"github.com/javajoker/catalog-service/internal/utils"
)

const pictureFolder = "products"

var allowedPictureTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// StorageService stores product pictures in S3, or on local disk when no
// AWS credentials are configured.
type StorageService struct {
	s3Client s3iface.S3API
	config   config.AWSConfig
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

func NewStorageService(cfg config.AWSConfig) (*StorageService, error) {
	if !cfg.S3Enabled() {
		logrus.WithField("dir", cfg.LocalUploadDir).Warn("AWS credentials not set, storing pictures locally")
		return &StorageService{config: cfg}, nil
	}

	// Create AWS session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return NewStorageServiceWithClient(s3.New(sess), cfg), nil
}

func NewStorageServiceWithClient(client s3iface.S3API, cfg config.AWSConfig) *StorageService {
	return &StorageService{s3Client: client, config: cfg}
}

// UsesS3 reports whether uploads go to S3.
func (s *StorageService) UsesS3() bool {
	return s.s3Client != nil
}

// UploadProductPictures stores each picture and returns the results in input
// order. Objects are keyed by content hash, so re-uploading a picture yields
// the same URL.
func (s *StorageService) UploadProductPictures(ctx context.Context, headers []*multipart.FileHeader) ([]UploadResult, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("%w: no pictures provided", ErrValidation)
	}

	results := make([]UploadResult, 0, len(headers))
	for _, header := range headers {
		result, err := s.uploadPicture(ctx, header)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, nil
}

func (s *StorageService) uploadPicture(ctx context.Context, header *multipart.FileHeader) (*UploadResult, error) {
	// Validate file size
	if s.config.MaxUploadSize > 0 && header.Size > s.config.MaxUploadSize {
		return nil, fmt.Errorf("%w: file %s is %d bytes, maximum is %d bytes",
			ErrValidation, header.Filename, header.Size, s.config.MaxUploadSize)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Validate content, not the client-supplied name or header
	contentType := mimetype.Detect(fileBytes).String()
	ext, ok := allowedPictureTypes[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: file %s is not a supported image (%s)", ErrValidation, header.Filename, contentType)
	}

	key := fmt.Sprintf("%s/%s%s", pictureFolder, utils.HashBytes(fileBytes), ext)

	if s.s3Client != nil {
		return s.uploadToS3(ctx, fileBytes, key, contentType)
	}
	return s.uploadToLocal(fileBytes, key, contentType)
}

func (s *StorageService) uploadToS3(ctx context.Context, fileBytes []byte, key, contentType string) (*UploadResult, error) {
	_, err := s.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.config.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		ACL:           aws.String(s3.ObjectCannedACLPublicRead),
	})
	if err != nil {
		logrus.WithError(err).WithField("key", key).Error("Failed to upload picture to S3")
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &UploadResult{
		URL:      s.getS3URL(key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) uploadToLocal(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	path := filepath.Join(s.config.LocalUploadDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(path, fileBytes, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &UploadResult{
		URL:      fmt.Sprintf("%s/uploads/%s", strings.TrimRight(s.config.PublicBaseURL, "/"), key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) getS3URL(key string) string {
	if s.config.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.config.CloudFrontURL, "/"), key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.S3Bucket, s.config.Region, key)
}
