package s3

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/contractorpro/contractorpro/internal/config"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/logger"
)

const (
	defaultPresignExpiryDuration = 30 * time.Minute
)

// Service stores compliance documents. A nil Service means storage is disabled.
type Service interface {
	UploadDocument(ctx context.Context, userID string, document *Document) (*UploadResult, error)
	GetPresignedURL(ctx context.Context, key string) (string, error)
}

type s3ServiceImpl struct {
	client    *s3.Client
	presigner *s3.PresignClient
	config    *config.S3Config
	logger    *logger.Logger
}

func NewService(cfg *config.Configuration, logger *logger.Logger) (Service, error) {
	if !cfg.S3.Enabled {
		logger.Info("document storage is disabled")
		return nil, nil
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(cfg.S3.Region),
	)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("failed to load aws config").
			Mark(ierr.ErrHTTPClient)
	}

	client := s3.NewFromConfig(awsCfg)
	return &s3ServiceImpl{
		client:    client,
		presigner: s3.NewPresignClient(client),
		config:    &cfg.S3,
		logger:    logger,
	}, nil
}

// ObjectKey namespaces documents per user under the configured prefix
func ObjectKey(prefix, userID string, document *Document) string {
	key := fmt.Sprintf("%s/%s.%s", userID, document.ID, document.Extension)
	if prefix != "" {
		return prefix + "/" + key
	}
	return key
}

func (s *s3ServiceImpl) UploadDocument(ctx context.Context, userID string, document *Document) (*UploadResult, error) {
	key := ObjectKey(s.config.KeyPrefix, userID, document)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(document.Data),
		ContentType: aws.String(document.ContentType),
	})
	if err != nil {
		return nil, ierr.WithError(err).WithHint("failed to upload document").
			WithMessagef("bucket:%s, key:%s", s.config.Bucket, key).
			Mark(ierr.ErrHTTPClient)
	}

	s.logger.Infow("uploaded compliance document",
		"user_id", userID,
		"key", key,
		"content_type", document.ContentType,
	)

	url, err := s.GetPresignedURL(ctx, key)
	if err != nil {
		return nil, err
	}
	return &UploadResult{Key: key, FileURL: url}, nil
}

func (s *s3ServiceImpl) GetPresignedURL(ctx context.Context, key string) (string, error) {
	duration := s.config.PresignExpiryDuration
	if duration <= 0 {
		duration = defaultPresignExpiryDuration
	}

	result, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(duration))
	if err != nil {
		return "", ierr.WithError(err).WithHint("failed to get presigned url").
			WithMessagef("bucket:%s, key:%s", s.config.Bucket, key).
			Mark(ierr.ErrHTTPClient)
	}

	return result.URL, nil
}
