// Package storage provides backup storage backends for inventory documents.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DavidGarzon9580/lite-thinking/internal/application/delivery"
	infraconfig "github.com/DavidGarzon9580/lite-thinking/internal/infrastructure/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var _ delivery.DocumentStorage = (*S3Storage)(nil)

// S3Storage archives inventory documents in an S3-compatible bucket
// (AWS S3, MinIO, RustFS, ...).
type S3Storage struct {
	client *s3.Client
	bucket string
	now    func() int64 // unix millis, swappable in tests
}

// NewS3Storage creates an S3 storage backend from configuration
func NewS3Storage(cfg *infraconfig.StorageConfig, nowMillis func() int64) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("storage credentials are required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			endpoint := cfg.Endpoint
			if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
				endpoint = "https://" + endpoint
			}
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &S3Storage{
		client: client,
		bucket: cfg.Bucket,
		now:    nowMillis,
	}, nil
}

// Store uploads the document and returns its s3:// location
func (s *S3Storage) Store(ctx context.Context, companyNIT string, document []byte) (string, error) {
	key := fmt.Sprintf("inventories/%s/inventory-%d.txt", companyNIT, s.now())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(document),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload inventory document: %w", err)
	}

	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
