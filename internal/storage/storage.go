// Package storage uploads team logos to an S3 compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/osse101/PlayPredix_Go/internal/config"
	"github.com/osse101/PlayPredix_Go/internal/domain"
)

// LogoStore stores an object and returns the URL clients fetch it from
type LogoStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// objectPutter is the part of *s3.Client the store needs
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store writes logos to S3, R2 or MinIO
type S3Store struct {
	client        objectPutter
	bucket        string
	publicBaseURL string
}

// New returns an S3Store when storage is configured and a NoopStore otherwise
func New(ctx context.Context, cfg config.LogoStorageConfig) (LogoStore, error) {
	if !cfg.Enabled() {
		return NoopStore{}, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3Store(client, cfg.Bucket, cfg.PublicBaseURL), nil
}

// NewS3Store wraps an existing client
func NewS3Store(client objectPutter, bucket, publicBaseURL string) *S3Store {
	return &S3Store{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Put uploads body under key and returns its public URL
func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if key == "" {
		return "", errors.New("storage key is empty")
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return s.publicBaseURL + "/" + key, nil
}

// NoopStore is used when no bucket is configured
type NoopStore struct{}

// Put always fails with domain.ErrStorageDisabled
func (NoopStore) Put(context.Context, string, string, io.Reader) (string, error) {
	return "", domain.ErrStorageDisabled
}
