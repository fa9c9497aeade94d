package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Provider represents the S3-compatible storage provider
type S3Provider string

const (
	S3ProviderAWS    S3Provider = "aws"
	S3ProviderWasabi S3Provider = "wasabi"
)

// S3Config holds configuration for S3-compatible CV storage
type S3Config struct {
	Provider        S3Provider
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string

	// Wasabi-specific endpoint, e.g. "s3.ap-southeast-1.wasabisys.com"
	WasabiEndpoint string
}

// NewS3ConfigFromEnv creates S3 config from environment variables
func NewS3ConfigFromEnv() S3Config {
	provider := S3ProviderAWS
	if os.Getenv("S3_PROVIDER") == "wasabi" {
		provider = S3ProviderWasabi
	}

	cfg := S3Config{
		Provider:        provider,
		AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		Region:          os.Getenv("S3_REGION"),
		Bucket:          os.Getenv("CV_BUCKET"),
	}

	if provider == S3ProviderWasabi {
		if endpoint := os.Getenv("WASABI_ENDPOINT"); endpoint != "" {
			cfg.WasabiEndpoint = endpoint
		} else {
			cfg.WasabiEndpoint = fmt.Sprintf("s3.%s.wasabisys.com", cfg.Region)
		}
	}

	return cfg
}

// IsConfigured reports whether enough settings are present to upload files.
func (c S3Config) IsConfigured() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != "" && c.Region != "" && c.Bucket != ""
}

// CVStore uploads and removes candidate CV objects.
type CVStore struct {
	client *s3.Client
	cfg    S3Config
}

// NewCVStore creates the store with the given config.
// Supports both AWS S3 and Wasabi.
func NewCVStore(ctx context.Context, cfg S3Config) (*CVStore, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	switch cfg.Provider {
	case S3ProviderWasabi:
		// Wasabi requires custom endpoint and path-style addressing
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String("https://" + cfg.WasabiEndpoint)
			o.UsePathStyle = true
		})
	default:
		client = s3.NewFromConfig(awsCfg)
	}

	return &CVStore{client: client, cfg: cfg}, nil
}

// Upload stores the object under key and returns its public URL.
func (s *CVStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload failed: %w", err)
	}
	return s.objectURL(key), nil
}

// Delete removes a previously uploaded object. URLs from other buckets are
// ignored so stale references never block a new upload.
func (s *CVStore) Delete(ctx context.Context, objectURL string) error {
	key, ok := s.keyFromURL(objectURL)
	if !ok {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *CVStore) objectURL(key string) string {
	if s.cfg.Provider == S3ProviderWasabi {
		return fmt.Sprintf("https://%s/%s/%s", s.cfg.WasabiEndpoint, s.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

func (s *CVStore) keyFromURL(objectURL string) (string, bool) {
	prefixes := []string{
		fmt.Sprintf("https://%s/%s/", s.cfg.WasabiEndpoint, s.cfg.Bucket),
		fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.cfg.Bucket, s.cfg.Region),
	}
	for _, p := range prefixes {
		if strings.HasPrefix(objectURL, p) {
			return strings.TrimPrefix(objectURL, p), true
		}
	}
	return "", false
}
