package storage

import (
	"bytes"
	"context"
	"fmt"

	appconfig "amparo-api/core/config"
	"amparo-api/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader stores generated report exports in an S3 bucket.
type Uploader struct {
	client *s3.Client
	bucket string
}

// NewUploader returns nil when no bucket is configured; callers treat a nil
// uploader as "exports are returned inline only".
func NewUploader(cfg appconfig.S3Config) *Uploader {
	if cfg.Bucket == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
		BaseEndpoint: endpointOrNil(cfg.Endpoint),
	})

	logger.Info("S3 export storage enabled", "bucket", cfg.Bucket, "region", cfg.Region)
	return &Uploader{client: client, bucket: cfg.Bucket}
}

func endpointOrNil(endpoint string) *string {
	if endpoint == "" {
		return nil
	}
	return aws.String(endpoint)
}

// Upload writes the file under key and returns the object key.
func (u *Uploader) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error("Storage:Upload:Error:", err)
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return key, nil
}
