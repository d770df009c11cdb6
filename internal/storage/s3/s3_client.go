package s3

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"factura/internal/config"
	"factura/internal/port"
)

// objectStore implements port.ObjectStorage on top of S3 or any
// S3-compatible endpoint (MinIO, Cloudflare R2).
type objectStore struct {
	api       *s3.Client
	uploader  *manager.Uploader
	presigner *s3.PresignClient
}

// New builds an ObjectStorage backed by the configured S3 endpoint. Static
// credentials take precedence over the default chain so local MinIO setups
// work without an AWS profile.
func New(ctx context.Context, cfg *config.S3Config) (port.ObjectStorage, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// Path-style addressing; virtual-host buckets don't resolve
			// against custom endpoints.
			o.UsePathStyle = true
		}
	})

	return &objectStore{
		api:       api,
		uploader:  manager.NewUploader(api),
		presigner: s3.NewPresignClient(api),
	}, nil
}

func (o *objectStore) Upload(ctx context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	req := &s3.PutObjectInput{
		Bucket:      aws.String(input.Bucket),
		Key:         aws.String(input.Key),
		Body:        input.Body,
		ContentType: aws.String(input.ContentType),
	}
	if input.ContentDisposition != "" {
		req.ContentDisposition = aws.String(input.ContentDisposition)
	}

	result, err := o.uploader.Upload(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", input.Key, err)
	}
	return &port.UploadOutput{
		Location: result.Location,
		ETag:     aws.ToString(result.ETag),
	}, nil
}

func (o *objectStore) Delete(ctx context.Context, bucket, key string) error {
	if _, err := o.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

func (o *objectStore) GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error) {
	result, err := o.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(time.Duration(expirySeconds)*time.Second))
	if err != nil {
		return "", fmt.Errorf("presigning %s: %w", key, err)
	}
	return result.URL, nil
}
