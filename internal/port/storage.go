package port

import (
	"context"
	"io"
)

// UploadInput holds parameters for an object upload. ContentDisposition is
// optional; when set it controls the filename browsers use for downloads
// served from a presigned URL.
type UploadInput struct {
	Bucket             string
	Key                string
	Body               io.Reader
	ContentType        string
	ContentDisposition string
}

// UploadOutput holds the result of an object upload.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage defines the contract for blob storage of archived exports.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Delete(ctx context.Context, bucket, key string) error
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
