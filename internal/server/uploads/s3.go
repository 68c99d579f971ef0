package uploads

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/akorlov/mapmark/internal/server/config"
)

// S3Storage stores uploads in an S3-compatible bucket (AWS or MinIO).
type S3Storage struct {
	client *s3.Client
	bucket string
}

// NewS3Storage builds an S3 client from the server config using static
// credentials and the configured base endpoint.
func NewS3Storage(ctx context.Context, cfg *sc.Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config error: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return &S3Storage{client: client, bucket: cfg.S3Bucket}, nil
}

func randomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("uploads/%d/%d/%d/%v", d.Year(), int(d.Month()), d.Day(), uuid.New())
}

// Save puts the content under a random key and returns the original name
// plus the object key.
func (s *S3Storage) Save(ctx context.Context, originalName string, content io.Reader) (*StoredFile, error) {
	key := randomStorageKey()

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   content,
	}); err != nil {
		return nil, fmt.Errorf("s3 put error: %w", err)
	}

	return &StoredFile{FileName: originalName, FilePath: key}, nil
}
