// Package s3store stores media objects in an S3 bucket.
package s3store

import (
	"context"
	"fmt"
	"io"
	"studiohub/pkg/media"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// Options configure the S3 connection.
type Options struct {
	Region string
	Bucket string
	// Endpoint overrides the AWS endpoint, e.g. for MinIO. Path style
	// addressing is used whenever it is set.
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	// CacheControl is sent with every uploaded object.
	CacheControl string
}

// Store is a media.ObjectStore on S3.
type Store struct {
	client       s3iface.S3API
	bucket       string
	cacheControl string
}

var _ media.ObjectStore = (*Store)(nil)

// New creates an AWS session from opts.
func New(opts Options) (*Store, error) {
	cfg := &aws.Config{
		Region: aws.String(opts.Region),
	}
	if opts.Endpoint != "" {
		cfg.Endpoint = aws.String(opts.Endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	if opts.AccessKeyID != "" {
		cfg.Credentials = credentials.NewStaticCredentials(opts.AccessKeyID, opts.SecretAccessKey, "")
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create aws session: %w", err)
	}

	return NewWithClient(s3.New(sess), opts), nil
}

// NewWithClient wraps an existing S3 client.
func NewWithClient(client s3iface.S3API, opts Options) *Store {
	return &Store{client: client, bucket: opts.Bucket, cacheControl: opts.CacheControl}
}

func (s *Store) Put(ctx context.Context, key string, body io.ReadSeeker, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	}
	if s.cacheControl != "" {
		input.CacheControl = aws.String(s.cacheControl)
	}

	if _, err := s.client.PutObjectWithContext(ctx, input); err != nil {
		return fmt.Errorf("could not put s3://%s/%s: %w", s.bucket, key, err)
	}

	return nil
}

// Delete removes key. Deleting a missing key succeeds.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("could not delete s3://%s/%s: %w", s.bucket, key, err)
	}

	return nil
}
