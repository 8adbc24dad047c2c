package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of the S3 client used by S3UploadStore
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3UploadStore keeps uploads in an S3 bucket under a key prefix
type S3UploadStore struct {
	client S3API
	bucket string
	prefix string
}

// NewS3UploadStore creates a new S3UploadStore instance
func NewS3UploadStore(client S3API, bucket, prefix string) *S3UploadStore {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3UploadStore{client: client, bucket: bucket, prefix: prefix}
}

// Save uploads content under the filename's object key
func (s *S3UploadStore) Save(ctx context.Context, filename string, content io.Reader, contentType string) error {
	if !IsSafeFilename(filename) {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}
	if contentType == "" {
		contentType = contentTypeFor(filename)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(filename)),
		Body:        content,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

// Open streams the object stored for filename
func (s *S3UploadStore) Open(ctx context.Context, filename string) (*UploadedFile, error) {
	if !IsSafeFilename(filename) {
		return nil, ErrUploadNotFound
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(filename)),
	})
	if err != nil {
		var noSuchKey *s3types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrUploadNotFound
		}
		return nil, fmt.Errorf("failed to fetch from S3: %w", err)
	}

	file := &UploadedFile{
		Body:        out.Body,
		Size:        aws.ToInt64(out.ContentLength),
		ContentType: aws.ToString(out.ContentType),
		ModTime:     aws.ToTime(out.LastModified),
	}
	if file.ContentType == "" {
		file.ContentType = contentTypeFor(filename)
	}
	return file, nil
}

func (s *S3UploadStore) objectKey(filename string) string {
	return s.prefix + filename
}
