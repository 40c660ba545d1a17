// Package storage implements the object store domain service against any
// S3-compatible backend.
package storage

import (
	"context"
	"io"
	"log/slog"

	"dealroom/config"
	"dealroom/internal/domain/service"
	"dealroom/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type s3Store struct {
	client *s3.Client
	region string
	logger *slog.Logger
}

// NewS3Store is the constructor for s3Store.
func NewS3Store(cfg *config.Config, logger *slog.Logger) (service.ObjectStore, error) {
	if cfg.Storage == nil || cfg.Storage.Endpoint == "" {
		return nil, errors.New("storage endpoint must be configured")
	}

	options := s3.Options{
		Region: cfg.Storage.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			"",
		),
		BaseEndpoint: aws.String(cfg.Storage.Endpoint),
		UsePathStyle: cfg.Storage.UsePathStyle,
	}

	return &s3Store{
		client: s3.New(options),
		region: cfg.Storage.Region,
		logger: logger,
	}, nil
}

// BucketExists implements service.ObjectStore.
func (s *s3Store) BucketExists(ctx context.Context, bucket string) (bool, error) {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to head bucket %s", bucket)
	}

	return true, nil
}

// MakeBucket implements service.ObjectStore. Creating a bucket that already
// exists is success, so provisioning can be repeated safely.
func (s *s3Store) MakeBucket(ctx context.Context, bucket string) error {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	}
	// us-east-1 is the only region that rejects an explicit location constraint.
	if s.region != "" && s.region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(s.region),
		}
	}

	_, err := s.client.CreateBucket(ctx, input)
	if err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		var exists *types.BucketAlreadyExists
		if errors.As(err, &owned) || errors.As(err, &exists) {
			return nil
		}

		return errors.Wrapf(err, "failed to create bucket %s", bucket)
	}

	s.logger.InfoContext(ctx, "Created bucket", slog.String("bucket", bucket))

	return nil
}

// ListObjects implements service.ObjectStore.
func (s *s3Store) ListObjects(ctx context.Context, bucket string) ([]service.ObjectInfo, error) {
	var objects []service.ObjectInfo

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			var noBucket *types.NoSuchBucket
			if errors.As(err, &noBucket) {
				return nil, service.ErrBucketNotFound
			}

			return nil, errors.Wrapf(err, "failed to list objects in bucket %s", bucket)
		}

		for _, obj := range page.Contents {
			objects = append(objects, service.ObjectInfo{
				Key:  aws.ToString(obj.Key),
				Size: aws.ToInt64(obj.Size),
			})
		}
	}

	return objects, nil
}

// PutObject implements service.ObjectStore.
func (s *s3Store) PutObject(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	_, err := s.client.PutObject(ctx, input)
	if err != nil {
		var noBucket *types.NoSuchBucket
		if errors.As(err, &noBucket) {
			return service.ErrBucketNotFound
		}

		return errors.Wrapf(err, "failed to put object %s/%s", bucket, key)
	}

	return nil
}

// GetObject implements service.ObjectStore.
func (s *s3Store) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, service.ErrObjectNotFound
		}
		var noBucket *types.NoSuchBucket
		if errors.As(err, &noBucket) {
			return nil, service.ErrBucketNotFound
		}

		return nil, errors.Wrapf(err, "failed to get object %s/%s", bucket, key)
	}

	return output.Body, nil
}
