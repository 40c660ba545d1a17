package service

import (
	"context"
	"errors"
	"io"
)

// ErrBucketNotFound is returned when the named bucket does not exist.
var ErrBucketNotFound = errors.New("bucket not found")

// ErrObjectNotFound is returned when the named object does not exist in the bucket.
var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key  string // Object key within the bucket.
	Size int64  // Object size in bytes.
}

// ObjectStore is the gated resource store: an external S3-compatible object
// storage service holding data-room files, addressed by per-asset buckets.
// It is a collaborator, not part of this service; only this interface is
// consumed.
type ObjectStore interface {
	// BucketExists reports whether the named bucket exists.
	BucketExists(ctx context.Context, bucket string) (bool, error)

	// MakeBucket creates the named bucket. Creating a bucket that already
	// exists is treated as success, so callers may safely repeat the
	// exists-then-create sequence.
	MakeBucket(ctx context.Context, bucket string) error

	// ListObjects lists every object in the bucket.
	ListObjects(ctx context.Context, bucket string) ([]ObjectInfo, error)

	// PutObject streams an object into the bucket, replacing any existing
	// object under the same key.
	PutObject(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) error

	// GetObject opens a read stream for the object. The caller must close
	// the returned reader. Returns ErrObjectNotFound if the object is absent.
	GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}
